package partition

import (
	"slices"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/clamp/domain"
)

// claim is a span of values owned by a member.
type claim struct {
	span domain.Span

	// path of the owning member relative to the partition holding the claim.
	path []string

	// exact is set for claims made by an exact member.
	exact bool

	// child is set when a nested partition covering its bound was merged as a
	// single span. Classification descends into it.
	child *Result
}

// Cmp defines ordering for the RB-tree as "disjoint by value".
//   - return -1 if this claim ends before the other starts;
//   - return  1 if this claim starts after the other ends;
//   - return  0 if claims share at least one value.
//
// Claims stored in a set never overlap, so 0 only happens for an insertion
// colliding with a stored claim or for a lookup probe.
func (c *claim) Cmp(other *claim) int {
	if c.span.End.Less(other.span.Start) {
		return -1
	}
	if other.span.End.Less(c.span.Start) {
		return 1
	}
	return 0
}

// claimSet is a set of disjoint claims.
type claimSet struct {
	tree   *rbtree.Tree[*claim]
	sorted []*claim
}

func newClaimSet() *claimSet {
	return &claimSet{
		tree: rbtree.New[*claim](),
	}
}

// insert stores c. It returns the stored claim c collides with and leaves
// the set unchanged in that case.
func (s *claimSet) insert(c *claim) *claim {
	r := s.tree.InsertReturn(c)
	if r != c {
		return r
	}

	i, _ := slices.BinarySearchFunc(s.sorted, c, func(a, b *claim) int {
		return a.span.Start.Cmp(b.span.Start)
	})
	s.sorted = slices.Insert(s.sorted, i, c)
	return nil
}

// lookup returns the claim holding v or nil.
func (s *claimSet) lookup(v domain.Value) *claim {
	return s.tree.Search(&claim{span: domain.Single(v)})
}

// all returns claims ordered by their starts.
func (s *claimSet) all() []*claim {
	return s.sorted
}

// firstGap returns the first value of bound not covered by the claims.
// Claims must be sorted, disjoint and lie within bound.
func firstGap(bound domain.Span, claims []*claim) (domain.Value, bool) {
	cursor := bound.Start
	for _, c := range claims {
		if cursor.Less(c.span.Start) {
			return cursor, true
		}

		next, ok := c.span.End.Succ()
		if !ok || bound.End.Less(next) {
			return domain.Value{}, false
		}
		cursor = next
	}

	return cursor, true
}

// gaps returns spans of bound not covered by the claims. The same
// preconditions as for firstGap apply.
func gaps(bound domain.Span, claims []*claim) []domain.Span {
	var res []domain.Span
	cursor := bound.Start
	for _, c := range claims {
		if cursor.Less(c.span.Start) {
			end, _ := c.span.Start.Pred()
			res = append(res, domain.Span{Start: cursor, End: end})
		}

		next, ok := c.span.End.Succ()
		if !ok || bound.End.Less(next) {
			return res
		}
		cursor = next
	}

	return append(res, domain.Span{Start: cursor, End: bound.End})
}

// mergeAdjacent joins touching spans of an ordered disjoint list.
func mergeAdjacent(spans []domain.Span) []domain.Span {
	var res []domain.Span
	for _, s := range spans {
		if len(res) > 0 && res[len(res)-1].Adjacent(s) {
			res[len(res)-1].End = s.End
			continue
		}
		res = append(res, s)
	}

	return res
}
