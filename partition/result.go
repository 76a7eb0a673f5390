package partition

import (
	"slices"

	"github.com/sirkon/clamp/domain"
)

// Result is a validated partition.
type Result struct {
	Name  string
	Kind  domain.Kind
	Bound domain.Span

	// Ranges are ordered disjoint spans claimed by range members and nested
	// partitions, adjacent ones merged.
	Ranges []domain.Span

	// Exacts are ordered values claimed by exact members. Values of a nested
	// partition merged as a single span are part of that span instead, they
	// are listed in Nested(name).Exacts.
	Exacts []domain.Value

	// CatchAll is the name of the catch-all member if there is one.
	CatchAll string

	// Covered is set when every value of the bound is claimed.
	Covered bool

	claims   *claimSet
	children map[string]*Result
}

// Classify returns the path of the member claiming v.
func (r *Result) Classify(v domain.Value) ([]string, bool) {
	if v.Kind() != r.Kind || !r.Bound.Contains(v) {
		return nil, false
	}

	c := r.claims.lookup(v)
	if c == nil {
		if r.CatchAll == "" {
			return nil, false
		}
		return []string{r.CatchAll}, true
	}

	path := slices.Clone(c.path)
	if c.child != nil {
		sub, ok := c.child.Classify(v)
		if !ok {
			return nil, false
		}
		path = append(path, sub...)
	}

	return path, true
}

// MemberSpans returns ordered spans of values owned by the member with
// the given path, nested members included.
func (r *Result) MemberSpans(path ...string) []domain.Span {
	if len(path) == 0 {
		return nil
	}
	if len(path) == 1 && r.CatchAll != "" && path[0] == r.CatchAll {
		return gaps(r.Bound, r.claims.all())
	}

	var res []domain.Span
	for _, c := range r.claims.all() {
		n := min(len(path), len(c.path))
		if !slices.Equal(path[:n], c.path[:n]) {
			continue
		}

		switch {
		case len(path) <= len(c.path):
			res = append(res, c.span)
		case c.child != nil:
			res = append(res, c.child.MemberSpans(path[len(c.path):]...)...)
		}
	}

	return mergeAdjacent(res)
}

// Coverage returns ordered spans of all claimed values.
func (r *Result) Coverage() []domain.Span {
	if r.CatchAll != "" {
		return []domain.Span{r.Bound}
	}

	spans := make([]domain.Span, 0, len(r.claims.all()))
	for _, c := range r.claims.all() {
		spans = append(spans, c.span)
	}

	return mergeAdjacent(spans)
}

// Nested returns the result of a nested member validation.
func (r *Result) Nested(name string) (*Result, bool) {
	res, ok := r.children[name]
	return res, ok
}
