package partition

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/sirkon/clamp/domain"
)

func u8(v int) domain.Value {
	return domain.MustUint(domain.U8, uint64(v))
}

// genSegment is a piece of the u8 domain handed to exactly one member, or to
// nobody when dropped.
type genSegment struct {
	lo, hi  int
	dropped bool
	owner   []string
}

// genNode mirrors a generated partition: its path relative to the top one and
// the effective bound it is validated within.
type genNode struct {
	path     []string
	top      bool
	declared bool
	catchAll bool
	lo, hi   int
	parent   *genNode
}

// generator builds random partitions of u8 without overlaps, together with the
// brute force knowledge of who owns every value.
type generator struct {
	r       *rand.Rand
	names   int
	holders map[*genSegment]*genNode
	segs    []*genSegment

	// order lists nodes the way the validator finishes them: children first.
	order []*genNode
}

func newGenerator(r *rand.Rand) *generator {
	g := &generator{
		r:       r,
		holders: map[*genSegment]*genNode{},
	}

	cuts := map[int]struct{}{}
	for range 1 + r.IntN(12) {
		cuts[1+r.IntN(255)] = struct{}{}
	}
	points := make([]int, 0, len(cuts)+1)
	for c := range cuts {
		points = append(points, c)
	}
	slices.Sort(points)
	points = append(points, 256)

	lo := 0
	for _, p := range points {
		g.segs = append(g.segs, &genSegment{
			lo:      lo,
			hi:      p - 1,
			dropped: r.IntN(5) == 0,
		})
		lo = p
	}

	return g
}

func (g *generator) partition() *Partition {
	top := &genNode{top: true, lo: 0, hi: 255}
	p, _, _ := g.node(g.segs, top, 0)
	p.Name = "Top"
	return p
}

func (g *generator) name(prefix string) string {
	g.names++
	return fmt.Sprintf("%s%d", prefix, g.names)
}

// node builds a partition out of a run of segments and returns it along with
// the hull of values it claims.
func (g *generator) node(run []*genSegment, n *genNode, depth int) (p *Partition, lo, hi int) {
	var members []Member
	has := false
	extend := func(a, b int) {
		if !has {
			lo, hi, has = a, b, true
			return
		}
		lo = min(lo, a)
		hi = max(hi, b)
	}

	for i := 0; i < len(run); {
		s := run[i]

		if depth < 2 && g.r.IntN(4) == 0 {
			k := 1 + g.r.IntN(min(4, len(run)-i))
			sub := run[i : i+k]
			sub[0].dropped = false

			name := g.name("N")
			child := &genNode{
				path:     append(slices.Clone(n.path), name),
				declared: g.r.IntN(2) == 0,
				parent:   n,
			}
			cp, clo, chi := g.node(sub, child, depth+1)
			if child.declared {
				child.lo, child.hi = sub[0].lo, sub[len(sub)-1].hi
				cp.WithBound(domain.MustRange(domain.Inclusive(u8(child.lo), u8(child.hi))))
			} else {
				child.lo, child.hi = clo, chi
			}

			extend(child.lo, child.hi)
			members = append(members, Nested(name, cp))
			i += k
			continue
		}

		g.holders[s] = n
		if !s.dropped {
			name := g.name("M")
			s.owner = append(slices.Clone(n.path), name)
			if s.lo == s.hi && g.r.IntN(2) == 0 {
				members = append(members, Exact(name, u8(s.lo)))
			} else {
				members = append(members, Ranges(name, domain.MustRange(domain.Inclusive(u8(s.lo), u8(s.hi)))))
			}
			extend(s.lo, s.hi)
		}
		i++
	}

	if g.r.IntN(3) == 0 {
		n.catchAll = true
		members = append(members, CatchAll("Rest"))
	}

	g.order = append(g.order, n)

	var name string
	if len(n.path) > 0 {
		name = n.path[len(n.path)-1]
	}
	return New(name, domain.U8, members...), lo, hi
}

// expect returns the owner of x from segment s or the node whose coverage
// check must fail on x.
func (g *generator) expect(x int, s *genSegment) (owner []string, gapIn *genNode) {
	if !s.dropped {
		return s.owner, nil
	}

	for n := g.holders[s]; n != nil; n = n.parent {
		if !n.top && (x < n.lo || x > n.hi) {
			continue
		}
		if n.catchAll {
			return append(slices.Clone(n.path), "Rest"), nil
		}
		if n.top || n.declared {
			return nil, n
		}
	}

	panic(fmt.Sprintf("value %d is outside of the generated tree", x))
}

func TestValidateAgainstOracle(t *testing.T) {
	r := rand.New(rand.NewPCG(20251019, 7))

	var valid, gapped int
	for i := range 1000 {
		g := newGenerator(r)
		p := g.partition()

		owners := make([][]string, 256)
		firstGaps := map[*genNode]int{}
		for _, s := range g.segs {
			for x := s.lo; x <= s.hi; x++ {
				owner, gapIn := g.expect(x, s)
				owners[x] = owner
				if _, seen := firstGaps[gapIn]; gapIn != nil && !seen {
					firstGaps[gapIn] = x
				}
			}
		}

		res, err := Validate(p)
		if len(firstGaps) > 0 {
			var gapErr *CoverageGapError
			if !errors.As(err, &gapErr) {
				t.Fatalf("case %d: expected coverage gap, got %v", i, err)
			}
			reporter := g.order[slices.IndexFunc(g.order, func(n *genNode) bool {
				_, ok := firstGaps[n]
				return ok
			})]
			if want := u8(firstGaps[reporter]); !gapErr.Value.Equal(want) {
				t.Fatalf("case %d: expected the gap at %s, got %v", i, want, err)
			}
			gapped++
			continue
		}
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		valid++

		if !res.Covered {
			t.Fatalf("case %d: valid top-level partition must be covered", i)
		}
		if cov := res.Coverage(); len(cov) != 1 || cov[0] != domain.U8.Span() {
			t.Fatalf("case %d: coverage must be the whole u8, got %v", i, cov)
		}

		for x := range 256 {
			v := u8(x)
			path, ok := res.Classify(v)
			if !ok || !slices.Equal(path, owners[x]) {
				t.Fatalf("case %d: value %d must belong to %v, got (%v, %v)", i, x, owners[x], path, ok)
			}

			spans := res.MemberSpans(owners[x]...)
			if !slices.ContainsFunc(spans, func(s domain.Span) bool { return s.Contains(v) }) {
				t.Fatalf("case %d: spans %v of %v must contain %d", i, spans, owners[x], x)
			}

			claimed := 0
			for _, s := range res.Ranges {
				if s.Contains(v) {
					claimed++
				}
			}
			if slices.ContainsFunc(res.Exacts, v.Equal) {
				claimed++
			}
			if claimed > 1 {
				t.Fatalf("case %d: value %d is claimed %d times by canonical ranges and exacts", i, x, claimed)
			}
			if claimed == 0 && res.CatchAll == "" {
				t.Fatalf("case %d: value %d is not claimed and there is no catch-all", i, x)
			}
		}

		for j := 1; j < len(res.Ranges); j++ {
			prev, cur := res.Ranges[j-1], res.Ranges[j]
			if !prev.End.Less(cur.Start) || prev.Adjacent(cur) {
				t.Fatalf("case %d: canonical ranges %s and %s must be ordered, disjoint and not adjacent", i, prev, cur)
			}
		}
	}

	if valid == 0 || gapped == 0 {
		t.Fatalf("generator is skewed: %d valid and %d gapped partitions", valid, gapped)
	}
}
