package partition

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirkon/clamp/domain"
)

// Validate checks the partition against its declared bound or, without one,
// against the whole span of its kind.
func Validate(p *Partition) (*Result, error) {
	if !p.Kind.Valid() {
		return nil, fmt.Errorf("partition %q: %w: kind is not set", p.Name, domain.ErrKindMismatch)
	}

	return ValidateWithin(p, p.Kind.Span())
}

// ValidateWithin checks the partition against an explicit outer bound. A
// declared bound of the partition must lie within it.
func ValidateWithin(p *Partition, outer domain.Span) (*Result, error) {
	var prefix []string
	if p.Name != "" {
		prefix = []string{p.Name}
	}

	if outer.Kind() != p.Kind {
		return nil, &KindMismatchError{
			Member: p.Name,
			Want:   outer.Kind(),
			Got:    p.Kind,
		}
	}
	if err := checkKinds(p, p.Kind, prefix); err != nil {
		return nil, err
	}

	bound := outer
	if p.Bound != nil {
		b, err := p.Bound.Resolve(outer)
		if err != nil {
			return nil, &OutOfBoundsError{
				Member: p.Name,
				What:   p.Bound.String(),
				Bound:  outer,
			}
		}
		bound = b
	}

	return newValidator(p, bound, prefix).run(true)
}

// checkKinds makes sure everything in the tree shares one kind.
func checkKinds(p *Partition, kind domain.Kind, prefix []string) error {
	mismatch := func(got domain.Kind, path ...string) error {
		return &KindMismatchError{
			Member: joinPath(prefix, path...),
			Want:   kind,
			Got:    got,
		}
	}

	if p.Kind != kind {
		return mismatch(p.Kind)
	}
	if p.Bound != nil && p.Bound.Kind() != kind {
		return mismatch(p.Bound.Kind())
	}

	for _, m := range p.Members {
		switch m := m.(type) {
		case *ExactMember:
			for _, v := range m.Values {
				if v.Kind() != kind {
					return mismatch(v.Kind(), m.Name)
				}
			}
		case *RangeMember:
			for _, r := range m.Ranges {
				if r.Kind() != kind {
					return mismatch(r.Kind(), m.Name)
				}
			}
		case *NestedMember:
			if m.Partition == nil {
				return fmt.Errorf("%s: nested partition is not set", joinPath(prefix, m.Name))
			}
			if err := checkKinds(m.Partition, kind, append(slices.Clone(prefix), m.Name)); err != nil {
				return err
			}
		case *CatchAllMember:
		default:
			panic(fmt.Errorf("unsupported member type %T", m))
		}
	}

	return nil
}

type validator struct {
	p      *Partition
	bound  domain.Span
	prefix []string

	claims   *claimSet
	children map[string]*Result
	catchAll string
}

func newValidator(p *Partition, bound domain.Span, prefix []string) *validator {
	return &validator{
		p:        p,
		bound:    bound,
		prefix:   prefix,
		claims:   newClaimSet(),
		children: map[string]*Result{},
	}
}

func (v *validator) run(requireCoverage bool) (*Result, error) {
	if err := v.wildcards(); err != nil {
		return nil, err
	}
	if err := v.exacts(); err != nil {
		return nil, err
	}
	if err := v.ranges(); err != nil {
		return nil, err
	}
	if err := v.nested(); err != nil {
		return nil, err
	}

	covered := v.catchAll != ""
	if !covered {
		gap, has := firstGap(v.bound, v.claims.all())
		if has && requireCoverage {
			label := joinPath(v.prefix)
			if label == "" {
				label = "partition"
			}
			return nil, &CoverageGapError{
				Partition: label,
				Value:     gap,
				Bound:     v.bound,
			}
		}
		covered = !has
	}

	return v.result(covered), nil
}

func (v *validator) exacts() error {
	for _, m := range v.p.Members {
		em, ok := m.(*ExactMember)
		if !ok {
			continue
		}

		for _, val := range em.Values {
			if !v.bound.Contains(val) {
				return &OutOfBoundsError{
					Member: v.describe(em.Name),
					What:   val.String(),
					Bound:  v.bound,
				}
			}

			c := &claim{
				span:  domain.Single(val),
				path:  []string{em.Name},
				exact: true,
			}
			if err := v.claim(c); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *validator) ranges() error {
	for _, m := range v.p.Members {
		rm, ok := m.(*RangeMember)
		if !ok {
			continue
		}

		for _, r := range rm.Ranges {
			s, err := r.Resolve(v.bound)
			if err != nil {
				return &OutOfBoundsError{
					Member: v.describe(rm.Name),
					What:   r.String(),
					Bound:  v.bound,
				}
			}

			if err := v.claim(&claim{span: s, path: []string{rm.Name}}); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *validator) nested() error {
	for _, m := range v.p.Members {
		nm, ok := m.(*NestedMember)
		if !ok {
			continue
		}

		child := nm.Partition
		declared := child.Bound != nil
		var bound domain.Span
		if declared {
			b, err := child.Bound.Resolve(v.bound)
			if err != nil {
				return &OutOfBoundsError{
					Member: v.describe(nm.Name),
					What:   child.Bound.String(),
					Bound:  v.bound,
				}
			}
			bound = b
		} else {
			lo, hi, _ := child.Limits(v.p.Kind, v.bound.Start, v.bound.End)
			bound = domain.Span{Start: lo, End: hi}
			if !v.bound.Covers(bound) {
				return &OutOfBoundsError{
					Member: v.describe(nm.Name),
					What:   bound.String(),
					Bound:  v.bound,
				}
			}
		}

		prefix := append(slices.Clone(v.prefix), nm.Name)
		res, err := newValidator(child, bound, prefix).run(declared)
		if err != nil {
			return err
		}
		v.children[nm.Name] = res

		if !res.Covered {
			for _, c := range res.claims.all() {
				merged := &claim{
					span:  c.span,
					path:  append([]string{nm.Name}, c.path...),
					exact: c.exact,
					child: c.child,
				}
				if err := v.claim(merged); err != nil {
					return err
				}
			}
			continue
		}

		for _, c := range res.claims.all() {
			if !c.exact {
				continue
			}
			prev := v.claims.lookup(c.span.Start)
			if prev != nil && prev.exact {
				return &DuplicateValueError{
					Value:  c.span.Start,
					First:  v.describe(prev.path...),
					Second: v.describe(append([]string{nm.Name}, c.path...)...),
				}
			}
		}
		if err := v.claim(&claim{span: bound, path: []string{nm.Name}, child: res}); err != nil {
			return err
		}
	}

	return nil
}

// wildcards looks for repeated Full ranges and catch-alls before any value
// is claimed, so that a conflict with other members cannot hide them.
func (v *validator) wildcards() error {
	var fullBy string
	for _, m := range v.p.Members {
		switch m := m.(type) {
		case *RangeMember:
			for _, r := range m.Ranges {
				if !r.IsFull() {
					continue
				}
				if fullBy != "" {
					return &MultipleFullRangesError{
						First:  fullBy,
						Second: v.describe(m.Name),
					}
				}
				fullBy = v.describe(m.Name)
			}
		case *CatchAllMember:
			if v.catchAll != "" {
				return &MultipleCatchallsError{
					First:  v.describe(v.catchAll),
					Second: v.describe(m.Name),
				}
			}
			v.catchAll = m.Name
		}
	}

	return nil
}

// claim stores c and translates a collision into a proper error.
func (v *validator) claim(c *claim) error {
	prev := v.claims.insert(c)
	if prev == nil {
		return nil
	}

	if prev.exact && c.exact {
		return &DuplicateValueError{
			Value:  c.span.Start,
			First:  v.describe(prev.path...),
			Second: v.describe(c.path...),
		}
	}

	return &OverlappingRangeError{
		Span:           c.span,
		Member:         v.describe(c.path...),
		Existing:       prev.span,
		ExistingMember: v.describe(prev.path...),
	}
}

func (v *validator) result(covered bool) *Result {
	res := &Result{
		Name:     v.p.Name,
		Kind:     v.p.Kind,
		Bound:    v.bound,
		CatchAll: v.catchAll,
		Covered:  covered,
		claims:   v.claims,
		children: v.children,
	}

	var ranges []domain.Span
	for _, c := range v.claims.all() {
		if c.exact {
			res.Exacts = append(res.Exacts, c.span.Start)
			continue
		}
		ranges = append(ranges, c.span)
	}
	res.Ranges = mergeAdjacent(ranges)

	return res
}

func (v *validator) describe(path ...string) string {
	return joinPath(v.prefix, path...)
}

func joinPath(prefix []string, path ...string) string {
	return strings.Join(append(slices.Clone(prefix), path...), ".")
}
