package partition

import (
	"github.com/sirkon/clamp/domain"
)

// Partition is an ordered collection of members sharing one integer kind.
type Partition struct {
	Name string
	Kind domain.Kind

	// Bound is the declared outer bound. A nil Bound means the kind's whole span
	// for a top-level partition and the inherited bound for a nested one.
	Bound *domain.Range

	Members []Member
}

// New is [Partition] constructor.
func New(name string, kind domain.Kind, members ...Member) *Partition {
	return &Partition{
		Name:    name,
		Kind:    kind,
		Members: members,
	}
}

// WithBound sets the declared bound and returns the partition itself.
func (p *Partition) WithBound(r domain.Range) *Partition {
	p.Bound = &r
	return p
}

// Limits returns the tightest span the partition claims within the inherited
// bound: its declared bound if there is one, otherwise the hull of its members'
// limits, otherwise the inherited bound itself.
func (p *Partition) Limits(kind domain.Kind, inheritedLower, inheritedUpper domain.Value) (lower, upper domain.Value, ok bool) {
	outer := domain.Span{Start: inheritedLower, End: inheritedUpper}
	if p.Bound != nil {
		s, valid := p.Bound.Limits(outer)
		return s.Start, s.End, valid
	}

	for _, m := range p.Members {
		lo, hi, has := m.Limits(kind, inheritedLower, inheritedUpper)
		if !has {
			continue
		}
		if !ok {
			lower, upper, ok = lo, hi, true
			continue
		}
		lower = domain.Min(lower, lo)
		upper = domain.Max(upper, hi)
	}
	if !ok {
		return inheritedLower, inheritedUpper, true
	}

	return lower, upper, true
}

// Validate is a shortcut for [Validate].
func (p *Partition) Validate() (*Result, error) {
	return Validate(p)
}
