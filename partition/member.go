package partition

import (
	"github.com/sirkon/clamp/domain"
)

// Member is the base interface implemented by all partition members.
type Member interface {
	// Limits returns the tightest [lower, upper] the member claims once its
	// open bounds are filled from the inherited ones. It reports false for
	// members claiming nothing on their own.
	Limits(kind domain.Kind, inheritedLower, inheritedUpper domain.Value) (lower, upper domain.Value, ok bool)

	memberName() string
}

// ExactMember claims individual values.
type ExactMember struct {
	Name   string
	Values []domain.Value
}

// RangeMember claims one or more ranges.
type RangeMember struct {
	Name   string
	Ranges []domain.Range
}

// NestedMember claims what its own partition claims.
type NestedMember struct {
	Name      string
	Partition *Partition
}

// CatchAllMember absorbs every value not claimed by a sibling.
type CatchAllMember struct {
	Name string
}

// Exact is [ExactMember] constructor.
func Exact(name string, values ...domain.Value) *ExactMember {
	return &ExactMember{Name: name, Values: values}
}

// Ranges is [RangeMember] constructor.
func Ranges(name string, ranges ...domain.Range) *RangeMember {
	return &RangeMember{Name: name, Ranges: ranges}
}

// Nested is [NestedMember] constructor.
func Nested(name string, p *Partition) *NestedMember {
	return &NestedMember{Name: name, Partition: p}
}

// CatchAll is [CatchAllMember] constructor.
func CatchAll(name string) *CatchAllMember {
	return &CatchAllMember{Name: name}
}

func (m *ExactMember) memberName() string    { return m.Name }
func (m *RangeMember) memberName() string    { return m.Name }
func (m *NestedMember) memberName() string   { return m.Name }
func (m *CatchAllMember) memberName() string { return m.Name }

// Limits implements [Member].
func (m *ExactMember) Limits(_ domain.Kind, _, _ domain.Value) (lower, upper domain.Value, ok bool) {
	for i, v := range m.Values {
		if i == 0 {
			lower, upper = v, v
			continue
		}
		lower = domain.Min(lower, v)
		upper = domain.Max(upper, v)
	}

	return lower, upper, len(m.Values) > 0
}

// Limits implements [Member].
func (m *RangeMember) Limits(_ domain.Kind, inheritedLower, inheritedUpper domain.Value) (lower, upper domain.Value, ok bool) {
	outer := domain.Span{Start: inheritedLower, End: inheritedUpper}
	for _, r := range m.Ranges {
		s, valid := r.Limits(outer)
		if !valid {
			continue
		}
		if !ok {
			lower, upper, ok = s.Start, s.End, true
			continue
		}
		lower = domain.Min(lower, s.Start)
		upper = domain.Max(upper, s.End)
	}

	return lower, upper, ok
}

// Limits implements [Member].
func (m *NestedMember) Limits(kind domain.Kind, inheritedLower, inheritedUpper domain.Value) (lower, upper domain.Value, ok bool) {
	return m.Partition.Limits(kind, inheritedLower, inheritedUpper)
}

// Limits implements [Member]. A catch-all claims nothing by itself.
func (m *CatchAllMember) Limits(domain.Kind, domain.Value, domain.Value) (lower, upper domain.Value, ok bool) {
	return lower, upper, false
}
