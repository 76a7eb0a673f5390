package domain

import (
	"fmt"
	"iter"
)

// Span is a resolved inclusive range [Start, End].
//
// All methods except WellFormed require a well-formed span.
type Span struct {
	Start Value
	End   Value
}

// NewSpan returns a well-formed span or an error explaining why it cannot be.
func NewSpan(start, end Value) (Span, error) {
	if start.Kind() != end.Kind() {
		return Span{}, &KindMismatchError{Want: start.Kind(), Got: end.Kind()}
	}
	if end.Less(start) {
		return Span{}, &InvertedError{Start: start, End: end}
	}

	return Span{Start: start, End: end}, nil
}

// MustSpan is like NewSpan but panics on errors.
func MustSpan(start, end Value) Span {
	s, err := NewSpan(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// Single returns the span holding v only.
func Single(v Value) Span {
	return Span{Start: v, End: v}
}

// WellFormed returns true if both ends share a kind and Start <= End.
func (s Span) WellFormed() bool {
	return s.Start.Kind() == s.End.Kind() && s.Start.Kind().Valid() && !s.End.Less(s.Start)
}

// Kind returns the kind of the span values.
func (s Span) Kind() Kind {
	return s.Start.Kind()
}

// IsSingle reports whether the span holds exactly one value.
func (s Span) IsSingle() bool {
	return s.Start.Equal(s.End)
}

// Contains returns true if v lies within the span.
func (s Span) Contains(v Value) bool {
	return !v.Less(s.Start) && !s.End.Less(v)
}

// Overlaps returns true if s and o share at least one value.
func (s Span) Overlaps(o Span) bool {
	return !o.End.Less(s.Start) && !s.End.Less(o.Start)
}

// Covers returns true if o lies entirely within s.
func (s Span) Covers(o Span) bool {
	return !o.Start.Less(s.Start) && !s.End.Less(o.End)
}

// Adjacent returns true if s ends right before o starts or vice versa.
func (s Span) Adjacent(o Span) bool {
	if next, ok := s.End.Succ(); ok && next.Equal(o.Start) {
		return true
	}
	if next, ok := o.End.Succ(); ok && next.Equal(s.Start) {
		return true
	}
	return false
}

// Range returns the inclusive range matching the span.
func (s Span) Range() Range {
	return Range{start: s.Start, end: s.End, hasStart: true, hasEnd: true, kind: s.Kind()}
}

// All iterates over every value of the span in ascending order.
func (s Span) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		v := s.Start
		for {
			if !yield(v) {
				return
			}
			if v.Equal(s.End) {
				return
			}
			v, _ = v.Succ()
		}
	}
}

func (s Span) String() string {
	if s.IsSingle() {
		return s.Start.String()
	}
	return fmt.Sprintf("%s..=%s", s.Start, s.End)
}
