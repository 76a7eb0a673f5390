package domain

import (
	"fmt"
	"strings"
)

// Range is a declared range of values. Either bound may be absent: a missing
// bound is filled from the outer bound the range is resolved against.
//
// Exclusive upper bounds are normalised to inclusive ones at construction, so
// a Range never needs to know how it was written.
type Range struct {
	kind     Kind
	start    Value
	end      Value
	hasStart bool
	hasEnd   bool
}

// Full returns the `..` range covering whatever bound it is resolved against.
func Full(k Kind) Range {
	return Range{kind: k}
}

// From returns the `start..` range.
func From(start Value) Range {
	return Range{kind: start.Kind(), start: start, hasStart: true}
}

// To returns the `..=end` range.
func To(end Value) Range {
	return Range{kind: end.Kind(), end: end, hasEnd: true}
}

// ToExclusive returns the `..end` range.
func ToExclusive(end Value) (Range, error) {
	last, ok := end.Pred()
	if !ok {
		return Range{}, &EmptyRangeError{End: end, Unbounded: true}
	}

	return To(last), nil
}

// Inclusive returns the `start..=end` range.
func Inclusive(start, end Value) (Range, error) {
	s, err := NewSpan(start, end)
	if err != nil {
		return Range{}, err
	}

	return s.Range(), nil
}

// HalfOpen returns the `start..end` range.
func HalfOpen(start, end Value) (Range, error) {
	if start.Kind() != end.Kind() {
		return Range{}, &KindMismatchError{Want: start.Kind(), Got: end.Kind()}
	}
	if !start.Less(end) {
		return Range{}, &EmptyRangeError{Start: start, End: end}
	}

	last, _ := end.Pred()
	return Span{Start: start, End: last}.Range(), nil
}

// MustRange unwraps the result of a range constructor, panicking on errors.
func MustRange(r Range, err error) Range {
	if err != nil {
		panic(err)
	}
	return r
}

// Kind returns the kind of the range.
func (r Range) Kind() Kind {
	return r.kind
}

// IsFull reports whether the range carries no bounds at all.
func (r Range) IsFull() bool {
	return !r.hasStart && !r.hasEnd
}

// Start returns the declared lower bound, if any.
func (r Range) Start() (Value, bool) {
	return r.start, r.hasStart
}

// End returns the declared inclusive upper bound, if any.
func (r Range) End() (Value, bool) {
	return r.end, r.hasEnd
}

// Limits fills missing bounds from outer without checking the declared ones
// against it. It reports false if the result would be inverted.
func (r Range) Limits(outer Span) (Span, bool) {
	s := outer
	if r.hasStart {
		s.Start = r.start
	}
	if r.hasEnd {
		s.End = r.end
	}
	if s.End.Less(s.Start) {
		return Span{}, false
	}

	return s, true
}

// Resolve turns the range into a span lying within outer.
func (r Range) Resolve(outer Span) (Span, error) {
	if r.kind != outer.Kind() {
		return Span{}, &KindMismatchError{Want: outer.Kind(), Got: r.kind}
	}

	s, ok := r.Limits(outer)
	if !ok || !outer.Covers(s) {
		return Span{}, &OutsideError{Range: r, Bound: outer}
	}

	return s, nil
}

func (r Range) String() string {
	switch {
	case r.hasStart && r.hasEnd:
		return fmt.Sprintf("%s..=%s", r.start, r.end)
	case r.hasStart:
		return fmt.Sprintf("%s..", r.start)
	case r.hasEnd:
		return fmt.Sprintf("..=%s", r.end)
	default:
		return ".."
	}
}

// ParseRange reads a range written as `..`, `a..`, `..=b`, `..b`, `a..=b`,
// `a..b` or just `a` for a single value.
func ParseRange(k Kind, s string) (Range, error) {
	s = strings.TrimSpace(s)
	head, tail, found := strings.Cut(s, "..")
	if !found {
		v, err := Parse(k, s)
		if err != nil {
			return Range{}, err
		}
		return Single(v).Range(), nil
	}

	inclusive := strings.HasPrefix(tail, "=")
	tail = strings.TrimPrefix(tail, "=")
	head = strings.TrimSpace(head)
	tail = strings.TrimSpace(tail)

	var start, end Value
	var err error
	if head != "" {
		if start, err = Parse(k, head); err != nil {
			return Range{}, fmt.Errorf("parse range %q start: %w", s, err)
		}
	}
	if tail != "" {
		if end, err = Parse(k, tail); err != nil {
			return Range{}, fmt.Errorf("parse range %q end: %w", s, err)
		}
	} else if inclusive {
		return Range{}, fmt.Errorf("parse range %q: missing inclusive end", s)
	}

	switch {
	case head == "" && tail == "":
		return Full(k), nil
	case tail == "":
		return From(start), nil
	case head == "" && inclusive:
		return To(end), nil
	case head == "":
		return ToExclusive(end)
	case inclusive:
		return Inclusive(start, end)
	default:
		return HalfOpen(start, end)
	}
}
