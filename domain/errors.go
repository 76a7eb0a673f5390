package domain

import (
	"errors"
	"fmt"

	"github.com/sirkon/clamp/rules"
)

var (
	// ErrNotRepresentable is returned when a number does not fit into a kind.
	ErrNotRepresentable = errors.New("value is not representable")

	// ErrInverted is returned when a lower bound exceeds its upper bound.
	ErrInverted = errors.New("inverted bounds")

	// ErrEmptyRange is returned for a half-open range containing no values.
	ErrEmptyRange = errors.New("empty range")

	// ErrOutside is returned when a range cannot be resolved within a bound.
	ErrOutside = errors.New("outside of bound")

	// ErrKindMismatch is returned when values of different kinds meet.
	ErrKindMismatch = errors.New("kind mismatch")
)

// FitError reports a number that is not representable by a kind.
type FitError struct {
	Kind   Kind
	Number string
}

func (e *FitError) Error() string {
	return fmt.Sprintf("%s is not representable as %s", e.Number, e.Kind)
}

func (e *FitError) Unwrap() error    { return ErrNotRepresentable }
func (e *FitError) Rule() rules.Rule { return rules.OutOfBounds() }

// InvertedError reports a span or range whose start exceeds its end.
type InvertedError struct {
	Start Value
	End   Value
}

func (e *InvertedError) Error() string {
	return fmt.Sprintf("start %s exceeds end %s", e.Start, e.End)
}

func (e *InvertedError) Unwrap() error    { return ErrInverted }
func (e *InvertedError) Rule() rules.Rule { return rules.InvertedBounds() }

// EmptyRangeError reports a half-open range with no values in it.
type EmptyRangeError struct {
	Start Value
	End   Value
	// Unbounded is set for `..End` ranges, which have no start.
	Unbounded bool
}

func (e *EmptyRangeError) Error() string {
	if e.Unbounded {
		return fmt.Sprintf("range ..%s is empty", e.End)
	}
	return fmt.Sprintf("range %s..%s is empty", e.Start, e.End)
}

func (e *EmptyRangeError) Unwrap() error    { return ErrEmptyRange }
func (e *EmptyRangeError) Rule() rules.Rule { return rules.EmptyRange() }

// OutsideError reports a range which does not fit into an outer bound.
type OutsideError struct {
	Range Range
	Bound Span
}

func (e *OutsideError) Error() string {
	return fmt.Sprintf("range %s is outside of %s", e.Range, e.Bound)
}

func (e *OutsideError) Unwrap() error    { return ErrOutside }
func (e *OutsideError) Rule() rules.Rule { return rules.OutOfBounds() }

// KindMismatchError reports a value of an unexpected kind.
type KindMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("expected %s value, got %s", e.Want, e.Got)
}

func (e *KindMismatchError) Unwrap() error    { return ErrKindMismatch }
func (e *KindMismatchError) Rule() rules.Rule { return rules.KindMismatch() }
