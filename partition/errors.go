package partition

import (
	"errors"
	"fmt"

	"github.com/sirkon/clamp/domain"
	"github.com/sirkon/clamp/rules"
)

var (
	// ErrDuplicateValue is returned when two exact members claim one value.
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrOverlappingRange is returned when a range or a nested partition
	// claims an already claimed value.
	ErrOverlappingRange = errors.New("overlapping range")

	// ErrMultipleFullRanges is returned for a second `..` wildcard.
	ErrMultipleFullRanges = errors.New("multiple full ranges")

	// ErrMultipleCatchalls is returned for a second catch-all member.
	ErrMultipleCatchalls = errors.New("multiple catch-alls")

	// ErrCoverageGap is returned when a partition required to cover its bound
	// leaves a value unclaimed.
	ErrCoverageGap = errors.New("coverage gap")

	// ErrOutOfBounds is returned when a member claims values outside the bound.
	ErrOutOfBounds = errors.New("out of bounds")
)

// DuplicateValueError reports a value claimed by two exact members.
type DuplicateValueError struct {
	Value  domain.Value
	First  string
	Second string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("value %s of %s is already claimed by %s", e.Value, e.Second, e.First)
}

func (e *DuplicateValueError) Unwrap() error    { return ErrDuplicateValue }
func (e *DuplicateValueError) Rule() rules.Rule { return rules.DuplicateValue() }

// OverlappingRangeError reports a claim colliding with an existing one.
type OverlappingRangeError struct {
	Span           domain.Span
	Member         string
	Existing       domain.Span
	ExistingMember string
}

func (e *OverlappingRangeError) Error() string {
	return fmt.Sprintf(
		"%s of %s overlaps with %s of %s",
		e.Span, e.Member,
		e.Existing, e.ExistingMember,
	)
}

func (e *OverlappingRangeError) Unwrap() error    { return ErrOverlappingRange }
func (e *OverlappingRangeError) Rule() rules.Rule { return rules.OverlappingRange() }

// MultipleFullRangesError reports the second `..` wildcard of a partition.
type MultipleFullRangesError struct {
	First  string
	Second string
}

func (e *MultipleFullRangesError) Error() string {
	return fmt.Sprintf("full range of %s repeats the one of %s", e.Second, e.First)
}

func (e *MultipleFullRangesError) Unwrap() error    { return ErrMultipleFullRanges }
func (e *MultipleFullRangesError) Rule() rules.Rule { return rules.MultipleFullRanges() }

// MultipleCatchallsError reports the second catch-all of a partition.
type MultipleCatchallsError struct {
	First  string
	Second string
}

func (e *MultipleCatchallsError) Error() string {
	return fmt.Sprintf("catch-all %s repeats catch-all %s", e.Second, e.First)
}

func (e *MultipleCatchallsError) Unwrap() error    { return ErrMultipleCatchalls }
func (e *MultipleCatchallsError) Rule() rules.Rule { return rules.MultipleCatchalls() }

// CoverageGapError reports the first value of a bound nobody claims.
type CoverageGapError struct {
	Partition string
	Value     domain.Value
	Bound     domain.Span
}

func (e *CoverageGapError) Error() string {
	return fmt.Sprintf("%s does not cover %s: value %s is not claimed", e.Partition, e.Bound, e.Value)
}

func (e *CoverageGapError) Unwrap() error    { return ErrCoverageGap }
func (e *CoverageGapError) Rule() rules.Rule { return rules.CoverageGap() }

// OutOfBoundsError reports a value, range or nested bound outside its bound.
type OutOfBoundsError struct {
	Member string
	// What is a textual representation of the offending value or range.
	What  string
	Bound domain.Span
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s of %s is outside of %s", e.What, e.Member, e.Bound)
}

func (e *OutOfBoundsError) Unwrap() error    { return ErrOutOfBounds }
func (e *OutOfBoundsError) Rule() rules.Rule { return rules.OutOfBounds() }

// KindMismatchError reports a member whose values are of a foreign kind.
type KindMismatchError struct {
	Member string
	Want   domain.Kind
	Got    domain.Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s value, got %s", e.Member, e.Want, e.Got)
}

func (e *KindMismatchError) Unwrap() error    { return domain.ErrKindMismatch }
func (e *KindMismatchError) Rule() rules.Rule { return rules.KindMismatch() }
