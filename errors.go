package clamp

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/sirkon/clamp/rules"
)

var (
	// ErrTooSmall is returned for values below the lower limit.
	ErrTooSmall = errors.New("value is too small")

	// ErrTooLarge is returned for values above the upper limit.
	ErrTooLarge = errors.New("value is too large")

	// ErrOutOfBounds is returned for values between two spans of a multi-range
	// domain.
	ErrOutOfBounds = errors.New("value is out of bounds")

	// ErrInvalidLimits is returned for limits which cannot hold any value.
	ErrInvalidLimits = errors.New("invalid limits")

	// ErrInvalidDefault is returned for a default value outside of limits.
	ErrInvalidDefault = errors.New("invalid default value")

	// ErrOverflow is the cause of arithmetic panics on primitive overflow.
	ErrOverflow = errors.New("integer overflow")

	// ErrDivisionByZero is the cause of arithmetic panics on division by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrGuardResolved is the cause of panics on a committed or discarded guard use.
	ErrGuardResolved = errors.New("guard is already resolved")
)

// TooSmallError reports a value below the lower limit.
type TooSmallError[T constraints.Integer] struct {
	Value T
	Min   T
}

func (e *TooSmallError[T]) Error() string {
	return fmt.Sprintf("%d is less than %d", e.Value, e.Min)
}

func (e *TooSmallError[T]) Unwrap() error    { return ErrTooSmall }
func (e *TooSmallError[T]) Rule() rules.Rule { return rules.OutOfBounds() }

// TooLargeError reports a value above the upper limit.
type TooLargeError[T constraints.Integer] struct {
	Value T
	Max   T
}

func (e *TooLargeError[T]) Error() string {
	return fmt.Sprintf("%d is greater than %d", e.Value, e.Max)
}

func (e *TooLargeError[T]) Unwrap() error    { return ErrTooLarge }
func (e *TooLargeError[T]) Rule() rules.Rule { return rules.OutOfBounds() }

// OutOfBoundsError reports a value falling between two adjacent spans.
type OutOfBoundsError[T constraints.Integer] struct {
	Value T
	Left  T
	Right T
}

func (e *OutOfBoundsError[T]) Error() string {
	return fmt.Sprintf("%d falls between valid values %d and %d", e.Value, e.Left, e.Right)
}

func (e *OutOfBoundsError[T]) Unwrap() error    { return ErrOutOfBounds }
func (e *OutOfBoundsError[T]) Rule() rules.Rule { return rules.OutOfBounds() }

// InvertedLimitsError reports a span whose lower limit exceeds its upper one.
type InvertedLimitsError[T constraints.Integer] struct {
	Lower T
	Upper T
}

func (e *InvertedLimitsError[T]) Error() string {
	return fmt.Sprintf("lower limit %d exceeds upper limit %d", e.Lower, e.Upper)
}

func (e *InvertedLimitsError[T]) Unwrap() error    { return ErrInvalidLimits }
func (e *InvertedLimitsError[T]) Rule() rules.Rule { return rules.InvertedBounds() }

// DefaultError reports a default value rejected by limits.
type DefaultError[T constraints.Integer] struct {
	Value T
	Err   error
}

func (e *DefaultError[T]) Error() string {
	return fmt.Sprintf("default value %d: %s", e.Value, e.Err)
}

func (e *DefaultError[T]) Unwrap() []error { return []error{ErrInvalidDefault, e.Err} }

// ArithmeticError is the value arithmetic panics with.
type ArithmeticError[T constraints.Integer] struct {
	Op    Op
	Left  T
	Right T

	// Result is the computed value when the operation itself succeeded.
	Result T

	// Err is the cause: ErrOverflow, ErrDivisionByZero or an error
	// rejecting Result.
	Err error
}

func (e *ArithmeticError[T]) Error() string {
	var expr string
	if e.Op.Unary() {
		expr = fmt.Sprintf("%s(%d)", e.Op, e.Left)
	} else {
		expr = fmt.Sprintf("%d %s %d", e.Left, e.Op, e.Right)
	}

	switch {
	case errors.Is(e.Err, ErrOverflow):
		var zero T
		return fmt.Sprintf("%s overflows %T", expr, zero)
	case errors.Is(e.Err, ErrDivisionByZero):
		return fmt.Sprintf("%s: %s", expr, e.Err)
	default:
		return fmt.Sprintf("%s = %d: %s", expr, e.Result, e.Err)
	}
}

func (e *ArithmeticError[T]) Unwrap() error { return e.Err }

// GuardReuseError reports an operation on a resolved guard.
type GuardReuseError struct {
	State GuardState
}

func (e *GuardReuseError) Error() string {
	return fmt.Sprintf("guard is %s", e.State)
}

func (e *GuardReuseError) Unwrap() error    { return ErrGuardResolved }
func (e *GuardReuseError) Rule() rules.Rule { return rules.GuardReuse() }
