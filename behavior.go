package clamp

import (
	"golang.org/x/exp/constraints"

	"github.com/sirkon/clamp/internal/intmath"
)

// Behavior defines what arithmetic does with results falling out of [min, max].
type Behavior[T constraints.Integer] interface {
	Add(l, r, min, max T) T
	Sub(l, r, min, max T) T
	Mul(l, r, min, max T) T
	Div(l, r, min, max T) T
	Rem(l, r, min, max T) T
	And(l, r, min, max T) T
	Or(l, r, min, max T) T
	Xor(l, r, min, max T) T
	Neg(v, min, max T) T
	Not(v, min, max T) T

	// Snap resolves a result landing between valid values left and right of
	// a multi-range domain. It reports false if the result must be rejected.
	Snap(v, left, right T) (T, bool)
}

var (
	_ Behavior[int] = Panicking[int]{}
	_ Behavior[int] = Saturating[int]{}
)

// Panicking treats out of range results as programming errors and panics
// with [ArithmeticError].
type Panicking[T constraints.Integer] struct{}

// Add implements [Behavior].
func (Panicking[T]) Add(l, r, min, max T) T {
	res, ok := intmath.AddChecked(l, r)
	return checked(OpAdd, l, r, res, ok, min, max)
}

// Sub implements [Behavior].
func (Panicking[T]) Sub(l, r, min, max T) T {
	res, ok := intmath.SubChecked(l, r)
	return checked(OpSub, l, r, res, ok, min, max)
}

// Mul implements [Behavior].
func (Panicking[T]) Mul(l, r, min, max T) T {
	res, ok := intmath.MulChecked(l, r)
	return checked(OpMul, l, r, res, ok, min, max)
}

// Div implements [Behavior].
func (Panicking[T]) Div(l, r, min, max T) T {
	nonZero(OpDiv, l, r)
	res, ok := intmath.DivChecked(l, r)
	return checked(OpDiv, l, r, res, ok, min, max)
}

// Rem implements [Behavior].
func (Panicking[T]) Rem(l, r, min, max T) T {
	nonZero(OpRem, l, r)
	res, ok := intmath.RemChecked(l, r)
	return checked(OpRem, l, r, res, ok, min, max)
}

// And implements [Behavior].
func (Panicking[T]) And(l, r, min, max T) T {
	return checked(OpAnd, l, r, l&r, true, min, max)
}

// Or implements [Behavior].
func (Panicking[T]) Or(l, r, min, max T) T {
	return checked(OpOr, l, r, l|r, true, min, max)
}

// Xor implements [Behavior].
func (Panicking[T]) Xor(l, r, min, max T) T {
	return checked(OpXor, l, r, l^r, true, min, max)
}

// Neg implements [Behavior].
func (Panicking[T]) Neg(v, min, max T) T {
	res, ok := intmath.NegChecked(v)
	return checked(OpNeg, v, 0, res, ok, min, max)
}

// Not implements [Behavior].
func (Panicking[T]) Not(v, min, max T) T {
	return checked(OpNot, v, 0, ^v, true, min, max)
}

// Snap implements [Behavior]. It rejects any result in a gap.
func (Panicking[T]) Snap(v, _, _ T) (T, bool) {
	return v, false
}

func checked[T constraints.Integer](op Op, l, r, res T, ok bool, min, max T) T {
	e := &ArithmeticError[T]{
		Op:     op,
		Left:   l,
		Right:  r,
		Result: res,
	}

	switch {
	case !ok:
		e.Err = ErrOverflow
	case res < min:
		e.Err = &TooSmallError[T]{Value: res, Min: min}
	case res > max:
		e.Err = &TooLargeError[T]{Value: res, Max: max}
	default:
		return res
	}

	panic(e)
}

func nonZero[T constraints.Integer](op Op, l, r T) {
	if r != 0 {
		return
	}

	panic(&ArithmeticError[T]{
		Op:    op,
		Left:  l,
		Right: r,
		Err:   ErrDivisionByZero,
	})
}

// Saturating pins out of range results to the nearest limit. Division by
// zero still panics.
type Saturating[T constraints.Integer] struct{}

// Add implements [Behavior].
func (Saturating[T]) Add(l, r, min, max T) T {
	return intmath.Clamp(intmath.AddSaturating(l, r), min, max)
}

// Sub implements [Behavior].
func (Saturating[T]) Sub(l, r, min, max T) T {
	return intmath.Clamp(intmath.SubSaturating(l, r), min, max)
}

// Mul implements [Behavior].
func (Saturating[T]) Mul(l, r, min, max T) T {
	return intmath.Clamp(intmath.MulSaturating(l, r), min, max)
}

// Div implements [Behavior].
func (Saturating[T]) Div(l, r, min, max T) T {
	nonZero(OpDiv, l, r)
	return intmath.Clamp(intmath.DivSaturating(l, r), min, max)
}

// Rem implements [Behavior].
func (Saturating[T]) Rem(l, r, min, max T) T {
	nonZero(OpRem, l, r)
	res, _ := intmath.RemChecked(l, r)
	return intmath.Clamp(res, min, max)
}

// And implements [Behavior].
func (Saturating[T]) And(l, r, min, max T) T {
	return intmath.Clamp(l&r, min, max)
}

// Or implements [Behavior].
func (Saturating[T]) Or(l, r, min, max T) T {
	return intmath.Clamp(l|r, min, max)
}

// Xor implements [Behavior].
func (Saturating[T]) Xor(l, r, min, max T) T {
	return intmath.Clamp(l^r, min, max)
}

// Neg implements [Behavior].
func (Saturating[T]) Neg(v, min, max T) T {
	return intmath.Clamp(intmath.NegSaturating(v), min, max)
}

// Not implements [Behavior].
func (Saturating[T]) Not(v, min, max T) T {
	return intmath.Clamp(^v, min, max)
}

// Snap implements [Behavior]. It picks the nearest valid value, the lower
// one on a tie.
func (Saturating[T]) Snap(v, left, right T) (T, bool) {
	// Differences are positive and fit into 64 bits even when T is signed.
	toLeft := uint64(v) - uint64(left)
	toRight := uint64(right) - uint64(v)
	if toLeft <= toRight {
		return left, true
	}
	return right, true
}
