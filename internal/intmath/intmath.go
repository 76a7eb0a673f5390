// Package intmath implements width-generic checked and saturating integer
// arithmetic over every Go integer type.
//
// Checked operations return the wrapped result together with a flag telling
// whether the mathematically exact result fits into T. Saturating operations
// pin an overflowing result to the nearest edge of T.
package intmath

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Signed reports whether T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// Bits returns the width of T in bits.
func Bits[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxOf returns the largest value of T.
func MaxOf[T constraints.Integer]() T {
	var zero T
	if Signed[T]() {
		return T(uint64(1)<<(Bits[T]()-1) - 1)
	}
	return ^zero
}

// MinOf returns the smallest value of T.
func MinOf[T constraints.Integer]() T {
	if Signed[T]() {
		return ^MaxOf[T]()
	}
	return 0
}

// minusOne is -1 for signed types and the maximum for unsigned ones.
func minusOne[T constraints.Integer]() T {
	var zero T
	return ^zero
}

// Clamp pins v into [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddChecked computes a+b.
func AddChecked[T constraints.Integer](a, b T) (T, bool) {
	c := a + b
	if Signed[T]() {
		if (b > 0 && c < a) || (b < 0 && c > a) {
			return c, false
		}
		return c, true
	}
	return c, c >= a
}

// SubChecked computes a-b.
func SubChecked[T constraints.Integer](a, b T) (T, bool) {
	c := a - b
	if Signed[T]() {
		if (b > 0 && c > a) || (b < 0 && c < a) {
			return c, false
		}
		return c, true
	}
	return c, a >= b
}

// MulChecked computes a*b.
func MulChecked[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if Signed[T]() {
		lowest := MinOf[T]()
		if (a == minusOne[T]() && b == lowest) || (b == minusOne[T]() && a == lowest) {
			return c, false
		}
	}
	return c, c/b == a
}

// DivChecked computes a/b. b must not be zero.
func DivChecked[T constraints.Integer](a, b T) (T, bool) {
	if Signed[T]() && a == MinOf[T]() && b == minusOne[T]() {
		return a, false
	}
	return a / b, true
}

// RemChecked computes a%b. b must not be zero.
//
// MinOf % -1 is 0 as the language defines it, so this never overflows.
func RemChecked[T constraints.Integer](a, b T) (T, bool) {
	if Signed[T]() && b == minusOne[T]() {
		return 0, true
	}
	return a % b, true
}

// NegChecked computes -a. Every non-zero unsigned value overflows.
func NegChecked[T constraints.Integer](a T) (T, bool) {
	if a == 0 {
		return 0, true
	}
	if !Signed[T]() {
		return -a, false
	}
	if a == MinOf[T]() {
		return a, false
	}
	return -a, true
}

// AddSaturating computes a+b pinned to the edges of T.
func AddSaturating[T constraints.Integer](a, b T) T {
	c, ok := AddChecked(a, b)
	if ok {
		return c
	}
	if Signed[T]() && b < 0 {
		return MinOf[T]()
	}
	return MaxOf[T]()
}

// SubSaturating computes a-b pinned to the edges of T.
func SubSaturating[T constraints.Integer](a, b T) T {
	c, ok := SubChecked(a, b)
	if ok {
		return c
	}
	if Signed[T]() && b < 0 {
		return MaxOf[T]()
	}
	return MinOf[T]()
}

// MulSaturating computes a*b pinned to the edges of T.
func MulSaturating[T constraints.Integer](a, b T) T {
	c, ok := MulChecked(a, b)
	if ok {
		return c
	}
	if Signed[T]() && (a < 0) != (b < 0) {
		return MinOf[T]()
	}
	return MaxOf[T]()
}

// DivSaturating computes a/b pinned to the edges of T. b must not be zero.
func DivSaturating[T constraints.Integer](a, b T) T {
	c, ok := DivChecked(a, b)
	if ok {
		return c
	}
	return MaxOf[T]()
}

// NegSaturating computes -a pinned to the edges of T.
func NegSaturating[T constraints.Integer](a T) T {
	c, ok := NegChecked(a)
	if ok {
		return c
	}
	if Signed[T]() {
		return MaxOf[T]()
	}
	return MinOf[T]()
}
