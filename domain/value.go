package domain

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"

	"github.com/sirkon/clamp/internal/intmath"
)

// Value is an integer of a fixed kind.
//
// The magnitude is kept in 256-bit two's complement, so a single signed
// comparison orders values of every kind. The zero Value has an invalid kind
// and is only good for being overwritten.
type Value struct {
	kind Kind
	raw  uint256.Int
}

// Int returns a value of kind k holding v.
func Int(k Kind, v int64) (Value, error) {
	return newValue(k, fromInt64(v), func() string { return fmt.Sprint(v) })
}

// Uint returns a value of kind k holding v.
func Uint(k Kind, v uint64) (Value, error) {
	var z uint256.Int
	z.SetUint64(v)
	return newValue(k, z, func() string { return fmt.Sprint(v) })
}

// MustInt is like Int but panics on values not fitting into k.
func MustInt(k Kind, v int64) Value {
	res, err := Int(k, v)
	if err != nil {
		panic(err)
	}
	return res
}

// MustUint is like Uint but panics on values not fitting into k.
func MustUint(k Kind, v uint64) Value {
	res, err := Uint(k, v)
	if err != nil {
		panic(err)
	}
	return res
}

// FromBig returns a value of kind k holding b.
func FromBig(k Kind, b *big.Int) (Value, error) {
	abs := new(big.Int).Abs(b)
	z, overflow := uint256.FromBig(abs)
	if overflow || z.Sign() < 0 {
		return Value{}, &FitError{Kind: k, Number: b.String()}
	}
	if b.Sign() < 0 {
		z.Neg(z)
	}

	return newValue(k, *z, b.String)
}

// Parse reads a decimal number of kind k. A leading minus and underscore digit
// separators are accepted.
func Parse(k Kind, s string) (Value, error) {
	digits := strings.ReplaceAll(s, "_", "")
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var z uint256.Int
	if err := z.SetFromDecimal(digits); err != nil {
		return Value{}, fmt.Errorf("parse %s value %q: %w", k, s, err)
	}
	if z.Sign() < 0 {
		// Beyond any supported kind and would read as negative otherwise.
		return Value{}, &FitError{Kind: k, Number: s}
	}
	if neg {
		z.Neg(&z)
	}

	return newValue(k, z, func() string { return s })
}

// MustParse is like Parse but panics on errors.
func MustParse(k Kind, s string) Value {
	res, err := Parse(k, s)
	if err != nil {
		panic(err)
	}
	return res
}

// Of returns the value of v with the kind matching T.
func Of[T constraints.Integer](v T) Value {
	k := KindOf[T]()
	if intmath.Signed[T]() {
		return Value{kind: k, raw: fromInt64(int64(v))}
	}

	var z uint256.Int
	z.SetUint64(uint64(v))
	return Value{kind: k, raw: z}
}

// As converts the value into T. It reports false when the value does not fit.
func As[T constraints.Integer](v Value) (T, bool) {
	if v.raw.Sign() < 0 {
		if !intmath.Signed[T]() {
			return 0, false
		}
		i, ok := v.Int64()
		if !ok || i < int64(intmath.MinOf[T]()) {
			return 0, false
		}
		return T(i), true
	}

	u, ok := v.Uint64()
	if !ok || u > uint64(intmath.MaxOf[T]()) {
		return 0, false
	}
	return T(u), true
}

func newValue(k Kind, z uint256.Int, repr func() string) (Value, error) {
	if !k.Valid() {
		return Value{}, fmt.Errorf("value %s of %s kind", repr(), k)
	}

	lo, hi := kindMin(k), kindMax(k)
	if z.Slt(&lo) || z.Sgt(&hi) {
		return Value{}, &FitError{Kind: k, Number: repr()}
	}

	return Value{kind: k, raw: z}, nil
}

func fromInt64(v int64) uint256.Int {
	var z uint256.Int
	if v >= 0 {
		z.SetUint64(uint64(v))
		return z
	}

	// -MinInt64 wraps onto itself, and its uint64 image is exactly 1<<63.
	z.SetUint64(uint64(-v))
	z.Neg(&z)
	return z
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Cmp returns -1, 0 or 1 when v is less than, equal to or greater than o.
// Both values must share a kind.
func (v Value) Cmp(o Value) int {
	v.mustSameKind(o)
	switch {
	case v.raw.Slt(&o.raw):
		return -1
	case v.raw.Sgt(&o.raw):
		return 1
	default:
		return 0
	}
}

// Less reports whether v < o.
func (v Value) Less(o Value) bool {
	return v.Cmp(o) < 0
}

// Equal reports whether v == o.
func (v Value) Equal(o Value) bool {
	return v.Cmp(o) == 0
}

// Succ returns v+1. It reports false when v is the maximum of its kind.
func (v Value) Succ() (Value, bool) {
	hi := kindMax(v.kind)
	if v.raw.Eq(&hi) {
		return v, false
	}

	res := v
	res.raw.AddUint64(&v.raw, 1)
	return res, true
}

// Pred returns v-1. It reports false when v is the minimum of its kind.
func (v Value) Pred() (Value, bool) {
	lo := kindMin(v.kind)
	if v.raw.Eq(&lo) {
		return v, false
	}

	res := v
	res.raw.SubUint64(&v.raw, 1)
	return res, true
}

// IsKindMin reports whether v is the smallest value of its kind.
func (v Value) IsKindMin() bool {
	lo := kindMin(v.kind)
	return v.raw.Eq(&lo)
}

// IsKindMax reports whether v is the largest value of its kind.
func (v Value) IsKindMax() bool {
	hi := kindMax(v.kind)
	return v.raw.Eq(&hi)
}

// Negative reports whether v < 0.
func (v Value) Negative() bool {
	return v.raw.Sign() < 0
}

// Int64 returns v as int64 if it fits.
func (v Value) Int64() (int64, bool) {
	if v.raw.Sign() >= 0 {
		if !v.raw.IsUint64() || v.raw.Uint64() > math.MaxInt64 {
			return 0, false
		}
		return int64(v.raw.Uint64()), true
	}

	var abs uint256.Int
	abs.Neg(&v.raw)
	if !abs.IsUint64() || abs.Uint64() > 1<<63 {
		return 0, false
	}
	return -int64(abs.Uint64()), true
}

// Uint64 returns v as uint64 if it fits.
func (v Value) Uint64() (uint64, bool) {
	if v.raw.Sign() < 0 || !v.raw.IsUint64() {
		return 0, false
	}
	return v.raw.Uint64(), true
}

// Big returns v as a big integer.
func (v Value) Big() *big.Int {
	if v.raw.Sign() >= 0 {
		return v.raw.ToBig()
	}

	var abs uint256.Int
	abs.Neg(&v.raw)
	res := abs.ToBig()
	return res.Neg(res)
}

// String returns the decimal representation of v.
func (v Value) String() string {
	if v.raw.Sign() >= 0 {
		return v.raw.Dec()
	}

	var abs uint256.Int
	abs.Neg(&v.raw)
	return "-" + abs.Dec()
}

// Boxcar returns the decimal representation of v with digits grouped by three
// with underscores, like 18_446_744_073_709_551_615.
func (v Value) Boxcar() string {
	if v.raw.Sign() >= 0 {
		return v.raw.PrettyDec('_')
	}

	var abs uint256.Int
	abs.Neg(&v.raw)
	return "-" + abs.PrettyDec('_')
}

func (v Value) mustSameKind(o Value) {
	if v.kind != o.kind {
		panic(fmt.Sprintf("domain: %s value %s compared with %s value %s", v.kind, v, o.kind, o))
	}
}

// Min returns the smaller of a and b.
func Min(a, b Value) Value {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the greater of a and b.
func Max(a, b Value) Value {
	if a.Less(b) {
		return b
	}
	return a
}
