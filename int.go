package clamp

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/sirkon/clamp/internal/intmath"
)

// Domain binds limits to a type. Implementations are meant to be empty
// structs with a value receiver returning package-level limits:
//
//	type Percent struct{}
//
//	var percent = clamp.MustLimits(clamp.NewLimits[uint8](0, 100, clamp.Saturating[uint8]{}))
//
//	func (Percent) Limits() *clamp.Limits[uint8] { return percent }
type Domain[T constraints.Integer] interface {
	Limits() *Limits[T]
}

// Int is a T bounded by the limits of D.
//
// The zero value holds zero, which may be outside of limits. Use [From],
// [Default] or one of the other constructors to get a valid one.
type Int[T constraints.Integer, D Domain[T]] struct {
	v T
}

func limitsOf[T constraints.Integer, D Domain[T]]() *Limits[T] {
	var d D
	return d.Limits()
}

// From returns a bounded integer holding v.
func From[T constraints.Integer, D Domain[T]](v T) (Int[T, D], error) {
	if _, err := limitsOf[T, D]().Validate(v); err != nil {
		return Int[T, D]{}, err
	}

	return Int[T, D]{v: v}, nil
}

// MustFrom is like From but panics on errors.
func MustFrom[T constraints.Integer, D Domain[T]](v T) Int[T, D] {
	res, err := From[T, D](v)
	if err != nil {
		panic(err)
	}
	return res
}

// Unchecked returns a bounded integer holding v without checking it.
// The caller must know v is valid, a literal taken from the limits for
// instance.
func Unchecked[T constraints.Integer, D Domain[T]](v T) Int[T, D] {
	return Int[T, D]{v: v}
}

// Validate checks v against the limits of D.
func Validate[T constraints.Integer, D Domain[T]](v T) (T, error) {
	return limitsOf[T, D]().Validate(v)
}

// Min returns the smallest value of D.
func Min[T constraints.Integer, D Domain[T]]() Int[T, D] {
	return Int[T, D]{v: limitsOf[T, D]().Lower()}
}

// Max returns the largest value of D.
func Max[T constraints.Integer, D Domain[T]]() Int[T, D] {
	return Int[T, D]{v: limitsOf[T, D]().Upper()}
}

// Default returns the default value of D, its smallest value if no default
// was set.
func Default[T constraints.Integer, D Domain[T]]() Int[T, D] {
	l := limitsOf[T, D]()
	if v, ok := l.Default(); ok {
		return Int[T, D]{v: v}
	}

	return Int[T, D]{v: l.Lower()}
}

// Rand returns a uniformly distributed valid value. Values are drawn from
// [Lower, Upper] and redrawn when they fall into a gap. A nil r means the
// global source.
func Rand[T constraints.Integer, D Domain[T]](r *rand.Rand) Int[T, D] {
	l := limitsOf[T, D]()
	width := uint64(l.Upper()) - uint64(l.Lower())

	for {
		var off uint64
		switch {
		case width == ^uint64(0) && r == nil:
			off = rand.Uint64()
		case width == ^uint64(0):
			off = r.Uint64()
		case r == nil:
			off = rand.Uint64N(width + 1)
		default:
			off = r.Uint64N(width + 1)
		}

		v := T(uint64(l.Lower()) + off)
		if _, err := l.Validate(v); err == nil {
			return Int[T, D]{v: v}
		}
	}
}

// Compute applies op to a primitive left operand and a bounded right one.
func Compute[T constraints.Integer, D Domain[T]](op Op, l T, r Int[T, D]) Int[T, D] {
	return apply[T, D](op, l, r.v)
}

func apply[T constraints.Integer, D Domain[T]](op Op, l, r T) Int[T, D] {
	lim := limitsOf[T, D]()
	res := eval(lim.Behavior(), op, l, r, lim.Lower(), lim.Upper())
	return Int[T, D]{v: lim.settle(op, l, r, res)}
}

// Get returns the value.
func (i Int[T, D]) Get() T {
	return i.v
}

// Set replaces the value with a valid v.
func (i *Int[T, D]) Set(v T) error {
	if _, err := Validate[T, D](v); err != nil {
		return fmt.Errorf("set value: %w", err)
	}

	i.v = v
	return nil
}

// SetUnchecked replaces the value without checking it. The same precondition
// as for [Unchecked] applies.
func (i *Int[T, D]) SetUnchecked(v T) {
	i.v = v
}

// Limits returns limits of the value domain.
func (i Int[T, D]) Limits() *Limits[T] {
	return limitsOf[T, D]()
}

// Add returns i+o.
func (i Int[T, D]) Add(o Int[T, D]) Int[T, D] { return apply[T, D](OpAdd, i.v, o.v) }

// Sub returns i-o.
func (i Int[T, D]) Sub(o Int[T, D]) Int[T, D] { return apply[T, D](OpSub, i.v, o.v) }

// Mul returns i*o.
func (i Int[T, D]) Mul(o Int[T, D]) Int[T, D] { return apply[T, D](OpMul, i.v, o.v) }

// Div returns i/o.
func (i Int[T, D]) Div(o Int[T, D]) Int[T, D] { return apply[T, D](OpDiv, i.v, o.v) }

// Rem returns i%o.
func (i Int[T, D]) Rem(o Int[T, D]) Int[T, D] { return apply[T, D](OpRem, i.v, o.v) }

// And returns i&o.
func (i Int[T, D]) And(o Int[T, D]) Int[T, D] { return apply[T, D](OpAnd, i.v, o.v) }

// Or returns i|o.
func (i Int[T, D]) Or(o Int[T, D]) Int[T, D] { return apply[T, D](OpOr, i.v, o.v) }

// Xor returns i^o.
func (i Int[T, D]) Xor(o Int[T, D]) Int[T, D] { return apply[T, D](OpXor, i.v, o.v) }

// AddT returns i+v.
func (i Int[T, D]) AddT(v T) Int[T, D] { return apply[T, D](OpAdd, i.v, v) }

// SubT returns i-v.
func (i Int[T, D]) SubT(v T) Int[T, D] { return apply[T, D](OpSub, i.v, v) }

// MulT returns i*v.
func (i Int[T, D]) MulT(v T) Int[T, D] { return apply[T, D](OpMul, i.v, v) }

// DivT returns i/v.
func (i Int[T, D]) DivT(v T) Int[T, D] { return apply[T, D](OpDiv, i.v, v) }

// RemT returns i%v.
func (i Int[T, D]) RemT(v T) Int[T, D] { return apply[T, D](OpRem, i.v, v) }

// AndT returns i&v.
func (i Int[T, D]) AndT(v T) Int[T, D] { return apply[T, D](OpAnd, i.v, v) }

// OrT returns i|v.
func (i Int[T, D]) OrT(v T) Int[T, D] { return apply[T, D](OpOr, i.v, v) }

// XorT returns i^v.
func (i Int[T, D]) XorT(v T) Int[T, D] { return apply[T, D](OpXor, i.v, v) }

// Neg returns -i.
func (i Int[T, D]) Neg() Int[T, D] { return apply[T, D](OpNeg, i.v, 0) }

// Not returns ^i.
func (i Int[T, D]) Not() Int[T, D] { return apply[T, D](OpNot, i.v, 0) }

// Modify opens an edit session over the value. The session must be resolved
// with either Commit or Discard.
func (i *Int[T, D]) Modify() *Guard[T] {
	return newGuard(&i.v, func(v T) error {
		_, err := Validate[T, D](v)
		return err
	})
}

func (i Int[T, D]) String() string {
	return i.format()
}

// MarshalText implements encoding.TextMarshaler.
func (i Int[T, D]) MarshalText() ([]byte, error) {
	return []byte(i.format()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The value read must be
// valid.
func (i *Int[T, D]) UnmarshalText(text []byte) error {
	var v T
	if intmath.Signed[T]() {
		x, err := strconv.ParseInt(string(text), 10, intmath.Bits[T]())
		if err != nil {
			return fmt.Errorf("parse %q: %w", text, err)
		}
		v = T(x)
	} else {
		x, err := strconv.ParseUint(string(text), 10, intmath.Bits[T]())
		if err != nil {
			return fmt.Errorf("parse %q: %w", text, err)
		}
		v = T(x)
	}

	return i.Set(v)
}

func (i Int[T, D]) format() string {
	if intmath.Signed[T]() {
		return strconv.FormatInt(int64(i.v), 10)
	}
	return strconv.FormatUint(uint64(i.v), 10)
}
