package domain

import (
	"encoding"
	"fmt"
	"math/bits"
	"reflect"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// Kind enumerates supported integer widths and signedness.
type Kind int

const (
	KindInvalid Kind = iota

	I8
	I16
	I32
	I64
	I128
	Isize

	U8
	U16
	U32
	U64
	U128
	Usize
)

var kindValueMap = map[Kind]string{
	I8:    "i8",
	I16:   "i16",
	I32:   "i32",
	I64:   "i64",
	I128:  "i128",
	Isize: "isize",
	U8:    "u8",
	U16:   "u16",
	U32:   "u32",
	U64:   "u64",
	U128:  "u128",
	Usize: "usize",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kindValueMap[k]
	return ok
}

// Signed reports whether values of the kind may be negative.
func (k Kind) Signed() bool {
	return k >= I8 && k <= Isize
}

// Bits returns the width of the kind. Pointer-sized kinds follow the platform.
func (k Kind) Bits() int {
	switch k {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	case I64, U64:
		return 64
	case I128, U128:
		return 128
	case Isize, Usize:
		return bits.UintSize
	default:
		return 0
	}
}

// Min returns the smallest value representable by the kind.
func (k Kind) Min() Value {
	k.mustValid()
	return Value{kind: k, raw: kindMin(k)}
}

// Max returns the largest value representable by the kind.
func (k Kind) Max() Value {
	k.mustValid()
	return Value{kind: k, raw: kindMax(k)}
}

// Span returns the whole representable span of the kind.
func (k Kind) Span() Span {
	return Span{Start: k.Min(), End: k.Max()}
}

var (
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// MarshalText for configs, fixtures and diagnostics.
func (k Kind) MarshalText() ([]byte, error) {
	v, ok := kindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", int(k))
	}

	return []byte(v), nil
}

// UnmarshalText for setting kinds with configs, fixtures, etc.
func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for kk, v := range kindValueMap {
		if v == text {
			*k = kk
			return nil
		}
	}

	return fmt.Errorf("unknown integer kind %q", text)
}

func (k Kind) mustValid() {
	if !k.Valid() {
		panic(fmt.Sprintf("domain: use of %s kind", k))
	}
}

// KindOf returns the kind matching the Go integer type T. Named types map by
// their underlying type, int and uint map to the pointer-sized kinds, uintptr
// maps to Usize.
func KindOf[T constraints.Integer]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return I8
	case reflect.Int16:
		return I16
	case reflect.Int32:
		return I32
	case reflect.Int64:
		return I64
	case reflect.Int:
		return Isize
	case reflect.Uint8:
		return U8
	case reflect.Uint16:
		return U16
	case reflect.Uint32:
		return U32
	case reflect.Uint64:
		return U64
	case reflect.Uint, reflect.Uintptr:
		return Usize
	default:
		return KindInvalid
	}
}

func kindMax(k Kind) uint256.Int {
	var z uint256.Int
	z.SetOne()
	if k.Signed() {
		z.Lsh(&z, uint(k.Bits()-1))
	} else {
		z.Lsh(&z, uint(k.Bits()))
	}
	z.SubUint64(&z, 1)
	return z
}

func kindMin(k Kind) uint256.Int {
	var z uint256.Int
	if !k.Signed() {
		return z
	}
	z.SetOne()
	z.Lsh(&z, uint(k.Bits()-1))
	z.Neg(&z)
	return z
}
