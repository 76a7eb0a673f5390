package domain

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestKindLimits(t *testing.T) {
	type test struct {
		kind Kind
		min  string
		max  string
	}

	tests := []test{
		{I8, "-128", "127"},
		{U8, "0", "255"},
		{I16, "-32768", "32767"},
		{U32, "0", "4294967295"},
		{I64, "-9223372036854775808", "9223372036854775807"},
		{U64, "0", "18446744073709551615"},
		{I128, "-170141183460469231731687303715884105728", "170141183460469231731687303715884105727"},
		{U128, "0", "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Min().String(); got != tt.min {
				t.Errorf("min: got %s, want %s", got, tt.min)
			}
			if got := tt.kind.Max().String(); got != tt.max {
				t.Errorf("max: got %s, want %s", got, tt.max)
			}
		})
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("u128")); err != nil {
		t.Fatal(err)
	}
	if k != U128 {
		t.Fatalf("got %s, want u128", k)
	}
	if err := k.UnmarshalText([]byte("u7")); err == nil {
		t.Fatal("u7 must not be accepted")
	}
	if _, err := KindInvalid.MarshalText(); err == nil {
		t.Fatal("invalid kind must not marshal")
	}
}

func TestKindOf(t *testing.T) {
	type named uint16

	if KindOf[named]() != U16 {
		t.Errorf("named uint16: got %s", KindOf[named]())
	}
	if KindOf[int]() != Isize || KindOf[uint]() != Usize || KindOf[uintptr]() != Usize {
		t.Error("pointer sized types must map onto pointer sized kinds")
	}
	if KindOf[int64]() != I64 {
		t.Errorf("int64: got %s", KindOf[int64]())
	}
}

func TestValueConversions(t *testing.T) {
	if v := Of[int64](math.MinInt64); v.String() != "-9223372036854775808" {
		t.Errorf("min int64: got %s", v)
	}
	if got, ok := As[int64](Of[int64](math.MinInt64)); !ok || got != math.MinInt64 {
		t.Errorf("min int64 round trip: got (%d, %v)", got, ok)
	}
	if got, ok := As[uint64](Of[uint64](math.MaxUint64)); !ok || got != math.MaxUint64 {
		t.Errorf("max uint64 round trip: got (%d, %v)", got, ok)
	}
	if _, ok := As[uint8](Of[int16](-1)); ok {
		t.Error("-1 must not fit into uint8")
	}
	if _, ok := As[int8](Of[int16](128)); ok {
		t.Error("128 must not fit into int8")
	}
	if got, ok := As[int8](Of[int16](-128)); !ok || got != -128 {
		t.Errorf("-128 into int8: got (%d, %v)", got, ok)
	}

	if _, err := Int(U8, -1); !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("-1 as u8: unexpected error %v", err)
	}
	if _, err := Uint(I8, 128); !errors.Is(err, ErrNotRepresentable) {
		t.Errorf("128 as i8: unexpected error %v", err)
	}

	b, _ := new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	v, err := FromBig(I128, b)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsKindMin() {
		t.Errorf("%s must be the minimum of i128", v)
	}
	if v.Big().Cmp(b) != 0 {
		t.Errorf("big round trip: got %s", v.Big())
	}
	if _, err := FromBig(I128, new(big.Int).Sub(b, big.NewInt(1))); err == nil {
		t.Error("i128 min - 1 must not fit")
	}
}

func TestParse(t *testing.T) {
	v, err := Parse(U128, "340_282_366_920_938_463_463_374_607_431_768_211_455")
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsKindMax() {
		t.Errorf("%s must be the maximum of u128", v)
	}
	if _, err := Parse(U128, "340282366920938463463374607431768211456"); err == nil {
		t.Error("u128 max + 1 must not fit")
	}
	if _, err := Parse(I8, "-129"); err == nil {
		t.Error("-129 must not fit into i8")
	}
	if _, err := Parse(I8, "115792089237316195423570985008687907853269984665640564039457584007913129639935"); err == nil {
		t.Error("2^256-1 must not be read as -1")
	}
	if _, err := Parse(U8, "-1"); err == nil {
		t.Error("-1 must not fit into u8")
	}
	if _, err := Parse(U8, "x"); err == nil {
		t.Error("garbage must not parse")
	}
}

func TestFormatting(t *testing.T) {
	if got := U64.Max().Boxcar(); got != "18_446_744_073_709_551_615" {
		t.Errorf("boxcar: got %s", got)
	}
	if got := MustInt(I32, -1234567).Boxcar(); got != "-1_234_567" {
		t.Errorf("negative boxcar: got %s", got)
	}
	if got := MustInt(I32, 0).Boxcar(); got != "0" {
		t.Errorf("zero boxcar: got %s", got)
	}
}

func TestOrderingAndStepping(t *testing.T) {
	a, b := MustInt(I8, -3), MustInt(I8, 2)
	if !a.Less(b) || b.Less(a) || a.Cmp(a) != 0 {
		t.Error("ordering of -3 and 2 is broken")
	}
	if !Min(a, b).Equal(a) || !Max(a, b).Equal(b) {
		t.Error("min/max of -3 and 2 is broken")
	}

	if _, ok := I8.Max().Succ(); ok {
		t.Error("successor of i8 max must not exist")
	}
	if _, ok := U128.Min().Pred(); ok {
		t.Error("predecessor of u128 min must not exist")
	}

	next, ok := MustInt(I8, -1).Succ()
	if !ok || next.String() != "0" {
		t.Errorf("successor of -1: got (%s, %v)", next, ok)
	}
	prev, ok := MustInt(I8, 0).Pred()
	if !ok || prev.String() != "-1" {
		t.Errorf("predecessor of 0: got (%s, %v)", prev, ok)
	}
	edge, ok := U128.Max().Pred()
	if !ok || edge.String() != "340282366920938463463374607431768211454" {
		t.Errorf("predecessor of u128 max: got %s", edge)
	}

	defer func() {
		if recover() == nil {
			t.Error("comparing values of different kinds must panic")
		}
	}()
	_ = MustInt(I8, 1).Less(MustInt(I16, 1))
}
