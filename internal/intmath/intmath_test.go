package intmath

import (
	"math"
	"testing"
)

func TestLimits(t *testing.T) {
	if MaxOf[int8]() != math.MaxInt8 || MinOf[int8]() != math.MinInt8 {
		t.Fatalf("int8 limits: got [%d, %d]", MinOf[int8](), MaxOf[int8]())
	}
	if MaxOf[uint16]() != math.MaxUint16 || MinOf[uint16]() != 0 {
		t.Fatalf("uint16 limits: got [%d, %d]", MinOf[uint16](), MaxOf[uint16]())
	}
	if MaxOf[int64]() != math.MaxInt64 || MinOf[int64]() != math.MinInt64 {
		t.Fatalf("int64 limits: got [%d, %d]", MinOf[int64](), MaxOf[int64]())
	}
	if MaxOf[uint64]() != math.MaxUint64 {
		t.Fatalf("uint64 max: got %d", MaxOf[uint64]())
	}

	type named int32
	if !Signed[named]() || Bits[named]() != 32 {
		t.Fatal("named int32 must be a signed 32 bit type")
	}
	if Signed[uintptr]() {
		t.Fatal("uintptr must be unsigned")
	}
}

func TestChecked(t *testing.T) {
	type test struct {
		name string
		got  func() (int8, bool)
		want int8
		ok   bool
	}

	tests := []test{
		{"add", func() (int8, bool) { return AddChecked[int8](100, 27) }, 127, true},
		{"add-overflow", func() (int8, bool) { return AddChecked[int8](100, 28) }, -128, false},
		{"add-underflow", func() (int8, bool) { return AddChecked[int8](-100, -29) }, 127, false},
		{"sub", func() (int8, bool) { return SubChecked[int8](-100, 28) }, -128, true},
		{"sub-underflow", func() (int8, bool) { return SubChecked[int8](-100, 29) }, 127, false},
		{"sub-overflow", func() (int8, bool) { return SubChecked[int8](100, -28) }, -128, false},
		{"mul", func() (int8, bool) { return MulChecked[int8](-16, 8) }, -128, true},
		{"mul-overflow", func() (int8, bool) { return MulChecked[int8](16, 8) }, -128, false},
		{"mul-min-by-minus-one", func() (int8, bool) { return MulChecked[int8](-128, -1) }, -128, false},
		{"div-min-by-minus-one", func() (int8, bool) { return DivChecked[int8](-128, -1) }, -128, false},
		{"rem-min-by-minus-one", func() (int8, bool) { return RemChecked[int8](-128, -1) }, 0, true},
		{"neg-min", func() (int8, bool) { return NegChecked[int8](-128) }, -128, false},
		{"neg", func() (int8, bool) { return NegChecked[int8](-127) }, 127, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.got()
			if got != tt.want || ok != tt.ok {
				t.Errorf("got (%d, %v), want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCheckedUnsigned(t *testing.T) {
	if _, ok := SubChecked[uint8](0, 1); ok {
		t.Error("0-1 must overflow for uint8")
	}
	if _, ok := AddChecked[uint8](255, 1); ok {
		t.Error("255+1 must overflow for uint8")
	}
	if v, ok := MulChecked[uint8](15, 17); !ok || v != 255 {
		t.Errorf("15*17: got (%d, %v)", v, ok)
	}
	if _, ok := MulChecked[uint8](16, 16); ok {
		t.Error("16*16 must overflow for uint8")
	}
	if _, ok := NegChecked[uint8](1); ok {
		t.Error("negating a non-zero unsigned value must overflow")
	}
	if v, ok := NegChecked[uint8](0); !ok || v != 0 {
		t.Errorf("-0: got (%d, %v)", v, ok)
	}
}

func TestSaturating(t *testing.T) {
	if v := AddSaturating[uint8](250, 10); v != 255 {
		t.Errorf("250+10: got %d", v)
	}
	if v := SubSaturating[uint8](0, 1); v != 0 {
		t.Errorf("0-1: got %d", v)
	}
	if v := AddSaturating[int8](-100, -100); v != -128 {
		t.Errorf("-100+-100: got %d", v)
	}
	if v := SubSaturating[int8](100, -100); v != 127 {
		t.Errorf("100 - -100: got %d", v)
	}
	if v := MulSaturating[int8](-100, 2); v != -128 {
		t.Errorf("-100*2: got %d", v)
	}
	if v := MulSaturating[int8](-100, -2); v != 127 {
		t.Errorf("-100*-2: got %d", v)
	}
	if v := DivSaturating[int64](math.MinInt64, -1); v != math.MaxInt64 {
		t.Errorf("min/-1: got %d", v)
	}
	if v := NegSaturating[int16](math.MinInt16); v != math.MaxInt16 {
		t.Errorf("-min: got %d", v)
	}
	if v := NegSaturating[uint32](7); v != 0 {
		t.Errorf("-7 unsigned: got %d", v)
	}
	if v := Clamp[int](42, -5, 5); v != 5 {
		t.Errorf("clamp: got %d", v)
	}
}
