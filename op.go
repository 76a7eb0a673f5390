package clamp

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Op is an arithmetic operation over bounded integers.
type Op int

const (
	OpInvalid Op = iota

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpAnd
	OpOr
	OpXor

	// Unary operations.

	OpNeg
	OpNot
)

var opValueMap = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpRem: "%",
	OpAnd: "&",
	OpOr:  "|",
	OpXor: "^",
	OpNeg: "-",
	OpNot: "^",
}

func (op Op) String() string {
	v, ok := opValueMap[op]
	if !ok {
		return fmt.Sprintf("op-invalid(%d)", op)
	}

	return v
}

// Unary reports whether the operation takes a single operand.
func (op Op) Unary() bool {
	return op == OpNeg || op == OpNot
}

// eval dispatches an operation to a behavior. Every surface form of
// arithmetic ends up here.
func eval[T constraints.Integer](b Behavior[T], op Op, l, r, lo, hi T) T {
	switch op {
	case OpAdd:
		return b.Add(l, r, lo, hi)
	case OpSub:
		return b.Sub(l, r, lo, hi)
	case OpMul:
		return b.Mul(l, r, lo, hi)
	case OpDiv:
		return b.Div(l, r, lo, hi)
	case OpRem:
		return b.Rem(l, r, lo, hi)
	case OpAnd:
		return b.And(l, r, lo, hi)
	case OpOr:
		return b.Or(l, r, lo, hi)
	case OpXor:
		return b.Xor(l, r, lo, hi)
	case OpNeg:
		return b.Neg(l, lo, hi)
	case OpNot:
		return b.Not(l, lo, hi)
	default:
		panic(fmt.Errorf("unsupported operation %s", op))
	}
}
