package exprvm

import (
	"math"
	"strconv"
)

// BinaryOp is a binary operator.
type BinaryOp int8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Equal
	NotEqual
	LogicalAnd
	LogicalOr
	BitAnd
	BitOr
	BitXor
)

var binopstrs = [...]string{
	Add:        "+",
	Sub:        "-",
	Mul:        "*",
	Div:        "/",
	Mod:        "%",
	Equal:      "==",
	NotEqual:   "!=",
	LogicalAnd: "&&",
	LogicalOr:  "||",
	BitAnd:     "&",
	BitOr:      "|",
	BitXor:     "^",
}

func (op BinaryOp) String() string {
	if !op.valid() {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binopstrs[op]
}

func (op BinaryOp) valid() bool { return op >= 0 && int(op) < len(binopstrs) }

// Apply evaluates a op b. The only error is a *DomainError for integer
// division or remainder by zero; its Span is unset.
func (op BinaryOp) Apply(a, b Value) (Value, error) {
	switch op {
	case Add, Sub, Mul, Div, Mod:
		if a.kind == KindInt && b.kind == KindInt {
			return intArith(op, int64(a.bits), int64(b.bits))
		}
		return Float(floatArith(op, a.AsFloat(), b.AsFloat())), nil
	case BitAnd, BitOr, BitXor:
		x, y := a.AsInt(), b.AsInt()
		switch op {
		case BitAnd:
			return Int(x & y), nil
		case BitOr:
			return Int(x | y), nil
		default:
			return Int(x ^ y), nil
		}
	case LogicalAnd:
		return Bool(a.AsBool() && b.AsBool()), nil
	case LogicalOr:
		return Bool(a.AsBool() || b.AsBool()), nil
	case Equal:
		return Bool(a.Equal(b)), nil
	case NotEqual:
		return Bool(!a.Equal(b)), nil
	default:
		panic("exprvm: invalid binary operator " + op.String())
	}
}

func intArith(op BinaryOp, x, y int64) (Value, error) {
	switch op {
	case Add:
		return Int(x + y), nil
	case Sub:
		return Int(x - y), nil
	case Mul:
		return Int(x * y), nil
	case Div:
		if y == 0 {
			return Value{}, &DomainError{X: Int(x), Op: op.String()}
		}
		return Int(x / y), nil
	default:
		if y == 0 {
			return Value{}, &DomainError{X: Int(x), Op: op.String()}
		}
		return Int(x % y), nil
	}
}

func floatArith(op BinaryOp, x, y float64) float64 {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		return x / y
	default:
		return math.Mod(x, y)
	}
}

// UnaryOp is a unary operator.
type UnaryOp int8

const (
	// Neg is arithmetic negation. Booleans negate to Int -1 or 0.
	Neg UnaryOp = iota
	// Not is the bitwise complement of a value converted to Int.
	Not
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	default:
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

func (op UnaryOp) valid() bool { return op == Neg || op == Not }

// Apply evaluates op a.
func (op UnaryOp) Apply(a Value) Value {
	switch op {
	case Neg:
		switch a.kind {
		case KindFloat:
			return Float(-math.Float64frombits(a.bits))
		default:
			return Int(-int64(a.bits))
		}
	case Not:
		return Int(^a.AsInt())
	default:
		panic("exprvm: invalid unary operator " + op.String())
	}
}
