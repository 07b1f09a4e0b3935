package exprvm

import (
	"math"
	"strconv"
)

// Kind is the type of a Value.
type Kind int8

const (
	KindInt Kind = iota
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an integer, floating-point, or boolean scalar. The zero Value is
// Int(0).
type Value struct {
	kind Kind
	// bits holds an int64, the bits of a float64, or 0 or 1 for a boolean.
	bits uint64
}

// Int returns an Int value.
func Int(i int64) Value {
	return Value{kind: KindInt, bits: uint64(i)}
}

// Float returns a Float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, bits: math.Float64bits(f)}
}

// Bool returns a Boolean value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, bits: 1}
	}
	return Value{kind: KindBool}
}

// Kind returns the type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// AsFloat converts v to a float64. Booleans convert to 1 or 0.
func (v Value) AsFloat() float64 {
	switch v.kind {
	case KindInt:
		return float64(int64(v.bits))
	case KindFloat:
		return math.Float64frombits(v.bits)
	default:
		return float64(v.bits)
	}
}

// AsInt converts v to an int64. Floats are floored, with NaN converting to 0
// and out-of-range values saturating at the bounds of int64. Booleans convert
// to 1 or 0.
func (v Value) AsInt() int64 {
	switch v.kind {
	case KindInt:
		return int64(v.bits)
	case KindFloat:
		return floatToInt(math.Float64frombits(v.bits))
	default:
		return int64(v.bits)
	}
}

// AsBool converts v to a bool. Numbers are true when they are non-zero and
// not NaN.
func (v Value) AsBool() bool {
	switch v.kind {
	case KindFloat:
		f := math.Float64frombits(v.bits)
		return f != 0 && !math.IsNaN(f)
	default:
		return v.bits != 0
	}
}

func floatToInt(f float64) int64 {
	f = math.Floor(f)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Equal reports whether v and w are equal. An Int and a Float are equal when
// the float is integral and has exactly the integer's value. Booleans compare
// against numbers as 1 or 0.
func (v Value) Equal(w Value) bool {
	if v.kind == w.kind {
		if v.kind == KindFloat {
			return math.Float64frombits(v.bits) == math.Float64frombits(w.bits)
		}
		return v.bits == w.bits
	}
	if v.kind == KindFloat {
		v, w = w, v
	}
	if w.kind != KindFloat {
		// Int and Boolean.
		return int64(v.bits) == int64(w.bits)
	}
	return intEqualsFloat(int64(v.bits), math.Float64frombits(w.bits))
}

func intEqualsFloat(i int64, f float64) bool {
	if f != math.Trunc(f) {
		// Fractional, infinite, or NaN.
		return false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return false
	}
	return int64(f) == i
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(int64(v.bits), 10)
	case KindFloat:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	default:
		return strconv.FormatBool(v.bits != 0)
	}
}

// GoString formats v as a call to its constructor, e.g. Float(1.5).
func (v Value) GoString() string {
	switch v.kind {
	case KindInt:
		return "Int(" + v.String() + ")"
	case KindFloat:
		return "Float(" + v.String() + ")"
	default:
		return "Bool(" + v.String() + ")"
	}
}
