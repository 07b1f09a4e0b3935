package exprvm

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// addBuiltins registers the default constants and functions. If prec is
// non-zero, the transcendental ones are computed to that many bits.
func addBuiltins(r *Registry, prec uint) {
	m := mathfns{prec: prec}
	r.AddVar("PI", Float(m.pi())).
		AddVar("E", Float(m.exp(1))).
		AddFunc("pow", Dyadic(m.pow)).
		AddFunc("sin", floatfn(math.Sin)).
		AddFunc("cos", floatfn(math.Cos)).
		AddFunc("tan", floatfn(math.Tan)).
		AddFunc("asin", floatfn(math.Asin)).
		AddFunc("acos", floatfn(math.Acos)).
		AddFunc("atan", floatfn(math.Atan)).
		AddFunc("sinh", floatfn(math.Sinh)).
		AddFunc("cosh", floatfn(math.Cosh)).
		AddFunc("tanh", floatfn(math.Tanh)).
		AddFunc("asinh", floatfn(math.Asinh)).
		AddFunc("acosh", floatfn(math.Acosh)).
		AddFunc("atanh", floatfn(math.Atanh)).
		AddFunc("exp", floatfn(m.exp)).
		AddFunc("ln", floatfn(m.ln)).
		AddFunc("log10", floatfn(m.log10)).
		AddFunc("log2", floatfn(m.log2)).
		AddFunc("sqrt", floatfn(math.Sqrt)).
		AddFunc("cbrt", floatfn(math.Cbrt)).
		AddFunc("sum", VariadicFunc(sum)).
		AddFunc("min", VariadicFunc(minimum)).
		AddFunc("max", VariadicFunc(maximum))
}

// floatfn lifts a float64 function to a Func of one argument.
func floatfn(f func(float64) float64) Func {
	return Monadic(func(x Value) Value {
		return Float(f(x.AsFloat()))
	})
}

// sum adds its arguments as floats.
func sum(args []Value) Value {
	var s float64
	for _, x := range args {
		s += x.AsFloat()
	}
	return Float(s)
}

// minimum returns its least argument, keeping the argument's type. With no
// arguments, the result is +Inf.
func minimum(args []Value) Value {
	return extremum(args, math.Inf(1), func(x, y float64) bool { return x < y })
}

// maximum returns its greatest argument, keeping the argument's type. With
// no arguments, the result is -Inf.
func maximum(args []Value) Value {
	return extremum(args, math.Inf(-1), func(x, y float64) bool { return x > y })
}

func extremum(args []Value, empty float64, better func(x, y float64) bool) Value {
	if len(args) == 0 {
		return Float(empty)
	}
	r := args[0]
	for _, x := range args[1:] {
		f := x.AsFloat()
		if math.IsNaN(f) {
			return x
		}
		if better(f, r.AsFloat()) {
			r = x
		}
	}
	return r
}

// mathfns computes the functions that have precise variants. A zero prec
// uses package math.
type mathfns struct {
	prec uint
}

func (m mathfns) pi() float64 {
	if m.prec == 0 {
		return math.Pi
	}
	return m.big(func() *big.Float {
		return bigfloat.Pi(m.float(0))
	}, math.Pi)
}

// pow raises a to b. Integers raised to non-negative integers stay integers
// and wrap on overflow.
func (m mathfns) pow(a, b Value) Value {
	if a.Kind() == KindInt && b.Kind() == KindInt && b.AsInt() >= 0 {
		return Int(ipow(a.AsInt(), b.AsInt()))
	}
	x, y := a.AsFloat(), b.AsFloat()
	r := math.Pow(x, y)
	if m.prec == 0 || x <= 0 || r == 0 || math.IsInf(r, 0) || math.IsNaN(r) || math.IsInf(y, 0) {
		// Let package math handle special cases and results that are out of
		// float64 range anyway.
		return Float(r)
	}
	return Float(m.big(func() *big.Float {
		z := m.float(0)
		return bigfloat.Pow(z, m.float(x), m.float(y))
	}, r))
}

func ipow(x, n int64) int64 {
	r := int64(1)
	for n > 0 {
		if n&1 != 0 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	return r
}

func (m mathfns) exp(x float64) float64 {
	// Outside ±746, exp is 0 or +Inf in float64.
	if m.prec == 0 || math.IsNaN(x) || math.Abs(x) > 746 {
		return math.Exp(x)
	}
	return m.big(func() *big.Float {
		return bigfloat.Exp(m.float(0), m.float(x))
	}, math.Exp(x))
}

func (m mathfns) ln(x float64) float64 {
	return m.log(x, 0, math.Log)
}

func (m mathfns) log10(x float64) float64 {
	return m.log(x, 10, math.Log10)
}

func (m mathfns) log2(x float64) float64 {
	return m.log(x, 2, math.Log2)
}

// log computes the logarithm of x in the given base, or the natural
// logarithm if base is 0. fallback is the float64 equivalent.
func (m mathfns) log(x, base float64, fallback func(float64) float64) float64 {
	if m.prec == 0 || !(x > 0) || math.IsInf(x, 1) {
		return fallback(x)
	}
	return m.big(func() *big.Float {
		z := bigfloat.Log(m.float(0), m.float(x))
		if base == 0 {
			return z
		}
		b := bigfloat.Log(m.float(0), m.float(base))
		return z.Quo(z, b)
	}, fallback(x))
}

// float creates a big.Float with m's precision.
func (m mathfns) float(x float64) *big.Float {
	return new(big.Float).SetPrec(m.prec).SetFloat64(x)
}

// big runs a big.Float computation and rounds its result to float64. If the
// computation panics with big.ErrNaN, the result is fallback.
func (m mathfns) big(f func() *big.Float, fallback float64) (r float64) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, _ := p.(error)
		if errors.As(err, new(big.ErrNaN)) {
			r = fallback
			return
		}
		panic(p)
	}()
	r, _ = f().Float64()
	return r
}
