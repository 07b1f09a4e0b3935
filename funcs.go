package exprvm

// Variadic is the arity of a function that accepts any number of arguments.
const Variadic = -1

// Func is a function callable from expressions.
type Func interface {
	// Arity returns the exact number of arguments the function accepts, or
	// Variadic. The compiler rejects calls to fixed-arity functions with any
	// other number of arguments.
	Arity() int

	// Call evaluates the function. len(args) is always Arity() unless the
	// function is variadic. args is only valid for the duration of the call.
	// An error aborts the evaluation.
	Call(args []Value) (Value, error)
}

type niladic struct {
	f func() Value
}

func (n niladic) Arity() int { return 0 }

func (n niladic) Call(args []Value) (Value, error) {
	return n.f(), nil
}

// Niladic wraps a function of no arguments into a Func.
func Niladic(f func() Value) Func {
	return niladic{f}
}

type monadic struct {
	f func(Value) Value
}

func (m monadic) Arity() int { return 1 }

func (m monadic) Call(args []Value) (Value, error) {
	return m.f(args[0]), nil
}

// Monadic wraps a function of one argument into a Func.
func Monadic(f func(Value) Value) Func {
	return monadic{f}
}

type dyadic struct {
	f func(a, b Value) Value
}

func (d dyadic) Arity() int { return 2 }

func (d dyadic) Call(args []Value) (Value, error) {
	return d.f(args[0], args[1]), nil
}

// Dyadic wraps a function of two arguments into a Func.
func Dyadic(f func(a, b Value) Value) Func {
	return dyadic{f}
}

type nary struct {
	n int
	f func([]Value) (Value, error)
}

func (n nary) Arity() int { return n.n }

func (n nary) Call(args []Value) (Value, error) {
	return n.f(args)
}

// Nary wraps a function of exactly n arguments, or any number if n is
// Variadic, into a Func. Unlike the other wrappers, f may fail.
func Nary(n int, f func(args []Value) (Value, error)) Func {
	if n < Variadic {
		panic("exprvm: invalid arity for Nary")
	}
	return nary{n, f}
}

type variadic struct {
	f func([]Value) Value
}

func (v variadic) Arity() int { return Variadic }

func (v variadic) Call(args []Value) (Value, error) {
	return v.f(args), nil
}

// VariadicFunc wraps a function of any number of arguments into a Func.
func VariadicFunc(f func(args []Value) Value) Func {
	return variadic{f}
}
