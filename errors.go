package exprvm

import "strconv"

// NameError is an error from compiling an expression that refers to a
// variable or function missing from the registry. It implements SpanError.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Func is whether the name was called as a function.
	Func bool
	// Loc is the location of the name.
	Loc Span
}

func (err *NameError) Error() string {
	what := "variable"
	if err.Func {
		what = "function"
	}
	return errpos(err.Loc, "undeclared "+what+" "+strconv.Quote(err.Name))
}

func (err *NameError) Span() (Span, bool) {
	return err.Loc, true
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements SpanError.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Want is the function's arity, and Got is the number of arguments in
	// the call.
	Want, Got int
	// Loc is the location of the function name in the call.
	Loc Span
}

func (err *CallError) Error() string {
	return errpos(err.Loc, "wrong number of arguments to "+err.Func+": expected "+strconv.Itoa(err.Want)+", got "+strconv.Itoa(err.Got))
}

func (err *CallError) Span() (Span, bool) {
	return err.Loc, true
}

// DomainError is an error returned when an operator is applied to operands
// outside its domain, i.e. integer division or remainder by zero. It
// implements SpanError.
type DomainError struct {
	// X is the dividend.
	X Value
	// Op is the operator.
	Op string
	// Loc is the location of the operator. It is unset for errors from
	// BinaryOp.Apply.
	Loc Span
}

func (err *DomainError) Error() string {
	return errpos(err.Loc, "integer division by zero: "+err.X.String()+" "+err.Op+" 0")
}

func (err *DomainError) Span() (Span, bool) {
	return err.Loc, true
}

// FuncError is an error returned by a registered function during evaluation.
// It implements SpanError and unwraps to the function's error.
type FuncError struct {
	// Func is the name of the function that failed.
	Func string
	// Err is the function's error.
	Err error
	// Loc is the location of the function name in the call.
	Loc Span
}

func (err *FuncError) Error() string {
	return errpos(err.Loc, err.Func+": "+err.Err.Error())
}

func (err *FuncError) Span() (Span, bool) {
	return err.Loc, true
}

func (err *FuncError) Unwrap() error {
	return err.Err
}

// StackError indicates a program that cannot run. An instruction may need
// more operands than the stack holds, name a handle out of range for the
// registry, pass a fixed-arity function the wrong number of arguments, or
// carry an unknown opcode or operator. The stack may also end with other
// than exactly one value. Programs
// produced by Compile and Optimize never cause it when run against the
// registry they were compiled with.
type StackError struct {
	// PC is the index of the instruction that failed, or the length of the
	// program if the final stack was wrong.
	PC int
	// Depth is the stack depth when the error occurred.
	Depth int
	// Reason describes the failure.
	Reason string
}

func (err *StackError) Error() string {
	return "malformed instruction stream at " + strconv.Itoa(err.PC) + " (stack depth " + strconv.Itoa(err.Depth) + "): " + err.Reason
}
