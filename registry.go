package exprvm

import "strconv"

// Handle identifies a variable or function in the Registry that produced it.
// Handles are positions in registration order, so they remain valid as more
// names are added but mean nothing to any other Registry.
type Handle uint32

// Registry holds the variables and functions that expressions can refer to.
// Variables and functions are separate namespaces. A name may be registered
// more than once; lookups always find the earliest registration.
//
// A Registry is not safe for concurrent use. Functions may carry state, so
// running two programs against one Registry at once needs external locking.
type Registry struct {
	vars []binding
	fns  []function
}

type binding struct {
	name string
	val  Value
}

type function struct {
	name string
	fn   Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry creates a registry containing the constants PI and E and
// the default math functions, computed in float64.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	addBuiltins(r, 0)
	return r
}

// PreciseRegistry creates a registry with the same names as DefaultRegistry.
// Constants, exponentials, logarithms, and non-integer powers are computed
// with prec bits of precision and then rounded to float64. If prec is 0, the
// result is the same as DefaultRegistry.
func PreciseRegistry(prec uint) *Registry {
	r := NewRegistry()
	addBuiltins(r, prec)
	return r
}

// AddVar registers a variable. Returns r for chaining.
func (r *Registry) AddVar(name string, val Value) *Registry {
	r.DefineVar(name, val)
	return r
}

// AddFunc registers a function. Returns r for chaining.
func (r *Registry) AddFunc(name string, fn Func) *Registry {
	r.DefineFunc(name, fn)
	return r
}

// DefineVar registers a variable and returns its handle.
func (r *Registry) DefineVar(name string, val Value) Handle {
	r.vars = append(r.vars, binding{name: name, val: val})
	return Handle(len(r.vars) - 1)
}

// DefineFunc registers a function and returns its handle. Panics if fn is
// nil.
func (r *Registry) DefineFunc(name string, fn Func) Handle {
	if fn == nil {
		panic("exprvm: nil Func for " + strconv.Quote(name))
	}
	r.fns = append(r.fns, function{name: name, fn: fn})
	return Handle(len(r.fns) - 1)
}

// Set changes the value of the variable that name resolves to, or registers
// it if there is none. Programs already compiled against r see the new value
// when next run. Returns r for chaining. Calling Set while r is being used
// to run a program is not allowed.
func (r *Registry) Set(name string, val Value) *Registry {
	if h, ok := r.LookupVar(name); ok {
		r.vars[h].val = val
		return r
	}
	return r.AddVar(name, val)
}

// LookupVar finds the handle of the variable name resolves to.
func (r *Registry) LookupVar(name string) (Handle, bool) {
	for i, v := range r.vars {
		if v.name == name {
			return Handle(i), true
		}
	}
	return 0, false
}

// LookupFunc finds the handle and arity of the function name resolves to.
func (r *Registry) LookupFunc(name string) (h Handle, arity int, ok bool) {
	for i, f := range r.fns {
		if f.name == name {
			return Handle(i), f.fn.Arity(), true
		}
	}
	return 0, 0, false
}

// Var returns the value of the variable with handle h. Panics if h is not a
// variable handle from r.
func (r *Registry) Var(h Handle) Value {
	return r.vars[h].val
}

// Vars returns the names of all variables in registration order, including
// shadowed duplicates.
func (r *Registry) Vars() []string {
	names := make([]string, len(r.vars))
	for i, v := range r.vars {
		names[i] = v.name
	}
	return names
}

// Funcs returns the names of all functions in registration order, including
// shadowed duplicates.
func (r *Registry) Funcs() []string {
	names := make([]string, len(r.fns))
	for i, f := range r.fns {
		names[i] = f.name
	}
	return names
}
