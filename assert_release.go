//go:build !exprvm_debug

package exprvm

// debug is whether internal invariants panic when violated. Build with
// -tags exprvm_debug to enable it.
const debug = false

func assertf(cond bool, format string, args ...any) {}
