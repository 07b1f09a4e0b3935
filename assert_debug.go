//go:build exprvm_debug

package exprvm

import "fmt"

// debug is whether internal invariants panic when violated.
const debug = true

// assertf panics if cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("exprvm: " + fmt.Sprintf(format, args...))
	}
}
