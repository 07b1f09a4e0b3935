// Package exprvm implements an embeddable expression engine for integer,
// floating-point, and boolean formulas.
//
// An expression like "pow(x, 2) + 3 * y" is lexed, parsed into a tree,
// compiled against a Registry of variables and functions into a flat program
// for a small stack machine, folded where its operands are constant, and run.
// Names are resolved once at compile time, so a Program can be run many
// times, and variables can be rebound with Registry.Set between runs.
//
// Values are Int, Float, or Boolean. Arithmetic stays in the integer domain
// when both operands are Int and otherwise happens in float64. Bitwise
// operators coerce to Int, logical operators coerce to Boolean, and "!" is a
// bitwise complement, so "!0" is -1.
package exprvm
