package exprvm

import "strconv"

// EOFError is an error indicating that the input ended in the middle of an
// expression. It implements SpanError, but it never has a span.
type EOFError struct {
	// Want is the token the parser required, or the empty string if any
	// operand would have done.
	Want string
}

func (err *EOFError) Error() string {
	if err.Want == "" {
		return "unexpected end of input"
	}
	return "expected " + quotetok(err.Want) + " but input ended"
}

func (err *EOFError) Span() (Span, bool) {
	return Span{}, false
}

// TokenError is an error indicating a token other than the one the grammar
// requires, e.g. a missing close bracket. It implements SpanError.
type TokenError struct {
	// Want and Got are the required and actual tokens. Literals and names
	// are given as "literal" and "identifier".
	Want, Got string
	// Loc is the location of the unexpected token.
	Loc Span
}

func (err *TokenError) Error() string {
	return errpos(err.Loc, "expected "+quotetok(err.Want)+" but got "+quotetok(err.Got))
}

func (err *TokenError) Span() (Span, bool) {
	return err.Loc, true
}

// StartError is an error indicating a token that cannot begin an operand. It
// implements SpanError.
type StartError struct {
	Got string
	Loc Span
}

func (err *StartError) Error() string {
	return errpos(err.Loc, "cannot start expression with "+quotetok(err.Got))
}

func (err *StartError) Span() (Span, bool) {
	return err.Loc, true
}

// InvalidCallError is an error indicating an argument list following
// something other than a function name, as in "2(3)". It implements
// SpanError.
type InvalidCallError struct {
	// Loc is the location of the expression that was called.
	Loc Span
}

func (err *InvalidCallError) Error() string {
	return errpos(err.Loc, "invalid function call: only names can be called")
}

func (err *InvalidCallError) Span() (Span, bool) {
	return err.Loc, true
}

// TrailingError is an error indicating tokens following a complete
// expression. It implements SpanError.
type TrailingError struct {
	Got string
	// Loc is the location of the first extra token.
	Loc Span
}

func (err *TrailingError) Error() string {
	return errpos(err.Loc, "unexpected "+quotetok(err.Got)+" after end of expression")
}

func (err *TrailingError) Span() (Span, bool) {
	return err.Loc, true
}

// quotetok formats a token description for an error message.
func quotetok(s string) string {
	if s == "literal" || s == "identifier" {
		return s
	}
	return strconv.Quote(s)
}

// errpos is a shortcut to create an error message with a position.
func errpos(loc Span, msg string) string {
	return loc.String() + ": " + msg
}

// SpanError is an error which may refer to a location in an expression's
// source. Every error resulting from invalid input implements SpanError.
type SpanError interface {
	error
	// Span returns the location of the error in the source. The second
	// result is false if the error has no single location.
	Span() (Span, bool)
}

var (
	_ SpanError = (*LexError)(nil)
	_ SpanError = (*EOFError)(nil)
	_ SpanError = (*TokenError)(nil)
	_ SpanError = (*StartError)(nil)
	_ SpanError = (*InvalidCallError)(nil)
	_ SpanError = (*TrailingError)(nil)
	_ SpanError = (*NameError)(nil)
	_ SpanError = (*CallError)(nil)
	_ SpanError = (*DomainError)(nil)
	_ SpanError = (*FuncError)(nil)
)
