package exprvm

import "strconv"

// Span is a range of bytes in an expression's source. Both ends are
// inclusive, so the span of a one-byte token has From == To.
type Span struct {
	From int
	To   int
}

func (s Span) String() string {
	if s.From == s.To {
		return strconv.Itoa(s.From)
	}
	return strconv.Itoa(s.From) + ".." + strconv.Itoa(s.To)
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.To - s.From + 1
}

