package exprvm

import (
	"errors"
	"strconv"
	"strings"
)

const (
	ansiReset = "\x1b[0m"
	ansiError = "\x1b[1;31m"
	ansiMark  = "\x1b[31m"
	ansiGroup = "\x1b[1;34m"
)

// FormatError renders err for a person reading src, the source it came from.
// If err or any error it wraps is a SpanError with a location, the result
// includes the source line containing the start of the span with the span
// underlined. If color is true, the result contains ANSI color codes. The
// result always ends with a newline.
func FormatError(src string, err error, color bool) string {
	var b strings.Builder
	paint := func(code, s string) {
		if color {
			b.WriteString(code)
			b.WriteString(s)
			b.WriteString(ansiReset)
			return
		}
		b.WriteString(s)
	}
	paint(ansiError, "error")
	b.WriteString(": ")
	b.WriteString(err.Error())
	b.WriteByte('\n')

	var se SpanError
	if !errors.As(err, &se) {
		return b.String()
	}
	loc, ok := se.Span()
	if !ok || loc.From < 0 || loc.From > len(src) {
		return b.String()
	}
	// Find the line containing the start of the span.
	start := strings.LastIndexByte(src[:loc.From], '\n') + 1
	end := strings.IndexByte(src[start:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += start
	}
	line := strings.TrimSuffix(src[start:end], "\r")
	lineno := strconv.Itoa(strings.Count(src[:start], "\n") + 1)
	col := loc.From - start
	width := loc.To - loc.From + 1
	if col+width > len(line) {
		// The span continues onto later lines or past the end.
		width = len(line) - col
	}
	if width < 1 {
		width = 1
	}

	gutter := strings.Repeat(" ", len(lineno))
	paint(ansiGroup, gutter+" --> ")
	b.WriteString(lineno + ":" + strconv.Itoa(col+1) + "\n")
	paint(ansiGroup, gutter+" |")
	b.WriteByte('\n')
	paint(ansiGroup, lineno+" | ")
	b.WriteString(line)
	b.WriteByte('\n')
	paint(ansiGroup, gutter+" | ")
	// Keep tabs so the marker lines up with the source.
	for i := 0; i < col && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	paint(ansiMark, strings.Repeat("^", width))
	b.WriteByte('\n')
	return b.String()
}
