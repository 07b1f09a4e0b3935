package exprvm

import (
	"strconv"
	"strings"
)

type token struct {
	kind tokenKind
	span Span
	// val is the decoded value of a literal.
	val Value
	// text is the name of an identifier, or the source text of a literal.
	text string
}

func (t token) String() string {
	if t.kind == tokenLit || t.kind == tokenIdent {
		return t.kind.String() + ":" + t.text + "@" + t.span.String()
	}
	return t.kind.String() + "@" + t.span.String()
}

// tokenKind is the type of a token. Each kind other than literals and
// identifiers is exactly one operator or punctuation symbol.
type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenLit is an integer or floating-point literal.
	tokenLit
	// tokenIdent is a variable or function name.
	tokenIdent

	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenPercent
	tokenCaret
	tokenAmp
	tokenAmpAmp
	tokenPipe
	tokenPipePipe
	tokenBang
	tokenEqEq
	tokenBangEq
	tokenOpen
	tokenClose
	tokenComma
)

var tokenstrs = [...]string{
	tokenNone:     "none",
	tokenLit:      "literal",
	tokenIdent:    "identifier",
	tokenPlus:     "+",
	tokenMinus:    "-",
	tokenStar:     "*",
	tokenSlash:    "/",
	tokenPercent:  "%",
	tokenCaret:    "^",
	tokenAmp:      "&",
	tokenAmpAmp:   "&&",
	tokenPipe:     "|",
	tokenPipePipe: "||",
	tokenBang:     "!",
	tokenEqEq:     "==",
	tokenBangEq:   "!=",
	tokenOpen:     "(",
	tokenClose:    ")",
	tokenComma:    ",",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenstrs) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenstrs[k]
}

type lexer struct {
	src []byte
	pos int
}

// lex scans all tokens in src.
func lex(src []byte) ([]token, error) {
	l := lexer{src: src}
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenNone {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// next scans the next token. At the end of the input, the result has kind
// tokenNone.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{}, nil
	}
	start := l.pos
	c := l.src[l.pos]
	l.pos++
	tok := token{span: Span{From: start, To: start}}
	switch {
	case isDigit(c):
		return l.scanNum(start)
	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		tok.kind = tokenIdent
		tok.text = string(l.src[start:l.pos])
		tok.span.To = l.pos - 1
		return tok, nil
	}
	switch c {
	case '+':
		tok.kind = tokenPlus
	case '-':
		tok.kind = tokenMinus
	case '*':
		tok.kind = tokenStar
	case '/':
		tok.kind = tokenSlash
	case '%':
		tok.kind = tokenPercent
	case '^':
		tok.kind = tokenCaret
	case '(':
		tok.kind = tokenOpen
	case ')':
		tok.kind = tokenClose
	case ',':
		tok.kind = tokenComma
	case '&':
		tok.kind = l.pair('&', tokenAmp, tokenAmpAmp)
	case '|':
		tok.kind = l.pair('|', tokenPipe, tokenPipePipe)
	case '!':
		tok.kind = l.pair('=', tokenBang, tokenBangEq)
	case '=':
		if l.pos >= len(l.src) || l.src[l.pos] != '=' {
			return token{}, &LexError{Text: "=", Loc: tok.span}
		}
		l.pos++
		tok.kind = tokenEqEq
	default:
		return token{}, &LexError{Text: string(c), Loc: tok.span}
	}
	tok.span.To = l.pos - 1
	return tok, nil
}

// pair consumes second if it is the next byte, producing double, or else
// produces single.
func (l *lexer) pair(second byte, single, double tokenKind) tokenKind {
	if l.pos < len(l.src) && l.src[l.pos] == second {
		l.pos++
		return double
	}
	return single
}

// scanNum scans a literal whose first digit is at start. The literal
// continues through any run of digits and dots; whether it is an integer or
// a float depends on whether it contains dots.
func (l *lexer) scanNum(start int) (token, error) {
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		l.pos++
	}
	tok := token{
		kind: tokenLit,
		span: Span{From: start, To: l.pos - 1},
		text: string(l.src[start:l.pos]),
	}
	if strings.IndexByte(tok.text, '.') < 0 {
		i, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return token{}, &LexError{Text: tok.text, Kind: "integer", Loc: tok.span, Err: err}
		}
		tok.val = Int(i)
		return tok, nil
	}
	f, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return token{}, &LexError{Text: tok.text, Kind: "float", Loc: tok.span, Err: err}
	}
	tok.val = Float(f)
	return tok, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// LexError indicates an invalid token. It implements SpanError.
type LexError struct {
	// Text is the invalid character, or the literal that failed to decode.
	Text string
	// Kind is the type of literal the lexer was decoding, either "integer"
	// or "float", or the empty string if the error is an unexpected
	// character.
	Kind string
	// Loc is the location of the invalid text.
	Loc Span
	// Err is the decoding error for an invalid literal.
	Err error
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Loc, "unexpected character "+strconv.Quote(err.Text))
	}
	return errpos(err.Loc, "invalid "+err.Kind+" literal "+strconv.Quote(err.Text))
}

func (err *LexError) Span() (Span, bool) {
	return err.Loc, true
}

func (err *LexError) Unwrap() error {
	return err.Err
}
