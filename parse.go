package exprvm

import (
	"sort"
	"strings"
)

// Expr = lit | name | Call | Unary | Binary | '(' Expr ')'
// Call = name '(' [ Expr { ',' Expr } [ ',' ] ] ')'
// Unary = ( '-' | '!' ) Expr
// Binary = Expr op Expr
// op = '*' | '/' | '%' | '+' | '-' | '&' | '^' | '|' | '==' | '!=' | '&&' | '||'

// Expr is a parsed expression that can be compiled against a Registry.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression. The entire source must be one expression.
func Parse(src string) (*Expr, error) {
	toks, err := lex([]byte(src))
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	n, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if len(p.toks) != 0 {
		tok := p.toks[0]
		return nil, &TrailingError{Got: tok.kind.String(), Loc: tok.span}
	}
	return &Expr{n: n}, nil
}

// parser holds the tokens that remain to be parsed.
type parser struct {
	toks []token
}

// peek returns the next token, or a token of kind tokenNone at the end of
// the input.
func (p *parser) peek() token {
	if len(p.toks) == 0 {
		return token{}
	}
	return p.toks[0]
}

// skip consumes the next token.
func (p *parser) skip() {
	p.toks = p.toks[1:]
}

// consume consumes the next token, which must have the given kind.
func (p *parser) consume(want tokenKind) error {
	if len(p.toks) == 0 {
		return &EOFError{Want: want.String()}
	}
	tok := p.toks[0]
	if tok.kind != want {
		return &TokenError{Want: want.String(), Got: tok.kind.String(), Loc: tok.span}
	}
	p.skip()
	return nil
}

// parseExpr parses an expression containing only binary operators that bind
// more tightly than floor. Operators of equal precedence group to the left.
func (p *parser) parseExpr(floor int) (*node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		prec := precedence(tok.kind)
		if prec <= floor {
			return n, nil
		}
		if tok.kind == tokenOpen {
			n, err = p.parseCall(n)
			if err != nil {
				return nil, err
			}
			continue
		}
		p.skip()
		rhs, err := p.parseExpr(prec)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBinary, span: tok.span, binop: binop(tok.kind), left: n, right: rhs}
	}
}

// parsePrimary parses a literal, a name, a bracketed expression, or a unary
// operator and its operand.
func (p *parser) parsePrimary() (*node, error) {
	if len(p.toks) == 0 {
		return nil, &EOFError{}
	}
	tok := p.toks[0]
	switch tok.kind {
	case tokenLit:
		p.skip()
		return &node{kind: nodeLit, span: tok.span, val: tok.val}, nil
	case tokenIdent:
		p.skip()
		switch tok.text {
		case "true":
			return &node{kind: nodeLit, span: tok.span, val: Bool(true)}, nil
		case "false":
			return &node{kind: nodeLit, span: tok.span, val: Bool(false)}, nil
		}
		return &node{kind: nodeName, span: tok.span, name: tok.text}, nil
	case tokenOpen:
		p.skip()
		n, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if err := p.consume(tokenClose); err != nil {
			return nil, err
		}
		return n, nil
	case tokenMinus, tokenBang:
		p.skip()
		operand, err := p.parseExpr(unaryprec)
		if err != nil {
			return nil, err
		}
		op := Neg
		if tok.kind == tokenBang {
			op = Not
		}
		return &node{kind: nodeUnary, span: tok.span, unop: op, left: operand}, nil
	default:
		return nil, &StartError{Got: tok.kind.String(), Loc: tok.span}
	}
}

// parseCall parses the argument list following fn. The next token must be
// the open bracket.
func (p *parser) parseCall(fn *node) (*node, error) {
	if fn.kind != nodeName {
		return nil, &InvalidCallError{Loc: fn.span}
	}
	p.skip()
	n := &node{kind: nodeCall, span: fn.span, name: fn.name}
	for len(p.toks) != 0 && p.toks[0].kind != tokenClose {
		arg, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		n.args = append(n.args, arg)
		if p.peek().kind != tokenComma {
			break
		}
		p.skip()
	}
	if err := p.consume(tokenClose); err != nil {
		return nil, err
	}
	return n, nil
}

const (
	// callprec is the precedence of function application.
	callprec = 20
	// unaryprec is the precedence at which operands of unary operators are
	// parsed.
	unaryprec = 17
)

// precedence returns the binding power of a token following an operand.
// Higher is more binding. Tokens that cannot continue an expression have
// precedence 0.
func precedence(kind tokenKind) int {
	switch kind {
	case tokenOpen:
		return callprec
	case tokenStar, tokenSlash, tokenPercent:
		return 12
	case tokenPlus, tokenMinus:
		return 11
	case tokenAmp:
		return 7
	case tokenCaret:
		return 6
	case tokenPipe:
		return 5
	case tokenEqEq, tokenBangEq:
		return 4
	case tokenAmpAmp:
		return 3
	case tokenPipePipe:
		return 2
	default:
		return 0
	}
}

// binop gets the binary operator for a token kind with non-zero precedence
// other than tokenOpen.
func binop(kind tokenKind) BinaryOp {
	switch kind {
	case tokenPlus:
		return Add
	case tokenMinus:
		return Sub
	case tokenStar:
		return Mul
	case tokenSlash:
		return Div
	case tokenPercent:
		return Mod
	case tokenAmp:
		return BitAnd
	case tokenCaret:
		return BitXor
	case tokenPipe:
		return BitOr
	case tokenEqEq:
		return Equal
	case tokenBangEq:
		return NotEqual
	case tokenAmpAmp:
		return LogicalAnd
	case tokenPipePipe:
		return LogicalOr
	default:
		panic("exprvm: no binary operator for " + kind.String())
	}
}

// Vars returns the sorted names of variables the expression uses.
func (e *Expr) Vars() []string {
	return e.names(nodeName)
}

// Funcs returns the sorted names of functions the expression calls.
func (e *Expr) Funcs() []string {
	return e.names(nodeCall)
}

func (e *Expr) names(kind nodeKind) []string {
	seen := make(map[string]bool)
	var r []string
	e.n.walk(func(n *node) {
		if n.kind == kind && !seen[n.name] {
			seen[n.name] = true
			r = append(r, n.name)
		}
	})
	sort.Strings(r)
	return r
}

// String creates a string representation of the parsed expression with every
// operator and its operands in parentheses.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}
