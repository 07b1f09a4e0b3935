package exprvm

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind
	// span is the location of the operator for unary and binary nodes and of
	// the introducing token otherwise.
	span Span

	val  Value
	name string

	binop BinaryOp
	unop  UnaryOp

	left  *node
	right *node
	args  []*node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeLit    // push val
	nodeName   // push lookup(name)
	nodeCall   // eval args in order, call name
	nodeBinary // eval left, eval right, apply binop
	nodeUnary  // eval left, apply unop
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeLit:
		return "Lit"
	case nodeName:
		return "Name"
	case nodeCall:
		return "Call"
	case nodeBinary:
		return "Binary"
	case nodeUnary:
		return "Unary"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes n fully bracketed, so that the grouping of every operator is
// visible.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeLit:
		if n.val.Kind() != KindFloat {
			b.WriteString(n.val.String())
			return
		}
		// Floats are written so they lex as floats again.
		s := strconv.FormatFloat(n.val.AsFloat(), 'f', -1, 64)
		b.WriteString(s)
		if !strings.ContainsAny(s, ".IN") {
			b.WriteString(".0")
		}
	case nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, arg := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			arg.fmt(b)
		}
		b.WriteByte(')')
	case nodeBinary:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.binop.String())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeUnary:
		b.WriteByte('(')
		b.WriteString(n.unop.String())
		n.left.fmt(b)
		b.WriteByte(')')
	default:
		panic("exprvm: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// walk calls f on n and each of its descendants in prefix order.
func (n *node) walk(f func(*node)) {
	f(n)
	switch n.kind {
	case nodeCall:
		for _, arg := range n.args {
			arg.walk(f)
		}
	case nodeBinary:
		n.left.walk(f)
		n.right.walk(f)
	case nodeUnary:
		n.left.walk(f)
	}
}
