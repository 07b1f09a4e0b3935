package exprvm

// Compile resolves the names in e against r and flattens it into a program.
// The program is only valid with r.
func Compile(r *Registry, e *Expr) (*Program, error) {
	var p Program
	if err := compile(r, e.n, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// compile emits n's operands before n itself, so that evaluation proceeds
// left to right.
func compile(r *Registry, n *node, p *Program) error {
	switch n.kind {
	case nodeLit:
		p.emit(Instruction{Op: OpPushLit, Val: n.val}, n.span)
	case nodeName:
		h, ok := r.LookupVar(n.name)
		if !ok {
			return &NameError{Name: n.name, Loc: n.span}
		}
		p.emit(Instruction{Op: OpPushVar, Handle: h}, n.span)
	case nodeCall:
		for _, arg := range n.args {
			if err := compile(r, arg, p); err != nil {
				return err
			}
		}
		h, arity, ok := r.LookupFunc(n.name)
		if !ok {
			return &NameError{Name: n.name, Func: true, Loc: n.span}
		}
		if arity != Variadic && arity != len(n.args) {
			return &CallError{Func: n.name, Want: arity, Got: len(n.args), Loc: n.span}
		}
		p.emit(Instruction{Op: OpCall, Handle: h, Args: len(n.args)}, n.span)
	case nodeBinary:
		if err := compile(r, n.left, p); err != nil {
			return err
		}
		if err := compile(r, n.right, p); err != nil {
			return err
		}
		p.emit(Instruction{Op: OpBinary, Binary: n.binop}, n.span)
	case nodeUnary:
		if err := compile(r, n.left, p); err != nil {
			return err
		}
		p.emit(Instruction{Op: OpUnary, Unary: n.unop}, n.span)
	default:
		panic("exprvm: invalid AST node " + n.kind.String())
	}
	return nil
}
