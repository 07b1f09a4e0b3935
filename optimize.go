package exprvm

// Optimize returns a program equivalent to p with constant subexpressions
// folded into literals. p is not modified.
//
// Folding uses the same operator semantics as the stack machine, so results
// are identical to running p. Operations that would fail, like integer
// division by zero or an invalid operator, are left in place to fail at run
// time.
func Optimize(p *Program) *Program {
	q := &Program{
		code:  append([]Instruction(nil), p.code...),
		spans: append([]Span(nil), p.spans...),
	}
	q.strip()
	// Each round can expose new foldable windows, e.g. 1 2 + 3 * becomes
	// 3 3 * and then 9. The program shrinks every round that folds, so this
	// terminates.
	for q.fold() {
		q.strip()
	}
	return q
}

// fold performs one round of constant folding, replacing consumed
// instructions with OpNop. Returns whether anything was folded.
func (p *Program) fold() bool {
	folded := false
	code := p.code
	for i := 0; i < len(code); i++ {
		if code[i].Op != OpPushLit {
			continue
		}
		a := code[i].Val
		if i+2 < len(code) && code[i+1].Op == OpPushLit && code[i+2].Op == OpBinary && code[i+2].Binary.valid() {
			r, err := code[i+2].Binary.Apply(a, code[i+1].Val)
			if err == nil {
				code[i] = Instruction{Op: OpPushLit, Val: r}
				p.spans[i] = p.spans[i+2]
				code[i+1] = Instruction{Op: OpNop}
				code[i+2] = Instruction{Op: OpNop}
				folded = true
				i += 2
				continue
			}
		}
		if i+1 < len(code) && code[i+1].Op == OpUnary && code[i+1].Unary.valid() {
			code[i] = Instruction{Op: OpPushLit, Val: code[i+1].Unary.Apply(a)}
			p.spans[i] = p.spans[i+1]
			code[i+1] = Instruction{Op: OpNop}
			folded = true
			i++
		}
	}
	return folded
}

// strip removes OpNop instructions.
func (p *Program) strip() {
	k := 0
	for i, ins := range p.code {
		if ins.Op == OpNop {
			continue
		}
		p.code[k] = ins
		p.spans[k] = p.spans[i]
		k++
	}
	p.code = p.code[:k]
	p.spans = p.spans[:k]
}
