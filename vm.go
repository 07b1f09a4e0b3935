package exprvm

import (
	"context"
	"log/slog"
)

// Machine runs programs. It keeps its operand stack between runs to avoid
// allocating. A Machine is not safe to use concurrently.
type Machine struct {
	stack []Value
	log   *slog.Logger
}

// NewMachine creates a machine. Only the Trace option affects machines.
func NewMachine(opts ...Option) *Machine {
	cfg := newConfig(opts)
	return &Machine{log: cfg.log}
}

// Run runs a program against the registry it was compiled with on a new
// machine.
func Run(p *Program, r *Registry) (Value, error) {
	var m Machine
	return m.Run(p, r)
}

// Run executes p using r to read variables and call functions, returning the
// single value p computes.
func (m *Machine) Run(p *Program, r *Registry) (Value, error) {
	m.stack = m.stack[:0]
	trace := m.log != nil && m.log.Enabled(context.Background(), slog.LevelDebug)
	for pc, ins := range p.code {
		if trace {
			m.log.Debug("exec", slog.Int("pc", pc), slog.String("ins", ins.String()), slog.Int("depth", len(m.stack)))
		}
		switch ins.Op {
		case OpNop: // do nothing
		case OpPushLit:
			m.stack = append(m.stack, ins.Val)
		case OpPushVar:
			if int(ins.Handle) >= len(r.vars) {
				return Value{}, m.malformed(pc, "variable handle out of range")
			}
			m.stack = append(m.stack, r.vars[ins.Handle].val)
		case OpCall:
			if int(ins.Handle) >= len(r.fns) {
				return Value{}, m.malformed(pc, "function handle out of range")
			}
			if ins.Args < 0 || ins.Args > len(m.stack) {
				return Value{}, m.malformed(pc, "not enough arguments on stack")
			}
			f := r.fns[ins.Handle]
			if a := f.fn.Arity(); a != Variadic && a != ins.Args {
				return Value{}, m.malformed(pc, "argument count does not match arity")
			}
			k := len(m.stack) - ins.Args
			// Limit capacity so that a function appending to its args can't
			// write over the stack.
			args := m.stack[k:len(m.stack):len(m.stack)]
			v, err := f.fn.Call(args)
			if err != nil {
				return Value{}, &FuncError{Func: f.name, Err: err, Loc: p.span(pc)}
			}
			m.stack = append(m.stack[:k], v)
		case OpBinary:
			if len(m.stack) < 2 {
				return Value{}, m.malformed(pc, "binary operator needs two operands")
			}
			if !ins.Binary.valid() {
				return Value{}, m.malformed(pc, "invalid binary operator "+ins.Binary.String())
			}
			b := m.stack[len(m.stack)-1]
			a := m.stack[len(m.stack)-2]
			v, err := ins.Binary.Apply(a, b)
			if err != nil {
				if de, ok := err.(*DomainError); ok {
					de.Loc = p.span(pc)
				}
				return Value{}, err
			}
			m.stack = m.stack[:len(m.stack)-1]
			m.stack[len(m.stack)-1] = v
		case OpUnary:
			if len(m.stack) < 1 {
				return Value{}, m.malformed(pc, "unary operator needs an operand")
			}
			if !ins.Unary.valid() {
				return Value{}, m.malformed(pc, "invalid unary operator "+ins.Unary.String())
			}
			m.stack[len(m.stack)-1] = ins.Unary.Apply(m.stack[len(m.stack)-1])
		default:
			return Value{}, m.malformed(pc, "invalid opcode "+ins.Op.String())
		}
	}
	if len(m.stack) != 1 {
		return Value{}, m.malformed(len(p.code), "program must leave exactly one value")
	}
	return m.stack[0], nil
}

// malformed creates an error for a program that should not have been
// produced. In debug builds, it panics instead.
func (m *Machine) malformed(pc int, reason string) error {
	err := &StackError{PC: pc, Depth: len(m.stack), Reason: reason}
	assertf(false, "%v", err)
	return err
}

// span returns the source location of the instruction at pc, if known.
func (p *Program) span(pc int) Span {
	if pc < len(p.spans) {
		return p.spans[pc]
	}
	return Span{}
}
