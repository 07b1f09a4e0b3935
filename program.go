package exprvm

import (
	"strconv"
	"strings"
)

// Opcode is the operation of an Instruction.
type Opcode int8

const (
	// OpNop does nothing. The optimizer uses it as a placeholder.
	OpNop Opcode = iota
	// OpPushLit pushes Val.
	OpPushLit
	// OpPushVar pushes the variable with handle Handle.
	OpPushVar
	// OpCall pops Args values and pushes the result of calling the function
	// with handle Handle on them. The deepest value is the first argument.
	OpCall
	// OpBinary pops the right operand, then the left, and pushes the result
	// of Binary.
	OpBinary
	// OpUnary pops an operand and pushes the result of Unary.
	OpUnary
)

func (op Opcode) String() string {
	switch op {
	case OpNop:
		return "nop"
	case OpPushLit:
		return "lit"
	case OpPushVar:
		return "var"
	case OpCall:
		return "call"
	case OpBinary:
		return "binary"
	case OpUnary:
		return "unary"
	default:
		return "Opcode(" + strconv.Itoa(int(op)) + ")"
	}
}

// Instruction is one step of a Program. Only the fields that its Op
// describes are meaningful.
type Instruction struct {
	Op     Opcode
	Val    Value
	Handle Handle
	Args   int
	Binary BinaryOp
	Unary  UnaryOp
}

func (ins Instruction) String() string {
	switch ins.Op {
	case OpPushLit:
		return "lit " + ins.Val.GoString()
	case OpPushVar:
		return "var " + strconv.FormatUint(uint64(ins.Handle), 10)
	case OpCall:
		return "call " + strconv.FormatUint(uint64(ins.Handle), 10) + " " + strconv.Itoa(ins.Args)
	case OpBinary:
		return "binary " + ins.Binary.String()
	case OpUnary:
		return "unary " + ins.Unary.String()
	default:
		return ins.Op.String()
	}
}

// Program is a compiled expression. It is immutable and may be run any
// number of times, but only against the Registry it was compiled with.
type Program struct {
	code []Instruction
	// spans holds the source location of each instruction, for errors.
	spans []Span
}

// NewProgram creates a program from a sequence of instructions. Nothing
// checks that the instructions are well formed.
func NewProgram(code []Instruction) *Program {
	return &Program{
		code:  append([]Instruction(nil), code...),
		spans: make([]Span, len(code)),
	}
}

// Instructions returns a copy of the program's instructions.
func (p *Program) Instructions() []Instruction {
	return append([]Instruction(nil), p.code...)
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.code)
}

// String disassembles the program with one instruction per line.
func (p *Program) String() string {
	var b strings.Builder
	for i, ins := range p.code {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\t')
		b.WriteString(ins.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// emit appends an instruction.
func (p *Program) emit(ins Instruction, loc Span) {
	p.code = append(p.code, ins)
	p.spans = append(p.spans, loc)
}
