// Package irgen turns mini-C source, one line at a time, into
// three-address intermediate code.
package irgen

import (
	"fmt"
	"strings"
)

// Op is the kind of an intermediate instruction.
type Op int

const (
	OpFunc   Op = iota // func f:
	OpParam            // param p
	OpLabel            // L1:
	OpCopy             // x = y
	OpBinary           // t1 = a op b
	OpCall             // t1 = call f(a, b)
	OpIf               // if c goto L
	OpIfNot            // if not c goto L
	OpGoto             // goto L
	OpReturn           // return [x]
	OpPrint            // print(a, b)
)

// Instr is a single three-address instruction. Which fields are set
// depends on Op.
type Instr struct {
	Op       Op
	Dst      string
	Arg1     string
	Arg2     string
	Operator string
	Label    string
	Callee   string
	Args     []string
}

// String renders the instruction in its canonical text form.
func (i Instr) String() string {
	switch i.Op {
	case OpFunc:
		return fmt.Sprintf("func %s:", i.Callee)
	case OpParam:
		return fmt.Sprintf("param %s", i.Dst)
	case OpLabel:
		return i.Label + ":"
	case OpCopy:
		return fmt.Sprintf("%s = %s", i.Dst, i.Arg1)
	case OpBinary:
		return fmt.Sprintf("%s = %s %s %s", i.Dst, i.Arg1, i.Operator, i.Arg2)
	case OpCall:
		return fmt.Sprintf("%s = call %s(%s)", i.Dst, i.Callee, strings.Join(i.Args, ", "))
	case OpIf:
		return fmt.Sprintf("if %s goto %s", i.Arg1, i.Label)
	case OpIfNot:
		return fmt.Sprintf("if not %s goto %s", i.Arg1, i.Label)
	case OpGoto:
		return "goto " + i.Label
	case OpReturn:
		if i.Arg1 == "" {
			return "return"
		}
		return "return " + i.Arg1
	case OpPrint:
		return fmt.Sprintf("print(%s)", strings.Join(i.Args, ", "))
	default:
		return fmt.Sprintf("<op %d>", i.Op)
	}
}

// Function is the code of one function, starting with its param
// instructions. The func marker itself is not included.
type Function struct {
	Name   string
	Params []string
	Code   []Instr
}

// Program is the result of parsing a full source file.
type Program struct {
	Functions []*Function
	Symbols   []Symbol
	Code      []Instr
}

// Function returns the named function, or nil.
func (p *Program) Function(name string) *Function {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// Lines returns the text form of every instruction in order.
func (p *Program) Lines() []string {
	lines := make([]string, len(p.Code))
	for i, instr := range p.Code {
		lines[i] = instr.String()
	}
	return lines
}

// Text returns the program as newline-terminated intermediate code.
func (p *Program) Text() string {
	var b strings.Builder
	for _, line := range p.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
