// Package interp executes three-address code produced by irgen.
package interp

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/minic/internal/core/irgen"
)

// DefaultMaxSteps bounds the number of instructions a single Run executes.
const DefaultMaxSteps = 1_000_000

// DefaultMaxDepth bounds how deeply calls may nest.
const DefaultMaxDepth = 10_000

// checkEvery is how many steps pass between context checks.
const checkEvery = 1024

// RuntimeError reports a failure while executing a program.
type RuntimeError struct {
	Function string
	Instr    string
	Msg      string
}

func (e *RuntimeError) Error() string {
	if e.Instr == "" {
		return fmt.Sprintf("runtime error in %s: %s", e.Function, e.Msg)
	}
	return fmt.Sprintf("runtime error in %s at %q: %s", e.Function, e.Instr, e.Msg)
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxSteps overrides DefaultMaxSteps. Values <= 0 are ignored.
func WithMaxSteps(n int) Option {
	return func(in *Interpreter) {
		if n > 0 {
			in.maxSteps = n
		}
	}
}

// WithMaxDepth overrides DefaultMaxDepth. Values <= 0 are ignored.
func WithMaxDepth(n int) Option {
	return func(in *Interpreter) {
		if n > 0 {
			in.maxDepth = n
		}
	}
}

// Interpreter runs a parsed program.
type Interpreter struct {
	out      io.Writer
	maxSteps int
	maxDepth int
	steps    int
	depth    int
	funcs    map[string]*compiled
}

type compiled struct {
	fn     *irgen.Function
	labels map[string]int
}

// New creates an interpreter writing print output to out.
func New(prog *irgen.Program, out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		out:      out,
		maxSteps: DefaultMaxSteps,
		maxDepth: DefaultMaxDepth,
		funcs:    make(map[string]*compiled),
	}
	for _, opt := range opts {
		opt(in)
	}
	for _, fn := range prog.Functions {
		c := &compiled{fn: fn, labels: make(map[string]int)}
		for pc, instr := range fn.Code {
			if instr.Op == irgen.OpLabel {
				c.labels[instr.Label] = pc
			}
		}
		in.funcs[fn.Name] = c
	}
	return in
}

// Steps returns the number of instructions executed so far.
func (in *Interpreter) Steps() int {
	return in.steps
}

// Run executes main and returns its return value.
func (in *Interpreter) Run(ctx context.Context) (int64, error) {
	return in.call(ctx, "main", nil)
}

func (in *Interpreter) call(ctx context.Context, name string, args []int64) (int64, error) {
	c, ok := in.funcs[name]
	if !ok {
		return 0, &RuntimeError{Function: name, Msg: "undefined function"}
	}

	f := &frame{fn: name, locals: make(map[string]int64)}
	next := 0
	code := c.fn.Code

	for pc := 0; pc < len(code); pc++ {
		instr := code[pc]

		in.steps++
		if in.steps > in.maxSteps {
			return 0, f.fail(instr, fmt.Sprintf("step limit of %d exceeded", in.maxSteps))
		}
		if in.steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		switch instr.Op {
		case irgen.OpParam:
			var v int64
			if next < len(args) {
				v = args[next]
			}
			next++
			f.locals[instr.Dst] = v

		case irgen.OpLabel, irgen.OpFunc:

		case irgen.OpCopy:
			v, err := f.value(instr, instr.Arg1)
			if err != nil {
				return 0, err
			}
			f.locals[instr.Dst] = v

		case irgen.OpBinary:
			a, err := f.value(instr, instr.Arg1)
			if err != nil {
				return 0, err
			}
			b, err := f.value(instr, instr.Arg2)
			if err != nil {
				return 0, err
			}
			v, err := apply(instr.Operator, a, b)
			if err != nil {
				return 0, f.fail(instr, err.Error())
			}
			f.locals[instr.Dst] = v

		case irgen.OpCall:
			vals := make([]int64, len(instr.Args))
			for i, arg := range instr.Args {
				v, err := f.value(instr, arg)
				if err != nil {
					return 0, err
				}
				vals[i] = v
			}
			if _, ok := in.funcs[instr.Callee]; !ok {
				return 0, f.fail(instr, fmt.Sprintf("undefined function %s", instr.Callee))
			}
			if in.depth >= in.maxDepth {
				return 0, f.fail(instr, fmt.Sprintf("call depth limit of %d exceeded", in.maxDepth))
			}
			in.depth++
			v, err := in.call(ctx, instr.Callee, vals)
			in.depth--
			if err != nil {
				return 0, err
			}
			f.locals[instr.Dst] = v

		case irgen.OpIf, irgen.OpIfNot:
			v, err := f.value(instr, instr.Arg1)
			if err != nil {
				return 0, err
			}
			if (v != 0) == (instr.Op == irgen.OpIf) {
				target, err := c.jump(f, instr)
				if err != nil {
					return 0, err
				}
				pc = target
			}

		case irgen.OpGoto:
			target, err := c.jump(f, instr)
			if err != nil {
				return 0, err
			}
			pc = target

		case irgen.OpReturn:
			if instr.Arg1 == "" {
				return 0, nil
			}
			return f.value(instr, instr.Arg1)

		case irgen.OpPrint:
			var b strings.Builder
			for _, arg := range instr.Args {
				if isString(arg) {
					b.WriteString(arg[1 : len(arg)-1])
					continue
				}
				v, err := f.value(instr, arg)
				if err != nil {
					return 0, err
				}
				b.WriteString(strconv.FormatInt(v, 10))
			}
			b.WriteByte('\n')
			if _, err := io.WriteString(in.out, b.String()); err != nil {
				return 0, fmt.Errorf("failed to write output: %w", err)
			}

		default:
			return 0, f.fail(instr, "unknown instruction")
		}
	}

	return 0, nil
}

func (c *compiled) jump(f *frame, instr irgen.Instr) (int, error) {
	target, ok := c.labels[instr.Label]
	if !ok {
		return 0, f.fail(instr, fmt.Sprintf("undefined label %s", instr.Label))
	}
	return target, nil
}

type frame struct {
	fn     string
	locals map[string]int64
}

func (f *frame) fail(instr irgen.Instr, msg string) *RuntimeError {
	return &RuntimeError{Function: f.fn, Instr: instr.String(), Msg: msg}
}

// value resolves an operand: an integer literal or a local variable.
// Decimal literals are truncated toward zero.
func (f *frame) value(instr irgen.Instr, operand string) (int64, error) {
	if operand == "" {
		return 0, f.fail(instr, "missing operand")
	}
	if c := operand[0]; c >= '0' && c <= '9' {
		if v, err := strconv.ParseInt(operand, 10, 64); err == nil {
			return v, nil
		}
		fv, err := strconv.ParseFloat(operand, 64)
		if err != nil {
			return 0, f.fail(instr, fmt.Sprintf("invalid number %s", operand))
		}
		return int64(fv), nil
	}
	if isString(operand) {
		return 0, f.fail(instr, fmt.Sprintf("string %s used as a number", operand))
	}
	v, ok := f.locals[operand]
	if !ok {
		return 0, f.fail(instr, fmt.Sprintf("undefined variable %s", operand))
	}
	return v, nil
}

func isString(operand string) bool {
	return len(operand) >= 2 && operand[0] == '"' && operand[len(operand)-1] == '"'
}

func apply(op string, a, b int64) (int64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	case "%":
		if b == 0 {
			return 0, fmt.Errorf("modulo by zero")
		}
		return a % b, nil
	case "<":
		return boolInt(a < b), nil
	case ">":
		return boolInt(a > b), nil
	case "<=":
		return boolInt(a <= b), nil
	case ">=":
		return boolInt(a >= b), nil
	case "==":
		return boolInt(a == b), nil
	case "!=":
		return boolInt(a != b), nil
	case "&&":
		return boolInt(a != 0 && b != 0), nil
	case "||":
		return boolInt(a != 0 || b != 0), nil
	}
	return 0, fmt.Errorf("unsupported operator %s", op)
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
