package irgen

import (
	"github.com/example/minic/internal/core/lexer"
)

// precedence of the binary operators; higher binds tighter.
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, ">": 4, "<=": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func isArithmetic(op string) bool {
	switch op {
	case "+", "-", "*", "/", "%":
		return true
	}
	return false
}

// expression emits code for tokens and returns the operand that holds the
// result: a literal or variable for bare operands, otherwise a fresh temp.
func (p *Parser) expression(tokens []lexer.Token, lineNo int) (string, error) {
	if len(tokens) == 0 {
		return "", syntaxErrorf(lineNo, "missing expression")
	}
	e := &exprParser{p: p, toks: tokens, line: lineNo}
	v, err := e.binary(1)
	if err != nil {
		return "", err
	}
	if e.pos != len(tokens) {
		return "", syntaxErrorf(lineNo, "unexpected %q in expression", tokens[e.pos].Value)
	}
	return v, nil
}

type exprParser struct {
	p    *Parser
	toks []lexer.Token
	pos  int
	line int
}

func (e *exprParser) peek() (lexer.Token, bool) {
	if e.pos >= len(e.toks) {
		return lexer.Token{}, false
	}
	return e.toks[e.pos], true
}

func (e *exprParser) next() (lexer.Token, bool) {
	t, ok := e.peek()
	if ok {
		e.pos++
	}
	return t, ok
}

// binary parses a left-associative chain of operators binding at least as
// tightly as minPrec.
func (e *exprParser) binary(minPrec int) (string, error) {
	left, err := e.primary()
	if err != nil {
		return "", err
	}

	for {
		tok, ok := e.peek()
		if !ok || tok.Kind != lexer.Operator {
			return left, nil
		}
		prec, known := precedence[tok.Value]
		if !known {
			return "", syntaxErrorf(e.line, "unsupported operator %q", tok.Value)
		}
		if prec < minPrec {
			return left, nil
		}
		e.pos++

		right, err := e.binary(prec + 1)
		if err != nil {
			return "", err
		}
		t := e.p.newTemp()
		e.p.emit(Instr{Op: OpBinary, Dst: t, Arg1: left, Operator: tok.Value, Arg2: right})
		left = t
	}
}

func (e *exprParser) primary() (string, error) {
	tok, ok := e.next()
	if !ok {
		return "", syntaxErrorf(e.line, "unexpected end of expression")
	}

	switch {
	case tok.Kind == lexer.Number, tok.Kind == lexer.String:
		return tok.Value, nil
	case tok.Kind == lexer.Identifier:
		if next, ok := e.peek(); ok && next.Value == "(" {
			e.pos++
			return e.call(tok.Value)
		}
		return tok.Value, nil
	case tok.Value == "(":
		v, err := e.binary(1)
		if err != nil {
			return "", err
		}
		if closing, ok := e.next(); !ok || closing.Value != ")" {
			return "", syntaxErrorf(e.line, "missing ')' in expression")
		}
		return v, nil
	}

	return "", syntaxErrorf(e.line, "unexpected %q in expression", tok.Value)
}

func (e *exprParser) call(callee string) (string, error) {
	args, err := e.args()
	if err != nil {
		return "", err
	}
	t := e.p.newTemp()
	e.p.emit(Instr{Op: OpCall, Dst: t, Callee: callee, Args: args})
	return t, nil
}

// args parses a comma separated argument list after the opening '(' and
// consumes the closing ')'.
func (e *exprParser) args() ([]string, error) {
	if tok, ok := e.peek(); ok && tok.Value == ")" {
		e.pos++
		return nil, nil
	}

	var args []string
	for {
		v, err := e.binary(1)
		if err != nil {
			return nil, err
		}
		args = append(args, v)

		tok, ok := e.next()
		if !ok {
			return nil, syntaxErrorf(e.line, "missing ')' after arguments")
		}
		switch tok.Value {
		case ",":
			continue
		case ")":
			return args, nil
		default:
			return nil, syntaxErrorf(e.line, "unexpected %q in argument list", tok.Value)
		}
	}
}
