package irgen

import (
	"fmt"
	"strings"

	"github.com/example/minic/internal/core/lexer"
)

type blockKind int

const (
	blockFunction blockKind = iota
	blockIf
	blockElse
	blockWhile
	blockFor
)

type block struct {
	kind       blockKind
	line       int
	startLabel string
	endLabel   string
	elseLabel  string
	inc        []lexer.Token
}

// Parser is a line-oriented parser. Feed it lines with ParseLine, then call
// Finish. A Parser is not safe for concurrent use.
type Parser struct {
	symbols   *SymbolTable
	blocks    []block
	code      []Instr
	functions []*Function
	current   *Function
	mainFound bool
	temps     int
	labels    int
	lastLine  int

	// pendingIf is a closed if block whose else label has not been placed
	// yet because the next line may still be an else.
	pendingIf *block
}

// New creates an empty parser.
func New() *Parser {
	return &Parser{symbols: NewSymbolTable()}
}

// ParseSource parses a complete source text.
func ParseSource(src string) (*Program, error) {
	p := New()
	for i, line := range strings.Split(src, "\n") {
		if err := p.ParseLine(line, i+1); err != nil {
			return nil, err
		}
	}
	return p.Finish()
}

// Symbols returns the symbol table built so far.
func (p *Parser) Symbols() *SymbolTable {
	return p.symbols
}

// ParseLine consumes a single source line. Blank and preprocessor lines
// are ignored.
func (p *Parser) ParseLine(line string, lineNo int) error {
	p.lastLine = lineNo

	tokens, err := lexer.Tokenize(strings.TrimSpace(line))
	if err != nil {
		return &SyntaxError{Line: lineNo, Msg: err.Error(), Err: err}
	}
	if len(tokens) == 0 || tokens[0].Kind == lexer.Preprocessor {
		return nil
	}

	if tokens[0].Value == "}" {
		if err := p.closeBlock(lineNo); err != nil {
			return err
		}
		tokens = tokens[1:]
		if len(tokens) == 0 {
			return nil
		}
		if tokens[0].Value != "else" {
			return syntaxErrorf(lineNo, "unexpected %q after '}'", tokens[0].Value)
		}
	}

	if tokens[0].Value == "else" {
		return p.parseElse(tokens, lineNo)
	}

	p.flushPendingIf()
	return p.parseStatement(tokens, lineNo)
}

// Finish validates the program and returns it.
func (p *Parser) Finish() (*Program, error) {
	p.flushPendingIf()

	if len(p.blocks) > 0 {
		open := p.blocks[len(p.blocks)-1]
		return nil, syntaxErrorf(p.lastLine, "unclosed block opened at line %d", open.line)
	}
	if !p.mainFound {
		return nil, &SyntaxError{Msg: "program must define a 'main' function"}
	}

	code := make([]Instr, len(p.code))
	copy(code, p.code)
	return &Program{
		Functions: p.functions,
		Symbols:   p.symbols.All(),
		Code:      code,
	}, nil
}

func (p *Parser) newTemp() string {
	p.temps++
	return fmt.Sprintf("t%d", p.temps)
}

func (p *Parser) newLabel() string {
	p.labels++
	return fmt.Sprintf("L%d", p.labels)
}

func (p *Parser) emit(instr Instr) {
	p.code = append(p.code, instr)
	if p.current != nil {
		p.current.Code = append(p.current.Code, instr)
	}
}

func (p *Parser) emitLabel(label string) {
	p.emit(Instr{Op: OpLabel, Label: label})
}

func (p *Parser) push(b block) {
	p.blocks = append(p.blocks, b)
}

func (p *Parser) flushPendingIf() {
	if p.pendingIf == nil {
		return
	}
	p.emitLabel(p.pendingIf.elseLabel)
	p.pendingIf = nil
}

func (p *Parser) closeBlock(lineNo int) error {
	p.flushPendingIf()

	if len(p.blocks) == 0 {
		return syntaxErrorf(lineNo, "unmatched closing brace")
	}
	b := p.blocks[len(p.blocks)-1]
	p.blocks = p.blocks[:len(p.blocks)-1]

	switch b.kind {
	case blockFunction:
		p.current = nil
	case blockIf:
		p.pendingIf = &b
	case blockElse:
		p.emitLabel(b.endLabel)
	case blockWhile:
		p.emit(Instr{Op: OpGoto, Label: b.startLabel})
		p.emitLabel(b.endLabel)
	case blockFor:
		if len(b.inc) > 0 {
			if err := p.simpleStatement(b.inc, lineNo); err != nil {
				return err
			}
		}
		p.emit(Instr{Op: OpGoto, Label: b.startLabel})
		p.emitLabel(b.endLabel)
	}
	return nil
}

func (p *Parser) parseElse(tokens []lexer.Token, lineNo int) error {
	if p.pendingIf == nil {
		return syntaxErrorf(lineNo, "unexpected 'else' without matching 'if'")
	}
	if len(tokens) != 2 || tokens[1].Value != "{" {
		return syntaxErrorf(lineNo, "expected '{' after 'else'")
	}

	ifBlock := p.pendingIf
	p.pendingIf = nil

	p.emit(Instr{Op: OpGoto, Label: ifBlock.endLabel})
	p.emitLabel(ifBlock.elseLabel)
	p.push(block{kind: blockElse, line: lineNo, endLabel: ifBlock.endLabel})
	return nil
}

func isTypeKeyword(t lexer.Token) bool {
	if t.Kind != lexer.Keyword {
		return false
	}
	switch t.Value {
	case "int", "float", "char", "void":
		return true
	}
	return false
}

func (p *Parser) parseStatement(tokens []lexer.Token, lineNo int) error {
	last := tokens[len(tokens)-1].Value

	if len(tokens) >= 4 && isTypeKeyword(tokens[0]) && tokens[1].Kind == lexer.Identifier &&
		tokens[2].Value == "(" && last == "{" {
		return p.parseFunction(tokens, lineNo)
	}

	if p.current == nil {
		return syntaxErrorf(lineNo, "statement outside of a function body")
	}

	switch tokens[0].Value {
	case "if", "while", "for":
		if last != "{" {
			return syntaxErrorf(lineNo, "expected '{' at end of %s", tokens[0].Value)
		}
		inner, err := parenthesized(tokens[:len(tokens)-1], lineNo)
		if err != nil {
			return err
		}
		switch tokens[0].Value {
		case "if":
			return p.parseIf(inner, lineNo)
		case "while":
			return p.parseWhile(inner, lineNo)
		default:
			return p.parseFor(inner, lineNo)
		}
	}

	if last != ";" {
		return syntaxErrorf(lineNo, "expected ';' at end of statement")
	}
	body := tokens[:len(tokens)-1]
	if len(body) == 0 {
		return nil
	}

	switch {
	case body[0].Value == "return":
		return p.parseReturn(body[1:], lineNo)
	case body[0].Value == "print":
		return p.parsePrint(body, lineNo)
	case isTypeKeyword(body[0]):
		return p.declaration(body, lineNo)
	default:
		return p.simpleStatement(body, lineNo)
	}
}

// parenthesized returns the tokens between a leading keyword's '(' and the
// final ')'.
func parenthesized(tokens []lexer.Token, lineNo int) ([]lexer.Token, error) {
	if len(tokens) < 3 || tokens[1].Value != "(" || tokens[len(tokens)-1].Value != ")" {
		return nil, syntaxErrorf(lineNo, "expected parenthesized condition after %s", tokens[0].Value)
	}
	return tokens[2 : len(tokens)-1], nil
}

func (p *Parser) parseFunction(tokens []lexer.Token, lineNo int) error {
	if len(p.blocks) > 0 {
		return syntaxErrorf(lineNo, "nested function definition")
	}

	name := tokens[1].Value
	closing := -1
	for i := 3; i < len(tokens); i++ {
		if tokens[i].Value == ")" {
			closing = i
			break
		}
	}
	if closing == -1 || closing != len(tokens)-2 {
		return syntaxErrorf(lineNo, "malformed header for function %s", name)
	}

	params, err := parseParams(tokens[3:closing], lineNo)
	if err != nil {
		return err
	}

	p.symbols.Declare(name, KindFunction)
	if name == "main" {
		p.mainFound = true
	}

	fn := &Function{Name: name, Params: params}
	p.functions = append(p.functions, fn)

	p.emit(Instr{Op: OpFunc, Callee: name})
	p.current = fn
	for _, param := range params {
		p.symbols.Declare(param, KindParameter)
		p.emit(Instr{Op: OpParam, Dst: param})
	}
	p.push(block{kind: blockFunction, line: lineNo})
	return nil
}

func parseParams(tokens []lexer.Token, lineNo int) ([]string, error) {
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0].Value == "void") {
		return nil, nil
	}

	var params []string
	for _, group := range splitOn(tokens, ",") {
		if len(group) != 2 || !isTypeKeyword(group[0]) || group[1].Kind != lexer.Identifier {
			return nil, syntaxErrorf(lineNo, "malformed parameter %q", strings.Join(lexer.Values(group), " "))
		}
		params = append(params, group[1].Value)
	}
	return params, nil
}

func splitOn(tokens []lexer.Token, sep string) [][]lexer.Token {
	var groups [][]lexer.Token
	start := 0
	for i, t := range tokens {
		if t.Value == sep {
			groups = append(groups, tokens[start:i])
			start = i + 1
		}
	}
	return append(groups, tokens[start:])
}

func (p *Parser) parseIf(cond []lexer.Token, lineNo int) error {
	c, err := p.expression(cond, lineNo)
	if err != nil {
		return err
	}
	elseLabel := p.newLabel()
	endLabel := p.newLabel()
	p.emit(Instr{Op: OpIfNot, Arg1: c, Label: elseLabel})
	p.push(block{kind: blockIf, line: lineNo, elseLabel: elseLabel, endLabel: endLabel})
	return nil
}

func (p *Parser) parseWhile(cond []lexer.Token, lineNo int) error {
	start, body, end := p.newLabel(), p.newLabel(), p.newLabel()

	p.emitLabel(start)
	if err := p.loopTest(cond, body, end, lineNo); err != nil {
		return err
	}
	p.push(block{kind: blockWhile, line: lineNo, startLabel: start, endLabel: end})
	return nil
}

func (p *Parser) parseFor(header []lexer.Token, lineNo int) error {
	parts := splitOn(header, ";")
	if len(parts) != 3 {
		return syntaxErrorf(lineNo, "for header needs init; condition; increment")
	}
	init, cond, inc := parts[0], parts[1], parts[2]

	start, body, end := p.newLabel(), p.newLabel(), p.newLabel()

	if len(init) > 0 {
		var err error
		if isTypeKeyword(init[0]) {
			err = p.declaration(init, lineNo)
		} else {
			err = p.simpleStatement(init, lineNo)
		}
		if err != nil {
			return err
		}
	}

	p.emitLabel(start)
	if err := p.loopTest(cond, body, end, lineNo); err != nil {
		return err
	}
	p.push(block{kind: blockFor, line: lineNo, startLabel: start, endLabel: end, inc: inc})
	return nil
}

// loopTest emits the condition check shared by while and for. An empty
// condition loops forever.
func (p *Parser) loopTest(cond []lexer.Token, body, end string, lineNo int) error {
	c := "1"
	if len(cond) > 0 {
		var err error
		if c, err = p.expression(cond, lineNo); err != nil {
			return err
		}
	}
	p.emit(Instr{Op: OpIf, Arg1: c, Label: body})
	p.emit(Instr{Op: OpGoto, Label: end})
	p.emitLabel(body)
	return nil
}

func (p *Parser) parseReturn(expr []lexer.Token, lineNo int) error {
	if len(expr) == 0 {
		p.emit(Instr{Op: OpReturn})
		return nil
	}
	v, err := p.expression(expr, lineNo)
	if err != nil {
		return err
	}
	p.emit(Instr{Op: OpReturn, Arg1: v})
	return nil
}

func (p *Parser) parsePrint(tokens []lexer.Token, lineNo int) error {
	if len(tokens) < 3 || tokens[1].Value != "(" {
		return syntaxErrorf(lineNo, "expected '(' after print")
	}
	e := &exprParser{p: p, toks: tokens, pos: 2, line: lineNo}
	args, err := e.args()
	if err != nil {
		return err
	}
	if e.pos != len(tokens) {
		return syntaxErrorf(lineNo, "unexpected %q after print arguments", tokens[e.pos].Value)
	}
	p.emit(Instr{Op: OpPrint, Args: args})
	return nil
}

// declaration handles "type name" and "type name = expr" without the ';'.
func (p *Parser) declaration(tokens []lexer.Token, lineNo int) error {
	if len(tokens) < 2 || tokens[1].Kind != lexer.Identifier {
		return syntaxErrorf(lineNo, "expected identifier after %s", tokens[0].Value)
	}
	name := tokens[1].Value
	p.symbols.Declare(name, KindVariable)

	if len(tokens) == 2 {
		return nil
	}
	if tokens[2].Value != "=" {
		return syntaxErrorf(lineNo, "unexpected %q in declaration of %s", tokens[2].Value, name)
	}
	return p.assign(name, tokens[3:], lineNo)
}

// simpleStatement handles assignment, compound assignment, increment,
// decrement and call statements, without the ';'.
func (p *Parser) simpleStatement(tokens []lexer.Token, lineNo int) error {
	first := tokens[0]
	if first.Kind != lexer.Identifier {
		return syntaxErrorf(lineNo, "unrecognized statement %q", strings.Join(lexer.Values(tokens), " "))
	}
	if len(tokens) == 1 {
		return syntaxErrorf(lineNo, "statement %q has no effect", first.Value)
	}

	op := tokens[1]
	switch {
	case op.Value == "=":
		return p.assign(first.Value, tokens[2:], lineNo)
	case op.Value == "(":
		_, err := p.expression(tokens, lineNo)
		return err
	case op.Kind == lexer.Operator && (op.Value == "++" || op.Value == "--"):
		if len(tokens) != 2 {
			return syntaxErrorf(lineNo, "unexpected tokens after %s%s", first.Value, op.Value)
		}
		t := p.newTemp()
		p.emit(Instr{Op: OpBinary, Dst: t, Arg1: first.Value, Operator: op.Value[:1], Arg2: "1"})
		p.emit(Instr{Op: OpCopy, Dst: first.Value, Arg1: t})
		return nil
	case op.Kind == lexer.Operator && len(op.Value) == 2 && op.Value[1] == '=' && isArithmetic(op.Value[:1]):
		rhs, err := p.expression(tokens[2:], lineNo)
		if err != nil {
			return err
		}
		t := p.newTemp()
		p.emit(Instr{Op: OpBinary, Dst: t, Arg1: first.Value, Operator: op.Value[:1], Arg2: rhs})
		p.emit(Instr{Op: OpCopy, Dst: first.Value, Arg1: t})
		return nil
	}

	return syntaxErrorf(lineNo, "unrecognized statement %q", strings.Join(lexer.Values(tokens), " "))
}

func (p *Parser) assign(name string, rhs []lexer.Token, lineNo int) error {
	v, err := p.expression(rhs, lineNo)
	if err != nil {
		return err
	}
	p.emit(Instr{Op: OpCopy, Dst: name, Arg1: v})
	return nil
}
