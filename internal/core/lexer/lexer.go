// Package lexer splits single lines of mini-C source into tokens.
package lexer

import (
	"fmt"
	"regexp"
)

// Kind identifies the class of a token.
type Kind string

// Token kinds, in match priority order.
const (
	Preprocessor Kind = "PREPROCESSOR"
	String       Kind = "STRING"
	Format       Kind = "FORMAT"
	Keyword      Kind = "KEYWORD"
	Identifier   Kind = "IDENTIFIER"
	Number       Kind = "NUMBER"
	Operator     Kind = "OPERATOR"
	Delimiter    Kind = "DELIMITER"

	skip     Kind = "SKIP"
	newline  Kind = "NEWLINE"
	mismatch Kind = "MISMATCH"
)

// Token is a single lexeme.
type Token struct {
	Kind  Kind
	Value string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// Error reports a character no rule accepts.
type Error struct {
	Char string
}

func (e *Error) Error() string {
	return fmt.Sprintf("illegal token: %s", e.Char)
}

type rule struct {
	kind    Kind
	pattern string
}

var rules = []rule{
	{Preprocessor, `#.*`},
	{String, `".*?"`},
	{Format, `%[dfcs]`},
	{Keyword, `\b(?:int|float|char|return|if|else|while|for|void|print)\b`},
	{Identifier, `\b[_a-zA-Z][_a-zA-Z0-9]*\b`},
	{Number, `\b\d+(?:\.\d+)?\b`},
	{Operator, `[+\-*/=<>!&|%]+`},
	{Delimiter, `[(){},;]`},
	{skip, `[ \t]+`},
	{newline, `\n`},
	{mismatch, `.`},
}

var tokenPattern = compile(`^`)

// tokenPatternAfter also consumes the byte before the token so that
// \b sees the real left boundary instead of the start of the slice.
var tokenPatternAfter = compile(`^(?s:.)`)

// compile joins the rules into one anchored alternation. RE2 alternation
// is leftmost-first, so earlier rules win ties.
func compile(prefix string) *regexp.Regexp {
	expr := prefix + `(?:`
	for i, r := range rules {
		if i > 0 {
			expr += "|"
		}
		expr += fmt.Sprintf("(?P<%s>%s)", r.kind, r.pattern)
	}
	return regexp.MustCompile(expr + ")")
}

// Tokenize returns the tokens of a single line. Whitespace is dropped.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	names := tokenPattern.SubexpNames()

	pos := 0
	for pos < len(line) {
		re, base := tokenPattern, pos
		if pos > 0 {
			re, base = tokenPatternAfter, pos-1
		}
		m := re.FindStringSubmatchIndex(line[base:])
		if m == nil {
			return nil, &Error{Char: line[pos : pos+1]}
		}

		var kind Kind
		start, end := pos, pos
		for i := 1; i < len(names); i++ {
			if m[2*i] >= 0 && names[i] != "" {
				kind = Kind(names[i])
				start, end = base+m[2*i], base+m[2*i+1]
				break
			}
		}
		if end <= pos {
			return nil, &Error{Char: line[pos : pos+1]}
		}
		value := line[start:end]

		switch kind {
		case skip, newline:
		case mismatch:
			return nil, &Error{Char: value}
		default:
			tokens = append(tokens, Token{Kind: kind, Value: value})
		}
		pos = end
	}

	return tokens, nil
}

// Values returns the token values in order.
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, t := range tokens {
		values[i] = t.Value
	}
	return values
}
