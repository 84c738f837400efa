package irgen

import "fmt"

// SyntaxError reports a source line the parser cannot accept.
// Line is 0 for whole-program errors.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return "syntax error: " + e.Msg
	}
	return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxErrorf(line int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
