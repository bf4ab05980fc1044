package parser

import "fmt"

// ParseError is the single structured error a failed parse surfaces. The
// first structural error aborts parsing; there is no recovery and no
// multi-error reporting.
type ParseError struct {
	// Line is the 1-based source line the error was detected at.
	Line int

	// Column is best-effort and usually 1; the parser works line-wise.
	Column int

	// Message is the human-readable description.
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// errAt builds a ParseError at the given line with column 1.
func errAt(msg string, line int) *ParseError {
	return &ParseError{Line: line, Column: 1, Message: msg}
}
