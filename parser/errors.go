package parser

import "fmt"

// SyntaxError represents a malformed pattern.
// Offset is a byte offset into the pattern, Line and Column are 1-based.
type SyntaxError struct {
	Offset  int
	Line    int
	Column  int
	Message string
}

// Error turns the error into a string
func (err *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", err.Line, err.Column, err.Message)
}

// RecursionLimitError is raised when sub-messages are nested deeper than the configured maximum
type RecursionLimitError struct {
	Depth  int
	Offset int
}

// Error turns the error into a string
func (err *RecursionLimitError) Error() string {
	return fmt.Sprintf("sub-messages nested deeper than %d levels (at offset %d)", err.Depth, err.Offset)
}

// newError creates a new syntax error pointing at the given byte offset
func (parser *Parser) newError(offset int, msgFormat string, replacements ...interface{}) *SyntaxError {
	line, column := parser.str.Position(offset)
	return &SyntaxError{
		Offset:  offset,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(msgFormat, replacements...),
	}
}
