package compiler

import (
	"errors"
	"fmt"
)

// ErrNotFunction is returned when formatting a node that is a group of messages
var ErrNotFunction = errors.New("node is a group of messages, not a message")

// MissingOtherCaseError is raised if a selector block has no "other" case
type MissingOtherCaseError struct {
	Argument string
	Offset   int
}

// Error turns the error into a string
func (err *MissingOtherCaseError) Error() string {
	return fmt.Sprintf("selector on argument '%s' (at offset %d) has no 'other' case", err.Argument, err.Offset)
}

// DuplicateCaseError is raised if a case key occurs more than once within one selector block
type DuplicateCaseError struct {
	Argument string
	Key      string
	Offset   int
}

// Error turns the error into a string
func (err *DuplicateCaseError) Error() string {
	return fmt.Sprintf("selector on argument '%s' has a duplicate case '%s' (at offset %d)", err.Argument, err.Key, err.Offset)
}

// UnknownFormatterError is raised if a format type is neither built in nor registered
type UnknownFormatterError struct {
	Name   string
	Offset int
}

// Error turns the error into a string
func (err *UnknownFormatterError) Error() string {
	return fmt.Sprintf("formatter '%s' (at offset %d) is not registered", err.Name, err.Offset)
}

// RenderError is raised if a referenced formatter can not be rendered because it has no source
type RenderError struct {
	Formatter string
}

// Error turns the error into a string
func (err *RenderError) Error() string {
	return fmt.Sprintf("formatter '%s' has no JavaScript source to render", err.Formatter)
}
