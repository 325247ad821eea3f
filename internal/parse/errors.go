// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax matches every *SyntaxError.
	ErrSyntax = errors.New("syntax error")

	// ErrSchema matches every *SchemaError.
	ErrSchema = errors.New("schema error")
)

// SyntaxError reports a category document that is not valid TOML.
// Line and Column are 1-based and zero when unknown.
type SyntaxError struct {
	Line    int
	Column  int
	Message string

	err error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return "syntax error: " + e.Message
}

// Unwrap returns the underlying decoder error.
func (e *SyntaxError) Unwrap() error { return e.err }

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// SchemaError reports a well-formed document that does not describe a
// valid tag category. Category is empty when the document names no
// single category.
type SchemaError struct {
	Category string
	Message  string
}

func (e *SchemaError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("schema error in category %q: %s", e.Category, e.Message)
	}
	return "schema error: " + e.Message
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }
