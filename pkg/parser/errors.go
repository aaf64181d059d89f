package parser

import (
	"fmt"

	"github.com/leapstack-labs/sqlgram/pkg/token"
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Dialect string
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error (%s) at line %d, column %d: %s",
		e.Dialect, e.Pos.Line, e.Pos.Column, e.Message)
}

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
