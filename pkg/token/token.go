// Package token defines the raw lexical tokens produced by the lexer and
// consumed by grammar matching.
//
// Unlike keyword-aware tokenizers, the lexer emits only coarse lexeme
// classes (word, number, quoted forms, symbol). Keyword recognition is a
// grammar concern: dialects decide which words are keywords, so the same
// token stream can be matched under different dialects.
package token

import "fmt"

// Type classifies a raw lexeme.
type Type int

const (
	// EOF marks the end of the input.
	EOF Type = iota
	// Word is an unquoted word: an identifier or keyword candidate.
	// Includes @-prefixed words (T-SQL variables).
	Word
	// Number is a numeric literal: 123, 45.67, 1e10.
	Number
	// SingleQuoted is a 'string literal'. Raw includes the quotes.
	SingleQuoted
	// DoubleQuoted is a "quoted identifier or literal". Raw includes the quotes.
	DoubleQuoted
	// Symbol is an operator or punctuation lexeme: ( ) , ; += :: etc.
	Symbol
	// Illegal is a byte the lexer could not classify.
	Illegal
)

// String returns the lexeme class name.
// These names are the stable vocabulary used by token-class grammar
// matchers and structural serialization.
func (t Type) String() string {
	switch t {
	case EOF:
		return "eof"
	case Word:
		return "word"
	case Number:
		return "numeric"
	case SingleQuoted:
		return "single_quote"
	case DoubleQuoted:
		return "double_quote"
	case Symbol:
		return "symbol"
	case Illegal:
		return "illegal"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// TypeFromName returns the token type for a lexeme class name.
// It is the inverse of Type.String and is used when rebuilding grammar
// trees from their structural description.
func TypeFromName(name string) (Type, bool) {
	for _, t := range []Type{EOF, Word, Number, SingleQuoted, DoubleQuoted, Symbol, Illegal} {
		if t.String() == name {
			return t, true
		}
	}
	return Illegal, false
}

// Token is one raw lexeme with position information.
type Token struct {
	Type Type
	Raw  string // exact source text, quotes included for quoted forms
	Pos  Position
}

// IsCode reports whether the token takes part in grammar matching.
func (t Token) IsCode() bool {
	return t.Type != EOF && t.Type != Illegal
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Raw)
}
