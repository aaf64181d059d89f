package parser

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlgram/pkg/token"
)

// symbols holds every operator and punctuation sequence the lexer emits,
// longest first so compound operators win over their prefixes.
var symbols = []string{
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<=", ">=", "<>", "!=", "||", "::",
	"+", "-", "*", "/", "%", "&", "|", "^",
	"<", ">", "=", ".", ",", "(", ")", "[", "]", ";", ":",
}

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	// Comments collected during lexing
	Comments []*token.Comment
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. Raw always holds the exact source
// text, quotes included for quoted tokens.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Raw: "", Pos: pos}
	case l.ch == '\'':
		return token.Token{Type: token.SingleQuoted, Raw: l.readQuoted('\''), Pos: pos}
	case l.ch == '"':
		return token.Token{Type: token.DoubleQuoted, Raw: l.readQuoted('"'), Pos: pos}
	case isWordStart(l.ch):
		return token.Token{Type: token.Word, Raw: l.readWord(), Pos: pos}
	case isDigit(l.ch):
		return token.Token{Type: token.Number, Raw: l.readNumber(), Pos: pos}
	}

	if sym, ok := l.matchSymbol(); ok {
		return token.Token{Type: token.Symbol, Raw: sym, Pos: pos}
	}

	tok := token.Token{Type: token.Illegal, Raw: string(l.ch), Pos: pos}
	l.readChar()
	return tok
}

// matchSymbol consumes the longest operator or punctuation sequence at
// the current position.
func (l *Lexer) matchSymbol() (string, bool) {
	if l.pos >= len(l.input) {
		return "", false
	}
	remaining := l.input[l.pos:]
	for _, sym := range symbols {
		if strings.HasPrefix(remaining, sym) {
			for range sym {
				l.readChar()
			}
			return sym, true
		}
	}
	return "", false
}

// skipWhitespaceAndComments skips whitespace and collects comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}

		// Line comment (-- ...)
		if l.ch == '-' && l.peekChar() == '-' {
			l.collectLineComment()
			continue
		}

		// Block comment (/* ... */)
		if l.ch == '/' && l.peekChar() == '*' {
			l.collectBlockComment()
			continue
		}

		break
	}
}

// collectLineComment collects a line comment.
func (l *Lexer) collectLineComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.LineComment,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// collectBlockComment collects a block comment.
func (l *Lexer) collectBlockComment() {
	startPos := l.currentPos()
	startOffset := l.pos

	l.readChar() // skip '/'
	l.readChar() // skip '*'

	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip '*'
			l.readChar() // skip '/'
			break
		}
		l.readChar()
	}

	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.BlockComment,
		Text: l.input[startOffset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// readQuoted reads a quoted token delimited by quote. Doubled quotes are
// the escape form and stay in the raw text: 'it''s' comes back verbatim.
func (l *Lexer) readQuoted(quote byte) string {
	start := l.pos
	l.readChar() // skip opening quote

	for l.ch != 0 {
		if l.ch == quote {
			if l.peekChar() == quote {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			break
		}
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readWord reads an unquoted word. Words starting with '@' (T-SQL
// variables) may also contain dots.
func (l *Lexer) readWord() string {
	start := l.pos
	variable := l.ch == '@'
	l.readChar()
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || (variable && l.ch == '.') {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

func isWordStart(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch == '@' || ch == '#'
}

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, terminated by an EOF token.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
