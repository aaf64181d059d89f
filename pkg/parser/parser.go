// Package parser runs a published dialect's grammar over lexed SQL.
package parser

import (
	"github.com/leapstack-labs/sqlgram/pkg/dialect"
	"github.com/leapstack-labs/sqlgram/pkg/grammar"
	"github.com/leapstack-labs/sqlgram/pkg/token"
)

// Statement is one parsed top-level statement.
type Statement struct {
	// Type is the segment type of the statement that matched,
	// e.g. "select_statement".
	Type string

	// Tokens holds the statement's tokens, terminator included.
	Tokens []token.Token
}

// Parser matches input against a dialect's file grammar.
type Parser struct {
	d *dialect.Dialect
}

// New returns a Parser for the given dialect. The dialect must be
// published.
func New(d *dialect.Dialect) (*Parser, error) {
	if !d.Published() {
		return nil, dialect.ErrNotPublished
	}
	return &Parser{d: d}, nil
}

// Dialect returns the dialect this parser runs.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.d
}

// Parse lexes sql and matches it against the dialect's FileSegment,
// returning the top-level statements. The whole input must be consumed.
func (p *Parser) Parse(sql string) ([]Statement, error) {
	ctx, err := p.lex(sql)
	if err != nil {
		return nil, err
	}
	if len(ctx.Tokens) == 0 {
		return nil, nil
	}

	file, err := p.d.Segment("FileSegment")
	if err != nil {
		return nil, err
	}
	consumed, ok, err := file.Match.Match(ctx, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{
			Dialect: p.d.Name(),
			Pos:     ctx.Tokens[0].Pos,
			Message: "no statement recognized",
		}
	}
	if consumed < len(ctx.Tokens) {
		at := ctx.Tokens[consumed]
		return nil, &ParseError{
			Dialect: p.d.Name(),
			Pos:     at.Pos,
			Message: "unexpected token " + at.Raw,
		}
	}

	return p.split(ctx)
}

// lex tokenizes sql into a match context of code tokens.
func (p *Parser) lex(sql string) (*grammar.Context, error) {
	var tokens []token.Token
	for _, tok := range Tokenize(sql) {
		if tok.Type == token.Illegal {
			return nil, &LexError{Pos: tok.Pos, Message: "illegal character " + tok.Raw}
		}
		if !tok.IsCode() {
			continue
		}
		tokens = append(tokens, tok)
	}
	return &grammar.Context{Tokens: tokens, Resolver: p.d}, nil
}

// split re-matches StatementSegment over the already-validated token
// stream to carve out and classify the individual statements.
func (p *Parser) split(ctx *grammar.Context) ([]Statement, error) {
	stmt, err := p.d.Segment("StatementSegment")
	if err != nil {
		return nil, err
	}

	var out []Statement
	pos := 0
	for pos < len(ctx.Tokens) {
		consumed, ok, err := stmt.Match.Match(ctx, pos)
		if err != nil {
			return nil, err
		}
		if !ok || consumed == 0 {
			// File-level tokens outside any statement, such as the
			// delimiters between statements in delimited file grammars.
			pos++
			continue
		}
		typ, err := p.classify(ctx, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, Statement{
			Type:   typ,
			Tokens: ctx.Tokens[pos : pos+consumed],
		})
		pos += consumed
	}
	return out, nil
}

// classify names the statement at pos by re-running the alternatives of
// the statement grammar's choice and resolving the winner to its
// segment type. Longest wins, declaration order breaks ties, mirroring
// choice matching itself.
func (p *Parser) classify(ctx *grammar.Context, pos int) (string, error) {
	stmt, err := p.d.Segment("StatementSegment")
	if err != nil {
		return "", err
	}
	choice := findChoice(stmt.Match)
	if choice == nil {
		return stmt.Type, nil
	}

	best := -1
	bestType := stmt.Type
	for _, alt := range choice.Alternatives {
		n, ok, err := alt.Match(ctx, pos)
		if err != nil {
			return "", err
		}
		if !ok || n <= best {
			continue
		}
		best = n
		bestType = p.alternativeType(alt)
	}
	return bestType, nil
}

// alternativeType resolves a choice alternative to a segment type name.
func (p *Parser) alternativeType(alt grammar.Node) string {
	ref, ok := alt.(*grammar.Reference)
	if !ok {
		return "statement"
	}
	seg, err := p.d.Segment(ref.Name)
	if err != nil {
		return "statement"
	}
	return seg.Type
}

// findChoice locates the outermost choice inside a statement grammar,
// looking through sequences and optionals.
func findChoice(n grammar.Node) *grammar.Choice {
	switch node := n.(type) {
	case *grammar.Choice:
		return node
	case *grammar.Sequence:
		for _, child := range node.Children {
			if c := findChoice(child); c != nil {
				return c
			}
		}
	case *grammar.Optional:
		return findChoice(node.Inner)
	}
	return nil
}
