package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlgram/pkg/dialect"
	"github.com/leapstack-labs/sqlgram/pkg/grammar"
)

// newMini builds a small published dialect with PING and PONG statements
// separated by semicolons.
func newMini(t *testing.T) *dialect.Dialect {
	t.Helper()

	d := dialect.New("mini")
	require.NoError(t, d.Add("DelimiterGrammar", grammar.Sym(";")))
	require.NoError(t, d.Register(dialect.NewSegment("PingStatementSegment", "ping_statement",
		grammar.Keyword("PING")), false))
	require.NoError(t, d.Register(dialect.NewSegment("PongStatementSegment", "pong_statement",
		grammar.Keyword("PONG")), false))
	require.NoError(t, d.Register(dialect.NewSegment("StatementSegment", "statement", grammar.OneOf(
		grammar.Ref("PingStatementSegment"),
		grammar.Ref("PongStatementSegment"),
	)), false))
	require.NoError(t, d.Register(dialect.NewSegment("FileSegment", "file",
		grammar.Delimited(grammar.Ref("StatementSegment")).
			WithDelimiter(grammar.Ref("DelimiterGrammar")).
			AllowTrailing()), false))
	require.NoError(t, d.Publish())
	return d
}

func TestNewRequiresPublishedDialect(t *testing.T) {
	d := dialect.New("unfinished")
	_, err := New(d)
	assert.ErrorIs(t, err, dialect.ErrNotPublished)
}

func TestParseClassifiesStatements(t *testing.T) {
	p, err := New(newMini(t))
	require.NoError(t, err)

	stmts, err := p.Parse("PING; PONG; PING")
	require.NoError(t, err)

	require.Len(t, stmts, 3)
	assert.Equal(t, "ping_statement", stmts[0].Type)
	assert.Equal(t, "pong_statement", stmts[1].Type)
	assert.Equal(t, "ping_statement", stmts[2].Type)

	assert.Equal(t, "PING", stmts[0].Tokens[0].Raw)
	assert.Equal(t, 1, stmts[1].Tokens[0].Pos.Line)
}

func TestParseEmptyInput(t *testing.T) {
	p, err := New(newMini(t))
	require.NoError(t, err)

	stmts, err := p.Parse("   -- nothing but a comment\n")
	require.NoError(t, err)
	assert.Empty(t, stmts)
}

func TestParseReportsUnconsumedInput(t *testing.T) {
	p, err := New(newMini(t))
	require.NoError(t, err)

	_, err = p.Parse("PING PING")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "mini", parseErr.Dialect)
	assert.Equal(t, 6, parseErr.Pos.Column, "error points at the second PING")
}

func TestParseReportsNoMatch(t *testing.T) {
	p, err := New(newMini(t))
	require.NoError(t, err)

	_, err = p.Parse("BANG")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Pos.Column)
}

func TestParseReportsIllegalCharacter(t *testing.T) {
	p, err := New(newMini(t))
	require.NoError(t, err)

	_, err = p.Parse("PING ?")
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}
