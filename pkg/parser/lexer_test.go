package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlgram/pkg/token"
)

func TestLexerClasses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			"words and symbols",
			"SELECT * FROM users;",
			[]token.Token{
				{Type: token.Word, Raw: "SELECT"},
				{Type: token.Symbol, Raw: "*"},
				{Type: token.Word, Raw: "FROM"},
				{Type: token.Word, Raw: "users"},
				{Type: token.Symbol, Raw: ";"},
				{Type: token.EOF, Raw: ""},
			},
		},
		{
			"quoted forms keep their quotes",
			`SELECT 'it''s', "col""name"`,
			[]token.Token{
				{Type: token.Word, Raw: "SELECT"},
				{Type: token.SingleQuoted, Raw: `'it''s'`},
				{Type: token.Symbol, Raw: ","},
				{Type: token.DoubleQuoted, Raw: `"col""name"`},
				{Type: token.EOF, Raw: ""},
			},
		},
		{
			"numbers",
			"1 45.67 1e10 2E-5",
			[]token.Token{
				{Type: token.Number, Raw: "1"},
				{Type: token.Number, Raw: "45.67"},
				{Type: token.Number, Raw: "1e10"},
				{Type: token.Number, Raw: "2E-5"},
				{Type: token.EOF, Raw: ""},
			},
		},
		{
			"compound operators win over prefixes",
			"@x += 1 <> 2 :: y",
			[]token.Token{
				{Type: token.Word, Raw: "@x"},
				{Type: token.Symbol, Raw: "+="},
				{Type: token.Number, Raw: "1"},
				{Type: token.Symbol, Raw: "<>"},
				{Type: token.Number, Raw: "2"},
				{Type: token.Symbol, Raw: "::"},
				{Type: token.Word, Raw: "y"},
				{Type: token.EOF, Raw: ""},
			},
		},
		{
			"variables and temp tables are words",
			"@scope.total #temp _col",
			[]token.Token{
				{Type: token.Word, Raw: "@scope.total"},
				{Type: token.Word, Raw: "#temp"},
				{Type: token.Word, Raw: "_col"},
				{Type: token.EOF, Raw: ""},
			},
		},
		{
			"illegal byte",
			"SELECT ?",
			[]token.Token{
				{Type: token.Word, Raw: "SELECT"},
				{Type: token.Illegal, Raw: "?"},
				{Type: token.EOF, Raw: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Type, got[i].Type, "token %d", i)
				assert.Equal(t, want.Raw, got[i].Raw, "token %d", i)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := Tokenize("SELECT *\nFROM users")

	require.Len(t, tokens, 5)
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Pos)
	assert.Equal(t, token.Position{Line: 1, Column: 8, Offset: 7}, tokens[1].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 1, Offset: 9}, tokens[2].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 6, Offset: 14}, tokens[3].Pos)
}

func TestLexerCollectsComments(t *testing.T) {
	l := NewLexer("SELECT 1 -- trailing note\n/* block\ncomment */ FROM t")
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	require.Len(t, tokens, 4)
	require.Len(t, l.Comments, 2)

	assert.Equal(t, token.LineComment, l.Comments[0].Kind)
	assert.Equal(t, "-- trailing note", l.Comments[0].Text)
	assert.True(t, l.Comments[0].IsLine())

	assert.Equal(t, token.BlockComment, l.Comments[1].Kind)
	assert.Equal(t, "/* block\ncomment */", l.Comments[1].Text)
	assert.False(t, l.Comments[1].IsLine())
}
