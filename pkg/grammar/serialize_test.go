package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlgram/pkg/token"
)

func TestDescribeBuildRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"keyword", Keyword("SELECT")},
		{"symbol", Sym("+=")},
		{"regex with trim", Regex(`'([^']|'')*'`).Trim(`'`)},
		{"typed", Typed(token.DoubleQuoted).Trim(`"`)},
		{"keyword of set", KeywordOf("reserved_keywords")},
		{"ref with exclude", Ref("BareWordGrammar").Exclude(KeywordOf("reserved_keywords"))},
		{"optional ref", Ref("DelimiterGrammar").Optional()},
		{"sequence", Seq(Keyword("DROP"), Keyword("TABLE"), Ref("TableReferenceSegment"))},
		{"choice", OneOf(Keyword("TRUE"), Keyword("FALSE"))},
		{"repeat", AnyNumberOf(Ref("StatementSegment"))},
		{"brackets", Bracketed(Ref("ExpressionSegment")).WithBrackets("[", "]")},
		{"delimited", Delimited(Ref("ColumnReferenceSegment")).WithDelimiter(Sym(";")).AllowTrailing()},
		{
			"nested statement grammar",
			Seq(
				Keyword("SET"),
				Ref("VariableNameSegment"),
				OneOf(Sym("="), Sym("+=")),
				Opt(AnyNumberOf(Ref("LiteralGrammar"))),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Describe(tt.node)
			require.NoError(t, err)

			rebuilt, err := Build(spec)
			require.NoError(t, err)

			// Structural equality of the descriptions implies the rebuilt
			// grammar matches the same streams.
			respec, err := Describe(rebuilt)
			require.NoError(t, err)
			assert.Equal(t, spec, respec)
		})
	}
}

func TestDescribedGrammarSurvivesYAML(t *testing.T) {
	node := Seq(
		Keyword("DECLARE"),
		Ref("VariableNameSegment"),
		Opt(Seq(Keyword("DEFAULT"), Ref("LiteralGrammar"))),
	)

	spec, err := Describe(node)
	require.NoError(t, err)

	raw, err := yaml.Marshal(spec)
	require.NoError(t, err)

	var decoded NodeSpec
	require.NoError(t, yaml.Unmarshal(raw, &decoded))

	rebuilt, err := Build(&decoded)
	require.NoError(t, err)

	respec, err := Describe(rebuilt)
	require.NoError(t, err)
	assert.Equal(t, spec, respec)
}

func TestBuildRejectsUnknownKind(t *testing.T) {
	_, err := Build(&NodeSpec{Kind: "lookahead"})
	assert.Error(t, err)

	_, err = Build(&NodeSpec{Kind: KindToken, TokenClass: "no_such_class"})
	assert.Error(t, err)
}

func TestRoundTripMatchesSameStream(t *testing.T) {
	resolver := &mapResolver{
		rules: map[string]Node{
			"NumberSegment": Typed(token.Number),
		},
	}
	original := Seq(Keyword("GO"), Ref("NumberSegment").Optional())

	spec, err := Describe(original)
	require.NoError(t, err)
	rebuilt, err := Build(spec)
	require.NoError(t, err)

	for _, tokens := range [][]string{
		{"GO"},
		{"GO", "5"},
		{"STOP"},
	} {
		ctx := &Context{Tokens: toks(tokens...), Resolver: resolver}

		on, ook, err := original.Match(ctx, 0)
		require.NoError(t, err)
		rn, rok, err := rebuilt.Match(ctx, 0)
		require.NoError(t, err)

		assert.Equal(t, ook, rok)
		assert.Equal(t, on, rn)
	}
}
