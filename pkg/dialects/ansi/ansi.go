// Package ansi provides the base ANSI SQL dialect: keyword sets, the
// reusable grammar fragment library, and the standard statement grammars.
//
// This dialect is the foundation other dialects derive from. Dialects like
// MSSQL call CopyAs on it and then add, reclassify, and override without
// touching this definition.
package ansi

import (
	"github.com/leapstack-labs/sqlgram/pkg/dialect"
	"github.com/leapstack-labs/sqlgram/pkg/grammar"
	"github.com/leapstack-labs/sqlgram/pkg/token"
)

// ANSI is the published base dialect. Deriving from it is cheap; editing
// it is impossible.
var ANSI = mustBuild()

func init() {
	dialect.MustRegister(ANSI)
}

func mustBuild() *dialect.Dialect {
	d, err := build()
	if err != nil {
		panic("ansi: building base dialect: " + err.Error())
	}
	return d
}

func build() (*dialect.Dialect, error) {
	d := dialect.New("ansi")

	// Keyword classification: a word is reserved or unreserved, never both.
	if err := d.ExclusiveSets("reserved_keywords", "unreserved_keywords"); err != nil {
		return nil, err
	}
	if err := d.Sets("reserved_keywords").Update(reservedKeywords...); err != nil {
		return nil, err
	}
	if err := d.Sets("unreserved_keywords").Update(unreservedKeywords...); err != nil {
		return nil, err
	}

	fragments := []struct {
		name  string
		match grammar.Node
	}{
		// Punctuation and operators.
		{"CommaSegment", grammar.Sym(",")},
		{"DotSegment", grammar.Sym(".")},
		{"SemicolonSegment", grammar.Sym(";")},
		{"StarSegment", grammar.Sym("*")},
		{"EqualsSegment", grammar.Sym("=")},
		{"DelimiterGrammar", grammar.Ref("SemicolonSegment")},

		// Identifiers. A naked identifier is any bare word that is not a
		// reserved keyword, so reclassifying a keyword between sets is
		// directly observable in what parses.
		{"BareWordGrammar", grammar.Regex(`[A-Z_][A-Z0-9_]*`)},
		{"NakedIdentifierSegment",
			grammar.Ref("BareWordGrammar").Exclude(grammar.KeywordOf("reserved_keywords"))},
		{"QuotedIdentifierSegment", grammar.Typed(token.DoubleQuoted).Trim(`"`)},
		{"SingleIdentifierGrammar", grammar.OneOf(
			grammar.Ref("NakedIdentifierSegment"),
			grammar.Ref("QuotedIdentifierSegment"),
		)},

		// Literals.
		{"QuotedLiteralSegment", grammar.Typed(token.SingleQuoted).Trim(`'`)},
		{"NumericLiteralSegment", grammar.Typed(token.Number)},
		{"BooleanLiteralGrammar", grammar.OneOf(
			grammar.Keyword("TRUE"),
			grammar.Keyword("FALSE"),
		)},
		{"LiteralGrammar", grammar.OneOf(
			grammar.Ref("QuotedLiteralSegment"),
			grammar.Ref("NumericLiteralSegment"),
			grammar.Ref("BooleanLiteralGrammar"),
			grammar.Keyword("NULL"),
		)},

		// References.
		{"ObjectReferenceSegment",
			grammar.Delimited(grammar.Ref("SingleIdentifierGrammar")).
				WithDelimiter(grammar.Ref("DotSegment"))},
		{"TableReferenceSegment", grammar.Ref("ObjectReferenceSegment")},
		{"ColumnReferenceSegment", grammar.Ref("ObjectReferenceSegment")},

		{"IfExistsGrammar", grammar.Seq(grammar.Keyword("IF"), grammar.Keyword("EXISTS"))},
		{"IfNotExistsGrammar", grammar.Seq(
			grammar.Keyword("IF"), grammar.Keyword("NOT"), grammar.Keyword("EXISTS"),
		)},

		// Types and functions.
		{"DatatypeSegment", grammar.Seq(
			grammar.Ref("BareWordGrammar"),
			grammar.Opt(grammar.Bracketed(grammar.Delimited(grammar.Ref("NumericLiteralSegment")))),
		)},
		{"FunctionNameSegment", grammar.Ref("BareWordGrammar")},
		{"FunctionSegment", grammar.Seq(
			grammar.Ref("FunctionNameSegment"),
			grammar.Bracketed(grammar.Opt(grammar.OneOf(
				grammar.Ref("StarSegment"),
				grammar.Delimited(grammar.Ref("ExpressionSegment")),
			))),
		)},

		// Expressions, recursive through bracketing.
		{"BinaryOperatorGrammar", grammar.OneOf(
			grammar.Sym("+"), grammar.Sym("-"), grammar.Sym("*"), grammar.Sym("/"),
			grammar.Sym("%"), grammar.Sym("||"),
			grammar.Sym("="), grammar.Sym("<"), grammar.Sym(">"),
			grammar.Sym("<="), grammar.Sym(">="), grammar.Sym("<>"), grammar.Sym("!="),
			grammar.Keyword("AND"), grammar.Keyword("OR"), grammar.Keyword("LIKE"),
		)},
		{"BaseExpressionGrammar", grammar.OneOf(
			grammar.Ref("FunctionSegment"),
			grammar.Ref("LiteralGrammar"),
			grammar.Ref("ColumnReferenceSegment"),
			grammar.Bracketed(grammar.Ref("ExpressionSegment")),
		)},
		{"ExpressionSegment", grammar.Seq(
			grammar.Ref("BaseExpressionGrammar"),
			grammar.AnyNumberOf(grammar.Seq(
				grammar.Ref("BinaryOperatorGrammar"),
				grammar.Ref("BaseExpressionGrammar"),
			)),
		)},

		{"AliasExpressionGrammar", grammar.Seq(
			grammar.Opt(grammar.Keyword("AS")),
			grammar.Ref("SingleIdentifierGrammar"),
		)},
	}
	for _, f := range fragments {
		if err := d.Add(f.name, f.match); err != nil {
			return nil, err
		}
	}

	segments := []*dialect.Segment{
		dialect.NewSegment("SelectStatementSegment", "select_statement", grammar.Seq(
			grammar.Keyword("SELECT"),
			grammar.Opt(grammar.OneOf(grammar.Keyword("DISTINCT"), grammar.Keyword("ALL"))),
			grammar.OneOf(
				grammar.Ref("StarSegment"),
				grammar.Delimited(grammar.Seq(
					grammar.Ref("ExpressionSegment"),
					grammar.Opt(grammar.Ref("AliasExpressionGrammar")),
				)),
			),
			grammar.Opt(grammar.Seq(
				grammar.Keyword("FROM"),
				grammar.Delimited(grammar.Seq(
					grammar.Ref("TableReferenceSegment"),
					grammar.Opt(grammar.Ref("AliasExpressionGrammar")),
				)),
			)),
			grammar.Opt(grammar.Seq(grammar.Keyword("WHERE"), grammar.Ref("ExpressionSegment"))),
			grammar.Opt(grammar.Seq(
				grammar.Keyword("GROUP"), grammar.Keyword("BY"),
				grammar.Delimited(grammar.Ref("ColumnReferenceSegment")),
			)),
			grammar.Opt(grammar.Seq(
				grammar.Keyword("ORDER"), grammar.Keyword("BY"),
				grammar.Delimited(grammar.Seq(
					grammar.Ref("ExpressionSegment"),
					grammar.Opt(grammar.OneOf(grammar.Keyword("ASC"), grammar.Keyword("DESC"))),
				)),
			)),
		)),

		dialect.NewSegment("InsertStatementSegment", "insert_statement", grammar.Seq(
			grammar.Keyword("INSERT"), grammar.Keyword("INTO"),
			grammar.Ref("TableReferenceSegment"),
			grammar.Opt(grammar.Bracketed(grammar.Delimited(grammar.Ref("ColumnReferenceSegment")))),
			grammar.OneOf(
				grammar.Seq(
					grammar.Keyword("VALUES"),
					grammar.Delimited(grammar.Bracketed(grammar.Delimited(grammar.Ref("ExpressionSegment")))),
				),
				grammar.Ref("SelectStatementSegment"),
			),
		)),

		dialect.NewSegment("UpdateStatementSegment", "update_statement", grammar.Seq(
			grammar.Keyword("UPDATE"),
			grammar.Ref("TableReferenceSegment"),
			grammar.Keyword("SET"),
			grammar.Delimited(grammar.Seq(
				grammar.Ref("ColumnReferenceSegment"),
				grammar.Ref("EqualsSegment"),
				grammar.Ref("ExpressionSegment"),
			)),
			grammar.Opt(grammar.Seq(grammar.Keyword("WHERE"), grammar.Ref("ExpressionSegment"))),
		)),

		dialect.NewSegment("DeleteStatementSegment", "delete_statement", grammar.Seq(
			grammar.Keyword("DELETE"), grammar.Keyword("FROM"),
			grammar.Ref("TableReferenceSegment"),
			grammar.Opt(grammar.Seq(grammar.Keyword("WHERE"), grammar.Ref("ExpressionSegment"))),
		)),

		dialect.NewSegment("DropStatementSegment", "drop_statement", grammar.Seq(
			grammar.Keyword("DROP"),
			grammar.OneOf(grammar.Keyword("TABLE"), grammar.Keyword("VIEW")),
			grammar.Ref("IfExistsGrammar").Optional(),
			grammar.Ref("TableReferenceSegment"),
		)),

		dialect.NewSegment("CreateTableStatementSegment", "create_table_statement", grammar.Seq(
			grammar.Keyword("CREATE"), grammar.Keyword("TABLE"),
			grammar.Ref("IfNotExistsGrammar").Optional(),
			grammar.Ref("TableReferenceSegment"),
			grammar.Bracketed(grammar.Delimited(grammar.Seq(
				grammar.Ref("SingleIdentifierGrammar"),
				grammar.Ref("DatatypeSegment"),
			))),
		)),

		dialect.NewSegment("CreateViewStatementSegment", "create_view_statement", grammar.Seq(
			grammar.Keyword("CREATE"), grammar.Keyword("VIEW"),
			grammar.Ref("TableReferenceSegment"),
			grammar.Keyword("AS"),
			grammar.Ref("SelectStatementSegment"),
		)),

		dialect.NewSegment("StatementSegment", "statement", grammar.OneOf(
			grammar.Ref("SelectStatementSegment"),
			grammar.Ref("InsertStatementSegment"),
			grammar.Ref("UpdateStatementSegment"),
			grammar.Ref("DeleteStatementSegment"),
			grammar.Ref("DropStatementSegment"),
			grammar.Ref("CreateTableStatementSegment"),
			grammar.Ref("CreateViewStatementSegment"),
		)),

		dialect.NewSegment("FileSegment", "file",
			grammar.Delimited(grammar.Ref("StatementSegment")).
				WithDelimiter(grammar.Ref("DelimiterGrammar")).
				AllowTrailing()),
	}
	for _, seg := range segments {
		if err := d.Register(seg, false); err != nil {
			return nil, err
		}
	}

	if err := d.Publish(); err != nil {
		return nil, err
	}
	return d, nil
}
