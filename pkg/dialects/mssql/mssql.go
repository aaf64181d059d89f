// Package mssql provides the Microsoft SQL Server (T-SQL) dialect, derived
// from the base ANSI dialect.
//
// https://docs.microsoft.com/en-us/sql/t-sql/language-reference
package mssql

import (
	_ "embed"
	"strings"

	"github.com/leapstack-labs/sqlgram/pkg/dialect"
	"github.com/leapstack-labs/sqlgram/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlgram/pkg/grammar"
	"github.com/leapstack-labs/sqlgram/pkg/token"
)

//go:embed mssql_keywords.txt
var rawReservedKeywords string

// MSSQL is the published T-SQL dialect.
var MSSQL = mustBuild()

func init() {
	dialect.MustRegister(MSSQL)
}

func mustBuild() *dialect.Dialect {
	d, err := build()
	if err != nil {
		panic("mssql: building dialect: " + err.Error())
	}
	return d
}

func build() (*dialect.Dialect, error) {
	d := ansi.ANSI.CopyAs("mssql")

	// T-SQL reserves far more words than ANSI. Demote them from the
	// unreserved set before promoting, so the exclusivity axis holds.
	reserved, err := dialect.ReadKeywords(strings.NewReader(rawReservedKeywords))
	if err != nil {
		return nil, err
	}
	if err := d.Sets("unreserved_keywords").DifferenceUpdate(reserved...); err != nil {
		return nil, err
	}
	if err := d.Sets("reserved_keywords").Update(reserved...); err != nil {
		return nil, err
	}

	fragments := []struct {
		name  string
		match grammar.Node
	}{
		// Compound assignment operators.
		{"AdditionAssignmentSegment", grammar.Sym("+=")},
		{"SubtractionAssignmentSegment", grammar.Sym("-=")},
		{"DivisionAssignmentSegment", grammar.Sym("/=")},
		{"MultiplicationAssignmentSegment", grammar.Sym("*=")},
		{"ModuloAssignmentSegment", grammar.Sym("%=")},
		{"BitwiseAndAssignmentSegment", grammar.Sym("&=")},
		{"BitwiseOrAssignmentSegment", grammar.Sym("|=")},
		{"BitwiseXorAssignmentSegment", grammar.Sym("^=")},
		{"ArithmeticBinaryAssignmentOperatorGrammar", grammar.OneOf(
			grammar.Ref("AdditionAssignmentSegment"),
			grammar.Ref("SubtractionAssignmentSegment"),
			grammar.Ref("DivisionAssignmentSegment"),
			grammar.Ref("MultiplicationAssignmentSegment"),
			grammar.Ref("ModuloAssignmentSegment"),
			grammar.Ref("BitwiseAndAssignmentSegment"),
			grammar.Ref("BitwiseOrAssignmentSegment"),
			grammar.Ref("BitwiseXorAssignmentSegment"),
		)},

		// GO is the batch execution command, not a reserved word.
		{"GoSegment", grammar.Keyword("GO")},

		// In T-SQL, double quotes can delimit string literals.
		{"DoubleQuotedLiteralSegment", grammar.Typed(token.DoubleQuoted).Trim(`"`)},

		// @variable, including "." for property and field access.
		{"VariableNameSegment", grammar.Regex(`@[A-Z0-9_.]*`)},
	}
	for _, f := range fragments {
		if err := d.Add(f.name, f.match); err != nil {
			return nil, err
		}
	}

	segments := []*dialect.Segment{
		// DECLARE: cursor, handler, condition, and local-variable forms.
		dialect.NewSegment("DeclareStatementSegment", "declare_statement", grammar.OneOf(
			grammar.Seq(
				grammar.Keyword("DECLARE"),
				grammar.Ref("NakedIdentifierSegment"),
				grammar.Keyword("CURSOR"),
				grammar.Keyword("FOR"),
				grammar.Ref("StatementSegment"),
			),
			grammar.Seq(
				grammar.Keyword("DECLARE"),
				grammar.OneOf(
					grammar.Keyword("CONTINUE"),
					grammar.Keyword("EXIT"),
					grammar.Keyword("UNDO"),
				),
				grammar.Keyword("HANDLER"),
				grammar.Keyword("FOR"),
				grammar.OneOf(
					grammar.Keyword("SQLEXCEPTION"),
					grammar.Keyword("SQLWARNING"),
					grammar.Seq(grammar.Keyword("NOT"), grammar.Keyword("FOUND")),
					grammar.Seq(
						grammar.Keyword("SQLSTATE"),
						grammar.Opt(grammar.Keyword("VALUE")),
						grammar.Ref("QuotedLiteralSegment"),
					),
					grammar.OneOf(
						grammar.Ref("QuotedLiteralSegment"),
						grammar.Ref("NumericLiteralSegment"),
						grammar.Ref("NakedIdentifierSegment"),
					),
				),
				grammar.Ref("StatementSegment"),
			),
			grammar.Seq(
				grammar.Keyword("DECLARE"),
				grammar.Ref("NakedIdentifierSegment"),
				grammar.Keyword("CONDITION"),
				grammar.Keyword("FOR"),
				grammar.OneOf(
					grammar.Ref("QuotedLiteralSegment"),
					grammar.Ref("NumericLiteralSegment"),
				),
			),
			grammar.Seq(
				grammar.Keyword("DECLARE"),
				grammar.Ref("VariableNameSegment"),
				grammar.Ref("DatatypeSegment"),
				grammar.Opt(grammar.Seq(
					grammar.Keyword("DEFAULT"),
					grammar.OneOf(
						grammar.Ref("QuotedLiteralSegment"),
						grammar.Ref("NumericLiteralSegment"),
						grammar.Ref("FunctionSegment"),
					),
				)),
			),
		)),

		// GO with an optional repeat count.
		dialect.NewSegment("GoStatementSegment", "go_statement", grammar.Seq(
			grammar.Ref("GoSegment"),
			grammar.Ref("NumericLiteralSegment").Optional(),
		)),

		// SET @variable = / += / ... expression.
		dialect.NewSegment("SetAssignmentStatementSegment", "set_statement", grammar.Seq(
			grammar.Keyword("SET"),
			grammar.Ref("VariableNameSegment"),
			grammar.OneOf(
				grammar.Ref("EqualsSegment"),
				grammar.Ref("ArithmeticBinaryAssignmentOperatorGrammar"),
			),
			grammar.AnyNumberOf(
				grammar.Ref("LiteralGrammar"),
				grammar.Ref("DoubleQuotedLiteralSegment"),
				grammar.Ref("VariableNameSegment"),
				grammar.Ref("FunctionSegment"),
			),
		)),
	}
	for _, seg := range segments {
		if err := d.Register(seg, false); err != nil {
			return nil, err
		}
	}

	// DROP in T-SQL also covers users, functions and procedures. Total
	// redefinition, not a patch of the inherited grammar.
	err = d.Register(dialect.NewSegment("DropStatementSegment", "drop_statement", grammar.Seq(
		grammar.Keyword("DROP"),
		grammar.OneOf(
			grammar.Keyword("TABLE"),
			grammar.Keyword("VIEW"),
			grammar.Keyword("USER"),
			grammar.Keyword("FUNCTION"),
			grammar.Keyword("PROCEDURE"),
		),
		grammar.Ref("IfExistsGrammar").Optional(),
		grammar.Ref("TableReferenceSegment"),
	)), true)
	if err != nil {
		return nil, err
	}

	// Statements optionally carry a trailing terminator. The terminated
	// sequence wrapper appends it in one place instead of every statement
	// grammar repeating it.
	terminated := grammar.SuffixedSequence(grammar.Ref("DelimiterGrammar").Optional())

	err = d.Register(dialect.NewSegment("StatementSegment", "statement", terminated(
		grammar.OneOf(
			grammar.Ref("SelectStatementSegment"),
			grammar.Ref("InsertStatementSegment"),
			grammar.Ref("UpdateStatementSegment"),
			grammar.Ref("DeleteStatementSegment"),
			grammar.Ref("DropStatementSegment"),
			grammar.Ref("CreateTableStatementSegment"),
			grammar.Ref("CreateViewStatementSegment"),
			grammar.Ref("DeclareStatementSegment"),
			grammar.Ref("GoStatementSegment"),
			grammar.Ref("SetAssignmentStatementSegment"),
		),
	)), true)
	if err != nil {
		return nil, err
	}

	// Statements self-terminate, so a T-SQL file is just a run of them.
	err = d.Register(dialect.NewSegment("FileSegment", "file", grammar.Seq(
		grammar.Ref("StatementSegment"),
		grammar.AnyNumberOf(grammar.Ref("StatementSegment")),
	)), true)
	if err != nil {
		return nil, err
	}

	if err := d.Publish(); err != nil {
		return nil, err
	}
	return d, nil
}
