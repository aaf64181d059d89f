package mssql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlgram/pkg/dialect"
	"github.com/leapstack-labs/sqlgram/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlgram/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqlgram/pkg/parser"
)

func TestMSSQLIsRegistered(t *testing.T) {
	d, ok := dialect.Get("mssql")
	require.True(t, ok)
	assert.Same(t, mssql.MSSQL, d)
	assert.True(t, d.Published())
	assert.Equal(t, "ansi", d.Parent())
}

func TestDerivationLeftANSIUntouched(t *testing.T) {
	assert.False(t, ansi.ANSI.Sets("reserved_keywords").Contains("IDENTITY"))
	assert.True(t, ansi.ANSI.Sets("unreserved_keywords").Contains("IDENTITY"))

	_, err := ansi.ANSI.Segment("DeclareStatementSegment")
	assert.Error(t, err, "statements added to mssql do not appear in ansi")
}

func TestKeywordReclassification(t *testing.T) {
	reserved := mssql.MSSQL.Sets("reserved_keywords")
	unreserved := mssql.MSSQL.Sets("unreserved_keywords")

	for _, kw := range []string{"IDENTITY", "KEY", "PLAN", "PRINT", "TOP", "USER"} {
		assert.True(t, reserved.Contains(kw), kw)
		assert.False(t, unreserved.Contains(kw), kw)
	}
}

func TestParseStatements(t *testing.T) {
	p, err := parser.New(mssql.MSSQL)
	require.NoError(t, err)

	tests := []struct {
		name      string
		sql       string
		wantTypes []string
	}{
		{"select still works", "SELECT * FROM users", []string{"select_statement"}},
		{"drop user", "DROP USER bob", []string{"drop_statement"}},
		{"drop procedure if exists",
			"DROP PROCEDURE IF EXISTS dbo.sp_cleanup",
			[]string{"drop_statement"}},
		{"go batch separator",
			"SELECT * FROM users\nGO\nDELETE FROM users WHERE id = 1\nGO 5",
			[]string{"select_statement", "go_statement", "delete_statement", "go_statement"}},
		{"declare variable", "DECLARE @count INT", []string{"declare_statement"}},
		{"declare with default",
			"DECLARE @name VARCHAR(50) DEFAULT 'ada'",
			[]string{"declare_statement"}},
		{"declare cursor",
			"DECLARE user_cursor CURSOR FOR SELECT * FROM users",
			[]string{"declare_statement"}},
		{"declare handler",
			"DECLARE EXIT HANDLER FOR SQLEXCEPTION SELECT * FROM error_log",
			[]string{"declare_statement"}},
		{"declare condition",
			"DECLARE no_rows CONDITION FOR 1329",
			[]string{"declare_statement"}},
		{"set assignment", "SET @count = 0", []string{"set_statement"}},
		{"set compound assignment", "SET @count += 1", []string{"set_statement"}},
		{"set from function", "SET @total = count(1)", []string{"set_statement"}},
		{"statements self terminate",
			"DECLARE @x INT; SET @x = 1; SELECT * FROM users",
			[]string{"declare_statement", "set_statement", "select_statement"}},
		{"no separators needed",
			"DECLARE @x INT SET @x = 1",
			[]string{"declare_statement", "set_statement"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := p.Parse(tt.sql)
			require.NoError(t, err)

			types := make([]string, len(stmts))
			for i, stmt := range stmts {
				types[i] = stmt.Type
			}
			assert.Equal(t, tt.wantTypes, types)
		})
	}
}

func TestReclassifiedKeywordNoLongerIdentifies(t *testing.T) {
	ansiParser, err := parser.New(ansi.ANSI)
	require.NoError(t, err)
	mssqlParser, err := parser.New(mssql.MSSQL)
	require.NoError(t, err)

	// IDENTITY is unreserved in ansi, so it can name a table there. The
	// derived dialect reserves it, so the same input stops parsing.
	const sql = "SELECT * FROM identity"

	_, err = ansiParser.Parse(sql)
	assert.NoError(t, err)

	_, err = mssqlParser.Parse(sql)
	assert.Error(t, err)
}

func TestDropUserOnlyInMSSQL(t *testing.T) {
	ansiParser, err := parser.New(ansi.ANSI)
	require.NoError(t, err)
	mssqlParser, err := parser.New(mssql.MSSQL)
	require.NoError(t, err)

	const sql = "DROP USER bob"

	_, err = ansiParser.Parse(sql)
	assert.Error(t, err)

	_, err = mssqlParser.Parse(sql)
	assert.NoError(t, err)
}

func TestParseRejects(t *testing.T) {
	p, err := parser.New(mssql.MSSQL)
	require.NoError(t, err)

	tests := []struct {
		name string
		sql  string
	}{
		{"reserved keyword as table name", "SELECT * FROM plan"},
		{"set without variable", "SET count = 1"},
		{"declare without datatype", "DECLARE @x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.sql)
			require.Error(t, err)

			var parseErr *parser.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "mssql", parseErr.Dialect)
		})
	}
}
