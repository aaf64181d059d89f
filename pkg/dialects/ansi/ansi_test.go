package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlgram/pkg/dialect"
	"github.com/leapstack-labs/sqlgram/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlgram/pkg/parser"
)

func TestANSIIsRegistered(t *testing.T) {
	d, ok := dialect.Get("ansi")
	require.True(t, ok)
	assert.Same(t, ansi.ANSI, d)
	assert.True(t, d.Published())
	assert.Empty(t, d.Parent())
}

func TestParseStatements(t *testing.T) {
	p, err := parser.New(ansi.ANSI)
	require.NoError(t, err)

	tests := []struct {
		name      string
		sql       string
		wantTypes []string
	}{
		{"select star", "SELECT * FROM users", []string{"select_statement"}},
		{"select with alias and where",
			"SELECT id, name AS n FROM users u WHERE id = 1",
			[]string{"select_statement"}},
		{"select expression", "SELECT count(*) FROM orders GROUP BY status", []string{"select_statement"}},
		{"select order by", "SELECT id FROM users ORDER BY id DESC", []string{"select_statement"}},
		{"quoted identifier", `SELECT "selected column" FROM "my table"`, []string{"select_statement"}},
		{"insert values",
			"INSERT INTO users (id, name) VALUES (1, 'ada'), (2, 'grace')",
			[]string{"insert_statement"}},
		{"insert from select", "INSERT INTO archive SELECT * FROM users", []string{"insert_statement"}},
		{"update", "UPDATE users SET name = 'ada' WHERE id = 1", []string{"update_statement"}},
		{"delete", "DELETE FROM users WHERE id = 1", []string{"delete_statement"}},
		{"drop table", "DROP TABLE users", []string{"drop_statement"}},
		{"drop view if exists", "DROP VIEW IF EXISTS v_users", []string{"drop_statement"}},
		{"create table",
			"CREATE TABLE IF NOT EXISTS users (id INT, name VARCHAR(255))",
			[]string{"create_table_statement"}},
		{"create view",
			"CREATE VIEW v_users AS SELECT * FROM users",
			[]string{"create_view_statement"}},
		{"two statements",
			"SELECT * FROM users; DELETE FROM users WHERE id = 1",
			[]string{"select_statement", "delete_statement"}},
		{"trailing semicolon", "SELECT * FROM users;", []string{"select_statement"}},
		{"comments are ignored",
			"-- fetch everything\nSELECT * FROM users /* all of them */",
			[]string{"select_statement"}},
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

func TestParseRejects(t *testing.T) {
	p, err := parser.New(ansi.ANSI)
	require.NoError(t, err)

	tests := []struct {
		name string
		sql  string
	}{
		{"reserved keyword as table name", "SELECT * FROM select"},
		{"drop user not in ansi", "DROP USER bob"},
		{"declare not in ansi", "DECLARE @x INT"},
		{"incomplete statement", "SELECT * FROM"},
		{"garbage", "COMPLETELY NOT SQL AT ALL ("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.sql)
			require.Error(t, err)

			var parseErr *parser.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "ansi", parseErr.Dialect)
		})
	}
}

func TestKeywordClassification(t *testing.T) {
	reserved := ansi.ANSI.Sets("reserved_keywords")
	unreserved := ansi.ANSI.Sets("unreserved_keywords")

	assert.True(t, reserved.Contains("SELECT"))
	assert.True(t, reserved.Contains("FROM"))
	assert.True(t, unreserved.Contains("IDENTITY"))
	assert.False(t, reserved.Contains("IDENTITY"))
}
