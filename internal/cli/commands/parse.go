package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlgram/internal/cli/config"
	"github.com/leapstack-labs/sqlgram/pkg/parser"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	File   string
	Format string
}

type statementInfo struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Line   int    `json:"line"`
	Tokens int    `json:"tokens"`
	Text   string `json:"text"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [sql]",
		Short: "Parse SQL under a dialect",
		Long: `Parse SQL input against a dialect's file grammar and report the
recognized statements. The whole input must parse; the first token that
does not fit the grammar is reported with its position.`,
		Example: `  # Parse a statement under the default dialect
  sqlgram parse "SELECT * FROM users"

  # Parse a T-SQL batch from a file
  sqlgram parse --file batch.sql -d mssql

  # Output as JSON
  sqlgram parse "DROP TABLE users" --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readInput(args, opts)
			if err != nil {
				return err
			}
			return runParse(cmd, sql, opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "Read SQL from a file instead of the argument")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json")

	return cmd
}

func readInput(args []string, opts *ParseOptions) (string, error) {
	if opts.File != "" {
		raw, err := os.ReadFile(opts.File)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", opts.File, err)
		}
		return string(raw), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide SQL as an argument or with --file")
}

func runParse(cmd *cobra.Command, sql string, opts *ParseOptions) error {
	d, err := dialectFromFlags(cmd)
	if err != nil {
		return err
	}
	log := config.GetLogger(cmd.Context())

	p, err := parser.New(d)
	if err != nil {
		return err
	}

	log.Debug("parsing input", "dialect", d.Name(), "bytes", len(sql))
	stmts, err := p.Parse(sql)
	if err != nil {
		return err
	}

	infos := make([]statementInfo, len(stmts))
	for i, stmt := range stmts {
		raws := make([]string, len(stmt.Tokens))
		for j, tok := range stmt.Tokens {
			raws[j] = tok.Raw
		}
		line := 0
		if len(stmt.Tokens) > 0 {
			line = stmt.Tokens[0].Pos.Line
		}
		infos[i] = statementInfo{
			Index:  i + 1,
			Type:   stmt.Type,
			Line:   line,
			Tokens: len(stmt.Tokens),
			Text:   strings.Join(raws, " "),
		}
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Parsed %d statements (%s)", len(infos), d.Name())))

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "TYPE", "LINE", "TOKENS", "TEXT"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Index, info.Type, info.Line, info.Tokens, info.Text})
	}
	t.Render()

	return nil
}
