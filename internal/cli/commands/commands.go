// Package commands implements the sqlgram subcommands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlgram/internal/cli/config"
	"github.com/leapstack-labs/sqlgram/pkg/dialect"
	_ "github.com/leapstack-labs/sqlgram/pkg/dialects/ansi"  // register ansi
	_ "github.com/leapstack-labs/sqlgram/pkg/dialects/mssql" // register mssql
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// resolveDialect looks up a dialect by name, falling back to the
// configured default when name is empty.
func resolveDialect(name string) (*dialect.Dialect, error) {
	if name == "" {
		name = config.GetCurrentConfig().Dialect
	}
	d, ok := dialect.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (available: %s)",
			name, strings.Join(dialect.List(), ", "))
	}
	return d, nil
}

// dialectFromFlags reads the persistent --dialect flag and resolves it.
func dialectFromFlags(cmd *cobra.Command) (*dialect.Dialect, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("dialect")
	return resolveDialect(name)
}

// newTable returns a table writer in the house style.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}
