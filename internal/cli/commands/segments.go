package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// SegmentsOptions holds options for the segments command.
type SegmentsOptions struct {
	Statements bool
	Prefix     string
}

// NewSegmentsCommand creates the segments command.
func NewSegmentsCommand() *cobra.Command {
	opts := &SegmentsOptions{}
	cmd := &cobra.Command{
		Use:   "segments [dialect]",
		Short: "List a dialect's registered segments and grammars",
		Long: `List every name registered in a dialect: statement segments with
their type tags, plus the reusable grammar fragments they are built from.`,
		Example: `  # List everything in the default dialect
  sqlgram segments

  # List mssql statement segments only
  sqlgram segments mssql --statements

  # List grammar fragments matching a prefix
  sqlgram segments ansi --prefix Literal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runSegments(cmd, name, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Statements, "statements", false, "Only show segments with a type tag")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Only show names with this prefix")

	return cmd
}

func runSegments(cmd *cobra.Command, name string, opts *SegmentsOptions) error {
	d, err := resolveDialect(name)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Segments of %s", d.Name())))

	t := newTable(w)
	t.AppendHeader(table.Row{"NAME", "TYPE"})

	count := 0
	for _, segName := range d.SegmentNames() {
		if opts.Prefix != "" && !strings.HasPrefix(segName, opts.Prefix) {
			continue
		}
		seg, err := d.Segment(segName)
		if err != nil {
			return err
		}
		if opts.Statements && seg.Type == "" {
			continue
		}
		typ := seg.Type
		if typ == "" {
			typ = "-"
		}
		t.AppendRow(table.Row{segName, typ})
		count++
	}
	t.Render()
	fmt.Fprintf(w, "(%d segments)\n", count)

	return nil
}
