package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlgram/pkg/dialect"
)

// DialectsOptions holds options for the dialects command.
type DialectsOptions struct {
	Format string
}

type dialectInfo struct {
	Name       string `json:"name"`
	Parent     string `json:"parent,omitempty"`
	Segments   int    `json:"segments"`
	Reserved   int    `json:"reserved_keywords"`
	Unreserved int    `json:"unreserved_keywords"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	opts := &DialectsOptions{}
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects",
		Long: `List every registered dialect with its parentage, segment count,
and keyword set sizes.`,
		Example: `  # List all dialects
  sqlgram dialects

  # Output as JSON
  sqlgram dialects --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json")

	return cmd
}

func runDialects(cmd *cobra.Command, opts *DialectsOptions) error {
	var infos []dialectInfo
	for _, name := range dialect.List() {
		d, ok := dialect.Get(name)
		if !ok {
			continue
		}
		infos = append(infos, dialectInfo{
			Name:       d.Name(),
			Parent:     d.Parent(),
			Segments:   len(d.SegmentNames()),
			Reserved:   d.Sets("reserved_keywords").Len(),
			Unreserved: d.Sets("unreserved_keywords").Len(),
		})
	}

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Dialects (%d registered)", len(infos))))

	t := newTable(w)
	t.AppendHeader(table.Row{"DIALECT", "PARENT", "SEGMENTS", "RESERVED", "UNRESERVED"})
	for _, info := range infos {
		parent := info.Parent
		if parent == "" {
			parent = "-"
		}
		t.AppendRow(table.Row{info.Name, parent, info.Segments, info.Reserved, info.Unreserved})
	}
	t.Render()

	return nil
}
