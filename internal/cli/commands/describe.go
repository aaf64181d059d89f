package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlgram/pkg/grammar"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <segment>",
		Short: "Show the grammar of a segment as YAML",
		Long: `Print the structural description of a segment's match grammar.
The output is a faithful round-trippable description: rebuilding a
grammar from it matches exactly the same inputs.`,
		Example: `  # Describe the ansi select statement
  sqlgram describe SelectStatementSegment

  # Describe the mssql declare statement
  sqlgram describe DeclareStatementSegment -d mssql`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args[0])
		},
	}

	return cmd
}

func runDescribe(cmd *cobra.Command, name string) error {
	d, err := dialectFromFlags(cmd)
	if err != nil {
		return err
	}

	seg, err := d.Segment(name)
	if err != nil {
		return err
	}

	spec, err := grammar.Describe(seg.Match)
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	title := fmt.Sprintf("%s.%s", d.Name(), seg.Name)
	if seg.Type != "" {
		title += fmt.Sprintf(" (%s)", seg.Type)
	}
	fmt.Fprintln(w, headerStyle.Render(title))
	fmt.Fprint(w, string(raw))

	return nil
}
