package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datestamp/pkg/commands/options"
	"tableflip.dev/datestamp/pkg/runner/panes"
)

func addPanes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "panes",
		Aliases: []string{"pane"},
		Short:   "list the panes open in the session",
		Example: `
datestamp panes
datestamp panes open notes/today.md
datestamp panes cursor 1a2b3c4d 3:14
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanes(cmd, panes.Panes{Action: panes.List})
		},
	}
	options.AddOutputArg(cmd, oo)

	cmd.AddCommand(&cobra.Command{
		Use:   "open FILE",
		Short: "open a note and focus it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanes(cmd, panes.Panes{Action: panes.Open, File: args[0]})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "close PANE",
		Short: "close a pane",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanes(cmd, panes.Panes{Action: panes.Close, ID: args[0]})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "focus PANE",
		Short: "make a pane the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanes(cmd, panes.Panes{Action: panes.Focus, ID: args[0]})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "cursor PANE LINE:COL",
		Short: "move the cursor of a note pane, zero based",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := options.ParsePosition(args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			return runPanes(cmd, panes.Panes{Action: panes.Cursor, ID: args[0], Position: pos})
		},
	})

	topLevel.AddCommand(cmd)
}

func runPanes(cmd *cobra.Command, p panes.Panes) error {
	sess, err := loadSession()
	if err != nil {
		return oo.HandleError(err)
	}
	p.Session = sess
	p.JSON = oo.JSON
	p.Print = oo.Print
	return oo.HandleError(p.Do(cmd.Context()))
}
