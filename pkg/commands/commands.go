package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/datestamp/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
	g  = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "datestamp",
		Short: base.Wrap80("Pick a date from a calendar and insert it at the cursor of the note you are working in."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	options.AddGlobalArgs(cmd, g)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCalendar(topLevel)
	addUI(topLevel)
	addToday(topLevel)
	addInsert(topLevel)
	addPanes(topLevel)
	addFormats(topLevel)
	addSettings(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}
