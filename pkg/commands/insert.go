package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datestamp/pkg/commands/options"
	"tableflip.dev/datestamp/pkg/runner/insert"
)

func addToday(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "insert today's date at the cursor",
		Example: `
datestamp today
datestamp today --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return oo.HandleError(err)
			}
			i := insert.Insert{App: e.App, On: e.App.Today(), JSON: oo.JSON, Print: oo.Print, ShowID: g.Verbose}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addInsert(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "insert a date at the cursor",
		Example: `
datestamp insert --on 2025-01-25
datestamp insert --on tomorrow
datestamp insert --on 1/25 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return oo.HandleError(err)
			}
			day, err := on.GetOn(e.App.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			i := insert.Insert{App: e.App, On: day, JSON: oo.JSON, Print: oo.Print, ShowID: g.Verbose}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
