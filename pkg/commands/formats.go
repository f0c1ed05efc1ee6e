package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datestamp/pkg/commands/options"
	"tableflip.dev/datestamp/pkg/runner/formats"
)

func addFormats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "list the date format choices with a preview of today",
		Example: `
datestamp formats
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return oo.HandleError(err)
			}
			f := formats.Formats{Settings: store, JSON: oo.JSON, Print: oo.Print}
			return oo.HandleError(f.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
