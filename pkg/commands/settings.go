package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datestamp/pkg/commands/options"
	"tableflip.dev/datestamp/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "show or change the date format settings",
		Example: `
datestamp settings
datestamp settings --format "DD MMMM YYYY" --bold off
datestamp settings -f custom -c "ddd, MMM D"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSettings()
			if err != nil {
				return oo.HandleError(err)
			}
			s := settings.Settings{Store: store, JSON: oo.JSON, Print: oo.Print}
			if !fo.Empty() {
				s.Change, err = fo.Apply()
				if err != nil {
					return oo.HandleError(err)
				}
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddFormatArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
