package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/datestamp/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the calendar panel next to the session panes",
		Example: `
datestamp ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			u := teaui.UI{App: e.App, Session: e.Session, Settings: e.Settings, ShowPanes: true}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
