package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/datestamp/pkg/calendar"
	calrunner "tableflip.dev/datestamp/pkg/runner/calendar"
	teaui "tableflip.dev/datestamp/pkg/runner/tea"
)

func addCalendar(topLevel *cobra.Command) {
	var (
		print  bool
		month  string
		months int
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "open the calendar panel",
		Long: `Open the calendar panel. Pick a day to insert it at the cursor of the note
you are working in. The panel joins the session as the calendar pane and
leaves when it is closed. Without a terminal the month is printed instead.`,
		Example: `
datestamp calendar
datestamp calendar --print --month "March 2025" --months 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if print || !isatty.IsTerminal(os.Stdout.Fd()) {
				c := calrunner.Calendar{Months: months}
				if month != "" {
					t, ok := calendar.ParseMonth(month)
					if !ok {
						parsed, err := time.Parse("2006-01", month)
						if err != nil {
							return fmt.Errorf("invalid month %q, expected \"January 2006\" or 2006-01", month)
						}
						t = parsed
					}
					c.Month = t
				}
				return c.Do(cmd.Context())
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			u := teaui.UI{App: e.App, Session: e.Session, Settings: e.Settings}
			return u.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&print, "print", false, "Print the month instead of opening the panel.")
	cmd.Flags().StringVar(&month, "month", "", `Month to print, "January 2006" or 2006-01.`)
	cmd.Flags().IntVar(&months, "months", 1, "Number of months to print.")

	topLevel.AddCommand(cmd)
}
