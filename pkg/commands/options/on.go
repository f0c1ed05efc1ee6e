package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/datestamp/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-01-25", --on="1/25", --on=tomorrow or --on=-2d.`)
}

// GetOn resolves the flag relative to now. No flag means today.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	return timeutil.ParseDay(o.OnString, now)
}
