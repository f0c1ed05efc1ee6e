package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions are shared by every command.
type GlobalOptions struct {
	Verbose bool
	Config  string
	Session string
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log diagnostics to stderr.")
	cmd.PersistentFlags().StringVar(&o.Config, "config", "",
		"Settings file, default $DATESTAMP_CONFIG or ~/.datestamp.yaml.")
	cmd.PersistentFlags().StringVar(&o.Session, "session", "",
		"Session directory, default $DATESTAMP_SESSION or ~/.datestamp.d.")
}
