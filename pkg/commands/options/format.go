package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/datestamp/pkg/settings"
)

// FormatOptions carry settings changes from flags.
type FormatOptions struct {
	DateFormat   string
	CustomFormat string
	Bold         string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.DateFormat, "format", "f", "",
		`Format choice, one of the presets listed by "datestamp formats" or "custom".`)
	cmd.Flags().StringVarP(&o.CustomFormat, "custom", "c", "",
		`Custom pattern, used when the format is "custom", example: --custom="DD/MM/YYYY".`)
	cmd.Flags().StringVarP(&o.Bold, "bold", "b", "",
		"Wrap inserted dates in bold markup: on or off.")
}

// Empty reports whether no flag was given.
func (o *FormatOptions) Empty() bool {
	return o.DateFormat == "" && o.CustomFormat == "" && o.Bold == ""
}

// Apply returns a func that writes the given flags onto settings.
func (o *FormatOptions) Apply() (func(*settings.Settings), error) {
	var bold *bool
	switch strings.ToLower(strings.TrimSpace(o.Bold)) {
	case "":
	case "on", "true", "yes", "1":
		v := true
		bold = &v
	case "off", "false", "no", "0":
		v := false
		bold = &v
	default:
		return nil, fmt.Errorf("invalid bold value %q, expected on or off", o.Bold)
	}
	return func(s *settings.Settings) {
		if o.DateFormat != "" {
			s.DateFormat = o.DateFormat
		}
		if o.CustomFormat != "" {
			s.CustomFormat = o.CustomFormat
		}
		if bold != nil {
			s.UseBoldFormatting = *bold
		}
	}, nil
}
