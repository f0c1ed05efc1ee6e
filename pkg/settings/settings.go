// Package settings owns the persisted date format configuration.
package settings

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/datestamp/pkg/dateformat"
)

// ErrUnknownFormat is returned for a format choice outside the presets.
var ErrUnknownFormat = errors.New("settings: unknown date format")

// Settings is the persisted configuration shape.
type Settings struct {
	// DateFormat is one of the preset patterns or "custom".
	DateFormat        string `json:"dateFormat" yaml:"dateFormat"`
	UseBoldFormatting bool   `json:"useBoldFormatting" yaml:"useBoldFormatting"`
	// CustomFormat is only used when DateFormat is "custom".
	CustomFormat string `json:"customFormat" yaml:"customFormat"`
}

// Defaults returns the configuration used for missing keys.
func Defaults() Settings {
	return Settings{
		DateFormat:        dateformat.DefaultPattern,
		UseBoldFormatting: true,
		CustomFormat:      dateformat.DefaultPattern,
	}
}

// EffectivePattern resolves the custom indirection. Every consumer goes
// through here so the formatter, preview and insertion always agree.
func (s Settings) EffectivePattern() string {
	if s.DateFormat == dateformat.Custom {
		return s.CustomFormat
	}
	return s.DateFormat
}

// Validate checks the format choice.
func (s Settings) Validate() error {
	if !dateformat.IsChoice(s.DateFormat) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, s.DateFormat)
	}
	return nil
}

// Format renders t with the effective pattern, falling back to the default
// pattern when it does not compile. The recovered error is returned so the
// caller can log it; the string is always usable.
func (s Settings) Format(t time.Time) (string, error) {
	return dateformat.FormatOrDefault(t, s.EffectivePattern(), s.UseBoldFormatting)
}

// Preview renders the settings preview line for now.
func (s Settings) Preview(now time.Time) string {
	out, err := dateformat.Format(now, s.EffectivePattern(), s.UseBoldFormatting)
	if err != nil {
		return "Invalid format"
	}
	return "Preview: " + out
}

// BoldLabel renders the bold flag for format displays.
func (s Settings) BoldLabel() string {
	if s.UseBoldFormatting {
		return "Bold: ON"
	}
	return "Bold: OFF"
}
