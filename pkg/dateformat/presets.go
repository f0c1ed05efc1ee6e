package dateformat

import (
	"fmt"
	"time"
)

// Preset is one of the predefined format choices.
type Preset struct {
	Pattern string `json:"pattern"`
	Label   string `json:"label"`
}

// sampleDate is the date used in preset labels.
var sampleDate = time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC)

var presetPatterns = []string{
	"YYYY-MM-DD",
	"DD-MM-YYYY",
	"DD/MM/YYYY",
	"MM/DD/YYYY",
	"MMMM DD, YYYY",
	"DD MMMM YYYY",
}

// Presets lists the predefined choices followed by the custom choice.
func Presets() []Preset {
	out := make([]Preset, 0, len(presetPatterns)+1)
	for _, p := range presetPatterns {
		sample, _ := FormatOrDefault(sampleDate, p, false)
		out = append(out, Preset{
			Pattern: p,
			Label:   fmt.Sprintf("%s (e.g., %s)", p, sample),
		})
	}
	return append(out, Preset{Pattern: Custom, Label: "Custom format"})
}

// IsChoice reports whether choice is a preset pattern or Custom.
func IsChoice(choice string) bool {
	if choice == Custom {
		return true
	}
	for _, p := range presetPatterns {
		if p == choice {
			return true
		}
	}
	return false
}
