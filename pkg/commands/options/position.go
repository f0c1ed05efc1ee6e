package options

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/datestamp/pkg/workspace"
)

// ParsePosition reads "LINE:COL" or "LINE", zero based.
func ParsePosition(s string) (workspace.Position, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	line, err := strconv.Atoi(parts[0])
	if err != nil {
		return workspace.Position{}, fmt.Errorf("invalid line %q", parts[0])
	}
	col := 0
	if len(parts) == 2 {
		col, err = strconv.Atoi(parts[1])
		if err != nil {
			return workspace.Position{}, fmt.Errorf("invalid column %q", parts[1])
		}
	}
	pos := workspace.Position{Line: line, Column: col}
	if !pos.Valid() {
		return workspace.Position{}, fmt.Errorf("position %s must not be negative", pos)
	}
	return pos, nil
}
