package formats

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/datestamp/pkg/dateformat"
	"tableflip.dev/datestamp/pkg/printers"
	"tableflip.dev/datestamp/pkg/settings"
)

// Formats lists the format choices.
type Formats struct {
	Settings *settings.Store
	Now      time.Time
	JSON     bool
	Print    func(interface{}) error
}

func (n *Formats) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not list formats, no settings")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	if n.JSON {
		if n.Print == nil {
			return nil
		}
		return n.Print(dateformat.Presets())
	}
	pp := printers.PrettyPrint{}
	pp.Formats(n.Settings.Get(), now)
	return nil
}
