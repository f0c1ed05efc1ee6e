package settings

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/datestamp/pkg/printers"
	"tableflip.dev/datestamp/pkg/settings"
)

// Settings shows and optionally changes the settings.
type Settings struct {
	Store *settings.Store
	// Change, when set, is applied and saved before showing.
	Change func(*settings.Settings)
	Now    time.Time
	JSON   bool
	Print  func(interface{}) error
}

func (n *Settings) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show settings, no store")
	}
	if n.Change != nil {
		if err := n.Store.Update(n.Change); err != nil {
			return err
		}
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	cur := n.Store.Get()
	if n.JSON {
		if n.Print == nil {
			return nil
		}
		return n.Print(map[string]interface{}{
			"dateFormat":        cur.DateFormat,
			"useBoldFormatting": cur.UseBoldFormatting,
			"customFormat":      cur.CustomFormat,
			"preview":           cur.Preview(now),
			"path":              n.Store.Path(),
		})
	}
	pp := printers.PrettyPrint{}
	pp.Settings(cur, n.Store.Path(), now)
	return nil
}
