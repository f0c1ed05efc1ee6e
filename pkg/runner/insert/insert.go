package insert

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/datestamp/pkg/app"
	"tableflip.dev/datestamp/pkg/printers"
)

// Insert writes a date into the resolved note.
type Insert struct {
	App    *app.Service
	On     time.Time
	ShowID bool
	JSON   bool
	// Print is used for JSON output; nil prints nothing.
	Print func(interface{}) error
}

func (n *Insert) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not insert, no service")
	}
	on := n.On
	if on.IsZero() {
		on = n.App.Today()
	}

	res, err := n.App.InsertDate(ctx, on)
	if err != nil {
		// The notice already told the user; nothing else to report.
		if app.Handled(err) && !n.JSON {
			return nil
		}
		return err
	}

	if n.JSON {
		if n.Print != nil {
			return n.Print(res)
		}
		return nil
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Inserted(res)
	return nil
}
