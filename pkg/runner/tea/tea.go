package teaui

import (
	"context"
	"errors"

	"tableflip.dev/datestamp/pkg/app"
	"tableflip.dev/datestamp/pkg/session"
	"tableflip.dev/datestamp/pkg/settings"
	tuiapp "tableflip.dev/datestamp/pkg/tui/app"
)

// UI launches the Bubble Tea calendar panel.
type UI struct {
	App      *app.Service
	Session  *session.Session
	Settings *settings.Store
	// ShowPanes lays the session pane list next to the calendar.
	ShowPanes bool
}

func (u *UI) Do(ctx context.Context) error {
	if u.App == nil || u.Settings == nil {
		return errors.New("can not start ui, missing service")
	}
	// Pick up saves made by other datestamp commands while the panel is open.
	u.Settings.Watch()
	return tuiapp.Run(ctx, u.App, u.Session, u.Settings, tuiapp.WithPanes(u.ShowPanes))
}
