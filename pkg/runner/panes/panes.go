package panes

import (
	"context"
	"errors"

	"tableflip.dev/datestamp/pkg/printers"
	"tableflip.dev/datestamp/pkg/session"
	"tableflip.dev/datestamp/pkg/workspace"
)

// Action is a workspace change requested from the command line.
type Action string

const (
	List   Action = "list"
	Open   Action = "open"
	Close  Action = "close"
	Focus  Action = "focus"
	Cursor Action = "cursor"
)

// Panes drives the session panes.
type Panes struct {
	Session *session.Session
	Action  Action
	// File is used by Open, ID by Close, Focus and Cursor.
	File     string
	ID       string
	Position workspace.Position

	ShowID bool
	JSON   bool
	Print  func(interface{}) error
}

func (n *Panes) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not change panes, no session")
	}

	var err error
	switch n.Action {
	case Open:
		_, err = n.Session.Open(n.File)
	case Close:
		err = n.Session.Close(n.ID)
	case Focus:
		_, err = n.Session.Focus(n.ID)
	case Cursor:
		_, err = n.Session.MoveCursor(n.ID, n.Position)
	case List, "":
	default:
		err = errors.New("unknown pane action " + string(n.Action))
	}
	if err != nil {
		return err
	}

	panes := n.Session.Panes()
	st := n.Session.State()
	if n.JSON {
		if n.Print == nil {
			return nil
		}
		return n.Print(map[string]interface{}{
			"panes":  panes,
			"active": st.Active,
			"file":   st.ActiveFile,
		})
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Panes(panes, st)
	return nil
}
