package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"tableflip.dev/datestamp/pkg/insert"
	"tableflip.dev/datestamp/pkg/notice"
	"tableflip.dev/datestamp/pkg/session"
	"tableflip.dev/datestamp/pkg/settings"
	"tableflip.dev/datestamp/pkg/target"
	"tableflip.dev/datestamp/pkg/timeutil"
	"tableflip.dev/datestamp/pkg/workspace"
)

// SettingsSource hands out the current settings value.
type SettingsSource interface {
	Get() settings.Settings
}

// Static is a fixed SettingsSource.
type Static settings.Settings

func (s Static) Get() settings.Settings { return settings.Settings(s) }

// Service runs the format, resolve and insert pipeline so the CLI, the TUI
// and the MCP server share one code path.
type Service struct {
	Settings SettingsSource
	Host     workspace.Host
	Notifier notice.Notifier
	Now      func() time.Time
	Log      *log.Logger
}

var (
	ErrNoSettings = errors.New("app: no settings configured")
	ErrNoHost     = errors.New("app: no workspace configured")
)

// Result describes a completed insertion.
type Result struct {
	Date   time.Time          `json:"date"`
	Text   string             `json:"text"`
	Pane   string             `json:"pane"`
	File   string             `json:"file,omitempty"`
	Rule   target.Rule        `json:"rule"`
	Cursor workspace.Position `json:"cursor"`
}

// Handled reports whether err was already shown to the user as a notice.
func Handled(err error) bool {
	return errors.Is(err, target.ErrNoTarget) || errors.Is(err, insert.ErrTargetUnavailable)
}

// Today is midnight of the current day.
func (s *Service) Today() time.Time {
	return timeutil.Midnight(s.now())
}

// FormatDate renders date with the current settings. A broken pattern falls
// back to the default and is logged.
func (s *Service) FormatDate(date time.Time) (string, error) {
	if s.Settings == nil {
		return "", ErrNoSettings
	}
	cur := s.Settings.Get()
	text, err := cur.Format(date)
	if err != nil {
		s.logf("format %q fell back to default: %v", cur.EffectivePattern(), err)
	}
	return text, nil
}

// InsertToday inserts the current date.
func (s *Service) InsertToday(ctx context.Context) (Result, error) {
	return s.InsertDate(ctx, s.Today())
}

// InsertDate formats date and writes it at the cursor of the resolved target.
// When there is no target or it vanishes the user gets a notice and the
// error is returned for the caller to inspect with Handled.
func (s *Service) InsertDate(ctx context.Context, date time.Time) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if s.Host == nil {
		return Result{}, ErrNoHost
	}
	text, err := s.FormatDate(date)
	if err != nil {
		return Result{}, err
	}

	resolved, err := target.Resolve(s.Host)
	if err != nil {
		s.logf("no insertion target: %v", err)
		s.notify(notice.Warn(notice.NoActiveNote))
		return Result{}, err
	}
	s.logf("target %s via %s", resolved.Surface.ID(), resolved.Rule)

	pos, err := insert.Insert(resolved.Surface, text)
	if err != nil {
		s.logf("insert into %s: %v", resolved.Surface.ID(), err)
		if errors.Is(err, insert.ErrTargetUnavailable) {
			s.notify(notice.Warn(notice.NoteClosed))
		}
		return Result{}, err
	}

	res := Result{
		Date:   date,
		Text:   text,
		Pane:   resolved.Surface.ID(),
		File:   resolved.Surface.File(),
		Rule:   resolved.Rule,
		Cursor: pos,
	}
	s.notify(notice.Infof("Inserted %s into %s", text, res.where()))
	return res, nil
}

// Watch subscribes to workspace change events when the host supports them.
func (s *Service) Watch(ctx context.Context) (<-chan session.Event, error) {
	w, ok := s.Host.(interface {
		Watch(context.Context) (<-chan session.Event, error)
	})
	if !ok {
		return nil, fmt.Errorf("app: workspace does not support watching")
	}
	return w.Watch(ctx)
}

func (r Result) where() string {
	if r.File != "" {
		return filepath.Base(r.File)
	}
	return r.Pane
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) notify(n notice.Notice) {
	if s.Notifier != nil {
		s.Notifier.Notify(n)
	}
}

func (s *Service) logf(format string, args ...interface{}) {
	if s.Log != nil {
		s.Log.Printf(format, args...)
	}
}

// NewLogger returns a stderr logger when verbose is set and a silent one
// otherwise.
func NewLogger(verbose bool, out io.Writer) *log.Logger {
	if !verbose || out == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(out, "datestamp: ", log.Ltime)
}
