// Package mcp provides the Model Context Protocol server integration for datestamp.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/datestamp/pkg/app"
	"tableflip.dev/datestamp/pkg/calendar"
	"tableflip.dev/datestamp/pkg/dateformat"
	"tableflip.dev/datestamp/pkg/notice"
	"tableflip.dev/datestamp/pkg/session"
	"tableflip.dev/datestamp/pkg/settings"
	"tableflip.dev/datestamp/pkg/timeutil"
)

// Workspace lists the panes of the session.
type Workspace interface {
	Panes() []session.Pane
	State() session.State
}

// SettingsStore reads and changes the shared settings.
type SettingsStore interface {
	Get() settings.Settings
	Update(func(*settings.Settings)) error
}

// Service coordinates the operations exposed by the MCP server.
type Service struct {
	App       *app.Service
	Workspace Workspace
	Settings  SettingsStore
}

// NewService wires a Service.
func NewService(svc *app.Service, ws Workspace, store SettingsStore) *Service {
	return &Service{App: svc, Workspace: ws, Settings: store}
}

// FormatResult is the outcome of format_date.
type FormatResult struct {
	Date     string `json:"date"`
	Pattern  string `json:"pattern"`
	Bold     bool   `json:"bold"`
	Text     string `json:"text"`
	Fallback bool   `json:"fallback,omitempty"`
}

// PaneDTO is a serializable pane.
type PaneDTO struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Active  bool   `json:"active"`
	Focused string `json:"focusedAt,omitempty"`
}

// SettingsDTO is the settings with their effective pattern and preview.
type SettingsDTO struct {
	settings.Settings
	EffectivePattern string `json:"effectivePattern"`
	Preview          string `json:"preview"`
}

// SettingsPatch carries optional settings changes.
type SettingsPatch struct {
	DateFormat        *string
	CustomFormat      *string
	UseBoldFormatting *bool
}

// MonthDTO is a calendar grid.
type MonthDTO struct {
	Month string   `json:"month"`
	Weeks [][]Cell `json:"weeks"`
}

// Cell is one day of MonthDTO.
type Cell struct {
	Date   string `json:"date"`
	Dimmed bool   `json:"dimmed,omitempty"`
	Today  bool   `json:"today,omitempty"`
}

func (s *Service) now() time.Time {
	if s.App != nil && s.App.Now != nil {
		return s.App.Now()
	}
	return time.Now()
}

// FormatDate renders a day. An empty pattern uses the configured effective
// pattern; bold defaults to the configured flag.
func (s *Service) FormatDate(day, pattern string, bold *bool) (FormatResult, error) {
	date, err := timeutil.ParseDay(day, s.now())
	if err != nil {
		return FormatResult{}, err
	}
	cur := settings.Defaults()
	if s.Settings != nil {
		cur = s.Settings.Get()
	}
	if strings.TrimSpace(pattern) == "" {
		pattern = cur.EffectivePattern()
	}
	b := cur.UseBoldFormatting
	if bold != nil {
		b = *bold
	}
	text, ferr := dateformat.FormatOrDefault(date, pattern, b)
	return FormatResult{
		Date:     timeutil.FormatDay(date),
		Pattern:  pattern,
		Bold:     b,
		Text:     text,
		Fallback: ferr != nil,
	}, nil
}

// InsertDate runs the insertion pipeline. Notices raised on the way are
// returned as the error message.
func (s *Service) InsertDate(ctx context.Context, day string) (app.Result, error) {
	if s.App == nil {
		return app.Result{}, errors.New("mcp: insertion not configured")
	}
	date, err := timeutil.ParseDay(day, s.now())
	if err != nil {
		return app.Result{}, err
	}
	rec := &notice.Recorder{}
	svc := *s.App
	svc.Notifier = rec
	res, err := svc.InsertDate(ctx, date)
	if err != nil {
		if app.Handled(err) {
			if got := rec.Notices(); len(got) > 0 {
				return app.Result{}, errors.New(got[len(got)-1].Message)
			}
		}
		return app.Result{}, err
	}
	return res, nil
}

// ListPanes returns the open panes.
func (s *Service) ListPanes(_ context.Context) ([]PaneDTO, error) {
	if s.Workspace == nil {
		return nil, errors.New("mcp: no workspace configured")
	}
	st := s.Workspace.State()
	panes := s.Workspace.Panes()
	out := make([]PaneDTO, 0, len(panes))
	for _, p := range panes {
		dto := PaneDTO{
			ID:     p.ID,
			Kind:   string(p.Kind),
			File:   p.File,
			Line:   p.Cursor.Line,
			Column: p.Cursor.Column,
			Active: p.ID == st.Active,
		}
		if !p.FocusedAt.IsZero() {
			dto.Focused = p.FocusedAt.Format(time.RFC3339)
		}
		out = append(out, dto)
	}
	return out, nil
}

// GetSettings returns the settings with preview.
func (s *Service) GetSettings(_ context.Context) (SettingsDTO, error) {
	if s.Settings == nil {
		return SettingsDTO{}, errors.New("mcp: no settings configured")
	}
	return toSettingsDTO(s.Settings.Get(), s.now()), nil
}

// UpdateSettings applies patch and returns the saved settings.
func (s *Service) UpdateSettings(_ context.Context, patch SettingsPatch) (SettingsDTO, error) {
	if s.Settings == nil {
		return SettingsDTO{}, errors.New("mcp: no settings configured")
	}
	err := s.Settings.Update(func(cur *settings.Settings) {
		if patch.DateFormat != nil {
			cur.DateFormat = *patch.DateFormat
		}
		if patch.CustomFormat != nil {
			cur.CustomFormat = *patch.CustomFormat
		}
		if patch.UseBoldFormatting != nil {
			cur.UseBoldFormatting = *patch.UseBoldFormatting
		}
	})
	if err != nil {
		return SettingsDTO{}, err
	}
	return toSettingsDTO(s.Settings.Get(), s.now()), nil
}

// Month returns the grid for a "January 2006" or "2006-01" month; empty
// means the current month.
func (s *Service) Month(_ context.Context, month string) (MonthDTO, error) {
	now := s.now()
	anchor := calendar.MonthStart(now)
	if strings.TrimSpace(month) != "" {
		t, ok := calendar.ParseMonth(month)
		if !ok {
			parsed, err := time.ParseInLocation("2006-01", month, now.Location())
			if err != nil {
				return MonthDTO{}, fmt.Errorf("invalid month %q", month)
			}
			t = parsed
		}
		anchor = calendar.MonthStart(t)
	}
	dto := MonthDTO{Month: anchor.Format("January 2006")}
	for _, week := range calendar.Weeks(calendar.Grid(anchor, time.Sunday, now)) {
		row := make([]Cell, 0, len(week))
		for _, c := range week {
			row = append(row, Cell{Date: timeutil.FormatDay(c.Date), Dimmed: c.Dimmed, Today: c.Today})
		}
		dto.Weeks = append(dto.Weeks, row)
	}
	return dto, nil
}

func toSettingsDTO(cur settings.Settings, now time.Time) SettingsDTO {
	return SettingsDTO{
		Settings:         cur,
		EffectivePattern: cur.EffectivePattern(),
		Preview:          cur.Preview(now),
	}
}
