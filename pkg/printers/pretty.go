package printers

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datestamp/pkg/app"
	"tableflip.dev/datestamp/pkg/dateformat"
	"tableflip.dev/datestamp/pkg/session"
	"tableflip.dev/datestamp/pkg/settings"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " pane")
	default:
		_, _ = c.Fprintln(pp.out(), " panes")
	}
}

// Panes lists the session panes, marking the active one.
func (pp *PrettyPrint) Panes(panes []session.Pane, st session.State) {
	pp.TitleWithCount("Panes", len(panes))
	if len(panes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	active := color.New(color.Bold, color.FgHiYellow)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("", "ID", "KIND", "FILE", "CURSOR")
	} else {
		tbl.AddRow("", "KIND", "FILE", "CURSOR")
	}
	for _, p := range panes {
		marker := " "
		if p.ID == st.Active {
			marker = active.Sprint("*")
		}
		file := p.File
		cursor := p.Cursor.String()
		if p.Kind == session.KindCalendar {
			file = faint.Sprint("-")
			cursor = faint.Sprint("-")
		} else if p.File == st.ActiveFile {
			file = active.Sprint(filepath.Base(p.File))
		} else {
			file = filepath.Base(p.File)
		}
		if pp.ShowID {
			tbl.AddRow(marker, p.ID, p.Kind, file, cursor)
		} else {
			tbl.AddRow(marker, p.Kind, file, cursor)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Formats prints the format choices with a sample for sample, marking cur.
func (pp *PrettyPrint) Formats(cur settings.Settings, sample time.Time) {
	pp.Title("Formats")

	selected := color.New(color.Bold, color.FgHiGreen)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "CHOICE", "EXAMPLE")
	for _, p := range dateformat.Presets() {
		marker := " "
		example := p.Label
		if p.Pattern == dateformat.Custom {
			example = fmt.Sprintf("%s (%s)", p.Label, cur.CustomFormat)
		} else if out, err := dateformat.Format(sample, p.Pattern, false); err == nil {
			example = out
		}
		choice := p.Pattern
		if p.Pattern == cur.DateFormat {
			marker = selected.Sprint("*")
			choice = selected.Sprint(p.Pattern)
		}
		tbl.AddRow(marker, choice, example)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Settings prints the current settings and the preview line.
func (pp *PrettyPrint) Settings(cur settings.Settings, path string, now time.Time) {
	pp.Title("Settings")
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("dateFormat", cur.DateFormat)
	tbl.AddRow("customFormat", cur.CustomFormat)
	tbl.AddRow("useBoldFormatting", cur.UseBoldFormatting)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	preview := cur.Preview(now)
	if preview == "Invalid format" {
		_, _ = color.New(color.FgRed).Fprintln(pp.out(), preview)
	} else {
		_, _ = fmt.Fprintln(pp.out(), preview)
	}
	if path != "" {
		_, _ = faint.Fprintln(pp.out(), path)
	}
}

// Inserted confirms an insertion.
func (pp *PrettyPrint) Inserted(res app.Result) {
	g := color.New(color.FgGreen)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	_, _ = g.Fprint(pp.out(), res.Text)
	where := res.Pane
	if res.File != "" {
		where = filepath.Base(res.File)
	}
	_, _ = fmt.Fprintf(pp.out(), " → %s at %s", where, res.Cursor)
	if pp.ShowID {
		_, _ = y.Fprintf(pp.out(), " (%s via %s)", res.Pane, res.Rule)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}
