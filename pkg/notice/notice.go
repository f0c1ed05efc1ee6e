// Package notice carries short user facing messages from the insertion
// pipeline to whatever surface is showing them.
package notice

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"
)

// Timeout is how long a transient notice stays visible.
const Timeout = 3 * time.Second

const (
	// NoActiveNote is shown when there is nowhere to insert.
	NoActiveNote = "Please open a note first to insert the date"
	// NoteClosed is shown when the target disappeared mid insertion.
	NoteClosed = "The note was closed before the date could be inserted"
)

// Level ranks a notice.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notice is a single message.
type Notice struct {
	Level   Level
	Message string
}

// Notifier shows notices.
type Notifier interface {
	Notify(Notice)
}

// Func adapts a function to a Notifier.
type Func func(Notice)

func (f Func) Notify(n Notice) { f(n) }

// Discard drops every notice.
var Discard Notifier = Func(func(Notice) {})

// Infof builds an Info notice.
func Infof(format string, args ...interface{}) Notice {
	return Notice{Level: Info, Message: fmt.Sprintf(format, args...)}
}

// Warn builds a Warning notice.
func Warn(msg string) Notice {
	return Notice{Level: Warning, Message: msg}
}

// Console writes notices to a terminal, wrapped to Width columns.
type Console struct {
	Out   io.Writer
	Width int
}

// NewConsole writes to color.Output.
func NewConsole() *Console {
	return &Console{Out: color.Output, Width: 80}
}

func (c *Console) Notify(n Notice) {
	out := c.Out
	if out == nil {
		out = color.Output
	}
	msg := n.Message
	if c.Width > 0 {
		msg = wordwrap.String(msg, c.Width)
	}
	var p *color.Color
	switch n.Level {
	case Warning:
		p = color.New(color.FgYellow)
	case Error:
		p = color.New(color.FgRed, color.Bold)
	default:
		p = color.New(color.Faint)
	}
	_, _ = p.Fprintln(out, msg)
}

// Recorder keeps notices in memory.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of what was recorded.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}
