package notice

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestConsoleWraps(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	c := &Console{Out: &buf, Width: 20}
	c.Notify(Warn(NoActiveNote))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %q", buf.String())
	}
	if strings.Join(strings.Fields(buf.String()), " ") != NoActiveNote {
		t.Fatalf("message altered: %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Notify(Infof("Inserted %s", "2025-01-25"))
	r.Notify(Warn(NoteClosed))

	got := r.Notices()
	if len(got) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(got))
	}
	if got[0].Message != "Inserted 2025-01-25" || got[0].Level != Info {
		t.Fatalf("unexpected first notice %+v", got[0])
	}
	if got[1].Level.String() != "warning" {
		t.Fatalf("unexpected level %s", got[1].Level)
	}
}
