package help

import (
	"strings"
	"testing"
)

func TestRendersKeyHelp(t *testing.T) {
	m := New(60, 20)
	content := m.Content()
	for _, want := range []string{"Calendar", "insert today", "cycle the date format", "YYYY"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in help:\n%s", want, content)
		}
	}
	if strings.Contains(content, "\x1b[") {
		t.Fatalf("help still carries escape codes")
	}
}

func TestSizeHasFloor(t *testing.T) {
	m := New(1, 1)
	if m.width != minWidth || m.height != minHeight {
		t.Fatalf("expected %dx%d, got %dx%d", minWidth, minHeight, m.width, m.height)
	}
}
