package options

import (
	"testing"
	"time"

	"tableflip.dev/datestamp/pkg/settings"
	"tableflip.dev/datestamp/pkg/workspace"
)

func TestParsePosition(t *testing.T) {
	cases := map[string]workspace.Position{
		"3:14": {Line: 3, Column: 14},
		"7":    {Line: 7},
		" 0:0": {},
	}
	for in, want := range cases {
		got, err := ParsePosition(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	for _, in := range []string{"", "a:1", "1:b", "-1:0"} {
		if _, err := ParsePosition(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestGetOn(t *testing.T) {
	now := time.Date(2025, time.January, 25, 12, 0, 0, 0, time.UTC)
	o := &OnOptions{}
	got, err := o.GetOn(now)
	if err != nil || got.Format("2006-01-02") != "2025-01-25" {
		t.Fatalf("expected today, got %v %v", got, err)
	}
	o.OnString = "2/28"
	got, err = o.GetOn(now)
	if err != nil || got.Format("2006-01-02") != "2025-02-28" {
		t.Fatalf("expected Feb 28, got %v %v", got, err)
	}
}

func TestFormatOptionsApply(t *testing.T) {
	o := &FormatOptions{DateFormat: "custom", CustomFormat: "DD/MM/YYYY", Bold: "off"}
	fn, err := o.Apply()
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	s := settings.Defaults()
	fn(&s)
	if s.EffectivePattern() != "DD/MM/YYYY" || s.UseBoldFormatting {
		t.Fatalf("unexpected settings %+v", s)
	}

	if _, err := (&FormatOptions{Bold: "maybe"}).Apply(); err == nil {
		t.Fatalf("expected invalid bold error")
	}
	if !(&FormatOptions{}).Empty() {
		t.Fatalf("expected empty options")
	}
}
