package ui

import (
	"bytes"
	"strings"
	"testing"

	"tsb/internal/bootstrap"
)

func TestConsole_NoColor(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.Info("info %d", 1)
	c.Success("ok")
	c.Warn("warn")
	c.Error("bad")
	c.Printf("plain %s", "text")

	want := "info 1\nok\nwarn\nbad\nplain text"
	if got := buf.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatter_PrintLayout(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(NewConsole(&buf, true))

	f.PrintLayout([]bootstrap.DirStatus{
		{Name: "reports", Path: "reports", State: bootstrap.StateDir},
		{Name: "logs", Path: "reports/logs", State: bootstrap.StateMissing},
	})

	out := buf.String()
	for _, want := range []string{"Report Layout", "reports/logs", "directory", "missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected short, got %s", got)
	}
	got := truncate("/a/very/long/path/to/reports", 10)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "reports") {
		t.Errorf("unexpected truncation: %s", got)
	}
}
