package ui

import (
	"tsb/internal/bootstrap"
)

// Formatter renders session state through a Console
type Formatter struct {
	console *Console
}

// NewFormatter creates a new Formatter
func NewFormatter(console *Console) *Formatter {
	return &Formatter{console: console}
}

// PrintLayout prints a table of the directory layout and each entry's state
func (f *Formatter) PrintLayout(entries []bootstrap.DirStatus) {
	c := f.console

	c.Printf("\n")
	c.Info("╔═══════════════════════════════════════════════════════════════╗")
	c.Info("║                        Report Layout                          ║")
	c.Info("╚═══════════════════════════════════════════════════════════════╝")

	c.Printf("┌─────────────┬───────────────────────────────────┬─────────────┐\n")
	for i, e := range entries {
		if i > 0 {
			c.Printf("├─────────────┼───────────────────────────────────┼─────────────┤\n")
		}
		c.Printf("│ %-11s │ %-33s │ ", e.Name, truncate(e.Path, 33))
		switch e.State {
		case bootstrap.StateDir:
			c.Success("%-11s │", e.State)
		case bootstrap.StateMissing:
			c.Warn("%-11s │", e.State)
		default:
			c.Error("%-11s │", e.State)
		}
	}
	c.Printf("└─────────────┴───────────────────────────────────┴─────────────┘\n")
}

// PrintReady prints the directories a session start guaranteed
func (f *Formatter) PrintReady(paths []string) {
	for _, p := range paths {
		f.console.Success("✓ %s", p)
	}
}

// truncate shortens s to n runes, keeping the tail
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "…" + string(r[len(r)-n+1:])
}
