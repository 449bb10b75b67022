package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Console writes formatted, colored text for humans. Safe for concurrent use.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	cyan   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	white  *color.Color
}

// NewConsole creates a Console writing to out (stdout when nil)
func NewConsole(out io.Writer, noColor bool) *Console {
	if out == nil {
		out = os.Stdout
	}
	c := &Console{
		out:    out,
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		white:  color.New(color.FgWhite),
	}
	if noColor {
		for _, col := range []*color.Color{c.cyan, c.green, c.yellow, c.red, c.white} {
			col.DisableColor()
		}
	}
	return c
}

// Writer returns the underlying output
func (c *Console) Writer() io.Writer {
	return c.out
}

// Printf writes uncolored text
func (c *Console) Printf(format string, a ...any) {
	c.write(nil, format, a...)
}

// Info writes a cyan line
func (c *Console) Info(format string, a ...any) {
	c.write(c.cyan, format+"\n", a...)
}

// Success writes a green line
func (c *Console) Success(format string, a ...any) {
	c.write(c.green, format+"\n", a...)
}

// Warn writes a yellow line
func (c *Console) Warn(format string, a ...any) {
	c.write(c.yellow, format+"\n", a...)
}

// Error writes a red line
func (c *Console) Error(format string, a ...any) {
	c.write(c.red, format+"\n", a...)
}

func (c *Console) write(col *color.Color, format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if col == nil {
		fmt.Fprintf(c.out, format, a...)
		return
	}
	col.Fprintf(c.out, format, a...)
}
