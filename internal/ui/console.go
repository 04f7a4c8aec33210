// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize step, item, and status formatting across commands.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a section header.
// Example: 📦 Building com.endlessm.Showmehow.Service
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", emoji, title)
}

// Step prints a pipeline step announcement.
// Example: ➜ flatpak build-export repo build master
func (c *Console) Step(name string, args ...string) {
	fmt.Fprintf(c.Out, "➜ %s", name)
	for _, arg := range args {
		fmt.Fprintf(c.Out, " %s", arg)
	}
	fmt.Fprintln(c.Out)
}

// Item prints a key-value item with indentation.
// Example:    Branch: master
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Warn prints a warning message.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "⚠️  %s\n", msg)
}
