// Package output implements types.IO on the console.
//
// Progress messages go to the standard output and errors to the standard
// error, both styled with lipgloss. Plain text is written when colors are
// disabled or the output is redirected.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console writes host messages to a terminal
type Console struct {
	types.Prompter

	out    io.Writer
	errOut io.Writer
	action lipgloss.Style
	plain  lipgloss.Style
	failed lipgloss.Style
}

// NewConsole creates a Console. profile selects the color support, use
// termenv.Ascii for plain text.
func NewConsole(prompter types.Prompter, out, errOut io.Writer, profile termenv.Profile) *Console {
	r := lipgloss.NewRenderer(out, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	styles := DefaultStyles(r)

	return &Console{
		Prompter: prompter,
		out:      out,
		errOut:   errOut,
		action:   styles.Get(r, StyleAction),
		plain:    styles.Get(r, StyleMessage),
		failed:   styles.Get(r, StyleError),
	}
}

// Write prints a progress message. Action headers are highlighted.
func (c *Console) Write(message string) {
	style := c.plain
	if strings.HasPrefix(message, "Run for ") {
		style = c.action
	}
	_, _ = fmt.Fprintln(c.out, style.Render(message))
}

// WriteError prints an error message
func (c *Console) WriteError(message string) {
	_, _ = fmt.Fprintln(c.errOut, c.failed.Render(message))
}
