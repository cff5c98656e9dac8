// Package prompt provides the Prompter implementations used by the CLI.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/pkghooks/pkg/config"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/arthur-debert/pkghooks/pkg/ui"
	"github.com/pterm/pterm"
)

// Console asks questions on the terminal. When input is not a terminal it
// reads one answer per line, and answers the default once input is exhausted.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewConsole creates a Console reading from in and writing questions to out
func NewConsole(in *os.File, out io.Writer) *Console {
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: ui.IsTerminal(in),
	}
}

// NewReader creates a non interactive Console reading answers from in
func NewReader(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Confirm asks question and returns the answer
func (c *Console) Confirm(question string, defaultAnswer bool) (bool, error) {
	if c.interactive {
		ok, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(defaultAnswer).
			Show(question)
		if err != nil {
			return false, errors.Wrap(err, errors.ErrPrompt, "interactive confirmation failed")
		}
		return ok, nil
	}

	_, _ = fmt.Fprintln(c.out, question)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrPrompt, "cannot read answer")
	}
	return parseAnswer(line, defaultAnswer), nil
}

// parseAnswer accepts anything starting with y as yes. Blank answers select
// the default.
func parseAnswer(line string, defaultAnswer bool) bool {
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return defaultAnswer
	}
	return strings.HasPrefix(answer, "y")
}

// Fixed returns a Prompter always answering answer
func Fixed(answer bool) types.Prompter {
	return types.PromptFunc(func(string, bool) (bool, error) {
		return answer, nil
	})
}

// Defaults returns a Prompter always answering the question default
func Defaults() types.Prompter {
	return types.PromptFunc(func(_ string, defaultAnswer bool) (bool, error) {
		return defaultAnswer, nil
	})
}

// ForMode returns the Prompter for an interactive mode of the configuration
func ForMode(mode string, in *os.File, out io.Writer) (types.Prompter, error) {
	switch mode {
	case config.ModeAuto, "":
		return NewConsole(in, out), nil
	case config.ModeDefaults:
		return Defaults(), nil
	case config.ModeYes:
		return Fixed(true), nil
	case config.ModeNo:
		return Fixed(false), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown interactive mode %q", mode)
	}
}
