package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pkghooks/cmd/pkghooks"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func main() {
	rootCmd := pkghooks.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		r := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(ui.ColorProfile(os.Stderr, false)))
		errorStyle := r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF5F87"})
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Help()
		}
		os.Exit(1)
	}
}
