package ui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkghooks/pkg/ui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularFileIsNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, ui.IsTerminal(f))
	assert.False(t, ui.IsTerminal(nil))
	assert.Equal(t, termenv.Ascii, ui.ColorProfile(f, false))
}

func TestNoColor(t *testing.T) {
	assert.Equal(t, termenv.Ascii, ui.ColorProfile(os.Stdout, true))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, ui.ColorProfile(os.Stdout, false))
}
