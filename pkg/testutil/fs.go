package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkghooks/pkg/filesystem"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewMemFS returns an in-memory filesystem seeded with files (path -> content)
func NewMemFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	for path, content := range files {
		WriteFile(t, fsys, path, content)
	}
	return fsys
}

// WriteFile writes content at path, creating parent directories
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content of path, failing the test when missing
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// AssertFileContent checks that path holds exactly want
func AssertFileContent(t *testing.T, fsys types.FS, path, want string) {
	t.Helper()
	assert.Equal(t, want, ReadFile(t, fsys, path), "content of %s", path)
}

// AssertNoFile checks that path does not exist
func AssertNoFile(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	_, err := fsys.Stat(path)
	assert.Error(t, err, "%s should not exist", path)
}
