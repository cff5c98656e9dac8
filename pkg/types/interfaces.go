package types

import (
	"io/fs"
	"time"
)

// FS defines the filesystem operations pkghooks needs.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	Chtimes(name string, atime time.Time, mtime time.Time) error
}

// Prompter asks the user a yes/no question. defaultAnswer is returned when no
// answer can be read.
type Prompter interface {
	Confirm(question string, defaultAnswer bool) (bool, error)
}

// PromptFunc adapts a plain function to the Prompter interface
type PromptFunc func(question string, defaultAnswer bool) (bool, error)

// Confirm calls f(question, defaultAnswer)
func (f PromptFunc) Confirm(question string, defaultAnswer bool) (bool, error) {
	return f(question, defaultAnswer)
}

// IO is the interactive channel with the user, as provided by the host.
type IO interface {
	Prompter

	// Write reports a progress message
	Write(message string)

	// WriteError reports an error message
	WriteError(message string)
}
