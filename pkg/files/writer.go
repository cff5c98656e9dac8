package files

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkghooks/pkg/content"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/logging"
	"github.com/arthur-debert/pkghooks/pkg/manifest"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/rs/zerolog"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Writer writes manifests into a destination directory
type Writer struct {
	fs     types.FS
	io     types.IO
	logger zerolog.Logger

	// SkipIdentical replaces existing files without asking when their
	// content already matches, ignoring surrounding whitespace.
	SkipIdentical bool
}

// NewWriter creates a Writer
func NewWriter(fsys types.FS, io types.IO) *Writer {
	return &Writer{
		fs:     fsys,
		io:     io,
		logger: logging.GetLogger("files.writer"),
	}
}

// Write materializes every file of m under dir, in manifest order. It stops
// at the first error.
func (w *Writer) Write(dir string, m *manifest.Manifest) error {
	for _, entry := range m.Entries() {
		if err := w.writeOne(dir, entry); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeOne(dir string, entry manifest.Entry) error {
	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir).
			WithDetail("dir", dir)
	}

	payload, err := content.Resolve(entry.Name, entry.Content)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, entry.Name)
	proceed, err := w.confirmOverwrite(path, payload)
	if err != nil {
		return err
	}
	if !proceed {
		w.logger.Info().Str("path", path).Msg("Overwrite declined, keeping existing file")
		return nil
	}

	// entry names may contain sub directories
	if parent := filepath.Dir(path); parent != dir {
		if err := w.fs.MkdirAll(parent, dirPerm); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", parent).
				WithDetail("dir", parent)
		}
	}

	w.io.Write(fmt.Sprintf("Extract %s in %s", entry.Name, dir))
	if err := w.fs.WriteFile(path, []byte(payload), filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("path", path)
	}

	w.logger.Debug().Str("path", path).Int("bytes", len(payload)).Msg("File written")
	return nil
}

// confirmOverwrite returns true when path can be (re)written
func (w *Writer) confirmOverwrite(path, payload string) (bool, error) {
	if _, err := w.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}

	if w.SkipIdentical {
		existing, err := w.fs.ReadFile(path)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
		}
		if strings.TrimSpace(string(existing)) == strings.TrimSpace(payload) {
			return true, nil
		}
	}

	question := fmt.Sprintf("%s already exists, replace it? (yes/no)", path)
	ok, err := w.io.Confirm(question, false)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrPrompt, "cannot read confirmation")
	}
	return ok, nil
}
