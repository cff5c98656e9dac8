package files

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/logging"
	"github.com/arthur-debert/pkghooks/pkg/manifest"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"github.com/rs/zerolog"
)

// Remover deletes the files listed by a manifest
type Remover struct {
	fs     types.FS
	io     types.IO
	logger zerolog.Logger
}

// NewRemover creates a Remover
func NewRemover(fsys types.FS, io types.IO) *Remover {
	return &Remover{
		fs:     fsys,
		io:     io,
		logger: logging.GetLogger("files.remover"),
	}
}

// Remove deletes every file of m under dir after a single confirmation.
// subject names what is being cleaned (usually the package name). Content
// descriptors are ignored.
func (r *Remover) Remove(dir string, m *manifest.Manifest, subject string) error {
	r.io.Write(fmt.Sprintf("Clean configuration from %s", subject))

	question := fmt.Sprintf("Confirm remove files from %s? (yes/no)", subject)
	ok, err := r.io.Confirm(question, true)
	if err != nil {
		return errors.Wrap(err, errors.ErrPrompt, "cannot read confirmation")
	}
	if !ok {
		r.logger.Info().Str("subject", subject).Msg("Removal declined")
		return nil
	}

	for _, name := range m.Names() {
		path := filepath.Join(dir, name)
		r.io.Write(fmt.Sprintf("Delete %s", path))

		if err := r.fs.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				r.logger.Debug().Str("path", path).Msg("Already removed")
				continue
			}
			return errors.Wrapf(err, errors.ErrFileDelete, "cannot delete %s", path).
				WithDetail("path", path)
		}
	}
	return nil
}
