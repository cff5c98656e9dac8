package actions

import (
	"fmt"

	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/files"
	"github.com/arthur-debert/pkghooks/pkg/manifest"
	"github.com/arthur-debert/pkghooks/pkg/paths"
)

// FilesAction writes the files of a manifest into a directory of the
// project, and removes them when the package goes away.
type FilesAction struct {
	// Destination picks the target directory from the project layout
	Destination func(p *paths.Paths) string

	// SkipIdentical is passed to the files.Writer
	SkipIdentical bool

	doc string
}

// Install writes the manifest
func (a *FilesAction) Install(ctx Context) error {
	return a.write(ctx)
}

// Update writes the manifest again, asking before replacing changed files
func (a *FilesAction) Update(ctx Context) error {
	return a.write(ctx)
}

// Uninstall removes the manifest files after confirmation
func (a *FilesAction) Uninstall(ctx Context) error {
	m, dir, err := a.prepare(ctx)
	if err != nil {
		return err
	}
	return files.NewRemover(ctx.FS, ctx.IO).Remove(dir, m, ctx.Package)
}

// Doc returns the action documentation
func (a *FilesAction) Doc() string {
	return a.doc
}

func (a *FilesAction) write(ctx Context) error {
	m, dir, err := a.prepare(ctx)
	if err != nil {
		return err
	}

	ctx.IO.Write(fmt.Sprintf("Install from %s", ctx.Package))
	w := files.NewWriter(ctx.FS, ctx.IO)
	w.SkipIdentical = a.SkipIdentical
	return w.Write(dir, m)
}

func (a *FilesAction) prepare(ctx Context) (*manifest.Manifest, string, error) {
	if ctx.Paths == nil || a.Destination == nil {
		return nil, "", errors.Newf(errors.ErrActionExecute, "no destination for files of %s", ctx.Package)
	}
	m, err := manifest.FromNode(ctx.Args)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrActionExecute, "invalid file list in %s", ctx.Package).
			WithDetail("package", ctx.Package)
	}
	return m, a.Destination(ctx.Paths), nil
}
