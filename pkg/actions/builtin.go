package actions

import (
	_ "embed"

	"github.com/arthur-debert/pkghooks/pkg/paths"
	"github.com/arthur-debert/pkghooks/pkg/registry"
)

// Built-in action names
const (
	FilesName    = "files"
	PackagesName = "packages"
	RoutesName   = "routes"
	BundlesName  = "bundles"
)

var (
	//go:embed docs/files.md
	filesDoc string

	//go:embed docs/packages.md
	packagesDoc string

	//go:embed docs/routes.md
	routesDoc string

	//go:embed docs/bundles.md
	bundlesDoc string
)

// NewFilesAction writes files relative to the project root
func NewFilesAction() Action {
	return &FilesAction{
		Destination:   (*paths.Paths).Root,
		SkipIdentical: true,
		doc:           filesDoc,
	}
}

// NewPackagesAction writes package configuration fragments
func NewPackagesAction() Action {
	return &FilesAction{
		Destination: (*paths.Paths).PackagesDir,
		doc:         packagesDoc,
	}
}

// NewRoutesAction writes route fragments
func NewRoutesAction() Action {
	return &FilesAction{
		Destination: (*paths.Paths).RoutesDir,
		doc:         routesDoc,
	}
}

// NewBundlesAction maintains the bundle registry
func NewBundlesAction() Action {
	return &BundlesAction{}
}

// DefaultRegistry returns a registry holding the built-in actions
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registry.MustRegister(r.factories, FilesName, NewFilesAction)
	registry.MustRegister(r.factories, PackagesName, NewPackagesAction)
	registry.MustRegister(r.factories, RoutesName, NewRoutesAction)
	registry.MustRegister(r.factories, BundlesName, NewBundlesAction)
	return r
}
