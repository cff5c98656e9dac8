package actions

import (
	"github.com/arthur-debert/pkghooks/pkg/bundles"
	"github.com/arthur-debert/pkghooks/pkg/config"
	"github.com/arthur-debert/pkghooks/pkg/paths"
	"github.com/arthur-debert/pkghooks/pkg/types"
	"gopkg.in/yaml.v3"
)

// Action runs for one package on each lifecycle operation
type Action interface {
	Install(ctx Context) error
	Update(ctx Context) error
	Uninstall(ctx Context) error
}

// Documented is implemented by actions carrying markdown documentation
type Documented interface {
	// Doc returns a markdown description of the action and its arguments
	Doc() string
}

// Factory creates a fresh Action
type Factory func() Action

// Context is everything an action can use while running
type Context struct {
	// Package is the name of the package whose hook is running
	Package string

	// Args is the raw value of the hook entry
	Args *yaml.Node

	IO     types.IO
	FS     types.FS
	Paths  *paths.Paths
	Config *config.Config

	// BundleOptions customize the registry store of the bundles action
	BundleOptions []bundles.StoreOption
}

// Run dispatches op to the matching method of a
func Run(a Action, op types.Operation, ctx Context) error {
	switch op {
	case types.OperationInstall:
		return a.Install(ctx)
	case types.OperationUpdate:
		return a.Update(ctx)
	case types.OperationUninstall:
		return a.Uninstall(ctx)
	}
	return nil
}
