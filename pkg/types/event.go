package types

import "fmt"

// Operation is the kind of lifecycle event delivered by the host
type Operation string

const (
	OperationInstall   Operation = "install"
	OperationUpdate    Operation = "update"
	OperationUninstall Operation = "uninstall"
)

// ParseOperation converts a string into an Operation
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OperationInstall, OperationUpdate, OperationUninstall:
		return op, nil
	default:
		return "", fmt.Errorf("unknown operation %q", s)
	}
}

// Event is a single lifecycle notification for one package.
type Event struct {
	Operation Operation

	// Package is the package being installed or removed. For updates it is
	// the initial (previous) package.
	Package *Package

	// Target is the package after an update. Unused otherwise.
	Target *Package

	// Root is the root (project) package owning the installation.
	Root *Package
}

// Subject returns the package whose hooks should run for this event
func (e Event) Subject() *Package {
	if e.Operation == OperationUpdate && e.Target != nil {
		return e.Target
	}
	return e.Package
}
