// Package paths resolves the project layout pkghooks writes into.
//
// Everything lives under <cwd>/<root-dir>/<config-dir>, with package
// configuration fragments in "packages" and route fragments in "routes".
package paths

import (
	"path/filepath"
)

const (
	// DefaultRootDir is the project root, relative to the working directory
	DefaultRootDir = "."

	// DefaultConfigDir is the configuration directory, relative to the root
	DefaultConfigDir = "config"

	// PackagesDir holds per-package configuration fragments
	PackagesDir = "packages"

	// RoutesDir holds per-package route fragments
	RoutesDir = "routes"
)

// Paths resolves project directories
type Paths struct {
	workDir   string
	rootDir   string
	configDir string
}

// New creates Paths. Empty rootDir and configDir fall back to the defaults;
// absolute values are used as is.
func New(workDir, rootDir, configDir string) *Paths {
	if rootDir == "" {
		rootDir = DefaultRootDir
	}
	if configDir == "" {
		configDir = DefaultConfigDir
	}
	return &Paths{workDir: workDir, rootDir: rootDir, configDir: configDir}
}

// Root returns the project root directory
func (p *Paths) Root() string {
	return join(p.workDir, p.rootDir)
}

// ConfigDir returns the configuration directory
func (p *Paths) ConfigDir() string {
	return join(p.Root(), p.configDir)
}

// PackagesDir returns the directory of package configuration fragments
func (p *Paths) PackagesDir() string {
	return filepath.Join(p.ConfigDir(), PackagesDir)
}

// RoutesDir returns the directory of route fragments
func (p *Paths) RoutesDir() string {
	return filepath.Join(p.ConfigDir(), RoutesDir)
}

func join(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
