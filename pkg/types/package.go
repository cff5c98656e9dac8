package types

import "gopkg.in/yaml.v3"

// Hook is one action configured by a package, with its raw arguments.
type Hook struct {
	Action string
	Args   *yaml.Node
}

// Package is the host's package metadata, reduced to what pkghooks uses.
type Package struct {
	Name string

	// Extra holds the free-form "extra" section of the package document.
	Extra map[string]interface{}

	// Hooks are the entries of the pkghooks section, in document order.
	Hooks []Hook
}

// ExtraString returns a string value of the extra section, or def when the
// key is missing or not a non-empty string.
func (p *Package) ExtraString(key, def string) string {
	if p == nil || p.Extra == nil {
		return def
	}
	if s, ok := p.Extra[key].(string); ok && s != "" {
		return s
	}
	return def
}
