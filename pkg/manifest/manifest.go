// Package manifest holds the ordered file manifests declared by packages.
package manifest

import (
	"github.com/arthur-debert/pkghooks/pkg/content"
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Entry is one file of a manifest
type Entry struct {
	Name    string
	Content content.Descriptor
}

// Manifest maps relative file names to content descriptors, keeping the
// order in which they were declared.
type Manifest struct {
	entries []Entry
}

// New builds a manifest from entries. Duplicate names are rejected.
func New(entries ...Entry) (*Manifest, error) {
	m := &Manifest{}
	for _, e := range entries {
		if err := m.Add(e.Name, e.Content); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add appends a file to the manifest
func (m *Manifest) Add(name string, d content.Descriptor) error {
	if name == "" {
		return errors.New(errors.ErrManifestInvalid, "file name cannot be empty")
	}
	if m.Has(name) {
		return errors.Newf(errors.ErrManifestInvalid, "file %s is declared twice", name).
			WithDetail("file", name)
	}
	m.entries = append(m.entries, Entry{Name: name, Content: d})
	return nil
}

// Has reports whether name is part of the manifest
func (m *Manifest) Has(name string) bool {
	for _, e := range m.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Entries returns the files in declaration order
func (m *Manifest) Entries() []Entry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Names returns the file names in declaration order
func (m *Manifest) Names() []string {
	names := make([]string, 0, m.Len())
	for _, e := range m.Entries() {
		names = append(names, e.Name)
	}
	return names
}

// Len returns the number of files
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// UnmarshalYAML decodes a mapping node, preserving key order
func (m *Manifest) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := FromNode(node)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// FromNode decodes a manifest from a YAML (or JSON) mapping node. A null node
// yields an empty manifest.
func FromNode(node *yaml.Node) (*Manifest, error) {
	m := &Manifest{}
	if node == nil {
		return m, nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return m, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrManifestInvalid,
			"file manifest must be a mapping of file name to content (line %d)", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := m.Add(node.Content[i].Value, content.FromNode(node.Content[i+1])); err != nil {
			return nil, err
		}
	}
	return m, nil
}
