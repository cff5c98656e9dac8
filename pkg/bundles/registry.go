package bundles

import (
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Flag is the enablement of a bundle in one environment
type Flag struct {
	Env     string
	Enabled bool
}

// Bundle is a registry entry: an identifier and its per-environment flags
type Bundle struct {
	ID   string
	Envs []Flag
}

// Env returns the flag for env and whether it is set
func (b Bundle) Env(env string) (enabled bool, ok bool) {
	for _, f := range b.Envs {
		if f.Env == env {
			return f.Enabled, true
		}
	}
	return false, false
}

func (b *Bundle) setEnv(env string, enabled bool) {
	for i := range b.Envs {
		if b.Envs[i].Env == env {
			b.Envs[i].Enabled = enabled
			return
		}
	}
	b.Envs = append(b.Envs, Flag{Env: env, Enabled: enabled})
}

func (b Bundle) clone() Bundle {
	envs := make([]Flag, len(b.Envs))
	copy(envs, b.Envs)
	return Bundle{ID: b.ID, Envs: envs}
}

// Registry is an ordered set of bundles
type Registry struct {
	bundles []Bundle
}

// NewRegistry returns a registry holding bundles, in order. Later duplicates
// of an identifier replace earlier ones in place.
func NewRegistry(bundles ...Bundle) *Registry {
	r := &Registry{}
	for _, b := range bundles {
		r.Set(b)
	}
	return r
}

// Set adds or replaces a bundle
func (r *Registry) Set(b Bundle) {
	b = b.clone()
	for i := range r.bundles {
		if r.bundles[i].ID == b.ID {
			r.bundles[i] = b
			return
		}
	}
	r.bundles = append(r.bundles, b)
}

// Get returns the bundle registered under id
func (r *Registry) Get(id string) (Bundle, bool) {
	if i := r.index(id); i >= 0 {
		return r.bundles[i].clone(), true
	}
	return Bundle{}, false
}

// Has reports whether id is registered
func (r *Registry) Has(id string) bool {
	return r.index(id) >= 0
}

// Delete removes id from the registry
func (r *Registry) Delete(id string) {
	if i := r.index(id); i >= 0 {
		r.bundles = append(r.bundles[:i], r.bundles[i+1:]...)
	}
}

// Bundles returns a copy of the entries in order
func (r *Registry) Bundles() []Bundle {
	if r == nil {
		return nil
	}
	out := make([]Bundle, len(r.bundles))
	for i, b := range r.bundles {
		out[i] = b.clone()
	}
	return out
}

// IDs returns the registered identifiers in order
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, len(r.bundles))
	for i, b := range r.bundles {
		ids[i] = b.ID
	}
	return ids
}

// Len returns the number of bundles
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.bundles)
}

func (r *Registry) index(id string) int {
	if r == nil {
		return -1
	}
	for i, b := range r.bundles {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// UnmarshalYAML decodes `identifier: {env: bool}` mappings, keeping order
func (r *Registry) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := FromNode(node)
	if err != nil {
		return err
	}
	*r = *decoded
	return nil
}

// FromNode decodes a registry from a YAML (or JSON) mapping node
func FromNode(node *yaml.Node) (*Registry, error) {
	r := &Registry{}
	if node == nil {
		return r, nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return r, nil
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return r, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrRegistryParse,
			"bundles must be a mapping of identifier to environments (line %d)", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		id, envsNode := node.Content[i].Value, node.Content[i+1]
		if id == "" {
			return nil, errors.Newf(errors.ErrRegistryParse, "empty bundle identifier (line %d)", node.Content[i].Line)
		}
		if envsNode.Kind != yaml.MappingNode {
			return nil, errors.Newf(errors.ErrRegistryParse,
				"environments of %s must be a mapping of environment to boolean", id).
				WithDetail("bundle", id)
		}

		b := Bundle{ID: id, Envs: []Flag{}}
		for j := 0; j+1 < len(envsNode.Content); j += 2 {
			var enabled bool
			if err := envsNode.Content[j+1].Decode(&enabled); err != nil {
				return nil, errors.Wrapf(err, errors.ErrRegistryParse,
					"environment %s of %s must be a boolean", envsNode.Content[j].Value, id).
					WithDetail("bundle", id)
			}
			b.setEnv(envsNode.Content[j].Value, enabled)
		}
		r.Set(b)
	}
	return r, nil
}
