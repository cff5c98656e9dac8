package actions

import (
	"github.com/arthur-debert/pkghooks/pkg/errors"
	"github.com/arthur-debert/pkghooks/pkg/registry"
)

// Registry maps action names to their factories
type Registry struct {
	factories *registry.Registry[Factory]
}

// NewRegistry returns an empty Registry
func NewRegistry() *Registry {
	return &Registry{factories: registry.New(validateFactory)}
}

// validateFactory rejects nil factories and factories yielding nil actions
func validateFactory(name string, f Factory) error {
	if f == nil {
		return errors.Newf(errors.ErrActionInvalid, "action %s has no factory", name)
	}
	if f() == nil {
		return errors.Newf(errors.ErrActionInvalid, "factory of action %s returned no action", name)
	}
	return nil
}

// Register adds an action factory
func (r *Registry) Register(name string, f Factory) error {
	return r.factories.Register(name, f)
}

// Has reports whether name is a registered action
func (r *Registry) Has(name string) bool {
	return r.factories.Has(name)
}

// New creates the action registered under name
func (r *Registry) New(name string) (Action, error) {
	f, err := r.factories.Get(name)
	if err != nil {
		return nil, err
	}
	return f(), nil
}

// Names lists registered actions in sorted order
func (r *Registry) Names() []string {
	return r.factories.List()
}

// Doc returns the documentation of the action registered under name, or an
// empty string when it has none.
func (r *Registry) Doc(name string) (string, error) {
	a, err := r.New(name)
	if err != nil {
		return "", err
	}
	if d, ok := a.(Documented); ok {
		return d.Doc(), nil
	}
	return "", nil
}
