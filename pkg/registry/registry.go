package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/pkghooks/pkg/errors"
)

// Validator inspects an item before it is accepted
type Validator[T any] func(name string, item T) error

// Registry stores items by name
type Registry[T any] struct {
	mu       sync.RWMutex
	items    map[string]T
	validate Validator[T]
}

// New creates a Registry. validate may be nil.
func New[T any](validate Validator[T]) *Registry[T] {
	return &Registry[T]{
		items:    make(map[string]T),
		validate: validate,
	}
}

// Register adds an item to the registry
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}
	if r.validate != nil {
		if err := r.validate(name, item); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "cannot register '%s'", name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	r.items[name] = item
	return nil
}

// Get retrieves an item from the registry
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	return item, nil
}

// Has checks if an item is registered
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

// List returns all registered names in sorted order
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// MustRegister registers an item and panics if registration fails.
// Registration errors of built-in items are programming errors.
func MustRegister[T any](reg *Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
