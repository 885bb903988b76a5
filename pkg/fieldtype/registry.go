package fieldtype

import (
	"sync"

	"github.com/formwork-lab/formwork/pkg/domain/types"
)

// Registry holds one capability implementation per field type. It is an
// explicitly constructed instance passed by dependency injection; there is
// no package-level singleton, so tests can run against isolated registries.
type Registry struct {
	mu       sync.RWMutex
	types    map[types.FieldType]Contract
	builtins sync.Once
}

// New creates an empty registry. Built-in types are registered lazily on
// first read access so callers can register or replace implementations
// beforehand.
func New() *Registry {
	return &Registry{
		types: make(map[types.FieldType]Contract),
	}
}

// Register installs or replaces the implementation for its type tag
func (r *Registry) Register(c Contract) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[c.Type()] = c
}

// Deregister removes the implementation for the given type tag
func (r *Registry) Deregister(t types.FieldType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.types, t)
}

// Get returns the implementation for the type tag. The second result is
// false for unknown types; an unknown type in stored configuration is a
// data-integrity problem for the caller to report, not a crash.
func (r *Registry) Get(t types.FieldType) (Contract, bool) {
	r.ensureBuiltins()
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.types[t]
	return c, ok
}

// Has reports whether an implementation is registered for the type tag
func (r *Registry) Has(t types.FieldType) bool {
	_, ok := r.Get(t)
	return ok
}

// All returns every registered implementation, built-in types first in
// declaration order followed by custom registrations
func (r *Registry) All() []Contract {
	r.ensureBuiltins()
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Contract, 0, len(r.types))
	seen := make(map[types.FieldType]bool, len(r.types))
	for _, t := range types.AllFieldTypes() {
		if c, ok := r.types[t]; ok {
			out = append(out, c)
			seen[t] = true
		}
	}
	for t, c := range r.types {
		if !seen[t] {
			out = append(out, c)
		}
	}
	return out
}

// ByGroup returns the registered implementations bucketed by palette group
func (r *Registry) ByGroup() map[types.FieldGroup][]Contract {
	out := make(map[types.FieldGroup][]Contract)
	for _, c := range r.All() {
		group := c.Type().Group()
		out[group] = append(out[group], c)
	}
	return out
}

// ensureBuiltins registers the default implementations without overwriting
// anything installed earlier
func (r *Registry) ensureBuiltins() {
	r.builtins.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		for _, c := range builtinContracts() {
			if _, exists := r.types[c.Type()]; !exists {
				r.types[c.Type()] = c
			}
		}
	})
}

func builtinContracts() []Contract {
	return []Contract{
		newTextField(types.FieldTypeText),
		newTextField(types.FieldTypeTextarea),
		newEmailField(),
		newPhoneField(),
		newURLField(),
		newNumberField(),
		newDateField(),
		newChoiceField(types.FieldTypeSelect),
		newChoiceField(types.FieldTypeRadio),
		newCheckboxField(),
		newFileField(),
		newLayoutField(types.FieldTypeHeading),
		newLayoutField(types.FieldTypeHTML),
	}
}
