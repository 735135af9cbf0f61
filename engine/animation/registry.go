package animation

import "fmt"

// Registry maps animation names to their Actions in registration order.
// Entries are only ever added; every key present is fully loaded and playable.
type Registry struct {
	actions map[string]Action
	order   []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Action),
	}
}

// Add inserts an action under name.
//
// Parameters:
//   - name: the unique key
//   - a: the action to store (must not be nil)
//
// Returns:
//   - error: ErrDuplicateAnimation if name is already present
func (r *Registry) Add(name string, a Action) error {
	if a == nil {
		return fmt.Errorf("animation: register %q: nil action", name)
	}
	if _, ok := r.actions[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAnimation, name)
	}
	r.actions[name] = a
	r.order = append(r.order, name)
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.actions[name]
	return ok
}

// Get returns the action registered under name.
func (r *Registry) Get(name string) (Action, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// GetOrDefault returns the action registered under name, or def when absent.
func (r *Registry) GetOrDefault(name string, def Action) Action {
	if a, ok := r.actions[name]; ok {
		return a
	}
	return def
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.order)
}
