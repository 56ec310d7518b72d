package loom

import (
	"slices"
	"sync"
)

// Factory constructs an instance for a binding. It receives the Resolver for
// the resolution in progress and may resolve its own dependencies through it.
// Factories must be safe to call from multiple goroutines; the container
// guarantees a singleton factory is invoked at most once per container.
type Factory func(Resolver) (any, error)

// Binding associates an Identifier with a Factory and a Lifetime. A container
// owns its bindings exclusively; bindings are never shared across containers.
type Binding struct {
	Identifier Identifier
	Lifetime   Lifetime
	Factory    Factory

	// dependencies are the identifiers this binding declared through
	// WithDependencies. Used only by Validate; resolution ignores them.
	dependencies []Identifier
}

// BindOption configures a binding at registration time.
type BindOption interface {
	applyBindOption(*Binding)
}

type bindOptionFunc func(*Binding)

func (f bindOptionFunc) applyBindOption(b *Binding) { f(b) }

// WithDependencies declares the identifiers a binding's factory resolves.
// Declarations are optional and only feed Container.Validate; cycle detection
// during resolution always uses the live resolution chain.
func WithDependencies(ids ...Identifier) BindOption {
	return bindOptionFunc(func(b *Binding) {
		b.dependencies = append(b.dependencies, ids...)
	})
}

// bindingRegistry is the thread-safe store of bindings for one container.
// Registration is last-write-wins: providers may override defaults.
type bindingRegistry struct {
	mu       sync.RWMutex
	bindings map[Identifier]*Binding
}

func newBindingRegistry() *bindingRegistry {
	return &bindingRegistry{
		bindings: make(map[Identifier]*Binding),
	}
}

// set stores or replaces the binding for its identifier.
func (r *bindingRegistry) set(b *Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[b.Identifier] = b
}

// get returns the binding registered for id.
func (r *bindingRegistry) get(id Identifier) (*Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bindings[id]
	return b, ok
}

// has reports whether a binding is registered for id.
func (r *bindingRegistry) has(id Identifier) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bindings[id]
	return ok
}

// identifiers returns a sorted snapshot of all registered identifiers.
func (r *bindingRegistry) identifiers() []Identifier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]Identifier, 0, len(r.bindings))
	for id := range r.bindings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// snapshot returns a copy of all registered bindings.
func (r *bindingRegistry) snapshot() []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bindings := make([]*Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		bindings = append(bindings, b)
	}
	return bindings
}
