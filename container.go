package loom

import (
	"context"
	"sync/atomic"
)

// Container is a registry of bindings that resolves object graphs on demand.
// It is created empty, populated through Register (in any order), and queried
// through Resolve. All operations are safe for concurrent use.
//
// The container is meant to be passed explicitly to the code that needs it
// rather than accessed through ambient process-wide state; create one at
// startup, register bindings, and hand it to consumers.
type Container struct {
	registry   *bindingRegistry
	singletons *instanceCache
	lifecycle  *lifecycleManager
	options    containerOptions

	root     *Scope
	disposed atomic.Bool
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		registry:   newBindingRegistry(),
		singletons: newInstanceCache(),
		lifecycle:  newLifecycleManager(),
		options:    defaultContainerOptions(),
	}

	for _, opt := range opts {
		opt(&c.options)
	}

	c.root = newScope(c, nil, c.options.baseContext)

	return c
}

// Register stores or replaces the binding for id. Re-registration overwrites
// silently, last write wins; a cached singleton for id is discarded so the
// new factory takes effect on the next resolution.
func (c *Container) Register(id Identifier, factory Factory, lifetime Lifetime, opts ...BindOption) error {
	if c.disposed.Load() {
		return ErrContainerDisposed
	}
	if id == "" {
		return ErrEmptyIdentifier
	}
	if factory == nil {
		return ErrNilFactory
	}
	if !lifetime.IsValid() {
		return LifetimeError{Value: lifetime}
	}

	b := &Binding{
		Identifier: id,
		Lifetime:   lifetime,
		Factory:    factory,
	}
	for _, opt := range opts {
		opt.applyBindOption(b)
	}

	c.registry.set(b)
	c.singletons.delete(id)

	return nil
}

// RegisterSingleton registers a binding constructed at most once per
// container.
func (c *Container) RegisterSingleton(id Identifier, factory Factory, opts ...BindOption) error {
	return c.Register(id, factory, Singleton, opts...)
}

// RegisterScoped registers a binding constructed once per scope.
func (c *Container) RegisterScoped(id Identifier, factory Factory, opts ...BindOption) error {
	return c.Register(id, factory, Scoped, opts...)
}

// RegisterTransient registers a binding constructed on every resolution.
func (c *Container) RegisterTransient(id Identifier, factory Factory, opts ...BindOption) error {
	return c.Register(id, factory, Transient, opts...)
}

// RegisterInstance binds an already-constructed value as a singleton.
func (c *Container) RegisterInstance(id Identifier, value any) error {
	return c.Register(id, func(Resolver) (any, error) { return value, nil }, Singleton)
}

// Resolve implements Resolver. Container-level resolutions run in the
// container's root scope, so scoped bindings resolved here are cached for
// the container's lifetime.
func (c *Container) Resolve(id Identifier) (any, error) {
	if c.disposed.Load() {
		return nil, ErrContainerDisposed
	}
	return c.root.Resolve(id)
}

// ResolveAll implements Resolver. It fails on the first failure and returns
// no partial results.
func (c *Container) ResolveAll(ids ...Identifier) ([]any, error) {
	if c.disposed.Load() {
		return nil, ErrContainerDisposed
	}
	return c.root.ResolveAll(ids...)
}

// Context implements Resolver, returning the root scope's context.
func (c *Container) Context() context.Context {
	return c.root.ctx
}

// Contains reports whether a binding is registered for id.
func (c *Container) Contains(id Identifier) bool {
	return c.registry.has(id)
}

// Identifiers returns a sorted snapshot of all registered identifiers.
func (c *Container) Identifiers() []Identifier {
	return c.registry.identifiers()
}

// CreateScope creates a scope for isolating scoped bindings. The scope must
// be closed by the caller.
func (c *Container) CreateScope(ctx context.Context) (*Scope, error) {
	if c.disposed.Load() {
		return nil, ErrContainerDisposed
	}
	return c.root.CreateScope(ctx)
}

// Apply runs module registrations against this container.
func (c *Container) Apply(opts ...ModuleOption) error {
	if c.disposed.Load() {
		return ErrContainerDisposed
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}

// Close disposes the container: open scopes first, then singletons in
// reverse construction order. Close is idempotent; resolutions after Close
// fail with ErrContainerDisposed.
func (c *Container) Close() error {
	if !c.disposed.CompareAndSwap(false, true) {
		return nil
	}

	var errs []error
	if err := c.root.Close(); err != nil {
		errs = append(errs, err)
	}

	errs = append(errs, c.lifecycle.dispose(c.root.ctx)...)

	if len(errs) > 0 {
		return DisposalError{Context: "container", Errors: errs}
	}

	return nil
}
