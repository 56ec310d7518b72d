package loom

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Resolver is the resolution surface a Factory receives. Container, Scope,
// and the per-call resolution context all implement it, so factories and
// consumers use the same API.
type Resolver interface {
	// Resolve returns a fully constructed instance for id.
	Resolve(id Identifier) (any, error)

	// ResolveAll resolves ids in order, failing on the first failure with
	// no partial results.
	ResolveAll(ids ...Identifier) ([]any, error)

	// Context returns the context of the scope resolution runs in.
	Context() context.Context
}

// resolutionContext tracks the chain of identifiers being resolved within a
// single top-level Resolve call. It exists only for the duration of that call
// and is never shared between goroutines, so cycle detection in one
// resolution cannot interfere with another.
type resolutionContext struct {
	scope    *Scope
	chain    []Identifier
	maxDepth int
}

func newResolutionContext(s *Scope) *resolutionContext {
	return &resolutionContext{
		scope:    s,
		chain:    make([]Identifier, 0, 8),
		maxDepth: s.container.options.maxDepth,
	}
}

func (rc *resolutionContext) Context() context.Context {
	return rc.scope.ctx
}

// Resolve implements Resolver. Resolution is depth-first over the implicit
// graph defined by factory calls; no graph is pre-built, so a cycle on a path
// that is never walked is never detected.
func (rc *resolutionContext) Resolve(id Identifier) (any, error) {
	if id == "" {
		return nil, ErrEmptyIdentifier
	}

	binding, ok := rc.scope.container.registry.get(id)
	if !ok {
		return nil, UnresolvedDependencyError{
			Identifier: id,
			Registered: rc.scope.container.registry.identifiers(),
		}
	}

	for _, active := range rc.chain {
		if active == id {
			chain := make([]Identifier, len(rc.chain), len(rc.chain)+1)
			copy(chain, rc.chain)
			return nil, CircularDependencyError{Chain: append(chain, id)}
		}
	}

	if len(rc.chain) >= rc.maxDepth {
		return nil, fmt.Errorf("resolving %q at depth %d: %w", id, len(rc.chain), ErrMaxDepthExceeded)
	}

	switch binding.Lifetime {
	case Singleton:
		return rc.scope.container.singletons.getOrCreate(id, func() (any, error) {
			instance, err := rc.invoke(binding)
			if err != nil {
				return nil, err
			}
			rc.scope.container.lifecycle.track(instance)
			return instance, nil
		})

	case Scoped:
		return rc.scope.instances.getOrCreate(id, func() (any, error) {
			instance, err := rc.invoke(binding)
			if err != nil {
				return nil, err
			}
			rc.scope.lifecycle.track(instance)
			return instance, nil
		})

	default: // Transient
		instance, err := rc.invoke(binding)
		if err != nil {
			return nil, err
		}
		rc.scope.lifecycle.track(instance)
		return instance, nil
	}
}

// ResolveAll implements Resolver.
func (rc *resolutionContext) ResolveAll(ids ...Identifier) ([]any, error) {
	instances := make([]any, 0, len(ids))
	for _, id := range ids {
		instance, err := rc.Resolve(id)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// invoke pushes the binding's identifier onto the chain, calls its factory,
// and pops on return, success or failure. Factory errors are propagated
// unchanged with only the identifier attached; panics are recovered with a
// stack capture.
func (rc *resolutionContext) invoke(b *Binding) (instance any, err error) {
	rc.chain = append(rc.chain, b.Identifier)

	defer func() {
		rc.chain = rc.chain[:len(rc.chain)-1]
		if r := recover(); r != nil {
			instance = nil
			err = FactoryPanicError{
				Identifier: b.Identifier,
				Panic:      r,
				Stack:      debug.Stack(),
			}
		}
	}()

	instance, ferr := b.Factory(rc)
	if ferr != nil {
		return nil, FactoryError{Identifier: b.Identifier, Cause: ferr}
	}

	return instance, nil
}
