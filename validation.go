package loom

import (
	"github.com/tapestrylab/loom/internal/graph"
)

// Validate statically checks the bindings that declared dependencies through
// WithDependencies: every declared dependency must be registered, and the
// declared graph must be acyclic.
//
// Validation is advisory. Resolution never consults declarations; live cycle
// detection over the resolution chain remains authoritative, and bindings
// without declarations are simply not checked here.
func (c *Container) Validate() error {
	if c.disposed.Load() {
		return ErrContainerDisposed
	}

	bindings := c.registry.snapshot()

	g := graph.New()
	for _, b := range bindings {
		deps := make([]string, len(b.dependencies))
		for i, dep := range b.dependencies {
			deps[i] = string(dep)
		}
		g.Add(string(b.Identifier), deps)
	}

	for _, b := range bindings {
		for _, dep := range b.dependencies {
			target, ok := c.registry.get(dep)
			if !ok {
				return ValidationError{
					Identifier: b.Identifier,
					Cause: UnresolvedDependencyError{
						Identifier: dep,
						Registered: c.registry.identifiers(),
					},
				}
			}

			// A singleton capturing a scoped instance would pin one
			// scope's value for the container's lifetime.
			if b.Lifetime == Singleton && target.Lifetime == Scoped {
				return ValidationError{
					Identifier: b.Identifier,
					Cause: LifetimeConflictError{
						Identifier:         b.Identifier,
						Lifetime:           b.Lifetime,
						Dependency:         dep,
						DependencyLifetime: target.Lifetime,
					},
				}
			}
		}
	}

	if cycle := g.FindCycle(); cycle != nil {
		chain := make([]Identifier, len(cycle))
		for i, key := range cycle {
			chain[i] = Identifier(key)
		}
		return CircularDependencyError{Chain: chain}
	}

	return nil
}
