// Package loom provides a small, framework-independent dependency injection
// container for Go applications. Bindings map opaque identifiers to factory
// functions, and the container resolves full object graphs on demand while
// honoring singleton, scoped, and transient lifetimes.
//
// # Overview
//
// loom deliberately avoids reflection-driven constructor analysis. A binding
// is an identifier, a factory, and a lifetime; factories resolve their own
// dependencies by calling back into the Resolver they receive:
//
//	c := loom.New()
//	c.RegisterSingleton("clock", func(loom.Resolver) (any, error) {
//	    return NewSystemClock(), nil
//	})
//	c.RegisterTransient("service", func(r loom.Resolver) (any, error) {
//	    clock, err := loom.Resolve[Clock](r, "clock")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewService(clock), nil
//	})
//
//	svc, err := loom.Resolve[*Service](c, "service")
//
// # Lifetimes
//
// loom supports three binding lifetimes:
//
//   - Singleton: one instance per container, constructed at most once
//   - Scoped: one instance per scope (useful for per-request isolation)
//   - Transient: a new instance on every resolution
//
// # Scopes
//
// Create isolated scopes for request-scoped bindings:
//
//	scope, err := c.CreateScope(r.Context())
//	defer scope.Close()
//
//	repo, err := loom.Resolve[*Repository](scope, "repository")
//
// Instances created inside a scope that implement Disposable or
// DisposableWithContext are closed in reverse construction order when the
// scope closes.
//
// # Modules
//
// Group related registrations into reusable modules:
//
//	var StorageModule = loom.NewModule("storage",
//	    loom.AddSingleton("db", NewDatabaseFactory),
//	    loom.AddScoped("tx", NewTransactionFactory),
//	)
//
//	err := c.Apply(StorageModule)
//
// # Thread Safety
//
// All container operations are safe for concurrent use. Concurrent
// resolutions of the same singleton block until the winning factory returns,
// and every caller observes the same instance.
//
// # Error Handling
//
// loom reports failures through typed errors:
//   - UnresolvedDependencyError: no binding registered for an identifier
//   - CircularDependencyError: the dependency chain revisits an identifier
//   - FactoryError: a factory returned an error (propagated unchanged)
//   - FactoryPanicError: a factory panicked during construction
//
// The container never retries a failed factory and never substitutes a
// default binding.
package loom
