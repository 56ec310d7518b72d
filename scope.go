package loom

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Scope is an isolated resolution context with its own cache for scoped
// bindings. In web applications, a scope is typically created per HTTP
// request, so request-bound instances are shared within the request and
// disposed at its end.
//
// Example:
//
//	scope, err := c.CreateScope(r.Context())
//	if err != nil {
//	    return err
//	}
//	defer scope.Close()
//
//	service, err := loom.Resolve[*UserService](scope, "user-service")
type Scope struct {
	id        string
	ctx       context.Context
	container *Container
	parent    *Scope

	instances *instanceCache
	lifecycle *lifecycleManager

	disposed   atomic.Bool
	childrenMu sync.Mutex
	children   map[string]*Scope
}

func newScope(c *Container, parent *Scope, ctx context.Context) *Scope {
	if ctx == nil {
		ctx = context.Background()
	}

	s := &Scope{
		id:        uuid.NewString(),
		container: c,
		parent:    parent,
		instances: newInstanceCache(),
		lifecycle: newLifecycleManager(),
		children:  make(map[string]*Scope),
	}
	s.ctx = contextWithScope(ctx, s)

	return s
}

// ID returns the unique ID of this scope.
func (s *Scope) ID() string {
	return s.id
}

// Context returns the context associated with this scope. The scope itself
// is recoverable from it via ScopeFromContext.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Parent returns the parent scope, or nil for the root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// IsRoot reports whether this is the container's root scope.
func (s *Scope) IsRoot() bool {
	return s.parent == nil
}

// IsDisposed reports whether the scope has been closed.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

// CreateScope creates a child scope. The child shares the container's
// bindings and singletons but caches scoped instances independently.
func (s *Scope) CreateScope(ctx context.Context) (*Scope, error) {
	if s.disposed.Load() {
		return nil, ErrScopeDisposed
	}
	if s.container.disposed.Load() {
		return nil, ErrContainerDisposed
	}

	child := newScope(s.container, s, ctx)

	s.childrenMu.Lock()
	s.children[child.id] = child
	s.childrenMu.Unlock()

	return child, nil
}

// Resolve implements Resolver. Each call gets a fresh resolution context, so
// cycle detection never crosses between concurrent resolutions.
func (s *Scope) Resolve(id Identifier) (any, error) {
	if s.disposed.Load() {
		return nil, ErrScopeDisposed
	}
	if s.container.disposed.Load() {
		return nil, ErrContainerDisposed
	}

	start := time.Now()
	instance, err := newResolutionContext(s).Resolve(id)

	if err != nil {
		if cb := s.container.options.onError; cb != nil {
			cb(id, err)
		}
		return nil, err
	}

	if cb := s.container.options.onResolved; cb != nil {
		cb(id, instance, time.Since(start))
	}

	return instance, nil
}

// ResolveAll implements Resolver. It fails on the first failure and returns
// no partial results.
func (s *Scope) ResolveAll(ids ...Identifier) ([]any, error) {
	instances := make([]any, 0, len(ids))
	for _, id := range ids {
		instance, err := s.Resolve(id)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// Close disposes the scope: child scopes first, then this scope's tracked
// instances in reverse construction order. Close is idempotent.
func (s *Scope) Close() error {
	if !s.disposed.CompareAndSwap(false, true) {
		return nil
	}

	if s.parent != nil {
		s.parent.childrenMu.Lock()
		delete(s.parent.children, s.id)
		s.parent.childrenMu.Unlock()
	}

	s.childrenMu.Lock()
	children := make([]*Scope, 0, len(s.children))
	for _, child := range s.children {
		children = append(children, child)
	}
	s.children = make(map[string]*Scope)
	s.childrenMu.Unlock()

	var errs []error
	for _, child := range children {
		if err := child.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	errs = append(errs, s.lifecycle.dispose(s.ctx)...)

	if len(errs) > 0 {
		return DisposalError{Context: "scope", Errors: errs}
	}

	return nil
}

// scopeContextKey is the key for storing the current scope in a context.
type scopeContextKey struct{}

// contextWithScope returns a context carrying the scope.
func contextWithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// ScopeFromContext returns the scope associated with ctx, if any.
func ScopeFromContext(ctx context.Context) (*Scope, error) {
	s, ok := ctx.Value(scopeContextKey{}).(*Scope)
	if !ok || s == nil {
		return nil, ErrScopeNotInContext
	}

	if s.IsDisposed() {
		return nil, ErrScopeDisposed
	}

	return s, nil
}
