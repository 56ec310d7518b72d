package loom_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tapestrylab/loom"
)

// ============================================================================
// Shared Test Types
// ============================================================================

// TClock is a singleton-style dependency for testing.
type TClock struct {
	Started time.Time
}

// TLogger is a transient-style dependency with creation tracking.
type TLogger struct {
	Instance int
}

// TService wraps a clock and a logger.
type TService struct {
	Clock  *TClock
	Logger *TLogger
}

// TDisposable implements Disposable with close tracking.
type TDisposable struct {
	Name     string
	closed   atomic.Bool
	closeErr error
	onClose  func(name string)
	mu       sync.Mutex
}

func (d *TDisposable) Close() error {
	if d.closed.Swap(true) {
		return errors.New("already closed")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.onClose != nil {
		d.onClose(d.Name)
	}
	return d.closeErr
}

func (d *TDisposable) IsClosed() bool {
	return d.closed.Load()
}

// ============================================================================
// Shared Factories
// ============================================================================

var loggerCounter atomic.Int64

func clockFactory(loom.Resolver) (any, error) {
	return &TClock{Started: time.Now()}, nil
}

func loggerFactory(loom.Resolver) (any, error) {
	return &TLogger{Instance: int(loggerCounter.Add(1))}, nil
}

func serviceFactory(r loom.Resolver) (any, error) {
	clock, err := loom.Resolve[*TClock](r, "clock")
	if err != nil {
		return nil, err
	}

	logger, err := loom.Resolve[*TLogger](r, "logger")
	if err != nil {
		return nil, err
	}

	return &TService{Clock: clock, Logger: logger}, nil
}

// constFactory returns a factory producing a fixed value.
func constFactory(value any) loom.Factory {
	return func(loom.Resolver) (any, error) {
		return value, nil
	}
}

// countingFactory returns a factory that counts its invocations.
func countingFactory(count *atomic.Int64) loom.Factory {
	return func(loom.Resolver) (any, error) {
		count.Add(1)
		return &TClock{Started: time.Now()}, nil
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

// BuildContainer creates a container with the given module options.
// Automatically registers cleanup.
func BuildContainer(t *testing.T, opts ...loom.ModuleOption) *loom.Container {
	t.Helper()
	c := loom.New()
	if len(opts) > 0 {
		require.NoError(t, c.Apply(opts...))
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// BuildScope creates a scope on c. Automatically registers cleanup.
func BuildScope(t *testing.T, c *loom.Container) *loom.Scope {
	t.Helper()
	s, err := c.CreateScope(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// RequireResolve resolves id as T or fails the test.
func RequireResolve[T any](t *testing.T, r loom.Resolver, id loom.Identifier) T {
	t.Helper()
	v, err := loom.Resolve[T](r, id)
	require.NoError(t, err)
	return v
}
