package loom

import (
	"context"
	"sync"
)

// lifecycleManager tracks disposable instances for a container or scope.
type lifecycleManager struct {
	mu          sync.Mutex
	disposables []DisposableWithContext
}

func newLifecycleManager() *lifecycleManager {
	return &lifecycleManager{}
}

// track records an instance for disposal if it is disposable.
func (m *lifecycleManager) track(instance any) {
	var d DisposableWithContext
	switch v := instance.(type) {
	case DisposableWithContext:
		d = v
	case Disposable:
		d = contextlessDisposable{v}
	default:
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.disposables = append(m.disposables, d)
}

// dispose closes all tracked instances in reverse construction order (LIFO)
// and returns the errors encountered. Tracked instances are released even
// when disposal fails.
func (m *lifecycleManager) dispose(ctx context.Context) []error {
	m.mu.Lock()
	disposables := m.disposables
	m.disposables = nil
	m.mu.Unlock()

	var errs []error
	for i := len(disposables) - 1; i >= 0; i-- {
		if err := disposables[i].Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// contextlessDisposable adapts Disposable to DisposableWithContext.
type contextlessDisposable struct {
	d Disposable
}

func (w contextlessDisposable) Close(context.Context) error {
	return w.d.Close()
}
