package loom

import "sync/atomic"

// defaultContainer holds the process-wide default Container.
var defaultContainer atomic.Pointer[Container]

// SetDefault sets the default Container used by Default. This is similar to
// slog.SetDefault. Pass nil to remove the default container.
//
// Prefer passing a Container explicitly; the default exists for wiring code
// that has no other way to reach the composition root.
func SetDefault(c *Container) {
	defaultContainer.Store(c)
}

// Default returns the current default Container, or nil if none has been
// set.
func Default() *Container {
	return defaultContainer.Load()
}
