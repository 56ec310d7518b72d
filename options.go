package loom

import (
	"context"
	"time"
)

// defaultMaxDepth bounds the resolution chain. Object graphs deeper than
// this almost always indicate a missed cycle through distinct identifiers.
const defaultMaxDepth = 100

// Option configures a container at creation time.
type Option func(*containerOptions)

type containerOptions struct {
	maxDepth    int
	baseContext context.Context
	onResolved  func(id Identifier, instance any, duration time.Duration)
	onError     func(id Identifier, err error)
}

func defaultContainerOptions() containerOptions {
	return containerOptions{
		maxDepth:    defaultMaxDepth,
		baseContext: context.Background(),
	}
}

// WithMaxDepth sets the maximum resolution chain depth. Values below one are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(o *containerOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithBaseContext sets the context of the container's root scope. Scopes
// created without their own context inherit from it.
func WithBaseContext(ctx context.Context) Option {
	return func(o *containerOptions) {
		if ctx != nil {
			o.baseContext = ctx
		}
	}
}

// OnResolved registers a callback invoked after every successful top-level
// resolution, with the time the resolution took.
func OnResolved(fn func(id Identifier, instance any, duration time.Duration)) Option {
	return func(o *containerOptions) {
		o.onResolved = fn
	}
}

// OnError registers a callback invoked after every failed top-level
// resolution.
func OnError(fn func(id Identifier, err error)) Option {
	return func(o *containerOptions) {
		o.onError = fn
	}
}
