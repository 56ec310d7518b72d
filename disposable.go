package loom

import "context"

// Disposable is implemented by instances that hold resources needing cleanup.
// The container tracks disposable instances it constructs and closes them in
// reverse construction order when their owning container or scope closes.
//
// Example:
//
//	type Connection struct {
//	    conn *sql.DB
//	}
//
//	func (c *Connection) Close() error {
//	    return c.conn.Close()
//	}
type Disposable interface {
	Close() error
}

// DisposableWithContext allows disposal with a context for graceful shutdown.
// Implementations should respect context cancellation.
type DisposableWithContext interface {
	Close(ctx context.Context) error
}
