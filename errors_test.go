package loom_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapestrylab/loom"
)

func TestUnresolvedDependencyError(t *testing.T) {
	t.Run("names the identifier", func(t *testing.T) {
		err := loom.UnresolvedDependencyError{Identifier: "mailer"}
		assert.Contains(t, err.Error(), `"mailer"`)
	})

	t.Run("suggests similar identifiers", func(t *testing.T) {
		err := loom.UnresolvedDependencyError{
			Identifier: "logger",
			Registered: []loom.Identifier{"app.logger", "clock", "mailer"},
		}

		msg := err.Error()
		assert.Contains(t, msg, "Did you mean")
		assert.Contains(t, msg, "app.logger")
		assert.NotContains(t, msg, "mailer")
	})

	t.Run("no suggestions for unrelated identifiers", func(t *testing.T) {
		err := loom.UnresolvedDependencyError{
			Identifier: "logger",
			Registered: []loom.Identifier{"clock", "mailer"},
		}
		assert.NotContains(t, err.Error(), "Did you mean")
	})
}

func TestCircularDependencyError(t *testing.T) {
	err := loom.CircularDependencyError{Chain: []loom.Identifier{"A", "B", "A"}}
	assert.Equal(t, "circular dependency detected: A -> B -> A", err.Error())
}

func TestFactoryError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := loom.FactoryError{Identifier: "db", Cause: cause}

	assert.Contains(t, err.Error(), `"db"`)
	assert.Contains(t, err.Error(), "dial tcp")
	require.ErrorIs(t, err, cause)
}

func TestFactoryPanicError(t *testing.T) {
	err := loom.FactoryPanicError{
		Identifier: "boom",
		Panic:      "index out of range",
		Stack:      []byte("goroutine 1 [running]:"),
	}

	msg := err.Error()
	assert.Contains(t, msg, `"boom"`)
	assert.Contains(t, msg, "index out of range")
	assert.Contains(t, msg, "Stack trace")
}

func TestLifetimeConflictError(t *testing.T) {
	err := loom.LifetimeConflictError{
		Identifier:         "cache",
		Lifetime:           loom.Singleton,
		Dependency:         "session",
		DependencyLifetime: loom.Scoped,
	}

	msg := err.Error()
	assert.Contains(t, msg, `"cache" (Singleton)`)
	assert.Contains(t, msg, `"session" (Scoped)`)
}

func TestModuleError(t *testing.T) {
	cause := errors.New("boom")
	err := loom.ModuleError{Module: "storage", Cause: cause}

	assert.Contains(t, err.Error(), `"storage"`)
	require.ErrorIs(t, err, cause)
}

func TestTypeMismatchError(t *testing.T) {
	err := loom.TypeMismatchError{
		Identifier: "clock",
		Expected:   "*loom_test.TClock",
		Actual:     "string",
	}

	msg := err.Error()
	assert.Contains(t, msg, `"clock"`)
	assert.Contains(t, msg, "*loom_test.TClock")
	assert.Contains(t, msg, "string")
}

func TestDisposalError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		cause := errors.New("flush failed")
		err := loom.DisposalError{Context: "scope", Errors: []error{cause}}

		assert.Contains(t, err.Error(), "scope disposal failed")
		require.ErrorIs(t, err, cause)
	})

	t.Run("multiple errors are enumerated", func(t *testing.T) {
		err := loom.DisposalError{
			Context: "container",
			Errors:  []error{errors.New("one"), errors.New("two")},
		}

		msg := err.Error()
		assert.Contains(t, msg, "2 errors")
		assert.Equal(t, 3, len(strings.Split(msg, "\n")))
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Run("IsUnresolved", func(t *testing.T) {
		err := loom.UnresolvedDependencyError{Identifier: "x"}
		assert.True(t, loom.IsUnresolved(err))
		assert.False(t, loom.IsUnresolved(errors.New("other")))
	})

	t.Run("IsCircular", func(t *testing.T) {
		err := loom.CircularDependencyError{Chain: []loom.Identifier{"x", "x"}}
		assert.True(t, loom.IsCircular(err))
		assert.False(t, loom.IsCircular(errors.New("other")))
	})
}
