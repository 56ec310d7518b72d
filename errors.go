package loom

import (
	"errors"
	"fmt"
	"strings"
)

// ========================================
// Sentinel Errors
// ========================================
// Base errors for state and argument validation. Domain failures use the
// typed errors below; never return sentinels for those.

var (
	// Lifecycle errors.
	ErrContainerDisposed = errors.New("container has been disposed")
	ErrScopeDisposed     = errors.New("scope has been disposed")
	ErrScopeNotInContext = errors.New("no scope associated with context")

	// Registration errors.
	ErrNilFactory      = errors.New("factory cannot be nil")
	ErrEmptyIdentifier = errors.New("identifier cannot be empty")

	// Resolution errors.
	ErrMaxDepthExceeded = errors.New("maximum resolution depth exceeded")
)

var (
	_ error = UnresolvedDependencyError{}
	_ error = CircularDependencyError{}
	_ error = FactoryError{}
	_ error = FactoryPanicError{}
	_ error = LifetimeError{}
	_ error = LifetimeConflictError{}
	_ error = ModuleError{}
	_ error = ValidationError{}
	_ error = TypeMismatchError{}
	_ error = DisposalError{}
)

// ========================================
// Typed Errors
// ========================================

// UnresolvedDependencyError indicates that no binding is registered for the
// requested identifier. Registered optionally carries the identifiers that
// ARE bound, used to suggest likely misspellings.
type UnresolvedDependencyError struct {
	Identifier Identifier
	Registered []Identifier
}

func (e UnresolvedDependencyError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("no binding registered for %q", e.Identifier))

	if similar := findSimilarIdentifiers(e.Identifier, e.Registered); len(similar) > 0 {
		b.WriteString("\n\nDid you mean one of these?\n")
		for _, id := range similar {
			b.WriteString(fmt.Sprintf("  • %s\n", id))
		}
	}

	return b.String()
}

// findSimilarIdentifiers finds registered identifiers with similar names
// using a simple substring match.
func findSimilarIdentifiers(target Identifier, registered []Identifier) []Identifier {
	if target == "" || len(registered) == 0 {
		return nil
	}

	lowerTarget := strings.ToLower(string(target))

	var similar []Identifier
	for _, id := range registered {
		if id == target {
			continue
		}

		lower := strings.ToLower(string(id))
		if strings.Contains(lower, lowerTarget) || strings.Contains(lowerTarget, lower) {
			similar = append(similar, id)
		}

		if len(similar) >= 5 {
			break
		}
	}

	return similar
}

// CircularDependencyError indicates that a dependency chain revisited an
// identifier. Chain holds the full resolution path, ending with the repeated
// identifier, e.g. [A, B, A].
type CircularDependencyError struct {
	Chain []Identifier
}

func (e CircularDependencyError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, id := range e.Chain {
		parts[i] = string(id)
	}
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(parts, " -> "))
}

// FactoryError wraps an error returned by a bound factory. The cause is
// propagated unchanged; the container only attaches the identifier being
// resolved when the factory failed.
type FactoryError struct {
	Identifier Identifier
	Cause      error
}

func (e FactoryError) Error() string {
	return fmt.Sprintf("factory for %q failed: %v", e.Identifier, e.Cause)
}

func (e FactoryError) Unwrap() error {
	return e.Cause
}

// FactoryPanicError indicates a factory panicked during construction.
// It captures the panic value and stack trace for debugging.
type FactoryPanicError struct {
	Identifier Identifier
	Panic      any
	Stack      []byte
}

func (e FactoryPanicError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("factory for %q panicked: %v\n", e.Identifier, e.Panic))

	if len(e.Stack) > 0 {
		b.WriteString("\nStack trace:\n")
		b.Write(e.Stack)
	}

	return b.String()
}

// LifetimeConflictError indicates a binding declared a dependency with an
// incompatible lifetime. A singleton capturing a scoped instance would pin a
// single scope's value for the container's lifetime.
type LifetimeConflictError struct {
	Identifier         Identifier
	Lifetime           Lifetime
	Dependency         Identifier
	DependencyLifetime Lifetime
}

func (e LifetimeConflictError) Error() string {
	return fmt.Sprintf("lifetime conflict: %q (%s) cannot depend on %q (%s)",
		e.Identifier, e.Lifetime, e.Dependency, e.DependencyLifetime)
}

// LifetimeError indicates an invalid lifetime value.
type LifetimeError struct {
	Value any
}

func (e LifetimeError) Error() string {
	return fmt.Sprintf("invalid lifetime: %v", e.Value)
}

// ModuleError wraps errors from module registration.
type ModuleError struct {
	Module string
	Cause  error
}

func (e ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v", e.Module, e.Cause)
}

func (e ModuleError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates a static validation failure for a binding.
type ValidationError struct {
	Identifier Identifier
	Cause      error
}

func (e ValidationError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("binding %q: %v", e.Identifier, e.Cause)
	}
	return e.Cause.Error()
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError indicates a resolved instance did not satisfy the type
// requested through a generic helper.
type TypeMismatchError struct {
	Identifier Identifier
	Expected   string
	Actual     string
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("resolved %q as %s, expected %s", e.Identifier, e.Actual, e.Expected)
}

// DisposalError aggregates errors from closing disposable instances.
type DisposalError struct {
	Context string // "container" or "scope"
	Errors  []error
}

func (e DisposalError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s disposal failed: %v", e.Context, e.Errors[0])
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s disposal failed with %d errors:", e.Context, len(e.Errors)))
	for i, err := range e.Errors {
		b.WriteString(fmt.Sprintf("\n  %d. %v", i+1, err))
	}
	return b.String()
}

func (e DisposalError) Unwrap() []error {
	return e.Errors
}

// IsUnresolved reports whether err is an UnresolvedDependencyError.
func IsUnresolved(err error) bool {
	var unresolved UnresolvedDependencyError
	return errors.As(err, &unresolved)
}

// IsCircular reports whether err is a CircularDependencyError.
func IsCircular(err error) bool {
	var circular CircularDependencyError
	return errors.As(err, &circular)
}
