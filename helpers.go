package loom

import "fmt"

// Resolve resolves id through r and asserts the result to T.
func Resolve[T any](r Resolver, id Identifier) (T, error) {
	var zero T

	instance, err := r.Resolve(id)
	if err != nil {
		return zero, err
	}

	result, ok := instance.(T)
	if !ok {
		return zero, TypeMismatchError{
			Identifier: id,
			Expected:   fmt.Sprintf("%T", zero),
			Actual:     fmt.Sprintf("%T", instance),
		}
	}

	return result, nil
}

// ResolveType resolves the binding registered under IdentifierOf[T].
func ResolveType[T any](r Resolver) (T, error) {
	return Resolve[T](r, IdentifierOf[T]())
}

// MustResolve resolves id as T and panics on error.
func MustResolve[T any](r Resolver, id Identifier) T {
	result, err := Resolve[T](r, id)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %q: %v", id, err))
	}
	return result
}

// MustResolveType resolves the binding registered under IdentifierOf[T] and
// panics on error.
func MustResolveType[T any](r Resolver) T {
	result, err := ResolveType[T](r)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %q: %v", IdentifierOf[T](), err))
	}
	return result
}
