package loom

import "reflect"

// Identifier is an opaque key naming a contract a consumer depends on.
// Identifiers are unique within a container; registering a second binding
// under the same Identifier replaces the first.
type Identifier string

// String returns the identifier as a plain string.
func (id Identifier) String() string { return string(id) }

// IdentifierOf derives a canonical Identifier from the type parameter T.
// It lets interface contracts be used as identifiers without hand-written
// strings:
//
//	c.RegisterSingleton(loom.IdentifierOf[Logger](), newLoggerFactory)
//	logger, err := loom.ResolveType[Logger](c)
func IdentifierOf[T any]() Identifier {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return Identifier(t.String())
}
