package loom

import (
	"encoding/json"
	"fmt"
)

// Lifetime specifies how long an instance produced by a binding is reused.
// The lifetime determines when the factory is invoked and where the result
// is cached.
type Lifetime int

const (
	// Singleton specifies that a single instance is created per container.
	// The instance is created on first resolution and cached for the
	// lifetime of the container.
	Singleton Lifetime = iota

	// Scoped specifies that a new instance is created for each scope.
	// In web applications, this typically means one instance per request.
	// Scoped instances are disposed when their scope closes.
	Scoped

	// Transient specifies that a new instance is created on every
	// resolution. Nothing is cached.
	Transient
)

// String returns the string representation of the Lifetime.
func (lt Lifetime) String() string {
	switch lt {
	case Singleton:
		return "Singleton"
	case Scoped:
		return "Scoped"
	case Transient:
		return "Transient"
	default:
		return fmt.Sprintf("Unknown(%d)", int(lt))
	}
}

// IsValid checks if the lifetime is one of the defined values.
func (lt Lifetime) IsValid() bool {
	return lt >= Singleton && lt <= Transient
}

// MarshalText implements encoding.TextMarshaler.
func (lt Lifetime) MarshalText() ([]byte, error) {
	return []byte(lt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (lt *Lifetime) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Singleton", "singleton":
		*lt = Singleton
	case "Scoped", "scoped":
		*lt = Scoped
	case "Transient", "transient":
		*lt = Transient
	default:
		return LifetimeError{Value: string(text)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (lt Lifetime) MarshalJSON() ([]byte, error) {
	return json.Marshal(lt.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (lt *Lifetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return lt.UnmarshalText([]byte(s))
}
