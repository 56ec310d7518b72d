package loom_test

import (
	"context"
	"fmt"
	"log"

	"github.com/tapestrylab/loom"
)

type greeter struct {
	greeting string
}

func (g *greeter) Greet(name string) string {
	return g.greeting + ", " + name
}

// Example demonstrates basic registration and resolution.
func Example() {
	c := loom.New()
	defer c.Close()

	err := c.RegisterSingleton("greeter", func(r loom.Resolver) (any, error) {
		return &greeter{greeting: "Hello"}, nil
	})
	if err != nil {
		log.Fatal(err)
	}

	g, err := loom.Resolve[*greeter](c, "greeter")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(g.Greet("World"))
	// Output: Hello, World
}

// ExampleContainer_RegisterSingleton demonstrates singleton caching.
func ExampleContainer_RegisterSingleton() {
	c := loom.New()
	defer c.Close()

	// Singleton: one instance for the container's lifetime.
	c.RegisterSingleton("greeter", func(r loom.Resolver) (any, error) {
		return &greeter{greeting: "Hi"}, nil
	})

	first, _ := c.Resolve("greeter")
	second, _ := c.Resolve("greeter")

	fmt.Println(first == second)
	// Output: true
}

// ExampleContainer_CreateScope demonstrates scoped lifetimes.
func ExampleContainer_CreateScope() {
	c := loom.New()
	defer c.Close()

	c.RegisterScoped("greeter", func(r loom.Resolver) (any, error) {
		return &greeter{greeting: "Hey"}, nil
	})

	scope, _ := c.CreateScope(context.Background())
	defer scope.Close()

	// Same instance within a scope.
	first, _ := scope.Resolve("greeter")
	second, _ := scope.Resolve("greeter")
	fmt.Println(first == second)

	// A new scope gets its own instance.
	other, _ := c.CreateScope(context.Background())
	defer other.Close()
	third, _ := other.Resolve("greeter")
	fmt.Println(first == third)

	// Output:
	// true
	// false
}

// ExampleNewModule demonstrates grouping registrations into modules.
func ExampleNewModule() {
	greetings := loom.NewModule("greetings",
		loom.AddInstance("greeting", "Howdy"),
		loom.AddTransient("greeter", func(r loom.Resolver) (any, error) {
			greeting, err := loom.Resolve[string](r, "greeting")
			if err != nil {
				return nil, err
			}
			return &greeter{greeting: greeting}, nil
		}),
	)

	c := loom.New()
	defer c.Close()

	if err := c.Apply(greetings); err != nil {
		log.Fatal(err)
	}

	g := loom.MustResolve[*greeter](c, "greeter")
	fmt.Println(g.Greet("partner"))
	// Output: Howdy, partner
}
