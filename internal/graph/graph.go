// Package graph provides dependency graph analysis over declared binding
// dependencies: cycle detection and topological ordering. Nodes are plain
// string keys so the package stays independent of the container's types.
package graph

import "sync"

// Graph is a directed graph of dependency declarations. An edge from A to B
// means A depends on B.
type Graph struct {
	mu    sync.RWMutex
	edges map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		edges: make(map[string][]string),
	}
}

// Add records a node and its dependencies. Re-adding a node replaces its
// previous dependencies, matching the container's last-write-wins policy.
func (g *Graph) Add(key string, deps []string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	copied := make([]string, len(deps))
	copy(copied, deps)
	g.edges[key] = copied

	// Dependencies without declarations of their own still count as nodes.
	for _, dep := range deps {
		if _, ok := g.edges[dep]; !ok {
			g.edges[dep] = nil
		}
	}
}

// Has reports whether key is a node in the graph.
func (g *Graph) Has(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[key]
	return ok
}

// Size returns the number of nodes.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// FindCycle returns a dependency cycle as a path whose first and last
// elements are the same node, e.g. [A, B, A]. It returns nil if the graph is
// acyclic.
func (g *Graph) FindCycle() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.findCycle()
}

// findCycle performs DFS cycle detection. Callers must hold at least a read
// lock.
func (g *Graph) findCycle() []string {
	const (
		unvisited = iota
		visiting
		visited
	)

	state := make(map[string]int, len(g.edges))
	var stack []string
	var cycle []string

	var walk func(key string) bool
	walk = func(key string) bool {
		switch state[key] {
		case visited:
			return false
		case visiting:
			// Slice the stack from the first occurrence of key and close
			// the loop.
			for i, active := range stack {
				if active == key {
					cycle = append(cycle, stack[i:]...)
					cycle = append(cycle, key)
					return true
				}
			}
			return false
		}

		state[key] = visiting
		stack = append(stack, key)

		for _, dep := range g.edges[key] {
			if walk(dep) {
				return true
			}
		}

		stack = stack[:len(stack)-1]
		state[key] = visited
		return false
	}

	for key := range g.edges {
		if state[key] == unvisited && walk(key) {
			return cycle
		}
	}

	return nil
}

// TopologicalSort returns the nodes in dependency order, dependencies first.
// It fails with a CycleError if the graph contains a cycle.
func (g *Graph) TopologicalSort() ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Kahn's algorithm over reversed edges: a node is ready once all of its
	// dependencies have been emitted.
	pending := make(map[string]int, len(g.edges))
	dependents := make(map[string][]string, len(g.edges))

	for key, deps := range g.edges {
		pending[key] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], key)
		}
	}

	queue := make([]string, 0, len(g.edges))
	for key, n := range pending {
		if n == 0 {
			queue = append(queue, key)
		}
	}

	sorted := make([]string, 0, len(g.edges))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		sorted = append(sorted, current)

		for _, dependent := range dependents[current] {
			pending[dependent]--
			if pending[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(sorted) != len(g.edges) {
		return nil, &CycleError{Path: g.findCycle()}
	}

	return sorted, nil
}
