package graph

import (
	"fmt"
	"strings"
)

// CycleError indicates the graph contains a dependency cycle.
type CycleError struct {
	// Path is the cycle, first and last elements equal.
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return "dependency cycle detected"
	}
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Path, " -> "))
}
