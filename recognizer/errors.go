package recognizer

import (
	"fmt"
	"strings"
)

// ParseError reports that no valid derivation of the input exists under
// the grammar. It carries the farthest position reached and the
// consumed/remaining token runs around it (spec.md §7).
type ParseError struct {
	Position  int
	Consumed  []string
	Remaining []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse is not possible at position %d: %s [* *] %s",
		e.Position, strings.Join(e.Consumed, " "), strings.Join(e.Remaining, " "))
}
