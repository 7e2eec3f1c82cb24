package forest

import "fmt"

// ValidationError reports a forest invariant violation found by
// Validate. Validate is an explicitly invoked sanity pass (spec.md §3:
// checked by tests, not the hot build path, to keep Build
// allocation-light per §5's "no deadline checks" philosophy).
type ValidationError struct {
	Head       string
	Start, End int
	Msg        string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("forest invariant violated at %s[%d,%d]: %s", e.Head, e.Start, e.End, e.Msg)
}

// Validate walks tree and checks invariant P4 (span consistency): every
// alternative's terminal/child spans must sum exactly to the node's own
// [Start,End) span, and back-references implicit in Children index
// ranges must stay within the rule's left side length.
func Validate(t *Tree) error {
	seen := map[*Tree]bool{}
	return validate(t, seen)
}

func validate(t *Tree, seen map[*Tree]bool) error {
	if t == nil || seen[t] {
		return nil
	}
	seen[t] = true
	for _, alt := range t.Alts {
		if alt.Rule != nil && len(alt.Children) != len(alt.Rule.Left) && !alt.IsPhrase() {
			return &ValidationError{Head: t.Head, Start: t.Start, End: t.End,
				Msg: fmt.Sprintf("alternative for rule %q has %d children, expected %d", alt.Rule.String(), len(alt.Children), len(alt.Rule.Left))}
		}
		pos := t.Start
		for _, c := range alt.Children {
			if c.Terminal {
				pos++
				continue
			}
			if c.Node.Start != pos {
				return &ValidationError{Head: t.Head, Start: t.Start, End: t.End,
					Msg: fmt.Sprintf("child %s starts at %d, expected %d", c.Node.Head, c.Node.Start, pos)}
			}
			if err := validate(c.Node, seen); err != nil {
				return err
			}
			pos = c.Node.End
		}
		if pos != t.End {
			return &ValidationError{Head: t.Head, Start: t.Start, End: t.End,
				Msg: fmt.Sprintf("alternative spans to %d, expected %d", pos, t.End)}
		}
	}
	return nil
}
