package unify

import "fmt"

// UnifyError reports a feature-structure unification failure: either a
// checked value mismatch or a conflicting copy, per spec.md §4.5/§4.6.
type UnifyError struct {
	Feature  string
	Wanted   fmt.Stringer
	Got      fmt.Stringer
	Msg      string
}

func (e *UnifyError) Error() string {
	if e.Wanted == nil || e.Got == nil {
		return fmt.Sprintf("unify: feature %q: %s", e.Feature, e.Msg)
	}
	return fmt.Sprintf("unify: feature %q: %s (wanted %s, got %s)", e.Feature, e.Msg, e.Wanted, e.Got)
}
