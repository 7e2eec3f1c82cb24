/*
Package unify implements feature-structure unification (spec components
C5 and the feature-map primitives C6 drives): upward unification filters
and annotates a packed forest bottom-up; downward unification checks and
merges an ambient feature map into a rule's own, against its checklist.

Grounded directly on GLRParser/parser.py's unify_up, unify_down and
unify_tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package unify

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'glrnlp.unify'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.unify")
}
