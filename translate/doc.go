/*
Package translate implements the downward, syntax-directed translation
pass (spec component C6): it drives the right-hand side of every
retained rule in a unified forest, producing a packed output-side
TTree ready for the enumerator (C7) to flatten into strings.

Grounded directly on GLRParser/parser.py's trans_tree, make_trans_tree,
and their shared unify_down plumbing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package translate

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'glrnlp.translate'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.translate")
}
