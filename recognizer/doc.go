/*
Package recognizer implements the Tomita-style GLR chart parser (spec
component C3): given a compiled automaton.DFA and a token sequence, it
builds a graph-structured stack implicitly via position-keyed node and
edge tables, tolerating shift-reduce and reduce-reduce conflicts by
keeping every viable alternative alive.

The four-step per-position algorithm (reduction closure, empty
reductions, shift, phrase shift) is grounded directly on
GLRParser/parser.py's parse() method; gorgo's lr/glr package solves the
same problem with an explicit graph-structured stack (lr/dss) instead of
position-keyed tables, which this module does not adopt (spec.md §3
mandates the table-keyed representation), but its conflict-forking Parse
loop and its Scanner/Option shape inform this package's structure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package recognizer

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'glrnlp.recognizer'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.recognizer")
}

// EndOfInput is the sentinel token appended to every input sequence.
const EndOfInput = "$"
