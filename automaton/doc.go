/*
Package automaton compiles a rule.Store into an LR(0) item-set DFA
(the "characteristic finite state machine"), together with the
nullable-symbol set and the reduction / empty-reduction tables the
recognizer needs. It implements spec component C2.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2017-2021, Norbert Pillmayer (CFSM subset-construction and
sparse transition-table design, adapted from gorgo's lr/tables.go and
lr/sparse/sparse.go)
Copyright (c) 2026, the glrnlp contributors
*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glrnlp.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.automaton")
}
