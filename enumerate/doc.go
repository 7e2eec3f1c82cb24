/*
Package enumerate implements enumeration of a translated forest into
cost-ranked (string, cost) pairs (spec component C7), applying a
caller-supplied post-processor to each flattened candidate. The whole
candidate list is computed and sorted up front; the Iterator then hands
it out one element at a time.

Grounded directly on GLRParser/tree.py's enum/enumx cost-accumulating
combination walk; the explicit Iterator type (rather than a generator)
follows from Go having no native generator/yield construct.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package enumerate

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'glrnlp.enumerate'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.enumerate")
}
