/*
Package forest implements the packed parse-forest builder (spec
component C4): it projects a recognizer.Chart's edge table into a
ParseTree, one packed node per (span, symbol), sharing structure across
alternatives the way the chart itself shares edges.

Grounded on GLRParser/tree.py's Tree/SubTree construction out of the
parser's node/edge tables, and on gorgo's lr/sppf package for the idea of
a packed, alternatives-as-slices forest representation (sppf.Forest)
though this module keeps plain Go pointers rather than sppf's symbol-ID
arena, since the recognizer's edge keys already serve as a stable,
GC-friendly identity.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package forest

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'glrnlp.forest'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.forest")
}
