/*
Package morph supplies generic, language-agnostic post-processors for
enumerate.Enumerate's flattened candidate strings.

Grounded on GLRParser/tree.py's combine_suffixes: a token whose surface
form starts with "+" or "-" is a bound continuation (a suffix) that
glues onto the previous token without an intervening space. The
original additionally runs Turkish vowel-harmony spelling rules over
the glued result (morpher.py) — that language-specific rewriting is out
of this module's scope; Default keeps only the general gluing
mechanism.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package morph

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tomitaglr/glrnlp/enumerate"
)

// tracer traces with key 'glrnlp.morph'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.morph")
}

// Identity passes a candidate through unchanged.
var Identity enumerate.PostProcessor = enumerate.Identity

// Default collapses a leading "+" or "-" marked continuation token into
// its predecessor, dropping the separating space and the marker itself
// (e.g. "dog +s" -> "dogs"). Tokens are expected to already be
// space-joined by the grammar's own " " terminals; Default only ever
// removes a space immediately followed by a marker, so ordinary
// multi-word output is untouched.
var Default enumerate.PostProcessor = enumerate.PostProcessorFunc(func(s string) (string, error) {
	return collapseSuffixes(s), nil
})

func collapseSuffixes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && i+1 < len(s) && isSuffixMarker(s[i+1]) {
			i++ // drop the space and the marker byte that follows it
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isSuffixMarker(c byte) bool { return c == '+' || c == '-' }
