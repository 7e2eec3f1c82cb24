/*
Package fingerprint computes a stable content hash over a compiled rule
set, giving an external cache a key to store a compiled grammar under.
It is a hook, not a cache: on-disk caching of compiled tables is out of
this module's scope, and this package never serializes or reads one
back.

Grounded on gorgo's lr/earley.go hash() helper, which hashes an
anonymous struct wrapping the values to be keyed and panics only on a
structhash internal error the library's own doc says cannot happen.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package fingerprint

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"

	"github.com/tomitaglr/glrnlp/rule"
)

// tracer traces with key 'glrnlp.fingerprint'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.fingerprint")
}

// Digest returns a stable hash over rules, suitable as a cache key for
// the compiled automaton an external caller derives from them. Two
// calls with equal rule slices (equal in value, not identity) return
// the same digest.
func Digest(rules []*rule.Rule) string {
	h, err := structhash.Hash(rules, 1)
	if err != nil {
		// structhash.Hash only errors on a value it cannot reflect over;
		// []*rule.Rule is plain exported data, so this cannot happen.
		panic(fmt.Sprintf("fingerprint: hashing rule set: %v", err))
	}
	return h
}
