/*
Package rule owns the immutable compiled rule set a grammar reduces to: the
Rule and FeatureMap data shapes, and a Trie of multi-token lexical phrases.

Everything upstream of this package (grammar text, `%`-directives, macro
expansion, feature-regex syntax) is a different concern and lives outside
this module; by the time a []*Rule reaches Compile, all feature syntax has
already been decoded into FeatureMap values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2026, the glrnlp contributors
*/
package rule

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glrnlp.rule'.
func tracer() tracing.Trace {
	return tracing.Select("glrnlp.rule")
}
