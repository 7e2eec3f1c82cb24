package automaton

import "github.com/tomitaglr/glrnlp/rule"

// Nullable is the least-fixed-point set of nonterminal heads that can
// derive the empty string (spec.md §4.2, invariant P3).
type Nullable map[string]bool

// ComputeNullable iterates: a head is nullable if some rule for it has
// an all-nullable (or empty) left side, repeating until no change.
// Grounded directly on GLRParser/parser.py's compile():
//
//	nullable = {rule.head for rule in rules if len(rule.left) == 0}
//	# then iterate adding heads whose rule.left is all-nullable
func ComputeNullable(store *rule.Store) Nullable {
	n := Nullable{}
	for _, r := range store.Rules {
		if len(r.Left) == 0 {
			n[r.Head] = true
		}
	}
	for changed := true; changed; {
		changed = false
		for _, r := range store.Rules {
			if n[r.Head] {
				continue
			}
			if allLeftNullableHelper(r.Left, n) {
				n[r.Head] = true
				changed = true
			}
		}
	}
	return n
}

func allLeftNullableHelper(left []rule.LeftSymbol, n Nullable) bool {
	for _, l := range left {
		if !n[l.Name] {
			return false
		}
	}
	return true
}

// TailNullable reports whether left[from:] is entirely nullable (an
// empty tail counts as nullable). Used when building the reduce tables:
// a rule is reducible at an item whose remaining tail can vanish.
func (n Nullable) TailNullable(left []rule.LeftSymbol, from int) bool {
	return allLeftNullableHelper(left[from:], n)
}
