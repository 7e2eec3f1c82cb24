package forest

import (
	"fmt"

	"github.com/tomitaglr/glrnlp/rule"
)

// Elem is one position of an Alt's children: either a terminal (leaf
// text, already consumed by a shift or a phrase match) or a nested
// packed Tree node for a nonterminal.
type Elem struct {
	Terminal bool
	Text     string
	Node     *Tree
}

// Leaf constructs a terminal Elem.
func Leaf(text string) Elem { return Elem{Terminal: true, Text: text} }

// Branch constructs a nonterminal Elem.
func Branch(n *Tree) Elem { return Elem{Node: n} }

// Alt is one derivation of a Tree node: the rule that produced it (or a
// phrase-trie match), its children, and the feature map / cost carried
// on this alternative specifically (spec.md §3: "feat is carried on the
// node; cost is the rule's base cost during build, updated during
// unification").
type Alt struct {
	RuleID     int // -1 when PhraseRule != nil
	PhraseRule *rule.Rule
	Rule       *rule.Rule
	Children   []Elem

	Feat rule.FeatureMap
	Cost int

	// Refs holds, for every feature whose value is an unresolved
	// rule.FVBackRef, the child subtree it resolves to — spec.md §4.5's
	// "back-references in the rule's feature map... replaced by the
	// actual matched child subtree at position k". The FeatureMap entry
	// itself keeps the FVBackRef marker; translate consults Refs when it
	// meets one, since a FeatureValue cannot itself hold a subtree
	// pointer without rule importing forest (a cycle, as forest already
	// imports rule).
	Refs map[string]Elem
}

// IsPhrase reports whether this alternative derives from a trie phrase
// match rather than an ordinary grammar rule.
func (a *Alt) IsPhrase() bool { return a.PhraseRule != nil }

// Tree is one packed forest node: all alternative derivations sharing
// the same (head symbol, span) — spec.md §3's "every alternative at a
// position shares the same spanned input range" invariant (P4).
type Tree struct {
	Head       string
	Start, End int
	Alts       []*Alt
}

func (t *Tree) String() string {
	return fmt.Sprintf("%s[%d,%d]{%d alts}", t.Head, t.Start, t.End, len(t.Alts))
}
