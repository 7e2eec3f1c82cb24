package glrnlp

import (
	"context"

	"github.com/tomitaglr/glrnlp/automaton"
	"github.com/tomitaglr/glrnlp/enumerate"
	"github.com/tomitaglr/glrnlp/forest"
	"github.com/tomitaglr/glrnlp/recognizer"
	"github.com/tomitaglr/glrnlp/rule"
	"github.com/tomitaglr/glrnlp/translate"
	"github.com/tomitaglr/glrnlp/unify"
)

// Compiled is a rule set plus its compiled LR(0) item-set DFA: the
// immutable, shareable output of Compile. Grounded on gorgo's doc.go
// worked example, which wires a grammar's compiled tables behind a
// single struct before any parse runs.
//
// A *Compiled value carries no mutable state once built, so it is safe
// for concurrent use: many goroutines may call Parse on the same
// *Compiled at once.
type Compiled struct {
	Store *rule.Store
	DFA   *automaton.DFA
}

// Stats reports size counters over a compiled grammar, the "exit-level
// observables" a caller might log or export as metrics.
type Stats struct {
	RuleCount        int
	StateCount       int
	SymbolCount      int
	NonterminalCount int
}

// Compile validates rules and trie, builds the rule store, and runs
// subset construction to produce the CFSM. rules must already include
// the augmented start rule at index 0 (rule.Store's invariant).
func Compile(rules []*rule.Rule, trie *rule.Trie) (*Compiled, error) {
	store, err := rule.NewStore(rules, trie)
	if err != nil {
		return nil, err
	}
	dfa, err := automaton.Build(store)
	if err != nil {
		return nil, err
	}
	return &Compiled{Store: store, DFA: dfa}, nil
}

// Stats summarizes c's grammar and compiled automaton size.
func (c *Compiled) Stats() Stats {
	symbols := map[string]bool{}
	nonterms := map[string]bool{}
	for _, r := range c.Store.Rules {
		nonterms[r.Head] = true
		symbols[r.Head] = true
		for _, l := range r.Left {
			symbols[l.Name] = true
		}
	}
	return Stats{
		RuleCount:        len(c.Store.Rules),
		StateCount:       len(c.DFA.States),
		SymbolCount:      len(symbols),
		NonterminalCount: len(nonterms),
	}
}

// Parse runs the GLR recognizer over tokens against c's compiled
// grammar. ctx is checked once per input position (recognizer.Parse's
// outer loop), not inside the per-position reduction/shift steps.
func (c *Compiled) Parse(ctx context.Context, tokens []string, opts ...recognizer.Option) (*recognizer.Chart, error) {
	return recognizer.Parse(ctx, c.Store, c.DFA, tokens, opts...)
}

// MakeForest projects chart's edges into a packed parse forest.
func MakeForest(chart *recognizer.Chart) (*forest.Tree, error) {
	return forest.Build(chart)
}

// UnifyUp filters tree bottom-up by feature-structure unification,
// pruning alternatives whose children's feature maps cannot merge.
func UnifyUp(tree *forest.Tree) (*forest.Tree, error) {
	return unify.UpForest(tree)
}

// Translate drives a second, output-side derivation top-down from
// every surviving alternative of tree, against c's rule store.
func (c *Compiled) Translate(tree *forest.Tree) (*translate.TTree, error) {
	return translate.Translate(tree, c.Store)
}

// Enumerate flattens tt into cost-ranked (string, cost) pairs, applying
// opts' post-processor to each candidate. All candidates are computed
// before the returned Iterator yields the first one.
func Enumerate(tt *translate.TTree, opts ...enumerate.Option) *enumerate.Iterator {
	return enumerate.Enumerate(tt, opts...)
}
