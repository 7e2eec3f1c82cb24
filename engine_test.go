package glrnlp

import (
	"context"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tomitaglr/glrnlp/rule"
)

// dropDeterminerGrammar translates "the N" noun phrases by dropping the
// determiner on the output side, and reassembles S as NP + " " + VP.
func dropDeterminerGrammar() *rule.Builder {
	b := rule.NewBuilder("S")
	b.AddRule("S", []string{"NP", "VP"}, []rule.RightSymbol{
		rule.BackRefTo(0, rule.NoParam),
		rule.Terminal(" "),
		rule.BackRefTo(1, rule.NoParam),
	})
	b.AddRule("NP", []string{"Det", "N"}, []rule.RightSymbol{rule.BackRefTo(1, rule.NoParam)})
	b.AddRule("VP", []string{"V"}, []rule.RightSymbol{rule.BackRefTo(0, rule.NoParam)})
	b.AddRule("Det", []string{"the"}, []rule.RightSymbol{rule.Terminal("the")})
	b.AddRule("N", []string{"dog"}, []rule.RightSymbol{rule.Terminal("dog")})
	b.AddRule("V", []string{"barks"}, []rule.RightSymbol{rule.Terminal("barks")})
	return b
}

func TestEndToEndPipeline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glrnlp.engine")
	defer teardown()

	store, err := dropDeterminerGrammar().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	c, err := Compile(store.Rules, store.Trie)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	stats := c.Stats()
	if stats.RuleCount == 0 || stats.StateCount == 0 {
		t.Fatalf("expected non-zero stats, got %+v", stats)
	}

	chart, err := c.Parse(context.Background(), []string{"the", "dog", "barks"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	raw, err := MakeForest(chart)
	if err != nil {
		t.Fatalf("MakeForest: %v", err)
	}

	filtered, err := UnifyUp(raw)
	if err != nil {
		t.Fatalf("UnifyUp: %v", err)
	}
	// filtered is the augmented S' wrapper; its single child is the S node.
	sNode := filtered.Alts[0].Children[0].Node

	tt, err := c.Translate(sNode)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	it := Enumerate(tt)
	r, ok := it.Next()
	if !ok {
		t.Fatal("expected at least one enumerated candidate")
	}
	if r.Text != "dog barks" {
		t.Fatalf("expected %q, got %q", "dog barks", r.Text)
	}
}
