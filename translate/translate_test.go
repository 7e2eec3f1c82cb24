package translate

import (
	"context"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tomitaglr/glrnlp/automaton"
	"github.com/tomitaglr/glrnlp/forest"
	"github.com/tomitaglr/glrnlp/recognizer"
	"github.com/tomitaglr/glrnlp/rule"
	"github.com/tomitaglr/glrnlp/unify"
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

func compileParseUnify(t *testing.T, b *rule.Builder, tokens []string) (*forest.Tree, *rule.Store) {
	t.Helper()
	store, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dfa, err := automaton.Build(store)
	if err != nil {
		t.Fatalf("automaton.Build: %v", err)
	}
	chart, err := recognizer.Parse(context.Background(), store, dfa, tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	raw, err := forest.Build(chart)
	if err != nil {
		t.Fatalf("forest.Build: %v", err)
	}
	filtered, err := unify.UpForest(raw)
	if err != nil {
		t.Fatalf("UpForest: %v", err)
	}
	return filtered, store
}

func flattenFirst(tt *TTree) []string {
	if tt == nil || len(tt.Alts) == 0 {
		return nil
	}
	var out []string
	for _, e := range tt.Alts[0].Elems {
		if e.Terminal {
			out = append(out, e.Text)
			continue
		}
		out = append(out, flattenFirst(e.Node)...)
	}
	return out
}

// featureRefGrammar exercises spec.md §4.5's "*k" feature-reference case:
// S's own feature map carries a "subj" entry that is a back-reference
// (*0, position 0 on the left), resolved during upward unification into
// Alt.Refs["subj"]; S's output side then drives that subtree indirectly
// through a RightFeatureRef("subj") position instead of an ordinary
// integer back-reference.
func featureRefGrammar() *rule.Builder {
	b := rule.NewBuilder("S")
	b.AddRule("S", []string{"NP", "VP"}, []rule.RightSymbol{
		rule.FeatureRef("subj", rule.NoParam),
		rule.Terminal(" "),
		rule.BackRefTo(1, rule.NoParam),
	}, rule.WithFeat(rule.FeatureMap{"subj": rule.BackRef(0)}))
	b.AddRule("NP", []string{"Det", "N"}, []rule.RightSymbol{rule.BackRefTo(1, rule.NoParam)})
	b.AddRule("VP", []string{"V"}, []rule.RightSymbol{rule.BackRefTo(0, rule.NoParam)})
	b.AddRule("Det", []string{"the"}, []rule.RightSymbol{rule.Terminal("the")})
	b.AddRule("N", []string{"dog"}, []rule.RightSymbol{rule.Terminal("dog")})
	b.AddRule("V", []string{"barks"}, []rule.RightSymbol{rule.Terminal("barks")})
	return b
}

func TestTranslateFollowsFeatureBackRef(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glrnlp.translate")
	defer teardown()

	filtered, store := compileParseUnify(t, featureRefGrammar(), []string{"the", "dog", "barks"})
	sNode := filtered.Alts[0].Children[0].Node
	tt, err := Translate(sNode, store)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	got := flattenFirst(tt)
	want := []string{"dog", " ", "barks"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTranslateDropsDeterminer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glrnlp.translate")
	defer teardown()

	filtered, store := compileParseUnify(t, dropDeterminerGrammar(), []string{"the", "dog", "barks"})
	// filtered is the augmented S' wrapper; its single child is the S node.
	sNode := filtered.Alts[0].Children[0].Node
	tt, err := Translate(sNode, store)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	got := flattenFirst(tt)
	want := []string{"dog", " ", "barks"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
