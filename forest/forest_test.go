package forest

import (
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tomitaglr/glrnlp/automaton"
	"github.com/tomitaglr/glrnlp/recognizer"
	"github.com/tomitaglr/glrnlp/rule"
)

func buildChart(t *testing.T) *recognizer.Chart {
	t.Helper()
	b := rule.NewBuilder("S")
	b.AddRule("S", []string{"NP", "VP"}, nil)
	b.AddRule("NP", []string{"Det", "N"}, nil)
	b.AddRule("VP", []string{"V", "NP"}, nil)
	b.AddRule("Det", []string{"the"}, []rule.RightSymbol{rule.Terminal("the")})
	b.AddRule("N", []string{"dog"}, []rule.RightSymbol{rule.Terminal("dog")})
	b.AddRule("N", []string{"cat"}, []rule.RightSymbol{rule.Terminal("cat")})
	b.AddRule("V", []string{"saw"}, []rule.RightSymbol{rule.Terminal("saw")})
	store, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dfa, err := automaton.Build(store)
	if err != nil {
		t.Fatalf("automaton.Build: %v", err)
	}
	chart, err := recognizer.Parse(context.Background(), store, dfa, []string{"the", "dog", "saw", "the", "cat"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return chart
}

func TestBuildWrapsAugmentedStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glrnlp.forest")
	defer teardown()

	chart := buildChart(t)
	tree, err := Build(chart)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tree.Head != rule.StartHead {
		t.Fatalf("expected wrapper head %q, got %q", rule.StartHead, tree.Head)
	}
	if len(tree.Alts) != 1 {
		t.Fatalf("augmented start must be a singleton tree, got %d alts", len(tree.Alts))
	}
	sNode := tree.Alts[0].Children[0].Node
	if sNode.Head != "S" || sNode.Start != 0 || sNode.End != 5 {
		t.Fatalf("unexpected S node: %+v", sNode)
	}
}

func TestBuildValidates(t *testing.T) {
	chart := buildChart(t)
	tree, err := Build(chart)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := Validate(tree); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestToGraphVizContainsNodes(t *testing.T) {
	chart := buildChart(t)
	tree, err := Build(chart)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dot := ToGraphViz(tree)
	if !strings.HasPrefix(dot, "digraph forest {") {
		t.Fatalf("unexpected graphviz output head: %q", dot[:30])
	}
	if !strings.Contains(dot, "S[0,5]") {
		t.Fatalf("expected a node label for the S[0,5] span, got:\n%s", dot)
	}
}
