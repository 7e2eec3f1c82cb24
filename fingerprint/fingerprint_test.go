package fingerprint

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tomitaglr/glrnlp/rule"
)

func TestDigestStableAcrossEqualRuleSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glrnlp.fingerprint")
	defer teardown()

	b := rule.NewBuilder("S")
	b.AddRule("S", []string{"a"}, []rule.RightSymbol{rule.Terminal("a")})
	store1, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	b2 := rule.NewBuilder("S")
	b2.AddRule("S", []string{"a"}, []rule.RightSymbol{rule.Terminal("a")})
	store2, err := b2.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	d1 := Digest(store1.Rules)
	d2 := Digest(store2.Rules)
	if d1 != d2 {
		t.Fatalf("expected equal digests for equal rule sets, got %q vs %q", d1, d2)
	}
}

func TestDigestDiffersForDifferentRuleSets(t *testing.T) {
	b1 := rule.NewBuilder("S")
	b1.AddRule("S", []string{"a"}, []rule.RightSymbol{rule.Terminal("a")})
	store1, err := b1.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	b2 := rule.NewBuilder("S")
	b2.AddRule("S", []string{"b"}, []rule.RightSymbol{rule.Terminal("b")})
	store2, err := b2.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if Digest(store1.Rules) == Digest(store2.Rules) {
		t.Fatal("expected different digests for different rule sets")
	}
}
