package rule

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIsNonterminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glrnlp.rule")
	defer teardown()

	cases := map[string]bool{
		"NP": true, "S": true, "a": false, "saw": false, "": false,
	}
	for sym, want := range cases {
		if got := IsNonterminal(sym); got != want {
			t.Errorf("IsNonterminal(%q) = %v, want %v", sym, got, want)
		}
	}
}

func TestStartRuleShape(t *testing.T) {
	r := StartRule("S")
	if r.Head != StartHead {
		t.Fatalf("head = %q, want %q", r.Head, StartHead)
	}
	if len(r.Left) != 1 || r.Left[0].Name != "S" {
		t.Fatalf("left = %v, want [S]", r.Left)
	}
	if len(r.Right) != 1 || r.Right[0].Kind != RightBackRef || r.Right[0].BackRef != 0 {
		t.Fatalf("right = %v, want single back-reference to 0", r.Right)
	}
}

func TestBuilderRejectsBadBackRef(t *testing.T) {
	b := NewBuilder("S")
	b.AddRule("S", []string{"NP", "VP"}, []RightSymbol{BackRefTo(5, NoParam)})
	if _, err := b.Build(); err == nil {
		t.Fatal("expected GrammarError for out-of-range back-reference")
	}
}

func TestBuilderRuleDict(t *testing.T) {
	b := NewBuilder("S")
	b.AddRule("S", []string{"NP", "VP"}, []RightSymbol{BackRefTo(0, NoParam), BackRefTo(1, NoParam)})
	b.AddRule("NP", []string{"i"}, []RightSymbol{Terminal("ben")})
	b.AddRule("VP", []string{"saw"}, []RightSymbol{Terminal("gordum")})
	store, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := store.RulesFor("S"); len(got) != 1 || got[0] != 1 {
		t.Fatalf("RulesFor(S) = %v, want [1]", got)
	}
	if store.Rule(0).Head != StartHead {
		t.Fatalf("rule 0 head = %q, want %q", store.Rule(0).Head, StartHead)
	}
}

func TestTriePrefixMatches(t *testing.T) {
	tr := NewTrie()
	r1 := &Rule{Head: "NP", Left: []LeftSymbol{{Name: "the"}, {Name: "man"}}}
	r2 := &Rule{Head: "NP", Left: []LeftSymbol{{Name: "the"}, {Name: "man"}, {Name: "from"}, {Name: "UNCLE"}}}
	tr.Add([]string{"the", "man"}, r1)
	tr.Add([]string{"the", "man", "from", "UNCLE"}, r2)

	matches := tr.Search([]string{"the", "man", "from", "UNCLE", "said", "hi"})
	if len(matches) != 2 {
		t.Fatalf("expected 2 prefix matches, got %d: %v", len(matches), matches)
	}
	if matches[0].Length != 2 || matches[1].Length != 4 {
		t.Fatalf("unexpected match lengths: %+v", matches)
	}
}

func TestFeatureValueEqual(t *testing.T) {
	if !Literal("sing").Equal(Literal("sing")) {
		t.Fatal("identical literals should be equal")
	}
	if Literal("sing").Equal(Literal("plur")) {
		t.Fatal("different literals should not be equal")
	}
	if !Bool(true).Equal(Bool(true)) || Bool(true).Equal(Bool(false)) {
		t.Fatal("bool equality broken")
	}
	if !BackRef(2).Equal(BackRef(2)) {
		t.Fatal("back-ref equality broken")
	}
}

func TestFeatureMapWithIsCopyOnWrite(t *testing.T) {
	base := FeatureMap{"numb": Literal("sing")}
	updated := base.With("pers", Literal("3"))
	if _, ok := base["pers"]; ok {
		t.Fatal("With must not mutate the receiver")
	}
	if v, ok := updated["numb"]; !ok || !v.Equal(Literal("sing")) {
		t.Fatal("With must retain existing keys")
	}
}
