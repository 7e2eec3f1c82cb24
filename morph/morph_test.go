package morph

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultCollapsesSuffixMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glrnlp.morph")
	defer teardown()

	got, err := Default.Apply("dog +s runs -ing")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "dogs runsing" {
		t.Fatalf("expected %q, got %q", "dogs runsing", got)
	}
}

func TestDefaultLeavesOrdinaryTextUnchanged(t *testing.T) {
	got, err := Default.Apply("the dog barks")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "the dog barks" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestIdentityPassesThrough(t *testing.T) {
	got, err := Identity.Apply("unchanged")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "unchanged" {
		t.Fatalf("expected %q, got %q", "unchanged", got)
	}
}
