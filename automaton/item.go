package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomitaglr/glrnlp/rule"
)

// Item is an LR(0) item: a rule serial together with a dot position in
// its left-hand side. Grounded on GLRParser/parser.py's closure(), which
// represents items as bare (ruleno, rulepos) tuples.
type Item struct {
	Rule int
	Dot  int
}

func (it Item) String() string {
	return fmt.Sprintf("(%d,%d)", it.Rule, it.Dot)
}

// AtEnd reports whether the dot has reached the end of r's left side.
func (it Item) AtEnd(r *rule.Rule) bool {
	return it.Dot >= len(r.Left)
}

// PeekSymbol returns the symbol right after the dot, or "" at the end.
func (it Item) PeekSymbol(store *rule.Store) string {
	r := store.Rule(it.Rule)
	if it.AtEnd(r) {
		return ""
	}
	return r.Left[it.Dot].Name
}

// Advance returns the item with the dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1}
}

// ItemSet is a set of LR(0) items. Ranging over it directly follows Go's
// unordered map iteration; Sorted gives a deterministic order.
// gorgo's lr/tables.go builds closures atop a package called
// `iteratable`, whose Set implementation never made it into the
// retrieved example pack (only its doc comment did — see
// lr/iteratable/doc.go). ItemSet below is authored from scratch against
// that documented contract ("special purpose set... suitable for
// algorithms around scanners, parsers") rather than against unavailable
// source, since the set algebra (Add/Union/sorted iteration) item-set
// closure needs is small enough not to warrant pulling in an external
// container library beyond what automaton already uses (gods) for CFSM
// state/edge storage below.
type ItemSet map[Item]struct{}

// NewItemSet builds a set from the given items.
func NewItemSet(items ...Item) ItemSet {
	s := make(ItemSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Add inserts it into the set, returning true if it was new.
func (s ItemSet) Add(it Item) bool {
	if _, ok := s[it]; ok {
		return false
	}
	s[it] = struct{}{}
	return true
}

// Union adds every item of other into s.
func (s ItemSet) Union(other ItemSet) {
	for it := range other {
		s[it] = struct{}{}
	}
}

// Sorted returns the set's items in a stable, deterministic order.
func (s ItemSet) Sorted() []Item {
	out := make([]Item, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rule != out[j].Rule {
			return out[i].Rule < out[j].Rule
		}
		return out[i].Dot < out[j].Dot
	})
	return out
}

// Signature returns a canonical string identifying this exact set of
// items, used to dedup newly-discovered states against existing ones
// (gorgo's findStateByItems does the equivalent via a linear scan over
// iteratable.Set contents; a signature map gives the same semantics in
// O(1) average lookup).
func (s ItemSet) Signature() string {
	var b strings.Builder
	for _, it := range s.Sorted() {
		b.WriteString(it.String())
	}
	return b.String()
}
