package recognizer

import (
	"fmt"

	"github.com/tomitaglr/glrnlp/rule"
)

// Origin is a stack-tail position: the position and DFA state a
// reduction's children were matched back to.
type Origin struct {
	Pos   int
	State int
}

// NodeKey identifies node[pos,state,symbol] in spec.md §3's Node table.
type NodeKey struct {
	Pos    int
	State  int
	Symbol string
}

// EdgeKey identifies edge[(startPos,startState,symbol,endPos,endState)]
// in spec.md §3's Edge table.
type EdgeKey struct {
	StartPos   int
	StartState int
	Symbol     string
	EndPos     int
	EndState   int
}

func (e EdgeKey) String() string {
	return fmt.Sprintf("(%d,%d,%s,%d,%d)", e.StartPos, e.StartState, e.Symbol, e.EndPos, e.EndState)
}

// Alternative is one way to derive an edge's symbol: either an ordinary
// numbered rule reduction, or a phrase-trie match (the matched Rule
// itself is the discriminator, mirroring GLRParser/parser.py storing
// the Rule object — not an int ruleno — for trie-sourced hits).
type Alternative struct {
	RuleID     int // valid when PhraseRule == nil
	PhraseRule *rule.Rule
	Children   []EdgeKey
}

// IsPhrase reports whether this alternative came from a trie phrase
// match rather than an ordinary DFA reduction.
func (a Alternative) IsPhrase() bool { return a.PhraseRule != nil }

// Chart is the recognizer's output: the node and edge tables recording
// every successful derivation, plus the tokens they were built from.
type Chart struct {
	Tokens  []string // includes the trailing EndOfInput sentinel
	Nodes   map[NodeKey]map[Origin]struct{}
	Edges   map[EdgeKey][]Alternative
	TopEdge EdgeKey
	Store   *rule.Store
}

func newChart(tokens []string, store *rule.Store) *Chart {
	return &Chart{
		Tokens: tokens,
		Nodes:  map[NodeKey]map[Origin]struct{}{},
		Edges:  map[EdgeKey][]Alternative{},
		Store:  store,
	}
}

func (c *Chart) addNodeArc(k NodeKey, o Origin) {
	set, ok := c.Nodes[k]
	if !ok {
		set = map[Origin]struct{}{}
		c.Nodes[k] = set
	}
	set[o] = struct{}{}
}

// addEdgeAlt appends an alternative to edge k, returning true if k was
// not already a known edge (the recognizer enqueues genuinely new edges
// for further reduction exploration, but keeps accumulating alternatives
// on rediscovery — spec.md §4.3's "New edges enter the work list;
// duplicates do not").
func (c *Chart) addEdgeAlt(k EdgeKey, alt Alternative) bool {
	_, known := c.Edges[k]
	c.Edges[k] = append(c.Edges[k], alt)
	return !known
}
