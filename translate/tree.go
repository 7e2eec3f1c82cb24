package translate

import "fmt"

// TElem is one position of a TAlt's output sequence: a literal token or
// a nested packed output subtree.
type TElem struct {
	Terminal bool
	Text     string
	Node     *TTree
}

// Leaf constructs a terminal TElem.
func Leaf(text string) TElem { return TElem{Terminal: true, Text: text} }

// TAlt is one translated derivation: the output sequence produced by
// driving one retained rule's right side, plus the cost carried by that
// rule (spec.md §4.7 sums rule cost across tree levels at enumeration
// time; this package only carries the per-alternative base cost
// forward).
type TAlt struct {
	Cost  int
	Elems []TElem
}

// TTree is a packed output-side node: every alternative translation of
// one left-side forest node, sharing the node the way forest.Tree
// shares spans.
type TTree struct {
	Alts []*TAlt
}

func (t *TTree) String() string {
	return fmt.Sprintf("TTree{%d alts}", len(t.Alts))
}
