package automaton

import (
	"fmt"
	"io"
)

// ToGraphViz exports the DFA's transition graph in Graphviz Dot format,
// adapted from gorgo's lr/tables.go CFSM2GraphViz.
func (d *DFA) ToGraphViz(w io.Writer) {
	fmt.Fprintln(w, "digraph DFA {")
	fmt.Fprintln(w, "  rankdir=LR;")
	for _, st := range d.States {
		shape := "box"
		if st.Accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "  s%d [shape=%s,label=\"%d\"];\n", st.ID, shape, st.ID)
	}
	for _, e := range d.Transitions() {
		fmt.Fprintf(w, "  s%d -> s%d [label=\"%s\"];\n", e.From, e.To, e.Symbol)
	}
	fmt.Fprintln(w, "}")
}
