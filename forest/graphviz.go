package forest

import (
	"fmt"
	"strings"
)

// ToGraphViz renders tree as a Graphviz dot graph: one box node per
// packed node, one ellipse node per alternative, and one edge per
// alternative's child. Grounded on gorgo's
// lr/sppf package's ToGraphViz (forest nodes rendered as ovals, packed
// alternatives fanned out beneath).
func ToGraphViz(t *Tree) string {
	var b strings.Builder
	b.WriteString("digraph forest {\n  rankdir=TB;\n  node [shape=box];\n")
	seen := map[*Tree]bool{}
	id := map[*Tree]string{}
	counter := 0
	var walk func(n *Tree)
	walk = func(n *Tree) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		name := fmt.Sprintf("n%d", counter)
		counter++
		id[n] = name
		fmt.Fprintf(&b, "  %s [label=%q];\n", name, fmt.Sprintf("%s[%d,%d]", n.Head, n.Start, n.End))
		for ai, alt := range n.Alts {
			altName := fmt.Sprintf("%s_a%d", name, ai)
			label := "rule"
			if alt.IsPhrase() {
				label = "phrase"
			}
			fmt.Fprintf(&b, "  %s [shape=ellipse,label=%q];\n", altName, label)
			fmt.Fprintf(&b, "  %s -> %s;\n", name, altName)
			for _, c := range alt.Children {
				if c.Terminal {
					leaf := fmt.Sprintf("%s_t", altName)
					fmt.Fprintf(&b, "  %s [shape=plaintext,label=%q];\n", leaf, c.Text)
					fmt.Fprintf(&b, "  %s -> %s;\n", altName, leaf)
					continue
				}
				walk(c.Node)
				fmt.Fprintf(&b, "  %s -> %s;\n", altName, id[c.Node])
			}
		}
	}
	walk(t)
	b.WriteString("}\n")
	return b.String()
}
