package forest

import (
	"fmt"

	"github.com/tomitaglr/glrnlp/recognizer"
	"github.com/tomitaglr/glrnlp/rule"
)

// Build projects chart's top edge into a packed ParseTree, wrapping the
// real start symbol's node in a singleton tree for the augmented start
// rule (rule 0, S' -> S) — spec.md §4.4: "the augmented start rule wraps
// the top in a singleton tree." Grounded on GLRParser/tree.py's
// recursive tree construction out of the parser's edge table.
func Build(chart *recognizer.Chart) (*Tree, error) {
	b := &builder{chart: chart, memo: map[recognizer.EdgeKey]*Tree{}}
	top, err := b.node(chart.TopEdge)
	if err != nil {
		return nil, err
	}
	wrapper := &Tree{Head: rule.StartHead, Start: top.Start, End: top.End}
	wrapper.Alts = []*Alt{{
		RuleID:   0,
		Rule:     chart.Store.Rule(0),
		Children: []Elem{Branch(top)},
		Feat:     chart.Store.Rule(0).Feat.Clone(),
		Cost:     chart.Store.Rule(0).Cost,
	}}
	return wrapper, nil
}

type builder struct {
	chart *recognizer.Chart
	memo  map[recognizer.EdgeKey]*Tree
}

func (b *builder) node(ek recognizer.EdgeKey) (*Tree, error) {
	if t, ok := b.memo[ek]; ok {
		return t, nil
	}
	alts, ok := b.chart.Edges[ek]
	if !ok || len(alts) == 0 {
		return nil, fmt.Errorf("forest: no recorded alternatives for edge %s", ek)
	}
	t := &Tree{Head: ek.Symbol, Start: ek.StartPos, End: ek.EndPos}
	b.memo[ek] = t // register before recursing: breaks any would-be cycle

	for _, alt := range alts {
		var r *rule.Rule
		ruleID := -1
		if alt.IsPhrase() {
			r = alt.PhraseRule
		} else {
			r = b.chart.Store.Rule(alt.RuleID)
			ruleID = alt.RuleID
		}
		children := make([]Elem, 0, len(alt.Children))
		for _, ck := range alt.Children {
			if rule.IsTerminal(ck.Symbol) {
				children = append(children, Leaf(ck.Symbol))
				continue
			}
			child, err := b.node(ck)
			if err != nil {
				return nil, err
			}
			children = append(children, Branch(child))
		}
		t.Alts = append(t.Alts, &Alt{
			RuleID:     ruleID,
			PhraseRule: alt.PhraseRule,
			Rule:       r,
			Children:   children,
			Feat:       r.Feat.Clone(),
			Cost:       r.Cost,
		})
	}
	return t, nil
}
