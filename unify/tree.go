package unify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomitaglr/glrnlp/forest"
	"github.com/tomitaglr/glrnlp/rule"
)

// UpForest runs the upward unification pass (spec component C5) over
// the whole packed forest, returning a new forest where every retained
// alternative carries a fully populated FeatureMap, or the last
// UnifyError if no alternative survives anywhere along the top node.
// Grounded on GLRParser/parser.py's unify_tree combinator: "at each rule
// body position, compute a stack of (currentFeatureMap,
// childrenCollected) pairs... successes that yield the same new feature
// map are coalesced."
func UpForest(tree *forest.Tree) (*forest.Tree, error) {
	u := &upper{memo: map[*forest.Tree]*forest.Tree{}}
	return u.node(tree)
}

type upper struct {
	memo map[*forest.Tree]*forest.Tree
}

func (u *upper) node(t *forest.Tree) (*forest.Tree, error) {
	if cached, ok := u.memo[t]; ok {
		return cached, nil
	}
	out := &forest.Tree{Head: t.Head, Start: t.Start, End: t.End}
	u.memo[t] = out

	var lastErr error
	for _, alt := range t.Alts {
		variants, err := u.alt(alt)
		if err != nil {
			lastErr = err
			continue
		}
		out.Alts = append(out.Alts, variants...)
	}
	if len(out.Alts) == 0 {
		if lastErr == nil {
			lastErr = &UnifyError{Msg: fmt.Sprintf("no surviving alternative at %s[%d,%d]", t.Head, t.Start, t.End)}
		}
		return nil, lastErr
	}
	return out, nil
}

type candidate struct {
	feat     rule.FeatureMap
	children []forest.Elem
}

func (u *upper) alt(alt *forest.Alt) ([]*forest.Alt, error) {
	cands := []candidate{{feat: alt.Rule.Feat.Clone()}}
	var lastErr error

	for i, child := range alt.Children {
		if child.Terminal {
			for c := range cands {
				cands[c].children = append(cands[c].children, child)
			}
			continue
		}
		childOut, err := u.node(child.Node)
		if err != nil {
			return nil, err
		}
		var param rule.FParam
		if alt.Rule != nil && !alt.IsPhrase() && i < len(alt.Rule.Left) {
			param = alt.Rule.Left[i].Param
		}

		var next []candidate
		for _, c := range cands {
			seen := map[string]bool{}
			for _, ca := range childOut.Alts {
				nf, err := UnifyUp(c.feat, param, ca.Feat)
				if err != nil {
					lastErr = err
					continue
				}
				key := featureMapKey(nf)
				if seen[key] {
					continue
				}
				seen[key] = true
				children := append(append([]forest.Elem{}, c.children...), forest.Branch(childOut))
				next = append(next, candidate{feat: nf, children: children})
			}
		}
		cands = next
		if len(cands) == 0 {
			if lastErr == nil {
				lastErr = &UnifyError{Msg: "no child alternative unified at this position"}
			}
			return nil, lastErr
		}
	}

	out := make([]*forest.Alt, 0, len(cands))
	for _, c := range cands {
		na := &forest.Alt{
			RuleID:     alt.RuleID,
			PhraseRule: alt.PhraseRule,
			Rule:       alt.Rule,
			Children:   c.children,
			Feat:       c.feat,
			Cost:       alt.Cost,
		}
		resolveBackRefs(na)
		out = append(out, na)
	}
	return out, nil
}

// resolveBackRefs fills Alt.Refs for every feature whose value is an
// unresolved rule.FVBackRef, per spec.md §4.5's back-reference-resolved-
// to-subtree rule.
func resolveBackRefs(alt *forest.Alt) {
	for k, v := range alt.Feat {
		if v.Kind != rule.FVBackRef {
			continue
		}
		if v.BackRef < 0 || v.BackRef >= len(alt.Children) {
			continue
		}
		if alt.Refs == nil {
			alt.Refs = map[string]forest.Elem{}
		}
		alt.Refs[k] = alt.Children[v.BackRef]
	}
}

func featureMapKey(m rule.FeatureMap) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(m[k].String())
		b.WriteByte(';')
	}
	return b.String()
}
