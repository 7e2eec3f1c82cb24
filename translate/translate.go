package translate

import (
	"github.com/tomitaglr/glrnlp/forest"
	"github.com/tomitaglr/glrnlp/rule"
	"github.com/tomitaglr/glrnlp/unify"
)

// Translate drives the whole unified forest from its top node, with no
// ambient feature constraints — the entry point for spec component C6.
func Translate(node *forest.Tree, store *rule.Store) (*TTree, error) {
	return transTree(node, rule.FeatureMap{}, rule.NoParam, store)
}

// transTree is GLRParser/parser.py's trans_tree(node, ambientFeat,
// ambientParam), ported verbatim in structure: for each retained
// alternative, unify its feature map downward against the ambient
// context, then drive its right side; commit (cut) after the first
// alternative whose rule demands it.
func transTree(node *forest.Tree, ambientFeat rule.FeatureMap, ambientParam rule.FParam, store *rule.Store) (*TTree, error) {
	out := &TTree{}
	var lastErr error
	for _, alt := range node.Alts {
		fdict, err := unify.UnifyDown(alt.Feat, ambientParam, ambientFeat, alt.Rule.Checklist)
		if err != nil {
			lastErr = err
			continue
		}
		elems, err := translateRight(alt, fdict, store)
		if err != nil {
			lastErr = err
			continue
		}
		out.Alts = append(out.Alts, &TAlt{Cost: alt.Cost, Elems: elems})
		if alt.Rule.Cut {
			break
		}
	}
	if len(out.Alts) == 0 {
		if lastErr == nil {
			lastErr = &unify.UnifyError{Msg: "no alternative survived downward translation"}
		}
		return nil, lastErr
	}
	return out, nil
}

// translateRight drives alt.Rule.Right under fdict, recursing into
// back-referenced children (already-unified left-side subtrees) and
// synthesizing fresh output-only subtrees via makeTransTree.
func translateRight(alt *forest.Alt, fdict rule.FeatureMap, store *rule.Store) ([]TElem, error) {
	elems := make([]TElem, 0, len(alt.Rule.Right))
	for _, rs := range alt.Rule.Right {
		switch rs.Kind {
		case rule.RightTerminal:
			elems = append(elems, Leaf(rs.Literal))

		case rule.RightBackRef:
			if rs.BackRef < 0 || rs.BackRef >= len(alt.Children) {
				return nil, &unify.UnifyError{Msg: "right-side back-reference out of range"}
			}
			child := alt.Children[rs.BackRef]
			if child.Terminal {
				elems = append(elems, Leaf(child.Text))
				continue
			}
			sub, err := transTree(child.Node, fdict, rs.Param, store)
			if err != nil {
				return nil, err
			}
			elems = append(elems, TElem{Node: sub})

		case rule.RightSynthesize:
			sub, err := makeTransTree(rs.Name, fdict, rs.Param, store)
			if err != nil {
				return nil, err
			}
			elems = append(elems, TElem{Node: sub})

		case rule.RightFeatureRef:
			elem, err := translateFeatureRef(rs, alt, fdict, store)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
	}
	return elems, nil
}

// translateFeatureRef resolves a "*key" output-side position: a plain
// string feature value is emitted as a terminal (lowercase) or
// synthesizes a fresh output-only subtree (uppercase, i.e. a
// nonterminal name); an FVBackRef-kind value is resolved through the
// owning alternative's Refs into the actual matched subtree, which is
// then driven like an ordinary RightBackRef position.
func translateFeatureRef(rs rule.RightSymbol, alt *forest.Alt, fdict rule.FeatureMap, store *rule.Store) (TElem, error) {
	val, ok := fdict[rs.Feature]
	if !ok {
		return TElem{}, &unify.UnifyError{Feature: rs.Feature, Msg: "translate ref to feature not found in feature dict"}
	}
	switch val.Kind {
	case rule.FVLiteral:
		if rule.IsNonterminal(val.Literal) {
			sub, err := makeTransTree(val.Literal, fdict, rs.Param, store)
			if err != nil {
				return TElem{}, err
			}
			return TElem{Node: sub}, nil
		}
		return Leaf(val.Literal), nil

	case rule.FVBackRef:
		child, ok := alt.Refs[rs.Feature]
		if !ok {
			return TElem{}, &unify.UnifyError{Feature: rs.Feature, Msg: "unresolved back-reference in feature dict"}
		}
		if child.Terminal {
			return Leaf(child.Text), nil
		}
		sub, err := transTree(child.Node, fdict, rs.Param, store)
		if err != nil {
			return TElem{}, err
		}
		return TElem{Node: sub}, nil

	default:
		return TElem{}, &unify.UnifyError{Feature: rs.Feature, Msg: "feature ref value is neither a literal nor a resolved back-reference"}
	}
}

// makeTransTree is GLRParser/parser.py's make_trans_tree(symbol, feat,
// fparam): synthesizes a brand-new output-only subtree by enumerating
// every rule for symbol, unifying each one's feat downward against
// (feat, fparam), and recursing on its right side. The first
// cut-marked alternative stops the enumeration.
func makeTransTree(symbol string, feat rule.FeatureMap, fparam rule.FParam, store *rule.Store) (*TTree, error) {
	out := &TTree{}
	var lastErr error
	for _, ruleID := range store.RulesFor(symbol) {
		r := store.Rule(ruleID)
		fdict, err := unify.UnifyDown(r.Feat, fparam, feat, r.Checklist)
		if err != nil {
			lastErr = err
			continue
		}
		elems, err := translateSynthesizedRight(r, fdict, store)
		if err != nil {
			lastErr = err
			continue
		}
		out.Alts = append(out.Alts, &TAlt{Cost: r.Cost, Elems: elems})
		if r.Cut {
			break
		}
	}
	if len(out.Alts) == 0 {
		if lastErr == nil {
			lastErr = &unify.UnifyError{Feature: symbol, Msg: "no rule unifies while synthesizing output subtree"}
		}
		return nil, lastErr
	}
	return out, nil
}

// translateSynthesizedRight is translateRight's counterpart for a
// freshly synthesized (not forest-backed) rule: a RightBackRef here has
// no matched input-side child to recurse into, since the symbol never
// appeared in the input, so it yields a UnifyError. Terminals,
// RightSynthesize positions and RightFeatureRef positions whose value is
// a plain literal are translated; a RightFeatureRef whose value is a
// back-reference yields a UnifyError.
func translateSynthesizedRight(r *rule.Rule, fdict rule.FeatureMap, store *rule.Store) ([]TElem, error) {
	elems := make([]TElem, 0, len(r.Right))
	for _, rs := range r.Right {
		switch rs.Kind {
		case rule.RightTerminal:
			elems = append(elems, Leaf(rs.Literal))
		case rule.RightSynthesize:
			sub, err := makeTransTree(rs.Name, fdict, rs.Param, store)
			if err != nil {
				return nil, err
			}
			elems = append(elems, TElem{Node: sub})
		case rule.RightBackRef:
			return nil, &unify.UnifyError{Feature: r.Head, Msg: "back-reference in a synthesized (output-only) rule has no input-side child to resolve"}

		case rule.RightFeatureRef:
			val, ok := fdict[rs.Feature]
			if !ok {
				return nil, &unify.UnifyError{Feature: rs.Feature, Msg: "translate ref to feature not found in feature dict"}
			}
			switch val.Kind {
			case rule.FVLiteral:
				if rule.IsNonterminal(val.Literal) {
					sub, err := makeTransTree(val.Literal, fdict, rs.Param, store)
					if err != nil {
						return nil, err
					}
					elems = append(elems, TElem{Node: sub})
				} else {
					elems = append(elems, Leaf(val.Literal))
				}
			default:
				return nil, &unify.UnifyError{Feature: rs.Feature, Msg: "feature ref in a synthesized (output-only) rule cannot resolve a back-reference: no matched subtree"}
			}
		}
	}
	return elems, nil
}
