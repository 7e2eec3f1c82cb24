package recognizer

import "github.com/tomitaglr/glrnlp/rule"

// tailWalk advances from (pos, fromState) through body[fromIdx:], a run
// of symbols the reduce table has already certified as all-nullable. It
// records, for every step, the node arc and edge alternative contributed
// by emptyReductionsFrom (called for each intermediate state), and
// returns the synthetic child edges plus the state reached after the
// whole run — spec.md §4.3's "append any right-nulled synthetic children
// that fill the rule's remaining nullable tail".
func (p *parser) tailWalk(pos, fromState int, body []rule.LeftSymbol, fromIdx int) (state int, children []EdgeKey, ok bool) {
	state = fromState
	for k := fromIdx; k < len(body); k++ {
		sym := body[k].Name
		nstate, defined := p.dfa.Goto(state, sym)
		if !defined {
			return state, children, false
		}
		children = append(children, EdgeKey{StartPos: pos, StartState: state, Symbol: sym, EndPos: pos, EndState: nstate})
		p.emptyReductionsFrom(pos, state)
		state = nstate
	}
	return state, children, true
}

// emptyReductionsFrom expands every empty-reduction item enabled at
// (pos, state): for each nullable head reachable with zero tokens
// consumed, it synthesizes the (possibly itself nested) zero-width
// derivation, records the node arc and edge alternative, marks the
// resulting state active at pos, and cascades into it. Idempotent per
// (pos, state) via epsDone. Grounded on GLRParser/parser.py's parse()
// "empty reductions" phase (step 2, spec.md §4.3).
func (p *parser) emptyReductionsFrom(pos, state int) {
	if p.epsDone[pos][state] {
		return
	}
	p.epsDone[pos][state] = true
	for _, it := range p.dfa.EReduce[state] {
		r := p.store.Rule(it.Rule)
		bodyState, bodyChildren, ok := p.tailWalk(pos, state, r.Left, 0)
		if !ok {
			continue
		}
		nstate, ok := p.dfa.Goto(bodyState, r.Head)
		if !ok {
			continue
		}
		edgeKey := EdgeKey{StartPos: pos, StartState: state, Symbol: r.Head, EndPos: pos, EndState: nstate}
		p.chart.addNodeArc(NodeKey{Pos: pos, State: nstate, Symbol: r.Head}, Origin{Pos: pos, State: state})
		p.chart.addEdgeAlt(edgeKey, Alternative{RuleID: it.Rule, Children: bodyChildren})
		p.markActive(pos, nstate)
		p.emptyReductionsFrom(pos, nstate)
	}
}

// emptyReductions runs step 2 of the per-position algorithm over every
// state active at pos (emptyReductionsFrom's memoization makes this a
// no-op for states already expanded on-demand by reductionClosure's tail
// walks).
func (p *parser) emptyReductions(pos int) {
	for state := range p.actStates[pos] {
		p.emptyReductionsFrom(pos, state)
	}
}

type backFrame struct {
	pos, state int
	childrenRev []EdgeKey // body[0..k] contributed so far, in decreasing-k (reverse) order
}

// reductionClosure implements step 1: for every work edge ending at pos,
// for every reduction enabled at its end state, reconstruct every
// possible stack origin by walking the node table backward across the
// rule's preceding symbols, then register the resulting reduction as a
// new (or extended) edge. Newly discovered edges ending at pos are
// appended to the same work list so they are explored in turn.
// Grounded directly on GLRParser/parser.py's parse() main loop.
func (p *parser) reductionClosure(pos int) {
	rlist := append([]EdgeKey{}, p.actEdges[pos]...)
	for i := 0; i < len(rlist); i++ {
		work := rlist[i]
		for _, it := range p.dfa.Reduce[work.EndState] {
			r := p.store.Rule(it.Rule)
			tailState, tailChildren, ok := p.tailWalk(pos, work.EndState, r.Left, it.Dot)
			if !ok {
				continue
			}
			frames := []backFrame{{pos: work.StartPos, state: work.StartState}}
			for k := it.Dot - 2; k >= 0; k-- {
				sym := r.Left[k].Name
				var next []backFrame
				for _, fr := range frames {
					origins, found := p.chart.Nodes[NodeKey{Pos: fr.pos, State: fr.state, Symbol: sym}]
					if !found {
						continue
					}
					for o := range origins {
						childEdge := EdgeKey{StartPos: o.Pos, StartState: o.State, Symbol: sym, EndPos: fr.pos, EndState: fr.state}
						nc := append(append([]EdgeKey{}, fr.childrenRev...), childEdge)
						next = append(next, backFrame{pos: o.Pos, state: o.State, childrenRev: nc})
					}
				}
				frames = next
				if len(frames) == 0 {
					break
				}
			}
			_ = tailState
			for _, fr := range frames {
				nstate, ok := p.dfa.Goto(fr.state, r.Head)
				if !ok {
					continue
				}
				ptree := make([]EdgeKey, 0, len(fr.childrenRev)+1+len(tailChildren))
				for j := len(fr.childrenRev) - 1; j >= 0; j-- {
					ptree = append(ptree, fr.childrenRev[j])
				}
				ptree = append(ptree, work)
				ptree = append(ptree, tailChildren...)

				newEdge := EdgeKey{StartPos: fr.pos, StartState: fr.state, Symbol: r.Head, EndPos: pos, EndState: nstate}
				p.chart.addNodeArc(NodeKey{Pos: pos, State: nstate, Symbol: r.Head}, Origin{Pos: fr.pos, State: fr.state})
				isNew := p.chart.addEdgeAlt(newEdge, Alternative{RuleID: it.Rule, Children: ptree})
				p.markActive(pos, nstate)
				if isNew {
					rlist = append(rlist, newEdge)
				}
				p.emptyReductionsFrom(pos, nstate)
			}
		}
	}
	p.actEdges[pos] = rlist
}

// shift implements step 3a: a literal single-token shift out of every
// active state.
func (p *parser) shift(pos int, token string) {
	if pos+1 >= p.inlen {
		return
	}
	for state := range p.actStates[pos] {
		nstate, ok := p.dfa.Goto(state, token)
		if !ok {
			continue
		}
		p.chart.addNodeArc(NodeKey{Pos: pos + 1, State: nstate, Symbol: token}, Origin{Pos: pos, State: state})
		p.markActive(pos+1, nstate)
	}
}

// phraseShift implements step 3b: a multi-token lexical phrase from the
// trie consumed in one step, seeding the edge with the matched Rule
// itself as the alternative's discriminator (GLRParser/parser.py stores
// the Rule object, not a ruleno, for trie-sourced hits).
func (p *parser) phraseShift(pos int) {
	matches := p.store.PhraseMatches(p.chart.Tokens, pos)
	for _, m := range matches {
		if pos+m.Length >= p.inlen {
			continue
		}
		for _, r := range m.Rules {
			for state := range p.actStates[pos] {
				nstate, ok := p.dfa.Goto(state, r.Head)
				if !ok {
					continue
				}
				children := make([]EdgeKey, m.Length)
				for i := 0; i < m.Length; i++ {
					children[i] = EdgeKey{StartPos: pos + i, StartState: -1, Symbol: p.chart.Tokens[pos+i], EndPos: pos + i + 1, EndState: -1}
				}
				newEdge := EdgeKey{StartPos: pos, StartState: state, Symbol: r.Head, EndPos: pos + m.Length, EndState: nstate}
				p.chart.addNodeArc(NodeKey{Pos: pos + m.Length, State: nstate, Symbol: r.Head}, Origin{Pos: pos, State: state})
				isNew := p.chart.addEdgeAlt(newEdge, Alternative{PhraseRule: r, Children: children})
				p.markActive(pos+m.Length, nstate)
				if isNew {
					p.actEdges[pos+m.Length] = append(p.actEdges[pos+m.Length], newEdge)
				}
			}
		}
	}
}
