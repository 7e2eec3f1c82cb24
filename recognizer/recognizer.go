package recognizer

import (
	"context"

	"github.com/tomitaglr/glrnlp/automaton"
	"github.com/tomitaglr/glrnlp/rule"
)

// Option configures a Parse call, mirroring gorgo's lr/earley.Option
// functional-options shape (`type Option func(*Parser)`).
type Option func(*config)

type config struct{}

// parser holds the mutable state of one recognizer run. Grounded
// directly on GLRParser/parser.py's parse(): nodes/edges are the
// position-keyed tables from spec.md §3; actStates/actEdges are the
// per-position active-state and work-edge sets the four-step algorithm
// (spec.md §4.3) iterates over.
type parser struct {
	store  *rule.Store
	dfa    *automaton.DFA
	chart  *Chart
	start  string
	inlen  int
	fstate int

	actStates []map[int]struct{}
	actEdges  [][]EdgeKey
	epsDone   []map[int]bool // per-position memo: epsilon reductions already expanded for a state
}

// Parse runs the GLR recognizer over tokens, returning the populated
// chart on success. ctx is checked once per input position (the only
// cooperative cancellation point named in spec.md §5 — "the recognizer
// does not check deadlines" internally, so inner loops stay untouched).
func Parse(ctx context.Context, store *rule.Store, dfa *automaton.DFA, tokens []string, opts ...Option) (*Chart, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	start := store.Rule(0).Left[0].Name
	all := make([]string, len(tokens)+1)
	copy(all, tokens)
	all[len(tokens)] = EndOfInput

	chart := newChart(all, store)
	fstate, ok := dfa.Goto(dfa.Start, start)
	if !ok {
		return nil, &GrammarIncompleteError{Symbol: start}
	}

	p := &parser{
		store:  store,
		dfa:    dfa,
		chart:  chart,
		start:  start,
		inlen:  len(all),
		fstate: fstate,
	}
	p.actStates = make([]map[int]struct{}, p.inlen)
	p.actEdges = make([][]EdgeKey, p.inlen)
	p.epsDone = make([]map[int]bool, p.inlen)
	for i := range p.actStates {
		p.actStates[i] = map[int]struct{}{}
		p.epsDone[i] = map[int]bool{}
	}
	p.actStates[0][dfa.Start] = struct{}{}

	for pos := 0; pos < p.inlen; pos++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.reductionClosure(pos)
		p.emptyReductions(pos)

		token := all[pos]
		if token == EndOfInput {
			if _, ok := p.actStates[pos][fstate]; ok {
				chart.TopEdge = EdgeKey{StartPos: 0, StartState: dfa.Start, Symbol: start, EndPos: pos, EndState: fstate}
				return chart, nil
			}
			return nil, p.failure(all)
		}
		p.shift(pos, token)
		p.phraseShift(pos)
	}
	return nil, p.failure(all)
}

func (p *parser) markActive(pos, state int) {
	p.actStates[pos][state] = struct{}{}
}

func (p *parser) failure(tokens []string) *ParseError {
	pos := p.inlen - 1
	for pos > 0 && len(p.actStates[pos]) == 0 {
		pos--
	}
	return &ParseError{
		Position:  pos,
		Consumed:  append([]string{}, tokens[:pos]...),
		Remaining: append([]string{}, tokens[pos:]...),
	}
}

// GrammarIncompleteError is raised when the DFA has no transition for
// the start symbol out of the initial state — an internal-consistency
// failure of the compiled grammar, distinct from a per-input ParseError.
type GrammarIncompleteError struct {
	Symbol string
}

func (e *GrammarIncompleteError) Error() string {
	return "grammar has no derivation reachable for start symbol " + e.Symbol
}
