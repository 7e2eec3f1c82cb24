package enumerate

import (
	"sort"
	"strings"

	"github.com/tomitaglr/glrnlp/translate"
)

// Result is one flattened, cost-ranked translation candidate.
type Result struct {
	Text string
	Cost int
}

// Option configures Enumerate, mirroring gorgo's lr/earley.Option
// functional-options shape.
type Option func(*config)

type config struct {
	levelPenalty int
	post         PostProcessor
}

// WithLevelPenalty overrides the default +1-per-tree-level cost
// penalty (spec.md §9's Open Question, pinned but made configurable;
// grounded on GLRParser/tree.py's enumx using a fixed per-level bump).
func WithLevelPenalty(n int) Option { return func(c *config) { c.levelPenalty = n } }

// WithPostProcessor sets the post-processor applied to every flattened
// candidate before it is returned. Defaults to Identity.
func WithPostProcessor(p PostProcessor) Option { return func(c *config) { c.post = p } }

// Iterator is an explicit, stateful cursor over cost-ascending-sorted
// translation candidates — Go has no generator/yield construct, so the
// full candidate list is computed once up front (spec.md §4.7 requires
// the final order to be cost-ascending-sorted regardless) and Next
// walks it one element at a time, letting a caller stop early without
// forcing further work beyond what already ran.
type Iterator struct {
	results []Result
	pos     int
}

// HasNext reports whether another candidate remains.
func (it *Iterator) HasNext() bool { return it.pos < len(it.results) }

// Next returns the next candidate in cost-ascending order, and whether
// one was available.
func (it *Iterator) Next() (Result, bool) {
	if !it.HasNext() {
		return Result{}, false
	}
	r := it.results[it.pos]
	it.pos++
	return r, true
}

// Len reports the total number of candidates.
func (it *Iterator) Len() int { return len(it.results) }

// Enumerate flattens tt's every alternative combination into (string,
// cost) pairs, applies opts' post-processor to each, and returns an
// Iterator over the survivors sorted ascending by cost. Candidates the
// post-processor rejects are dropped rather than aborting the whole
// enumeration; if every candidate is rejected, the Iterator is empty and
// no error is reported. All candidates are computed and sorted before
// Enumerate returns.
func Enumerate(tt *translate.TTree, opts ...Option) *Iterator {
	cfg := &config{levelPenalty: 1, post: Identity}
	for _, opt := range opts {
		opt(cfg)
	}

	raw := walk(tt, cfg.levelPenalty)
	results := make([]Result, 0, len(raw))
	for _, c := range raw {
		text, err := cfg.post.Apply(c.text)
		if err != nil {
			continue
		}
		results = append(results, Result{Text: text, Cost: c.cost})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Cost < results[j].Cost })
	return &Iterator{results: results}
}

type combo struct {
	text string
	cost int
}

// walk enumerates every combination rooted at tt, the "enum" half of
// GLRParser/tree.py's enum/enumx: each alternative in tt.Alts
// contributes its own cartesian product of elements, and every
// nonterminal descent adds levelPenalty once (spec.md §4.7: "plus 1 per
// tree level").
func walk(tt *translate.TTree, levelPenalty int) []combo {
	if tt == nil {
		return nil
	}
	var out []combo
	for _, alt := range tt.Alts {
		elemCombos := []combo{{text: "", cost: alt.Cost}}
		for _, e := range alt.Elems {
			var options []combo
			if e.Terminal {
				options = []combo{{text: e.Text, cost: 0}}
			} else {
				for _, sub := range walk(e.Node, levelPenalty) {
					options = append(options, combo{text: sub.text, cost: sub.cost + levelPenalty})
				}
			}
			elemCombos = cartesian(elemCombos, options)
		}
		out = append(out, elemCombos...)
	}
	return out
}

func cartesian(left []combo, right []combo) []combo {
	if len(right) == 0 {
		return nil
	}
	out := make([]combo, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			var b strings.Builder
			b.WriteString(l.text)
			b.WriteString(r.text)
			out = append(out, combo{text: b.String(), cost: l.cost + r.cost})
		}
	}
	return out
}
