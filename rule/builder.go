package rule

// Builder assembles a Store from programmatically constructed rules. It
// stands in for the grammar-text reader (macros, `%`-directives, and
// feature-regex syntax are a different, out-of-scope concern): callers
// that already have decoded Rule values — or that want to build a
// demo/test grammar without writing a text-form grammar — use this
// fluent, gorgo-NewGrammarBuilder-style API instead.
type Builder struct {
	start string
	rules []*Rule
	trie  *Trie
}

// NewBuilder creates a Builder whose augmented start rule will be
// S' -> start.
func NewBuilder(start string) *Builder {
	return &Builder{start: start, trie: NewTrie()}
}

// RuleOption configures a Rule as it is added to a Builder.
type RuleOption func(*Rule)

// WithFeat attaches a rule-level feature map.
func WithFeat(f FeatureMap) RuleOption { return func(r *Rule) { r.Feat = f } }

// WithChecklist attaches a checklist.
func WithChecklist(c Checklist) RuleOption { return func(r *Rule) { r.Checklist = c } }

// WithCost sets the rule's base cost.
func WithCost(cost int) RuleOption { return func(r *Rule) { r.Cost = cost } }

// WithCut marks the rule as committing (cut) once it succeeds.
func WithCut() RuleOption { return func(r *Rule) { r.Cut = true } }

// AddRule appends a rule with head, left side (plain symbol names,
// unparameterized) and right side, applying opts. A rule whose left side
// is non-empty and wholly terminal is also registered in the phrase trie
// under its left-hand sequence, so that it is reachable via a phrase
// shift; other rules are not added to the trie.
func (b *Builder) AddRule(head string, left []string, right []RightSymbol, opts ...RuleOption) *Builder {
	ls := make([]LeftSymbol, len(left))
	for i, n := range left {
		ls[i] = LeftSymbol{Name: n}
	}
	r := &Rule{Head: head, Left: ls, Right: right}
	for _, opt := range opts {
		opt(r)
	}
	b.rules = append(b.rules, r)
	allTerminal := true
	for _, l := range ls {
		if IsNonterminal(l.Name) {
			allTerminal = false
			break
		}
	}
	if allTerminal && len(ls) > 0 {
		b.trie.Add(left, r)
	}
	return b
}

// AddParamRule is like AddRule but allows attaching per-position FParams
// to the left side (needed for upward-unification filtering).
func (b *Builder) AddParamRule(head string, left []LeftSymbol, right []RightSymbol, opts ...RuleOption) *Builder {
	r := &Rule{Head: head, Left: left, Right: right}
	for _, opt := range opts {
		opt(r)
	}
	b.rules = append(b.rules, r)
	return b
}

// Build freezes the accumulated rules into a Store, prepending the
// augmented start rule S' -> start at serial 0.
func (b *Builder) Build() (*Store, error) {
	all := make([]*Rule, 0, len(b.rules)+1)
	all = append(all, StartRule(b.start))
	all = append(all, b.rules...)
	for i, r := range all {
		r.Serial = i
	}
	return NewStore(all, b.trie)
}
