package automaton

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	godsutils "github.com/emirpasic/gods/utils"

	"github.com/tomitaglr/glrnlp/rule"
)

// State is one node of the characteristic finite-state machine (CFSM):
// an item set plus a stable, discovery-order ID. Grounded on gorgo's
// lr/tables.go CFSMState.
type State struct {
	ID     int
	Items  ItemSet
	Accept bool
}

// stateComparator orders states by ID, mirroring lr/tables.go's
// stateComparator used to key a treeset.Set of *CFSMState.
func stateComparator(a, b interface{}) int {
	return godsutils.IntComparator(a.(*State).ID, b.(*State).ID)
}

// Edge is one discovered (fromState, symbol) -> toState transition, kept
// in discovery order for diagnostics (ToGraphViz) and tests. The
// authoritative lookup table is Trans, a TransTable.
type Edge struct {
	From, To int
	Symbol   string
}

// DFA is the compiled characteristic finite-state machine plus the
// reduction tables the recognizer consumes. It implements spec
// component C2 in full: nullable set, item-set DFA, reduce / ereduce
// tables (spec.md §4.2).
//
// Transitions are stored in a TransTable, row-indexed by state ID and
// column-indexed by an interned symbol index (symIndex/symTab),
// mirroring gorgo's lr/tables.go Table type, which backs its GOTO table
// the same way. TransTable is a coordinate-list sparse matrix: it never
// validates (i,j) against a declared size, so columns can be interned
// lazily as new symbols are discovered during subset construction
// without knowing the final alphabet size up front.
type DFA struct {
	Store    *rule.Store
	Null     Nullable
	States   []*State
	byItems  map[string]*State
	Trans    *TransTable
	symIndex map[string]int // symbol -> column
	symTab   []string       // column -> symbol
	edges    []Edge         // discovery order, for diagnostics
	Reduce   map[int][]Item // state -> items reducible with dot > 0
	EReduce  map[int][]Item // state -> items reducible with dot == 0 (empty reductions)
	Start    int
}

const noTransition int32 = DefaultNullValue

// internSymbol returns sym's column index in Trans, assigning the next
// free column the first time sym is seen.
func (d *DFA) internSymbol(sym string) int {
	if idx, ok := d.symIndex[sym]; ok {
		return idx
	}
	idx := len(d.symTab)
	d.symIndex[sym] = idx
	d.symTab = append(d.symTab, sym)
	return idx
}

// symbolsOf returns the sorted, de-duplicated set of symbols that
// appear immediately after a dot across an item set, matching spec.md
// §4.2's determinism requirement ("symbols sorted by string").
func (d *DFA) symbolsOf(items ItemSet) []string {
	seen := map[string]bool{}
	for it := range items {
		sym := it.PeekSymbol(d.Store)
		if sym != "" {
			seen[sym] = true
		}
	}
	syms := make([]string, 0, len(seen))
	for s := range seen {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

// closure computes the item-set closure: for every item with the dot
// before nonterminal A, add (r,0) for every rule whose head is A.
// Grounded directly on GLRParser/parser.py's closure(self, stateset),
// which expands a FIFO worklist via self.ruledict.get(symbol, set()).
func (d *DFA) closure(items ItemSet) ItemSet {
	out := NewItemSet()
	out.Union(items)
	todo := items.Sorted()
	for len(todo) > 0 {
		it := todo[0]
		todo = todo[1:]
		sym := it.PeekSymbol(d.Store)
		if sym == "" || rule.IsTerminal(sym) {
			continue
		}
		for _, rid := range d.Store.RulesFor(sym) {
			ni := Item{Rule: rid, Dot: 0}
			if out.Add(ni) {
				todo = append(todo, ni)
			}
		}
	}
	return out
}

func (d *DFA) gotoSet(items ItemSet, sym string) ItemSet {
	moved := NewItemSet()
	for it := range items {
		if it.PeekSymbol(d.Store) == sym {
			moved.Add(it.Advance())
		}
	}
	return d.closure(moved)
}

// containsCompletedStart reports whether items contains the augmented
// start rule fully reduced (dot at the end of rule 0's left side).
func (d *DFA) containsCompletedStart(items ItemSet) bool {
	startLen := len(d.Store.Rule(0).Left)
	for it := range items {
		if it.Rule == 0 && it.Dot == startLen {
			return true
		}
	}
	return false
}

// Build runs subset construction over store, producing the CFSM and the
// reduce / empty-reduce tables. Grounded on gorgo's lr/tables.go
// buildCFSM (worklist over a treeset.Set, addState dedup via signature,
// addEdge appended to an arraylist.List) fused with GLRParser/parser.py
// compile()'s reduce/ereduce classification (for each (state,item) pair
// whose remaining tail is all-nullable: ereduce if dot==0, else reduce).
func Build(store *rule.Store) (*DFA, error) {
	d := &DFA{
		Store:    store,
		Null:     ComputeNullable(store),
		byItems:  map[string]*State{},
		Trans:    NewTransTable(noTransition),
		symIndex: map[string]int{},
		Reduce:   map[int][]Item{},
		EReduce:  map[int][]Item{},
	}

	s0Items := d.closure(NewItemSet(Item{Rule: 0, Dot: 0}))
	s0 := d.addState(s0Items)
	d.Start = s0.ID

	work := treeset.NewWith(stateComparator)
	work.Add(s0)
	edges := arraylist.New()

	for !work.Empty() {
		it := work.Values()[0]
		work.Remove(it)
		cur := it.(*State)
		for _, sym := range d.symbolsOf(cur.Items) {
			succItems := d.gotoSet(cur.Items, sym)
			if len(succItems) == 0 {
				continue
			}
			succ, isNew := d.findOrAddState(succItems)
			e := Edge{From: cur.ID, To: succ.ID, Symbol: sym}
			d.Trans.Set(cur.ID, d.internSymbol(sym), int32(succ.ID))
			d.edges = append(d.edges, e)
			edges.Add(e)
			if isNew {
				work.Add(succ)
			}
		}
	}

	for _, st := range d.States {
		for it := range st.Items {
			r := store.Rule(it.Rule)
			if d.Null.TailNullable(r.Left, it.Dot) {
				if it.Dot == 0 {
					d.EReduce[st.ID] = append(d.EReduce[st.ID], it)
				} else {
					d.Reduce[st.ID] = append(d.Reduce[st.ID], it)
				}
			}
		}
		if d.containsCompletedStart(st.Items) {
			st.Accept = true
		}
	}
	return d, nil
}

func (d *DFA) addState(items ItemSet) *State {
	st, _ := d.findOrAddState(items)
	return st
}

func (d *DFA) findOrAddState(items ItemSet) (*State, bool) {
	sig := items.Signature()
	if st, ok := d.byItems[sig]; ok {
		return st, false
	}
	st := &State{ID: len(d.States), Items: items}
	d.byItems[sig] = st
	d.States = append(d.States, st)
	return st, true
}

// Goto returns the successor state for (state, symbol), and whether a
// transition is defined (invariant P2: at most one value per pair).
func (d *DFA) Goto(state int, symbol string) (int, bool) {
	col, ok := d.symIndex[symbol]
	if !ok {
		return 0, false
	}
	to := d.Trans.Value(state, col)
	if to == d.Trans.NullValue() {
		return 0, false
	}
	return int(to), true
}

// Transitions returns every discovered (fromState, symbol) -> toState
// edge, in discovery order, for diagnostics and tests.
func (d *DFA) Transitions() []Edge {
	return d.edges
}

func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states=%d, transitions=%d}", len(d.States), len(d.edges))
}
