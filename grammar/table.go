package grammar

import "fmt"

// FakeStart is the sentinel augmented-start non-terminal name the
// table builder reserves for itself. A user grammar must not define a
// non-terminal with this name.
const FakeStart = "S'"

// ActionType distinguishes the four ACTION-table entry kinds.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION-table entry.
type Action struct {
	Type       ActionType
	NextState  int        // valid when Type == ActionShift
	Production Production // valid when Type == ActionReduce
}

// ConflictKind distinguishes the two kinds of LR(1) table conflict.
type ConflictKind int

const (
	ShiftReduceConflict ConflictKind = iota
	ReduceReduceConflict
)

func (k ConflictKind) String() string {
	if k == ShiftReduceConflict {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// Conflict records a table-build-time ACTION collision: two actions
// both wanted the same (state, lookahead) cell. Winner/Loser describe
// which action was kept, per the tie-break policy documented on
// NewTable.
type Conflict struct {
	Kind      ConflictKind
	State     int
	Lookahead Symbol
	Winner    Action
	Loser     Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict in state %d on %s", c.Kind, c.State, c.Lookahead)
}

// Report collects every conflict found while building a Table. An
// empty Report means the grammar is LR(1) under this construction.
type Report struct {
	Conflicts []Conflict
}

func (r *Report) add(c Conflict) {
	r.Conflicts = append(r.Conflicts, c)
}

// HasConflicts reports whether any conflict was recorded.
func (r *Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// State is one node of the canonical LR(1) collection: its item set
// and its index (also its row number in ACTION/GOTO).
type State struct {
	Items *ItemSet
	Index int
}

// Table is the compiled ACTION/GOTO table plus the canonical
// collection and grammar it was built from.
type Table struct {
	Grammar    *Grammar
	States     []*State
	actions    map[tableKey]Action
	gotos      map[tableKey]int
	StartState int
}

type tableKey struct {
	state int
	sym   Symbol
}

// Action returns the ACTION-table entry for (state, sym), or the zero
// Action (Type == ActionError) if none is defined.
func (t *Table) Action(state int, sym Symbol) (Action, bool) {
	a, ok := t.actions[tableKey{state, sym}]
	return a, ok
}

// Goto returns the GOTO-table entry for (state, sym). GOTO is defined
// over every symbol that follows a dot somewhere in state, terminals
// included, so a shift action's target always agrees with the GOTO
// entry for the same cell; Parse itself only ever queries it with a
// non-terminal.
func (t *Table) Goto(state int, sym Symbol) (int, bool) {
	s, ok := t.gotos[tableKey{state, sym}]
	return s, ok
}

// NewTable builds the canonical LR(1) ACTION/GOTO table for g. The
// augmented grammar S' -> S seeds state 0, and states grow by
// repeatedly computing GOTO over every symbol that appears after a
// dot in the current state, deduplicating new item sets against ones
// already discovered by content (not by pointer).
//
// Conflicts are detected and collected into the returned Report
// rather than silently overwritten, but the table itself still
// resolves them so that a conflicted grammar compiles to a usable
// table: a shift always wins over a conflicting reduce, and between
// two reduces the one whose production has the lower index in
// g.Productions wins. The losing reduce's index is looked up via
// Grammar.IndexOf, not inferred from the order ItemSet.Items()
// happens to visit productions in, since that order sorts by LHS
// name and dot/lookahead shape and does not track production index.
func NewTable(g *Grammar) (*Table, *Report, error) {
	if g.nonTerminals[FakeStart] {
		return nil, nil, newGrammarError("grammar must not use the reserved start symbol %q", FakeStart)
	}

	first := g.First()
	report := &Report{}

	augmentedStart := NonTerminal(FakeStart)
	seedProd := NewProduction(augmentedStart, []Symbol{g.Start})
	seed := Item{Production: seedProd, DotPosition: 0, Lookahead: EndMarker}

	initial := Closure([]Item{seed}, g, first)

	var states []*State
	fingerprints := map[string]int{}

	addState := func(set *ItemSet) (int, bool) {
		fp := set.Fingerprint()
		if idx, ok := fingerprints[fp]; ok {
			return idx, false
		}
		idx := len(states)
		states = append(states, &State{Items: set, Index: idx})
		fingerprints[fp] = idx
		return idx, true
	}

	addState(initial)

	gotos := map[tableKey]int{}

	for i := 0; i < len(states); i++ {
		state := states[i]

		nextSymbols := map[Symbol]bool{}
		for _, it := range state.Items.Items() {
			if sym, ok := it.NextSymbol(); ok {
				nextSymbols[sym] = true
			}
		}

		syms := make([]Symbol, 0, len(nextSymbols))
		for sym := range nextSymbols {
			syms = append(syms, sym)
		}
		sortSymbols(syms)

		for _, sym := range syms {
			gotoSeed := NewItemSet()
			for _, it := range state.Items.Items() {
				next, ok := it.NextSymbol()
				if !ok || next != sym {
					continue
				}
				advanced := it.Advanced()
				for _, ci := range Closure([]Item{advanced}, g, first).Items() {
					gotoSeed.Add(ci)
				}
			}
			if gotoSeed.Len() == 0 {
				continue
			}

			targetIdx, _ := addState(gotoSeed)
			gotos[tableKey{i, sym}] = targetIdx
		}
	}

	t := &Table{
		Grammar:    g,
		States:     states,
		actions:    map[tableKey]Action{},
		gotos:      gotos,
		StartState: 0,
	}

	for _, state := range states {
		for _, it := range state.Items.Items() {
			if sym, ok := it.NextSymbol(); ok {
				if !sym.IsTerminalLike() {
					continue
				}
				nextState, ok := gotos[tableKey{state.Index, sym}]
				if !ok {
					continue
				}
				t.writeShift(report, state.Index, sym, nextState)
				continue
			}

			if it.Production.LHS == augmentedStart && it.Lookahead == EndMarker {
				t.actions[tableKey{state.Index, EndMarker}] = Action{Type: ActionAccept}
				continue
			}

			t.writeReduce(report, state.Index, it.Lookahead, it.Production)
		}
	}

	return t, report, nil
}

func (t *Table) writeShift(report *Report, state int, sym Symbol, nextState int) {
	k := tableKey{state, sym}
	shiftAction := Action{Type: ActionShift, NextState: nextState}

	existing, ok := t.actions[k]
	if ok && existing.Type == ActionReduce {
		report.add(Conflict{
			Kind:      ShiftReduceConflict,
			State:     state,
			Lookahead: sym,
			Winner:    shiftAction,
			Loser:     existing,
		})
	}
	t.actions[k] = shiftAction
}

func (t *Table) writeReduce(report *Report, state int, sym Symbol, prod Production) {
	k := tableKey{state, sym}
	reduceAction := Action{Type: ActionReduce, Production: prod}

	existing, ok := t.actions[k]
	if !ok {
		t.actions[k] = reduceAction
		return
	}

	switch existing.Type {
	case ActionShift:
		report.add(Conflict{
			Kind:      ShiftReduceConflict,
			State:     state,
			Lookahead: sym,
			Winner:    existing,
			Loser:     reduceAction,
		})
		// shift already present, and shift always wins: leave it.
	case ActionReduce:
		if existing.Production.Equal(prod) {
			return
		}

		existingIdx, _ := t.Grammar.IndexOf(existing.Production)
		newIdx, _ := t.Grammar.IndexOf(prod)
		if newIdx < existingIdx {
			report.add(Conflict{
				Kind:      ReduceReduceConflict,
				State:     state,
				Lookahead: sym,
				Winner:    reduceAction,
				Loser:     existing,
			})
			t.actions[k] = reduceAction
			return
		}

		report.add(Conflict{
			Kind:      ReduceReduceConflict,
			State:     state,
			Lookahead: sym,
			Winner:    existing,
			Loser:     reduceAction,
		})
		// existing already has the lower (or equal) production index: leave it.
	case ActionAccept:
		// Accept is only ever written for (state, EndMarker) from the
		// augmented item and nothing else competes for that cell.
	}
}

// SymbolDump is the plain-data form of a Symbol, for callers (outside
// this package) that need to serialize a Table, such as the cache
// package's rezi-encoded blob.
type SymbolDump struct {
	Kind SymbolKind
	Name string
}

func dumpSymbol(s Symbol) SymbolDump { return SymbolDump{Kind: s.kind, Name: s.name} }
func loadSymbol(d SymbolDump) Symbol { return Symbol{kind: d.Kind, name: d.Name} }

// ItemDump is the plain-data form of an Item, referencing its
// production by index into the owning Grammar's Productions slice
// rather than embedding the Production itself. ProdIndex == -1 refers
// to the augmented start production S' -> S, which lives only in the
// builder and has no position in Productions.
type ItemDump struct {
	ProdIndex   int
	DotPosition int
	Lookahead   SymbolDump
}

// ActionDump is the plain-data form of one ACTION-table entry.
type ActionDump struct {
	State     int
	Sym       SymbolDump
	Type      ActionType
	NextState int
	ProdIndex int
}

// GotoDump is the plain-data form of one GOTO-table entry.
type GotoDump struct {
	State int
	Sym   SymbolDump
	Next  int
}

// TableDump is the fully flattened, exported-fields-only form of a
// Table, suitable for encoding with a reflection-based serializer.
// Dump and LoadTable are inverses: LoadTable(t.Dump()) reconstructs a
// Table equivalent to t without repeating the canonical-collection
// construction.
type TableDump struct {
	StartName   string
	Productions []RawProduction
	States      [][]ItemDump
	StartState  int
	Actions     []ActionDump
	Gotos       []GotoDump
}

// Dump flattens t into a TableDump.
func (t *Table) Dump() TableDump {
	rawProds := make([]RawProduction, len(t.Grammar.Productions))
	for i, p := range t.Grammar.Productions {
		rhsNames := make([]string, len(p.RHS))
		for j, s := range p.RHS {
			rhsNames[j] = s.Name()
		}
		rawProds[i] = RawProduction{LHS: p.LHS.Name(), RHS: rhsNames}
	}

	states := make([][]ItemDump, len(t.States))
	for i, st := range t.States {
		items := st.Items.Items()
		dumped := make([]ItemDump, len(items))
		for j, it := range items {
			idx, ok := t.Grammar.IndexOf(it.Production)
			if !ok {
				idx = -1
			}
			dumped[j] = ItemDump{
				ProdIndex:   idx,
				DotPosition: it.DotPosition,
				Lookahead:   dumpSymbol(it.Lookahead),
			}
		}
		states[i] = dumped
	}

	var actions []ActionDump
	for k, a := range t.actions {
		d := ActionDump{State: k.state, Sym: dumpSymbol(k.sym), Type: a.Type, NextState: a.NextState}
		if a.Type == ActionReduce {
			idx, _ := t.Grammar.IndexOf(a.Production)
			d.ProdIndex = idx
		}
		actions = append(actions, d)
	}

	var gotos []GotoDump
	for k, next := range t.gotos {
		gotos = append(gotos, GotoDump{State: k.state, Sym: dumpSymbol(k.sym), Next: next})
	}

	return TableDump{
		StartName:   t.Grammar.Start.Name(),
		Productions: rawProds,
		States:      states,
		StartState:  t.StartState,
		Actions:     actions,
		Gotos:       gotos,
	}
}

// LoadTable reconstructs a Table from a TableDump previously produced
// by Dump, without rebuilding the canonical collection from scratch.
func LoadTable(d TableDump) (*Table, error) {
	g, err := New(d.StartName, d.Productions, nil)
	if err != nil {
		return nil, err
	}

	augmented := NewProduction(NonTerminal(FakeStart), []Symbol{g.Start})

	states := make([]*State, len(d.States))
	for i, itemDumps := range d.States {
		set := NewItemSet()
		for _, id := range itemDumps {
			prod := augmented
			if id.ProdIndex != -1 {
				if id.ProdIndex < 0 || id.ProdIndex >= len(g.Productions) {
					return nil, newGrammarError("cached table references production index %d out of range", id.ProdIndex)
				}
				prod = g.Productions[id.ProdIndex]
			}
			set.Add(Item{
				Production:  prod,
				DotPosition: id.DotPosition,
				Lookahead:   loadSymbol(id.Lookahead),
			})
		}
		states[i] = &State{Items: set, Index: i}
	}

	actions := make(map[tableKey]Action, len(d.Actions))
	for _, ad := range d.Actions {
		a := Action{Type: ad.Type, NextState: ad.NextState}
		if ad.Type == ActionReduce {
			if ad.ProdIndex < 0 || ad.ProdIndex >= len(g.Productions) {
				return nil, newGrammarError("cached table references production index %d out of range", ad.ProdIndex)
			}
			a.Production = g.Productions[ad.ProdIndex]
		}
		actions[tableKey{ad.State, loadSymbol(ad.Sym)}] = a
	}

	gotos := make(map[tableKey]int, len(d.Gotos))
	for _, gd := range d.Gotos {
		gotos[tableKey{gd.State, loadSymbol(gd.Sym)}] = gd.Next
	}

	return &Table{
		Grammar:    g,
		States:     states,
		actions:    actions,
		gotos:      gotos,
		StartState: d.StartState,
	}, nil
}

func sortSymbols(syms []Symbol) {
	for i := 1; i < len(syms); i++ {
		for j := i; j > 0 && less(syms[j], syms[j-1]); j-- {
			syms[j], syms[j-1] = syms[j-1], syms[j]
		}
	}
}

func less(a, b Symbol) bool {
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	return a.Name() < b.Name()
}
