package grammar

// Grammar is an immutable context-free grammar: a start symbol and an
// ordered list of productions. Productions is iterated in insertion
// order everywhere in this package (FIRST-set computation, canonical
// collection construction) so that table construction is
// deterministic given the same input, per the ordering requirement on
// FIRST-set computation.
type Grammar struct {
	Start       Symbol
	Productions []Production

	terminals    map[string]bool
	nonTerminals map[string]bool
	prodIndex    map[string]int
}

// New builds a Grammar from a start symbol name and a list of
// productions given as (lhs name, rhs names...) pairs via prods.
// Symbol kind is inferred with the two-pass rule: a name is a
// non-terminal iff it appears as some production's LHS, and a
// terminal otherwise. nonTerminalHints, if non-nil, additionally names
// symbols the caller intends to be non-terminals; any hinted name that
// never appears as an LHS is reported as a GrammarError instead of
// being silently downgraded to a terminal.
func New(startName string, prods []RawProduction, nonTerminalHints []string) (*Grammar, error) {
	lhsNames := make(map[string]bool, len(prods))
	for _, rp := range prods {
		lhsNames[rp.LHS] = true
	}
	lhsNames[startName] = true

	classify := func(name string) Symbol {
		if lhsNames[name] {
			return NonTerminal(name)
		}
		return Terminal(name)
	}

	g := &Grammar{
		Start:        NonTerminal(startName),
		terminals:    map[string]bool{},
		nonTerminals: map[string]bool{},
	}
	g.nonTerminals[startName] = true

	for _, rp := range prods {
		lhs := NonTerminal(rp.LHS)
		g.nonTerminals[rp.LHS] = true
		rhs := make([]Symbol, 0, len(rp.RHS))
		for _, name := range rp.RHS {
			sym := classify(name)
			rhs = append(rhs, sym)
			if sym.IsNonTerminal() {
				g.nonTerminals[name] = true
			} else {
				g.terminals[name] = true
			}
		}
		g.Productions = append(g.Productions, NewProduction(lhs, rhs))
	}

	for _, hint := range nonTerminalHints {
		if !lhsNames[hint] {
			return nil, newGrammarError("%q looks like a non-terminal but is never defined as the left-hand side of a production", hint)
		}
	}

	g.prodIndex = map[string]int{}
	for i, p := range g.Productions {
		k := p.key()
		if _, ok := g.prodIndex[k]; !ok {
			g.prodIndex[k] = i
		}
	}

	return g, nil
}

// IndexOf returns p's position in Productions: its own position for a
// production with no earlier structural duplicate, or the position of
// the first structurally-equal production otherwise, so that
// duplicate alternatives share one index for tie-break purposes.
func (g *Grammar) IndexOf(p Production) (int, bool) {
	i, ok := g.prodIndex[p.key()]
	return i, ok
}

// RawProduction is the plain-data form New accepts: an LHS name and a
// sequence of RHS symbol names. A nil or empty RHS means an ε
// production.
type RawProduction struct {
	LHS string
	RHS []string
}

// Terminals returns the set of terminal names used anywhere in the
// grammar's productions.
func (g *Grammar) Terminals() []string {
	names := make([]string, 0, len(g.terminals))
	for n := range g.terminals {
		names = append(names, n)
	}
	return names
}

// NonTerminals returns the set of non-terminal names defined by the
// grammar, including the start symbol.
func (g *Grammar) NonTerminals() []string {
	names := make([]string, 0, len(g.nonTerminals))
	for n := range g.nonTerminals {
		names = append(names, n)
	}
	return names
}

// ProductionsFor returns, in insertion order, every production whose
// LHS equals lhs.
func (g *Grammar) ProductionsFor(lhs Symbol) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.LHS == lhs {
			out = append(out, p)
		}
	}
	return out
}
