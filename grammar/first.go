package grammar

// FirstSets maps every symbol that appears in a grammar to its FIRST
// set: the set of terminals (plus possibly Epsilon) that can begin a
// string derived from that symbol.
type FirstSets map[Symbol]map[Symbol]bool

// Contains reports whether sym's FIRST set contains member.
func (f FirstSets) Contains(sym, member Symbol) bool {
	set, ok := f[sym]
	if !ok {
		return false
	}
	return set[member]
}

// First computes the FIRST sets of every terminal and non-terminal in
// g by fixpoint iteration, grounded on the standard algorithm (every
// terminal's FIRST set is itself; a production's RHS contributes the
// FIRST set of its leading symbols up to and including the first one
// that cannot derive ε, adding ε to LHS's FIRST set only if the whole
// RHS can derive ε). Iteration walks g.Productions in order so the
// result is identical across repeated calls on the same grammar.
func (g *Grammar) First() FirstSets {
	first := FirstSets{}

	for name := range g.terminals {
		t := Terminal(name)
		first[t] = map[Symbol]bool{t: true}
	}
	for name := range g.nonTerminals {
		first[NonTerminal(name)] = map[Symbol]bool{}
	}

	changed := true
	for changed {
		changed = false

		for _, p := range g.Productions {
			lhsSet := first[p.LHS]

			canDeriveEpsilon := true
			for _, sym := range p.RHS {
				if sym.IsEpsilon() {
					continue
				}
				if !canDeriveEpsilon {
					break
				}

				for member := range first[sym] {
					if member.IsEpsilon() {
						continue
					}
					if !lhsSet[member] {
						lhsSet[member] = true
						changed = true
					}
				}

				canDeriveEpsilon = first[sym][Epsilon]
			}

			if canDeriveEpsilon && !lhsSet[Epsilon] {
				lhsSet[Epsilon] = true
				changed = true
			}
		}
	}

	return first
}

// FirstOfSequence computes FIRST(syms·lookahead): the FIRST set of
// the symbol sequence syms followed by the sentinel lookahead symbol,
// used when computing the lookahead set to propagate into an LR(1)
// item's closure. It never includes Epsilon unless every symbol of
// syms can derive ε (or syms is empty) and lookahead is Epsilon itself.
func (first FirstSets) FirstOfSequence(syms []Symbol, lookahead Symbol) map[Symbol]bool {
	result := map[Symbol]bool{}

	allDeriveEpsilon := true
	for _, sym := range syms {
		if sym.IsEpsilon() {
			continue
		}
		for member := range first[sym] {
			if !member.IsEpsilon() {
				result[member] = true
			}
		}
		if !first[sym][Epsilon] {
			allDeriveEpsilon = false
			break
		}
	}

	if allDeriveEpsilon {
		result[lookahead] = true
	}

	return result
}
