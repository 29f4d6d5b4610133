package grammar

import "sort"

// Item is an LR(1) item: a production, a dot position marking how
// much of the RHS has been matched, and a lookahead symbol.
type Item struct {
	Production  Production
	DotPosition int
	Lookahead   Symbol
}

// AtEnd reports whether the dot has reached the end of the RHS, i.e.
// the item is reducible.
func (it Item) AtEnd() bool {
	return it.DotPosition >= len(it.Production.RHS)
}

// NextSymbol returns the symbol immediately after the dot and true,
// or the zero Symbol and false if the dot is at the end.
func (it Item) NextSymbol() (Symbol, bool) {
	if it.AtEnd() {
		return Symbol{}, false
	}
	return it.Production.RHS[it.DotPosition], true
}

// Advanced returns a copy of it with the dot moved one position to
// the right. Callers must only call this when !it.AtEnd().
func (it Item) Advanced() Item {
	return Item{Production: it.Production, DotPosition: it.DotPosition + 1, Lookahead: it.Lookahead}
}

// key returns a comparable stand-in for it, suitable as a map key.
// Production itself embeds a slice (RHS) and so cannot be used as, or
// inside, a map key type directly; Production.key() gives its
// content-derived comparable substitute.
func (it Item) key() itemKey {
	return itemKey{prod: it.Production.key(), dot: it.DotPosition, la: it.Lookahead}
}

type itemKey struct {
	prod string
	dot  int
	la   Symbol
}

// ItemSet is an unordered set of LR(1) items with set semantics:
// adding an item already present is a no-op.
type ItemSet struct {
	items map[itemKey]Item
}

func NewItemSet() *ItemSet {
	return &ItemSet{items: map[itemKey]Item{}}
}

// Add inserts it into the set and reports whether the set grew.
func (s *ItemSet) Add(it Item) bool {
	k := it.key()
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = it
	return true
}

func (s *ItemSet) Len() int {
	return len(s.items)
}

// Items returns the set's members in a deterministic order (sorted by
// LHS name, RHS length and symbol names, dot position, then lookahead
// name) so that two equal sets always produce the same slice, which in
// turn lets Fingerprint build the string key the table builder uses
// for state deduplication.
func (s *ItemSet) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessItem(out[i], out[j])
	})
	return out
}

func lessItem(a, b Item) bool {
	if a.Production.LHS != b.Production.LHS {
		return a.Production.LHS.Name() < b.Production.LHS.Name()
	}
	if len(a.Production.RHS) != len(b.Production.RHS) {
		return len(a.Production.RHS) < len(b.Production.RHS)
	}
	for i := range a.Production.RHS {
		if a.Production.RHS[i] != b.Production.RHS[i] {
			return a.Production.RHS[i].Name() < b.Production.RHS[i].Name()
		}
	}
	if a.DotPosition != b.DotPosition {
		return a.DotPosition < b.DotPosition
	}
	return a.Lookahead.Name() < b.Lookahead.Name()
}

// Fingerprint returns a string uniquely identifying the set's content
// (order-independent), used as a map key when deduplicating canonical
// states during table construction.
func (s *ItemSet) Fingerprint() string {
	items := s.Items()
	var b []byte
	for _, it := range items {
		b = append(b, []byte(it.Production.String())...)
		b = append(b, '|')
		b = appendInt(b, it.DotPosition)
		b = append(b, '|')
		b = append(b, []byte(it.Lookahead.GoString())...)
		b = append(b, '\n')
	}
	return string(b)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, digits[i:]...)
}

// Closure computes the LR(1) closure of the items in seed: repeatedly
// adding, for every item with a non-terminal B immediately after the
// dot, every production B -> γ as a new item with dot position 0 and
// lookahead set FIRST(β·a) where β is the remainder of the original
// item's RHS after B and a is the original item's lookahead.
//
// The β-lookahead set is the union of FIRST over β's prefix up to
// the first symbol that cannot derive ε, falling through to {a} when
// every symbol of β can.
func Closure(seed []Item, g *Grammar, first FirstSets) *ItemSet {
	set := NewItemSet()
	var queue []Item
	for _, it := range seed {
		if set.Add(it) {
			queue = append(queue, it)
		}
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		next, ok := it.NextSymbol()
		if !ok || !next.IsNonTerminal() {
			continue
		}

		beta := it.Production.RHS[it.DotPosition+1:]
		lookaheads := first.FirstOfSequence(beta, it.Lookahead)

		for _, p := range g.Productions {
			if p.LHS != next {
				continue
			}
			for la := range lookaheads {
				newItem := Item{Production: p, DotPosition: 0, Lookahead: la}
				if set.Add(newItem) {
					queue = append(queue, newItem)
				}
			}
		}
	}

	return set
}
