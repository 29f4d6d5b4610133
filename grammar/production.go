package grammar

import "strings"

// Production is a single grammar rule LHS -> RHS. RHS may be empty,
// meaning LHS derives the empty string.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

// NewProduction builds a Production from a non-terminal LHS and an
// RHS symbol sequence. A nil or empty rhs means LHS -> ε.
func NewProduction(lhs Symbol, rhs []Symbol) Production {
	return Production{LHS: lhs, RHS: rhs}
}

// IsEmpty reports whether the production's RHS is the empty sequence.
func (p Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

// Equal reports structural equality: same LHS and same RHS symbols in
// the same order. Two distinct entries in Grammar.Productions may
// compare Equal; that is expected for grammars with duplicate
// alternatives and is exactly what collapses them to one canonical
// item-set identity.
func (p Production) Equal(other Production) bool {
	if p.LHS != other.LHS {
		return false
	}
	if len(p.RHS) != len(other.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != other.RHS[i] {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	var b strings.Builder
	b.WriteString(p.LHS.String())
	b.WriteString(" -> ")
	for i, s := range p.RHS {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// key returns a string uniquely identifying p's content (LHS plus RHS
// symbol sequence), for use as a comparable stand-in wherever
// Production itself can't serve as a map key: Production embeds a
// slice (RHS), so it is not comparable and cannot be a Go map key type.
func (p Production) key() string {
	var b strings.Builder
	b.WriteString(p.LHS.GoString())
	for _, s := range p.RHS {
		b.WriteByte('\x00')
		b.WriteString(s.GoString())
	}
	return b.String()
}
