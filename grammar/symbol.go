// Package grammar implements the core data model and LR(1) table
// construction: symbols, productions, grammars, FIRST sets, LR(1)
// items and their closure, and the canonical ACTION/GOTO table
// builder.
package grammar

import "fmt"

// SymbolKind distinguishes the four symbol variants a grammar can
// contain.
type SymbolKind int

const (
	SymbolTerminal SymbolKind = iota
	SymbolNonTerminal
	SymbolEpsilon
	SymbolEndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolTerminal:
		return "terminal"
	case SymbolNonTerminal:
		return "non-terminal"
	case SymbolEpsilon:
		return "epsilon"
	case SymbolEndMarker:
		return "end-marker"
	default:
		return "invalid"
	}
}

// Symbol is a grammar symbol: a terminal or non-terminal identified by
// name, or one of the two sentinel symbols (Epsilon, EndMarker). Two
// symbols are equal iff their kind and name are equal, so Symbol can
// be used directly as a map key.
type Symbol struct {
	kind SymbolKind
	name string
}

// Terminal returns the terminal symbol named name.
func Terminal(name string) Symbol {
	return Symbol{kind: SymbolTerminal, name: name}
}

// NonTerminal returns the non-terminal symbol named name.
func NonTerminal(name string) Symbol {
	return Symbol{kind: SymbolNonTerminal, name: name}
}

// Epsilon is the empty-string sentinel symbol.
var Epsilon = Symbol{kind: SymbolEpsilon, name: "ε"}

// EndMarker is the end-of-input sentinel symbol, displayed as "#".
var EndMarker = Symbol{kind: SymbolEndMarker, name: "#"}

// Kind returns the symbol's variant.
func (s Symbol) Kind() SymbolKind {
	return s.kind
}

// Name returns the symbol's name. Epsilon and EndMarker have fixed
// display names, not user-supplied ones.
func (s Symbol) Name() string {
	return s.name
}

func (s Symbol) IsTerminal() bool {
	return s.kind == SymbolTerminal
}

func (s Symbol) IsNonTerminal() bool {
	return s.kind == SymbolNonTerminal
}

func (s Symbol) IsEpsilon() bool {
	return s.kind == SymbolEpsilon
}

func (s Symbol) IsEndMarker() bool {
	return s.kind == SymbolEndMarker
}

// IsTerminalLike reports whether s can appear as a lookahead or be
// consumed by a shift action: true for ordinary terminals and for the
// end marker, false for non-terminals and epsilon.
func (s Symbol) IsTerminalLike() bool {
	return s.kind == SymbolTerminal || s.kind == SymbolEndMarker
}

func (s Symbol) String() string {
	switch s.kind {
	case SymbolEpsilon:
		return "ε"
	case SymbolEndMarker:
		return "#"
	default:
		return s.name
	}
}

// GoString is used by %#v and by panics/test failure output so
// mismatches are easy to read at a glance.
func (s Symbol) GoString() string {
	return fmt.Sprintf("%s(%q)", s.kind, s.name)
}
