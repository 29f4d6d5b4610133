package parser

import (
	"github.com/lrtab/lrtab/grammar"
)

// InputSymbol is one token fed to Parse: the terminal grammar symbol
// it matches, plus the source text it was scanned from (used only to
// populate Tree leaves' Text field; the driver itself only looks at
// Symbol).
type InputSymbol struct {
	Symbol grammar.Symbol
	Text   string
}

// Parser wraps an immutable grammar.Table and drives it over an input
// sequence. A Parser is safe for concurrent use by multiple goroutines
// once constructed, since it never mutates the table after New
// returns.
type Parser struct {
	table *grammar.Table
}

// New wraps table in a Parser. It returns an error only if table or
// table's grammar is nil, which would indicate the table was not
// produced by grammar.NewTable.
func New(table *grammar.Table) (*Parser, error) {
	if table == nil || table.Grammar == nil {
		return nil, &ContractError{Message: "table has no associated grammar"}
	}
	return &Parser{table: table}, nil
}

// Parse runs the shift/reduce/accept driver over input and returns
// the resulting Tree, rooted at the grammar's user start symbol (not
// the internal S' augmentation).
//
// A state stack is seeded with the start state alongside a parallel
// node stack of partial Trees. Shift pushes a Terminal leaf and
// advances the position; Reduce pops |RHS| states and nodes, pushes a
// NonTerminal node built from them in source order, and follows the
// GOTO entry for the reduced LHS; Accept returns the sole remaining
// node. Accepting with an empty node stack (the input was empty)
// returns a childless node carrying the start symbol's name.
func (p *Parser) Parse(input []InputSymbol) (*Tree, error) {
	for _, in := range input {
		if in.Symbol.IsEndMarker() {
			return nil, &ContractError{Message: "input sequence must not contain the end marker"}
		}
	}

	stack := []int{p.table.StartState}
	var nodes []*Tree
	pos := 0

	current := func() grammar.Symbol {
		if pos < len(input) {
			return input[pos].Symbol
		}
		return grammar.EndMarker
	}

	for {
		state := stack[len(stack)-1]
		sym := current()

		action, ok := p.table.Action(state, sym)
		if !ok {
			return nil, &SyntaxError{Pos: pos, State: state, Symbol: sym}
		}

		switch action.Type {
		case grammar.ActionShift:
			stack = append(stack, action.NextState)
			text := sym.Name()
			if pos < len(input) {
				text = input[pos].Text
			}
			nodes = append(nodes, &Tree{Terminal: sym.Name(), Text: text})
			pos++

		case grammar.ActionReduce:
			n := len(action.Production.RHS)
			stack = stack[:len(stack)-n]

			var children []*Tree
			if n > 0 {
				children = append(children, nodes[len(nodes)-n:]...)
				nodes = nodes[:len(nodes)-n]
			}

			prevState := stack[len(stack)-1]
			nextState, ok := p.table.Goto(prevState, action.Production.LHS)
			if !ok {
				return nil, &InvalidTransitionError{State: prevState, Production: action.Production}
			}
			stack = append(stack, nextState)
			nodes = append(nodes, &Tree{NonTerminal: action.Production.LHS.Name(), Children: children})

		case grammar.ActionAccept:
			if len(nodes) == 0 {
				return &Tree{NonTerminal: p.table.Grammar.Start.Name()}, nil
			}
			return nodes[len(nodes)-1], nil

		default:
			return nil, &SyntaxError{Pos: pos, State: state, Symbol: sym}
		}
	}
}
