package parser

import (
	"fmt"

	"github.com/lrtab/lrtab/grammar"
)

// SyntaxError is raised by Parse when ACTION[state, symbol] has no
// entry: the input does not belong to the language the grammar
// defines. Pos is the zero-based index into the input sequence that
// was being consumed when the error was detected.
type SyntaxError struct {
	Pos    int
	State  int
	Symbol grammar.Symbol
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: unexpected %s in state %d", e.Pos, e.Symbol, e.State)
}

// InvalidTransitionError is raised when a reduction finds no
// GOTO[state, lhs] entry. It indicates an internal inconsistency
// between the ACTION and GOTO tables rather than a property of the
// input, since every state reachable by a Reduce action is supposed
// to have a corresponding GOTO entry for that reduction's LHS.
type InvalidTransitionError struct {
	State      int
	Production grammar.Production
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: no GOTO entry for state %d on %s", e.State, e.Production.LHS)
}

// ContractError reports a caller contract violation, distinct from a
// SyntaxError, per Open Question decision (b): feeding grammar.EndMarker
// into the input sequence is a bug in the caller, not a property of
// the language being parsed.
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("parser contract violation: %s", e.Message)
}
