// Package testdata holds the worked grammars shared across the
// grammar, cache, and parser tests: a nested balanced-parenthesis
// grammar, an import-only subset of a JS-like grammar, and the toy
// language's statement grammar.
package testdata

import "github.com/lrtab/lrtab/grammar"

// NestedBalanced returns the grammar
//
//	E -> ( L , E ) | F
//	L -> L , E | E
//	F -> ( F ) | d
func NestedBalanced() (*grammar.Grammar, error) {
	return grammar.New("E", []grammar.RawProduction{
		{LHS: "E", RHS: []string{"(", "L", ",", "E", ")"}},
		{LHS: "E", RHS: []string{"F"}},
		{LHS: "L", RHS: []string{"L", ",", "E"}},
		{LHS: "L", RHS: []string{"E"}},
		{LHS: "F", RHS: []string{"(", "F", ")"}},
		{LHS: "F", RHS: []string{"d"}},
	}, nil)
}

// ImportOnlyJS returns a JS-like grammar trimmed to the
// import-statement path. eos is a non-terminal with two alternatives,
// one of them the terminal eof:
//
//	program          -> sourceElements eof
//	sourceElements   -> sourceElement sourceElements | sourceElement
//	sourceElement    -> statement
//	statement        -> importStatement
//	importStatement  -> import str eos
//	eos              -> semicolon | eof
func ImportOnlyJS() (*grammar.Grammar, error) {
	return grammar.New("program", []grammar.RawProduction{
		{LHS: "program", RHS: []string{"sourceElements", "eof"}},
		{LHS: "sourceElements", RHS: []string{"sourceElement", "sourceElements"}},
		{LHS: "sourceElements", RHS: []string{"sourceElement"}},
		{LHS: "sourceElement", RHS: []string{"statement"}},
		{LHS: "statement", RHS: []string{"importStatement"}},
		{LHS: "importStatement", RHS: []string{"import", "str", "eos"}},
		{LHS: "eos", RHS: []string{"semicolon"}},
		{LHS: "eos", RHS: []string{"eof"}},
	}, nil)
}

// Toy returns the toy language's PROGRAM/STATEMENT grammar, the same
// one examples/toy ships in textual form.
func Toy() (*grammar.Grammar, error) {
	return grammar.New("PROGRAM", []grammar.RawProduction{
		{LHS: "PROGRAM", RHS: []string{"STATEMENT", "PROGRAM"}},
		{LHS: "PROGRAM", RHS: []string{"STATEMENT"}},
		{LHS: "PROGRAM", RHS: nil},
		{LHS: "STATEMENT", RHS: []string{"INPUT_STMT"}},
		{LHS: "STATEMENT", RHS: []string{"PRINT_STMT"}},
		{LHS: "STATEMENT", RHS: []string{"DECLARATION_STMT"}},
		{LHS: "STATEMENT", RHS: []string{"ASSIGNMENT_STMT"}},
		{LHS: "STATEMENT", RHS: []string{"IF_STMT"}},
		{LHS: "STATEMENT", RHS: []string{"WHILE_STMT"}},
		{LHS: "INPUT_STMT", RHS: []string{"input", "identifier", ";"}},
		{LHS: "PRINT_STMT", RHS: []string{"print", "identifier", ";"}},
		{LHS: "PRINT_STMT", RHS: []string{"print", "stringliteral", ";"}},
		{LHS: "DECLARATION_STMT", RHS: []string{"var", "identifier", ";"}},
		{LHS: "ASSIGNMENT_STMT", RHS: []string{"identifier", "=", "EXPRESSION", ";"}},
		{LHS: "IF_STMT", RHS: []string{"if", "(", "CONDITION", ")", "{", "PROGRAM", "}"}},
		{LHS: "WHILE_STMT", RHS: []string{"while", "(", "CONDITION", ")", "{", "PROGRAM", "}"}},
		{LHS: "EXPRESSION", RHS: []string{"TERM"}},
		{LHS: "EXPRESSION", RHS: []string{"TERM", "+", "TERM"}},
		{LHS: "EXPRESSION", RHS: []string{"TERM", "-", "TERM"}},
		{LHS: "TERM", RHS: []string{"FACTOR"}},
		{LHS: "TERM", RHS: []string{"FACTOR", "*", "FACTOR"}},
		{LHS: "TERM", RHS: []string{"FACTOR", "/", "FACTOR"}},
		{LHS: "FACTOR", RHS: []string{"identifier"}},
		{LHS: "FACTOR", RHS: []string{"number"}},
		{LHS: "FACTOR", RHS: []string{"(", "EXPRESSION", ")"}},
		{LHS: "CONDITION", RHS: []string{"EXPRESSION", "==", "EXPRESSION"}},
		{LHS: "CONDITION", RHS: []string{"EXPRESSION", ">", "EXPRESSION"}},
		{LHS: "CONDITION", RHS: []string{"EXPRESSION", "<", "EXPRESSION"}},
	}, nil)
}
