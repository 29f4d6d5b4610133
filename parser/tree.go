// Package parser implements the LR(1) shift/reduce/accept driver:
// given a grammar.Table and a sequence of input symbols, it produces
// a Tree or a typed SyntaxError/InvalidTransitionError.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
)

// Tree is the recursive parse-tree result: a Terminal leaf carrying
// the matched symbol's name and its source text, or a NonTerminal
// node carrying its children in source order. Terminal leaves keep
// the lexeme in Text so printers can show the original source text
// instead of just the grammar category name.
type Tree struct {
	Terminal    string  `json:"terminal,omitempty"`
	Text        string  `json:"text,omitempty"`
	NonTerminal string  `json:"nonTerminal,omitempty"`
	Children    []*Tree `json:"children,omitempty"`
}

// IsTerminal reports whether t is a leaf.
func (t *Tree) IsTerminal() bool {
	return t.Terminal != ""
}

// MarshalJSON renders a self-describing discriminated union:
// {"kind":"Terminal",...} / {"kind":"NonTerminal",...}.
func (t *Tree) MarshalJSON() ([]byte, error) {
	if t.IsTerminal() {
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Name string `json:"name"`
			Text string `json:"text"`
		}{Kind: "Terminal", Name: t.Terminal, Text: t.Text})
	}
	return json.Marshal(struct {
		Kind     string  `json:"kind"`
		Name     string  `json:"name"`
		Children []*Tree `json:"children"`
	}{Kind: "NonTerminal", Name: t.NonTerminal, Children: t.Children})
}

// UnmarshalJSON is the inverse of MarshalJSON, so a fixture file can
// round-trip through the same discriminated-union shape.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Kind {
	case "Terminal":
		var v struct {
			Name string `json:"name"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		t.Terminal = v.Name
		t.Text = v.Text
		t.NonTerminal = ""
		t.Children = nil
	case "NonTerminal":
		var v struct {
			Name     string  `json:"name"`
			Children []*Tree `json:"children"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		t.NonTerminal = v.Name
		t.Children = v.Children
		t.Terminal = ""
		t.Text = ""
	default:
		return fmt.Errorf("unrecognized tree node kind %q", head.Kind)
	}
	return nil
}

// PrintTree renders t as an ASCII tree, one node per line with
// ├─/└─ connectors for a node's children.
func PrintTree(w io.Writer, t *Tree) {
	printTree(w, t, "", "")
}

func printTree(w io.Writer, t *Tree, ruledLine, childPrefix string) {
	if t == nil {
		return
	}

	if t.IsTerminal() {
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, t.Terminal, t.Text)
		return
	}

	fmt.Fprintf(w, "%v%v\n", ruledLine, t.NonTerminal)

	num := len(t.Children)
	for i, child := range t.Children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printTree(w, child, childPrefix+line, childPrefix+prefix)
	}
}

// PrintXML renders t as XML-like nested tags: every NonTerminal
// becomes an <name>...</name> pair, except that a node named
// programName nested inside another programName run is unwrapped in
// place, so a right-recursive statement list prints as one flat run
// of statements instead of one tag per remaining statement.
func PrintXML(w io.Writer, t *Tree, programName string) {
	printXML(w, t, 0, true, programName)
}

func printXML(w io.Writer, t *Tree, indent int, showProgram bool, programName string) {
	if t == nil {
		return
	}
	pad := func(n int) string {
		return fmt.Sprintf("%*s", n, "")
	}

	if t.IsTerminal() {
		fmt.Fprintf(w, "%s<%s>%s</%s>\n", pad(indent), t.Terminal, t.Text, t.Terminal)
		return
	}

	if !showProgram && t.NonTerminal == programName {
		for _, child := range t.Children {
			printXML(w, child, indent, false, programName)
		}
		return
	}

	fmt.Fprintf(w, "%s<%s>\n", pad(indent), t.NonTerminal)
	for _, child := range t.Children {
		childShowsProgram := !showProgram && child.NonTerminal == programName
		printXML(w, child, indent+2, childShowsProgram, programName)
	}
	fmt.Fprintf(w, "%s</%s>\n", pad(indent), t.NonTerminal)
}
