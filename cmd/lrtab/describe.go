package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dekarrin/rosed"
	"github.com/spf13/cobra"

	"github.com/lrtab/lrtab/grammar"
)

// reduceCellWidth bounds how much of a reduce action's production
// text is shown before wrapping; a table cell has much less room than
// a printed tree line.
const reduceCellWidth = 20

func init() {
	cmd := &cobra.Command{
		Use:     "describe <compiled table path>",
		Short:   "Render a compiled table's ACTION/GOTO grid (conflicts are not listed)",
		Example: `  lrtab describe grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	table, err := readTable(args[0])
	if err != nil {
		return fmt.Errorf("cannot read compiled table: %w", err)
	}

	fmt.Fprintln(os.Stdout, tableString(table))
	return nil
}

// tableString renders table's ACTION/GOTO grid as an aligned text
// table: one row per state, action columns per terminal (plus the end
// marker), then goto columns per non-terminal.
func tableString(table *grammar.Table) string {
	terms := sortedStrings(table.Grammar.Terminals())
	terms = append(terms, grammar.EndMarker.Name())
	nonTerms := sortedStrings(table.Grammar.NonTerminals())

	var data [][]string

	header := []string{"S", "|"}
	for _, t := range terms {
		header = append(header, fmt.Sprintf("A:%s", t))
	}
	header = append(header, "|")
	for _, nt := range nonTerms {
		header = append(header, fmt.Sprintf("G:%s", nt))
	}
	data = append(data, header)

	for _, state := range table.States {
		row := []string{fmt.Sprintf("%d", state.Index), "|"}

		for _, t := range terms {
			sym := grammar.Terminal(t)
			if t == grammar.EndMarker.Name() {
				sym = grammar.EndMarker
			}
			row = append(row, actionCell(table, state.Index, sym))
		}

		row = append(row, "|")

		for _, nt := range nonTerms {
			cell := ""
			if next, ok := table.Goto(state.Index, grammar.NonTerminal(nt)); ok {
				cell = fmt.Sprintf("%d", next)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func actionCell(table *grammar.Table, state int, sym grammar.Symbol) string {
	action, ok := table.Action(state, sym)
	if !ok {
		return ""
	}
	switch action.Type {
	case grammar.ActionAccept:
		return "acc"
	case grammar.ActionShift:
		return fmt.Sprintf("s%d", action.NextState)
	case grammar.ActionReduce:
		text := fmt.Sprintf("r:%s", action.Production.String())
		return rosed.Edit(text).Wrap(reduceCellWidth).String()
	default:
		return ""
	}
}

func sortedStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	sort.Strings(out)
	return out
}
