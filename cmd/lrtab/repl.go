package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/lrtab/lrtab/grammar"
	"github.com/lrtab/lrtab/parser"
)

var replFlags = struct {
	lexer *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "repl <compiled table path>",
		Short:   "Interactively parse lines of source against a compiled table",
		Example: `  lrtab repl grammar.json --lexer toy`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRepl,
	}
	replFlags.lexer = cmd.Flags().String("lexer", "generic", "lexer to use: generic|toy")
	rootCmd.AddCommand(cmd)
}

// runRepl reads one line of source at a time and prints the resulting
// parse tree or error.
func runRepl(cmd *cobra.Command, args []string) error {
	table, err := readTable(args[0])
	if err != nil {
		return fmt.Errorf("cannot read compiled table: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "lrtab> ",
		HistoryFile: "",
	})
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	defer rl.Close()

	startName := table.Grammar.Start.Name()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := replEval(table, startName, *replFlags.lexer, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func replEval(table *grammar.Table, startName, lexerName, line string) error {
	input, err := tokenizeFor(lexerName, line)
	if err != nil {
		return fmt.Errorf("cannot tokenize: %w", err)
	}

	p, err := parser.New(table)
	if err != nil {
		return err
	}

	tree, err := p.Parse(input)
	if err != nil {
		return err
	}

	fmt.Println(describeTreeShape(tree))
	return nil
}
