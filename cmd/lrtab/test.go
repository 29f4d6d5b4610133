package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lrtab/lrtab/parser"
	"github.com/lrtab/lrtab/tester"
)

var testFlags = struct {
	lexer *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "test <compiled table path> <test file path>|<test directory path>",
		Short:   "Run fixture files against a compiled table",
		Example: `  lrtab test grammar.json testdata --lexer toy`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTest,
	}
	testFlags.lexer = cmd.Flags().String("lexer", "generic", "lexer to use: generic|toy")
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	table, err := readTable(args[0])
	if err != nil {
		return fmt.Errorf("cannot read compiled table: %w", err)
	}

	cs := tester.ListTestCases(args[1])
	errOccurred := false
	for _, c := range cs {
		if c.Error != nil {
			fmt.Fprintf(os.Stderr, "cannot read a test case or directory: %v\n%v\n", c.FilePath, c.Error)
			errOccurred = true
		}
	}
	if errOccurred {
		return errors.New("cannot run test")
	}

	lexerName := *testFlags.lexer
	var tokenize tester.Tokenize = func(source string) ([]parser.InputSymbol, error) {
		return tokenizeFor(lexerName, source)
	}

	t := &tester.Tester{
		Table:    table,
		Tokenize: tokenize,
		Cases:    cs,
	}

	results := t.Run()
	failed := false
	for _, r := range results {
		fmt.Fprintln(os.Stdout, r)
		if r.Error != nil {
			failed = true
		}
	}
	if failed {
		return errors.New("test failed")
	}
	return nil
}
