package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/spf13/cobra"

	"github.com/lrtab/lrtab/examples/toy"
	"github.com/lrtab/lrtab/grammar"
	"github.com/lrtab/lrtab/parser"
)

const (
	outputFormatText = "text"
	outputFormatTree = "tree"
	outputFormatXML  = "xml"
	outputFormatJSON = "json"
)

var parseFlags = struct {
	source *string
	lexer  *string
	format *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <compiled table path>",
		Short:   "Parse a text stream against a compiled table",
		Example: `  cat src | lrtab parse grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.lexer = cmd.Flags().String("lexer", "generic", "lexer to use: generic|toy")
	parseFlags.format = cmd.Flags().StringP("format", "f", "tree", "output format: one of text|tree|xml|json")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	table, err := readTable(args[0])
	if err != nil {
		return fmt.Errorf("cannot read compiled table: %w", err)
	}

	var src []byte
	if *parseFlags.source != "" {
		src, err = os.ReadFile(*parseFlags.source)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("cannot read source: %w", err)
	}

	input, err := tokenizeFor(*parseFlags.lexer, string(src))
	if err != nil {
		return fmt.Errorf("cannot tokenize source: %w", err)
	}

	p, err := parser.New(table)
	if err != nil {
		return err
	}

	tree, err := p.Parse(input)
	if err != nil {
		return err
	}

	return printTree(os.Stdout, tree, table.Grammar.Start.Name(), *parseFlags.format)
}

// tokenizeFor converts source into an InputSymbol sequence for the
// requested lexer. "generic" treats every whitespace-separated word
// (or single-quoted literal) as the literal name of a terminal
// symbol, which is enough to drive any grammar defined with gramtext
// without a grammar-specific scanner; "toy" uses the real toy-language
// scanner for examples/toy's grammar.
func tokenizeFor(lexerName, source string) ([]parser.InputSymbol, error) {
	switch lexerName {
	case "toy":
		return toy.Tokenize(source)
	case "generic":
		return tokenizeGeneric(source)
	default:
		return nil, fmt.Errorf("unknown lexer %q", lexerName)
	}
}

func tokenizeGeneric(source string) ([]parser.InputSymbol, error) {
	var out []parser.InputSymbol
	for _, word := range strings.Fields(source) {
		name := strings.Trim(word, "'")
		out = append(out, parser.InputSymbol{Symbol: grammar.Terminal(name), Text: name})
	}
	return out, nil
}

func printTree(w io.Writer, tree *parser.Tree, startName, format string) error {
	switch format {
	case outputFormatTree:
		parser.PrintTree(w, tree)
	case outputFormatXML:
		parser.PrintXML(w, tree, startName)
	case outputFormatJSON:
		b, err := json.Marshal(tree)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
	case outputFormatText:
		fmt.Fprintln(w, describeTreeShape(tree))
	default:
		return fmt.Errorf("invalid output format: %v", format)
	}
	return nil
}

// textLexemeWidth bounds how much of a terminal's lexeme is shown
// before wrapping.
const textLexemeWidth = 60

func describeTreeShape(t *parser.Tree) string {
	if t.IsTerminal() {
		text := rosed.Edit(t.Text).Wrap(textLexemeWidth).String()
		return fmt.Sprintf("%s(%q)", t.Terminal, text)
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		parts[i] = describeTreeShape(c)
	}
	return fmt.Sprintf("%s[%s]", t.NonTerminal, strings.Join(parts, " "))
}
