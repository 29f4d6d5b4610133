package tester

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lrtab/lrtab/grammar"
	"github.com/lrtab/lrtab/parser"
)

// tiny grammar: S -> a S | a, over a single terminal "a".
func buildTestGrammar(t *testing.T) *grammar.Table {
	t.Helper()
	g, err := grammar.New("S", []grammar.RawProduction{
		{LHS: "S", RHS: []string{"a", "S"}},
		{LHS: "S", RHS: []string{"a"}},
	}, nil)
	require.NoError(t, err)

	table, report, err := grammar.NewTable(g)
	require.NoError(t, err)
	require.False(t, report.HasConflicts())
	return table
}

func tokenizeAs(source string) ([]parser.InputSymbol, error) {
	var out []parser.InputSymbol
	for _, r := range source {
		if r != 'a' {
			continue
		}
		out = append(out, parser.InputSymbol{Symbol: grammar.Terminal("a"), Text: "a"})
	}
	return out, nil
}

func TestParseTestCase(t *testing.T) {
	src := `
single a
---
a
---
{"kind":"NonTerminal","name":"S","children":[{"kind":"Terminal","name":"a","text":"a"}]}
`
	c, err := ParseTestCase(src)
	require.NoError(t, err)
	require.Equal(t, "single a", c.Title)
	require.Equal(t, "a", c.Source)
	require.True(t, c.Expected.IsTerminal() == false)
	require.Equal(t, "S", c.Expected.NonTerminal)
}

func TestTesterRunPassesMatchingFixture(t *testing.T) {
	table := buildTestGrammar(t)

	c, err := ParseTestCase(`
two a's
---
aa
---
{"kind":"NonTerminal","name":"S","children":[{"kind":"Terminal","name":"a","text":"a"},{"kind":"NonTerminal","name":"S","children":[{"kind":"Terminal","name":"a","text":"a"}]}]}
`)
	require.NoError(t, err)

	tester := &Tester{
		Table:    table,
		Tokenize: tokenizeAs,
		Cases:    []*TestCaseWithMetadata{{TestCase: c, FilePath: "inline"}},
	}

	rs := tester.Run()
	require.Len(t, rs, 1)
	require.NoError(t, rs[0].Error, rs[0].Diff)
}

func TestTesterRunReportsMismatch(t *testing.T) {
	table := buildTestGrammar(t)

	c, err := ParseTestCase(`
wrong shape
---
aa
---
{"kind":"Terminal","name":"a","text":"a"}
`)
	require.NoError(t, err)

	tester := &Tester{
		Table:    table,
		Tokenize: tokenizeAs,
		Cases:    []*TestCaseWithMetadata{{TestCase: c, FilePath: "inline"}},
	}

	rs := tester.Run()
	require.Len(t, rs, 1)
	require.Error(t, rs[0].Error)
	require.NotEmpty(t, rs[0].Diff)
}

func TestTestResultStringFormatsPassAndFail(t *testing.T) {
	pass := &TestResult{TestCasePath: "x.fixture"}
	fail := &TestResult{TestCasePath: "y.fixture", Error: fmt.Errorf("boom")}

	require.Contains(t, pass.String(), "PASS")
	require.Contains(t, fail.String(), "FAIL")
	require.Contains(t, fail.String(), "boom")
}
