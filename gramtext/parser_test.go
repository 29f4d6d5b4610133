package gramtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrtab/lrtab/grammar"
	"github.com/lrtab/lrtab/gramtext"
	"github.com/lrtab/lrtab/lrerr"
)

func TestParseSimpleGrammar(t *testing.T) {
	src := `
start E;

E => '(', L, ',', E, ')';
E => F;
L => L, ',', E;
L => E;
F => '(', F, ')';
F => d;
`
	start, prods, err := gramtext.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "E", start)
	assert.Len(t, prods, 6)
	assert.Equal(t, grammar.RawProduction{LHS: "E", RHS: []string{"(", "L", ",", "E", ")"}}, prods[0])
	assert.Equal(t, grammar.RawProduction{LHS: "E", RHS: []string{"F"}}, prods[1])
}

func TestParseEpsilonProduction(t *testing.T) {
	src := `
start PROGRAM;
PROGRAM => STATEMENT, PROGRAM;
PROGRAM => STATEMENT;
PROGRAM => ;
STATEMENT => a;
`
	start, prods, err := gramtext.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "PROGRAM", start)

	var sawEmpty bool
	for _, p := range prods {
		if p.LHS == "PROGRAM" && len(p.RHS) == 0 {
			sawEmpty = true
		}
	}
	assert.True(t, sawEmpty, "expected an empty-RHS PROGRAM production")
}

func TestParseWrappedRHS(t *testing.T) {
	src := `
start S;
S => 'if', '(', COND, ')',
     '{', S, '}';
COND => a;
`
	_, prods, err := gramtext.Parse(src)
	require.NoError(t, err)
	require.Len(t, prods, 2)
	assert.Equal(t, []string{"if", "(", "COND", ")", "{", "S", "}"}, prods[0].RHS)
}

func TestParseCommentsAreIgnored(t *testing.T) {
	src := `
# a leading comment
start S; // trailing comment
S => a; # another comment
`
	start, prods, err := gramtext.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "S", start)
	require.Len(t, prods, 1)
	assert.Equal(t, []string{"a"}, prods[0].RHS)
}

func TestParseMissingSemicolonIsReported(t *testing.T) {
	src := `
start S;
S => a
T => b;
`
	_, _, err := gramtext.Parse(src)
	require.Error(t, err)

	serrs, ok := err.(lrerr.SpecErrors)
	require.True(t, ok)
	assert.NotEmpty(t, serrs)
}

func TestParseWithoutStartHeaderLeavesStartEmpty(t *testing.T) {
	src := `S => a;`
	start, prods, err := gramtext.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "", start)
	require.Len(t, prods, 1)
}
