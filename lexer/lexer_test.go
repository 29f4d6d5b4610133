package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAll(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		want    []Token
	}{
		{
			caption: "empty input yields only EOF",
			src:     "",
			want:    []Token{{Type: EOF}},
		},
		{
			caption: "declarations and assignment",
			src:     "var x;\nx = 1;",
			want: []Token{
				{Type: Var, Val: "var"},
				{Type: Identifier, Val: "x"},
				{Type: SemiColon, Val: ";"},
				{Type: Identifier, Val: "x"},
				{Type: Assign, Val: "="},
				{Type: Number, Val: "1"},
				{Type: SemiColon, Val: ";"},
				{Type: EOF},
			},
		},
		{
			caption: "equality operator is not split into two assigns",
			src:     "a == b",
			want: []Token{
				{Type: Identifier, Val: "a"},
				{Type: Equal, Val: "=="},
				{Type: Identifier, Val: "b"},
				{Type: EOF},
			},
		},
		{
			caption: "leading minus before a digit is a negative number, not an operator",
			src:     "-5",
			want: []Token{
				{Type: Number, Val: "-5"},
				{Type: EOF},
			},
		},
		{
			caption: "leading minus before a non-digit is the minus operator",
			src:     "-x",
			want: []Token{
				{Type: Minus, Val: "-"},
				{Type: Identifier, Val: "x"},
				{Type: EOF},
			},
		},
		{
			caption: "string literal",
			src:     `print "hi";`,
			want: []Token{
				{Type: Print, Val: "print"},
				{Type: StringLiteral, Val: `"hi"`},
				{Type: SemiColon, Val: ";"},
				{Type: EOF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			toks, err := New(tt.src).ScanAll()
			require.NoError(t, err)
			assert.Equal(t, tt.want, toks)
		})
	}
}

func TestScanUnterminatedStringLiteral(t *testing.T) {
	_, err := New(`"abc`).ScanAll()
	require.Error(t, err)

	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
}

func TestStreamMatchesScanAll(t *testing.T) {
	src := "if (x > 0) { print x; }"

	want, err := New(src).ScanAll()
	require.NoError(t, err)

	tokens, errc := Stream(src)

	var got []Token
	for tok := range tokens {
		got = append(got, tok)
	}
	require.NoError(t, <-errc)

	assert.Equal(t, want, got)
}
