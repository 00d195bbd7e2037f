/*
File   : gsc/internal/scanner/scanner_test.go
Package: scanner
*/
package scanner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gsc/internal/diagnostics"
	"github.com/akashmaji946/gsc/internal/token"
)

// kindLit pairs the two fields scanToken tests actually need to assert:
// the expected Kind, and the expected Literal value (nil when the token
// carries none).
type kindLit struct {
	Kind    token.Kind
	Literal token.Literal
}

type scanTest struct {
	Input    string
	Expected []kindLit
}

func scan(t *testing.T, src string) ([]token.Token, *diagnostics.Diagnostics) {
	t.Helper()
	var buf bytes.Buffer
	diags := diagnostics.New(&buf)
	return New(src, diags).Scan(), diags
}

func TestScan_Punctuation(t *testing.T) {
	tests := []scanTest{
		{
			Input: `(){}-+;*/`,
			Expected: []kindLit{
				{token.LEFT_PAREN, nil}, {token.RIGHT_PAREN, nil},
				{token.LEFT_BRACE, nil}, {token.RIGHT_BRACE, nil},
				{token.MINUS, nil}, {token.PLUS, nil}, {token.SEMICOLON, nil},
				{token.STAR, nil}, {token.SLASH, nil},
				{token.END_OF_FILE, nil},
			},
		},
		{
			Input: `! != = == < <= > >=`,
			Expected: []kindLit{
				{token.BANG, nil}, {token.BANG_EQUAL, nil},
				{token.EQUAL, nil}, {token.EQUAL_EQUAL, nil},
				{token.LESS, nil}, {token.LESS_EQUAL, nil},
				{token.GREATER, nil}, {token.GREATER_EQUAL, nil},
				{token.END_OF_FILE, nil},
			},
		},
	}

	for _, test := range tests {
		tokens, diags := scan(t, test.Input)
		assert.False(t, diags.HadError())
		assert.Equal(t, len(test.Expected), len(tokens))
		for i, want := range test.Expected {
			assert.Equal(t, want.Kind, tokens[i].Kind)
			assert.Equal(t, want.Literal, tokens[i].Literal)
		}
	}
}

func TestScan_Keywords(t *testing.T) {
	tokens, diags := scan(t, "and or if else true false for while nil print var x")
	assert.False(t, diags.HadError())

	wantKinds := []token.Kind{
		token.AND, token.OR, token.IF, token.ELSE, token.TRUE, token.FALSE,
		token.FOR, token.WHILE, token.NIL, token.PRINT, token.VAR,
		token.IDENTIFIER, token.END_OF_FILE,
	}
	assert.Equal(t, len(wantKinds), len(tokens))
	for i, k := range wantKinds {
		assert.Equal(t, k, tokens[i].Kind)
	}

	assert.Equal(t, true, tokens[4].Literal)
	assert.Equal(t, false, tokens[5].Literal)
	assert.Nil(t, tokens[8].Literal)
}

func TestScan_NumberAndString(t *testing.T) {
	tokens, diags := scan(t, `123 "hello"`)
	assert.False(t, diags.HadError())
	assert.Equal(t, token.NUMBER, tokens[0].Kind)
	assert.Equal(t, int64(123), tokens[0].Literal)
	assert.Equal(t, token.STRING, tokens[1].Kind)
	assert.Equal(t, "hello", tokens[1].Literal)
	assert.Equal(t, token.END_OF_FILE, tokens[2].Kind)
}

func TestScan_LineCommentIgnored(t *testing.T) {
	tokens, diags := scan(t, "1 + 2 // this is ignored\n3")
	assert.False(t, diags.HadError())
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.NUMBER, token.PLUS, token.NUMBER, token.NUMBER, token.END_OF_FILE,
	}, kinds)
}

func TestScan_NewlineIncrementsLine(t *testing.T) {
	tokens, _ := scan(t, "1\n2\n3")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}

func TestScan_UnterminatedStringReportsError(t *testing.T) {
	tokens, diags := scan(t, `"never closed`)
	assert.True(t, diags.HadError())
	// No STRING token is emitted for the offending region; only EOF remains.
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, token.END_OF_FILE, tokens[0].Kind)
}

func TestScan_UnexpectedCharacterReportsAndContinues(t *testing.T) {
	tokens, diags := scan(t, "1 @ 2")
	assert.True(t, diags.HadError())
	// Scanning continues past the bad character; surrounding tokens survive.
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.END_OF_FILE}, kinds)
}

func TestScan_AlwaysEndsWithExactlyOneEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "1+2;", "// only a comment"} {
		tokens, _ := scan(t, src)
		count := 0
		for i, tok := range tokens {
			if tok.Kind == token.END_OF_FILE {
				count++
				assert.Equal(t, len(tokens)-1, i, "EOF must be the final token")
			}
		}
		assert.Equal(t, 1, count, "source %q must scan to exactly one EOF", src)
	}
}
