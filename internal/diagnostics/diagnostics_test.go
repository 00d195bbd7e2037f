/*
File   : gsc/internal/diagnostics/diagnostics_test.go
Package: diagnostics
*/
package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/gsc/internal/token"
)

func TestError_BareLexicalFormat(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	d.Error(3, "Unexpected character.")

	assert.True(t, d.HadError())
	assert.Equal(t, "[line 3] Error : Unexpected character.", d.Messages()[0])
	assert.Equal(t, "[line 3] Error : Unexpected character.\n", buf.String())
}

func TestErrorAtToken_AtEnd(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	eof := token.New(token.END_OF_FILE, "", nil, 5, 1)
	d.ErrorAtToken(eof, "Expect expression.")

	assert.Equal(t, "[line 5] Error at end: Expect expression.", d.Messages()[0])
}

func TestErrorAtToken_AtLexeme(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	tok := token.New(token.IDENTIFIER, "foo", nil, 2, 1)
	d.ErrorAtToken(tok, "Expect ';' after value.")

	assert.Equal(t, "[line 2] Error at 'foo': Expect ';' after value.", d.Messages()[0])
}

func TestRuntimeError_Format(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	tok := token.New(token.SLASH, "/", nil, 1, 1)
	err := NewRuntimeError(tok, "Division by zero.")
	d.RuntimeError(err)

	assert.True(t, d.HadRuntimeError())
	assert.Equal(t, "Division by zero.\n[line 1]", d.Messages()[0])
	assert.Equal(t, "Division by zero.\n[line 1]\n", buf.String())
	assert.Equal(t, "Division by zero.\n[line 1]", err.Error())
}

func TestReset_ClearsFlagsAndMessages(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf)
	d.Error(1, "x")
	assert.True(t, d.HadError())

	d.Reset()
	assert.False(t, d.HadError())
	assert.False(t, d.HadRuntimeError())
	assert.Equal(t, 0, len(d.Messages()))
}
