/*
File   : gsc/internal/repl/repl_test.go
Package: repl
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_EchoesPromptAndEvaluatesLines(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := New(&stdout, &stderr)

	status := r.Run(strings.NewReader("print 1 + 2;\nprint \"hi\";\n"), &stdout)

	assert.Equal(t, 0, status)
	out := stdout.String()
	assert.Contains(t, out, ">> ")
	assert.Contains(t, out, "3\n")
	assert.Contains(t, out, "hi\n")
}

func TestRun_ResetsErrorStateBetweenLines(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := New(&stdout, &stderr)

	// The first line is a bad parse; the second is a perfectly good
	// program that must still execute, proving hadError was reset.
	r.Run(strings.NewReader("var = ;\nprint 1;\n"), &stdout)

	assert.Contains(t, stdout.String(), "1\n")
	assert.Contains(t, stderr.String(), "Error")
}

func TestRun_PersistsBindingsAcrossLines(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := New(&stdout, &stderr)

	r.Run(strings.NewReader("var x = 10;\nprint x + 1;\n"), &stdout)

	assert.Contains(t, stdout.String(), "11\n")
}

func TestRun_DotExitLineIsIgnoredNotExecuted(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := New(&stdout, &stderr)

	status := r.Run(strings.NewReader(".exit\nprint 1;\n"), &stdout)

	assert.Equal(t, 0, status)
	assert.Contains(t, stdout.String(), "1\n")
}
