/*
File   : gsc/cmd/gsc/main_test.go
Package: main
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// writeSource creates a temporary .gsc file with the given contents and
// returns its path.
func writeSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.gsc")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRun_UsageErrorOnTwoOrMoreArgs(t *testing.T) {
	assert.Equal(t, 64, run([]string{"a.gsc", "b.gsc"}))
}

func TestRun_FileNotFound(t *testing.T) {
	assert.Equal(t, 66, run([]string{filepath.Join(t.TempDir(), "missing.gsc")}))
}

func TestRun_SuccessfulFileExecution(t *testing.T) {
	path := writeSource(t, `print 1 + 2;`)
	assert.Equal(t, 0, run([]string{path}))
}

func TestRun_ParseErrorExitsNonzero(t *testing.T) {
	path := writeSource(t, `var = ;`)
	assert.Equal(t, 65, run([]string{path}))
}

func TestRun_RuntimeErrorExitsNonzero(t *testing.T) {
	path := writeSource(t, `print 3 / 0;`)
	assert.Equal(t, 70, run([]string{path}))
}
