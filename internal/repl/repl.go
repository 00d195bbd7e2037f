/*
File   : gsc/internal/repl/repl.go
Package: repl
*/

// Package repl implements GSC's interactive Read-Eval-Print Loop: the
// exact ">> " prompt from spec.md §6, one line scanned/parsed/
// interpreted as a complete program, with both diagnostic flags reset
// between lines so a bad line never poisons the ones that follow.
//
// Grounded on akashmaji946-go-mix's repl.Repl (readline for line editing
// and history, fatih/color for diagnostic coloring), trimmed of the
// banner/version/license ceremony and the `.exit` evaluator-state
// machinery spec.md doesn't call for — GSC's REPL ends on stdin EOF (or,
// under readline, on an interrupt), and a `.exit` line is simply ignored.
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/gsc/internal/diagnostics"
	"github.com/akashmaji946/gsc/internal/environment"
	"github.com/akashmaji946/gsc/internal/interpreter"
	"github.com/akashmaji946/gsc/internal/parser"
	"github.com/akashmaji946/gsc/internal/scanner"
)

// prompt is the exact prompt spec.md §6 requires: two '>' characters
// followed by a space.
const prompt = ">> "

// errColor colors diagnostic lines red. fatih/color turns escape codes off
// process-wide when os.Stdout is not a terminal, so piped output in tests
// sees the bare diagnostic text unchanged.
var errColor = color.New(color.FgRed)

// colorWriter wraps an io.Writer so every write is colored red through
// fatih/color before reaching the underlying destination, without
// altering the text diagnostics.Diagnostics itself produces.
type colorWriter struct{ dst io.Writer }

func (w colorWriter) Write(p []byte) (int, error) {
	errColor.Fprint(w.dst, string(p))
	return len(p), nil
}

// REPL holds one interactive session's long-lived state: the global
// environment and the interpreter built on it persist across lines, so
// `var x = 1;` on one line is visible to the next.
type REPL struct {
	diags *diagnostics.Diagnostics
	eval  *interpreter.Interpreter
}

// New creates a REPL writing program output to stdout and diagnostics,
// colored red, to stderr.
func New(stdout, stderr io.Writer) *REPL {
	diags := diagnostics.New(colorWriter{dst: stderr})
	return &REPL{diags: diags, eval: interpreter.New(stdout, diags)}
}

// Run drives the loop until stdin reaches EOF (Ctrl-D), at which point it
// returns 0. It never returns a nonzero status itself — per-line errors
// are reported and the prompt simply continues, per spec.md §6's "REPL
// never exits nonzero on a per-line error" contract.
//
// readline is used when it can attach to stdin as a terminal; piped or
// redirected stdin (as in tests and scripted invocations) falls back to
// a plain bufio.Scanner loop that still emits the exact ">> " prompt
// before each line.
func (r *REPL) Run(stdin io.Reader, stdout io.Writer) int {
	if f, ok := stdin.(*os.File); !ok || !readline.IsTerminal(int(f.Fd())) {
		return r.runPlain(stdin, stdout)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdin:  io.NopCloser(stdin),
		Stdout: stdout,
	})
	if err != nil {
		return r.runPlain(stdin, stdout)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, or readline.ErrInterrupt on Ctrl-C
			return 0
		}
		r.runLine(stdout, line)
	}
}

// runPlain is the fallback loop used when readline cannot initialize —
// it still honors the exact prompt and line-oriented contract, just
// without history or in-line editing.
func (r *REPL) runPlain(stdin io.Reader, stdout io.Writer) int {
	sc := bufio.NewScanner(stdin)
	io.WriteString(stdout, prompt)
	for sc.Scan() {
		r.runLine(stdout, sc.Text())
		io.WriteString(stdout, prompt)
	}
	return 0
}

// runLine scans, parses, and interprets one line as a complete program,
// resetting both diagnostic flags first so an earlier line's error state
// can't bleed into this one.
func (r *REPL) runLine(stdout io.Writer, line string) {
	line = strings.TrimRight(line, " \t\r\n")
	if line == "" || line == ".exit" {
		return
	}

	r.diags.Reset()

	sc := scanner.New(line, r.diags)
	tokens := sc.Scan()

	p := parser.New(tokens, r.diags)
	stmts := p.Parse()

	if r.diags.HadError() {
		return
	}

	r.eval.Interpret(stmts)
}

// GlobalEnvironment exposes the session's persistent environment, mainly
// so callers embedding a REPL (tests) can seed or inspect bindings.
func (r *REPL) GlobalEnvironment() *environment.Environment {
	return r.eval.Globals
}
