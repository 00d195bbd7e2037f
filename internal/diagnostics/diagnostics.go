/*
File   : gsc/internal/diagnostics/diagnostics.go
Package: diagnostics
*/

// Package diagnostics centralizes error reporting and the two process-wide
// error flags (hadError, hadRuntimeError) shared by the scanner, parser,
// and evaluator.
//
// go-mix's parser collects its own []string of error messages
// (parser.Parser.Errors / HasErrors / GetErrors) rather than reaching for
// package-level globals; this package generalizes that pattern into a
// single context object shared across all three pipeline stages, per the
// "explicit diagnostics context" design note: the driver owns one instance,
// resets it between REPL lines, and passes it down instead of mutating
// process-global state.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/akashmaji946/gsc/internal/token"
)

// Diagnostics accumulates syntax/lexical error messages and tracks the two
// flags that downstream stages (driver, REPL) consult to decide whether to
// execute and what exit code to use.
type Diagnostics struct {
	Out io.Writer // destination for reported messages, typically os.Stderr

	hadError        bool
	hadRuntimeError bool
	messages        []string
}

// New creates a Diagnostics that writes reported messages to out.
func New(out io.Writer) *Diagnostics {
	return &Diagnostics{Out: out}
}

// Reset clears both error flags and the accumulated message list. The REPL
// calls this between lines so that a bad line doesn't poison the ones that
// follow.
func (d *Diagnostics) Reset() {
	d.hadError = false
	d.hadRuntimeError = false
	d.messages = nil
}

// HadError reports whether a lexical or parse error has been recorded
// since the last Reset.
func (d *Diagnostics) HadError() bool { return d.hadError }

// HadRuntimeError reports whether a runtime error has been recorded since
// the last Reset.
func (d *Diagnostics) HadRuntimeError() bool { return d.hadRuntimeError }

// Messages returns every diagnostic string recorded since the last Reset,
// in report order.
func (d *Diagnostics) Messages() []string { return d.messages }

// Error reports a bare lexical error at the given line: "[line N] Error :
// <message>". Sets hadError.
func (d *Diagnostics) Error(line int, message string) {
	d.report(line, "", message)
}

// ErrorAt reports a syntax error at a line, optionally annotated with a
// location ("at 'x'" or "at end"): "[line N] Error <where>: <message>".
// Sets hadError.
func (d *Diagnostics) ErrorAt(line int, where, message string) {
	d.report(line, where, message)
}

// ErrorAtToken reports a syntax error positioned at tok, formatting the
// location as "at end" for END_OF_FILE or "at '<lexeme>'" otherwise. This
// is the form the parser uses for every ParseError.
func (d *Diagnostics) ErrorAtToken(tok token.Token, message string) {
	if tok.Kind == token.END_OF_FILE {
		d.report(tok.Line, "at end", message)
	} else {
		d.report(tok.Line, fmt.Sprintf("at '%s'", tok.Lexeme), message)
	}
}

// report writes a syntax diagnostic and sets hadError.
func (d *Diagnostics) report(line int, where, message string) {
	var text string
	if where == "" {
		text = fmt.Sprintf("[line %d] Error : %s", line, message)
	} else {
		text = fmt.Sprintf("[line %d] Error %s: %s", line, where, message)
	}
	d.messages = append(d.messages, text)
	d.hadError = true
	if d.Out != nil {
		fmt.Fprintln(d.Out, text)
	}
}

// RuntimeError reports a runtime diagnostic: "<message>\n[line N]". Sets
// hadRuntimeError.
func (d *Diagnostics) RuntimeError(err *RuntimeError) {
	text := fmt.Sprintf("%s\n[line %d]", err.Message, err.Token.Line)
	d.messages = append(d.messages, text)
	d.hadRuntimeError = true
	if d.Out != nil {
		fmt.Fprintln(d.Out, text)
	}
}

// RuntimeError carries the offending token (for line/lexeme reporting) and
// a human-readable message. It is returned as an ordinary Go error from
// the evaluator, unwinding through statement execution (restoring
// environments on the way) until the top-level interpret loop catches it.
type RuntimeError struct {
	Token   token.Token
	Message string
}

// NewRuntimeError constructs a RuntimeError positioned at tok.
func NewRuntimeError(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}
