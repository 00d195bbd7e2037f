/*
File   : gsc/cmd/gsc/main.go
Package: main
*/

// Command gsc is the entry point for the GSC interpreter. It implements
// spec.md §6's exact CLI contract:
//
//	gsc              - zero arguments: start the REPL
//	gsc file.gsc     - one argument: run the file and exit
//	gsc a b ...      - two or more arguments: usage to stderr, nonzero exit
//
// Grounded on akashmaji946-go-mix's main/main.go for the overall
// driver shape (argv dispatch, colored stderr/stdout via fatih/color,
// a runFile/executeFile split), trimmed of --help/--version/server-mode
// — none of which spec.md's contract names — and of the panic-recovery
// wrapper, since this evaluator reports runtime errors as ordinary Go
// errors rather than panicking.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/gsc/internal/ast"
	"github.com/akashmaji946/gsc/internal/diagnostics"
	"github.com/akashmaji946/gsc/internal/interpreter"
	"github.com/akashmaji946/gsc/internal/parser"
	"github.com/akashmaji946/gsc/internal/repl"
	"github.com/akashmaji946/gsc/internal/scanner"
)

var redColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run implements the CLI contract and returns the process exit code,
// kept separate from main so it's a single ordinary function rather than
// a chain of os.Exit calls scattered through the dispatch logic.
func run(args []string) int {
	switch len(args) {
	case 0:
		return repl.New(os.Stdout, os.Stderr).Run(os.Stdin, os.Stdout)
	case 1:
		return runFile(args[0])
	default:
		redColor.Fprintln(os.Stderr, "Usage: gsc [script.gsc]")
		return 64
	}
}

// runFile reads, parses, and interprets a single source file, returning
// a nonzero exit code on file-open failure, a parse-time error
// (hadError), or a runtime error (hadRuntimeError) — the three nonzero
// cases spec.md §6 names for file mode.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not open file '%s': %v\n", path, err)
		return 66
	}

	diags := diagnostics.New(os.Stderr)

	sc := scanner.New(string(source), diags)
	tokens := sc.Scan()

	p := parser.New(tokens, diags)
	stmts := p.Parse()

	if diags.HadError() {
		return 65
	}

	if debugAST() {
		fmt.Fprintln(os.Stdout, ast.PrintProgram(stmts))
		return 0
	}

	in := interpreter.New(os.Stdout, diags)
	in.Interpret(stmts)

	if diags.HadRuntimeError() {
		return 70
	}
	return 0
}

// debugAST reports whether the GSC_DEBUG_AST environment variable asks
// for the parsed program to be dumped instead of executed — a supplemented
// debug aid (see internal/ast.PrintProgram), not part of the language.
func debugAST() bool {
	return os.Getenv("GSC_DEBUG_AST") != ""
}
