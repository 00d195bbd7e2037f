/*
File   : gsc/internal/ast/printer.go
Package: ast
*/

package ast

import (
	"fmt"
	"strings"
)

// PrintExpr renders an expression in the fully-parenthesized Lisp-like form
// used by the original_source's AstPrinter (lib/dbg/astPrinter.hpp):
// `(+ 1 2)`, `(group (+ 1 2))`. Adapted here to GSC's closed Expr sum type
// and reachable from the CLI in file mode through the GSC_DEBUG_AST
// environment variable rather than a separate binary, per SPEC_FULL.md's
// supplemented-features section.
func PrintExpr(e Expr) string {
	switch n := e.(type) {
	case Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case Grouping:
		return parenthesize("group", n.Inner)
	case Unary:
		return parenthesize(n.Op.Lexeme, n.Right)
	case Binary:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case Logical:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case Variable:
		return n.Name.Lexeme
	case Assign:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(PrintExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}

// PrintStmt renders a single statement for the GSC_DEBUG_AST debug dump. Blocks
// recurse with one extra level of indentation, matching the nesting a
// reader would expect from the source's brace structure.
func PrintStmt(s Stmt, indent int) string {
	pad := strings.Repeat("  ", indent)
	switch n := s.(type) {
	case Expression:
		return pad + PrintExpr(n.Expr) + ";"
	case Print:
		return pad + "(print " + PrintExpr(n.Expr) + ")"
	case Var:
		if n.Init == nil {
			return pad + "(var " + n.Name.Lexeme + ")"
		}
		return pad + "(var " + n.Name.Lexeme + " " + PrintExpr(n.Init) + ")"
	case Block:
		var b strings.Builder
		b.WriteString(pad + "(block\n")
		for _, stmt := range n.Statements {
			b.WriteString(PrintStmt(stmt, indent+1))
			b.WriteByte('\n')
		}
		b.WriteString(pad + ")")
		return b.String()
	case If:
		var b strings.Builder
		b.WriteString(pad + "(if " + PrintExpr(n.Condition) + "\n")
		b.WriteString(PrintStmt(n.Then, indent+1))
		if n.Else != nil {
			b.WriteByte('\n')
			b.WriteString(PrintStmt(n.Else, indent+1))
		}
		b.WriteString(")")
		return b.String()
	case While:
		var b strings.Builder
		b.WriteString(pad + "(while " + PrintExpr(n.Condition) + "\n")
		b.WriteString(PrintStmt(n.Body, indent+1))
		b.WriteString(")")
		return b.String()
	default:
		return fmt.Sprintf("%s<unknown stmt %T>", pad, s)
	}
}

// PrintProgram renders a full statement list, one top-level form per line.
func PrintProgram(stmts []Stmt) string {
	var b strings.Builder
	for i, s := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(PrintStmt(s, 0))
	}
	return b.String()
}
