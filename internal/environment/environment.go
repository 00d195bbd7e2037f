/*
File   : gsc/internal/environment/environment.go
Package: environment
*/

// Package environment implements GSC's lexical scope chain: a mapping
// from identifier name to value.Value, plus a link to an enclosing
// Environment. Lookups and assignments walk upward; definitions always
// land in the innermost environment.
//
// Grounded on akashmaji946-go-mix's scope.Scope, trimmed to the four
// operations spec.md §4.4 actually names (no Consts/LetVars/LetTypes
// tracking, no Copy-for-closures — GSC has no const/let variants and no
// closures to capture). The parent-pointer chain of Scope carries over
// unchanged; the map here is allocated up front in New rather than lazily.
package environment

import "github.com/akashmaji946/gsc/internal/value"

// Environment is one scope frame: its own bindings plus a link to the
// enclosing frame. nil Parent marks the global environment.
type Environment struct {
	values map[string]value.Value
	Parent *Environment
}

// New creates an Environment enclosed by parent. Pass nil to create the
// global environment.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Parent: parent}
}

// Define binds name to v in THIS environment only, always writing into
// the innermost scope regardless of whether an outer scope already binds
// the same name (shadowing) or this scope already does (silent
// redeclaration replaces the slot).
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves name by searching this environment and then each enclosing
// environment in turn. It returns an error if name was never defined
// anywhere on the chain.
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, errUndefined(name)
}

// Assign updates the binding for name in the innermost environment that
// already defines it, searching outward from this one. It returns an
// error if no environment on the chain defines name — assignment never
// implicitly creates a binding.
func (e *Environment) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return errUndefined(name)
}

// undefinedVariableError is a sentinel distinguishing "name not found" so
// the interpreter can wrap it with the offending token to build a
// diagnostics.RuntimeError.
type undefinedVariableError struct{ name string }

func (e *undefinedVariableError) Error() string {
	return "Undefined variable '" + e.name + "'."
}

func errUndefined(name string) error { return &undefinedVariableError{name: name} }

// IsUndefinedVariable reports whether err originated from a failed Get or
// Assign, as opposed to some other error.
func IsUndefinedVariable(err error) bool {
	_, ok := err.(*undefinedVariableError)
	return ok
}
