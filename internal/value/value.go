/*
File   : gsc/internal/value/value.go
Package: value
*/

// Package value defines GSC's runtime value domain: the tagged union
// Nil | Bool | Int | Str. No other variants are representable — every
// GSC expression evaluates to exactly one of these four.
//
// Grounded on akashmaji946-go-mix's objects package (GoMixObject /
// Integer / String / Boolean / Nil), trimmed to the four variants GSC's
// Non-goals leave standing: no Float, Error-as-value, Array, Map, Set,
// List, Tuple, Range, Function, or Struct type belongs here, since GSC has
// no floats, collections, or functions.
package value

import "fmt"

// Type identifies which variant of the value domain a Value holds.
type Type string

const (
	NilType  Type = "nil"
	BoolType Type = "bool"
	IntType  Type = "int"
	StrType  Type = "string"
)

// Value is the interface every GSC runtime value implements. Dispatch over
// the four variants is always explicit (a type switch or a Type()
// check), never double-dispatch — there being exactly four variants makes
// an exhaustive switch easy to keep honest.
type Value interface {
	Type() Type
	String() string
}

// Nil is the singleton nil value.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// Bool wraps a GSC boolean.
type Bool struct{ Value bool }

func (b Bool) Type() Type { return BoolType }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Int wraps a 64-bit signed GSC integer.
type Int struct{ Value int64 }

func (i Int) Type() Type     { return IntType }
func (i Int) String() string { return fmt.Sprintf("%d", i.Value) }

// Str wraps immutable GSC text.
type Str struct{ Value string }

func (s Str) Type() Type     { return StrType }
func (s Str) String() string { return s.Value }

// Truthy implements GSC's truthiness rule (spec-frozen, deliberately not
// Lox's): Nil, Bool(false), Int(0), and the empty Str are falsy; every
// other value, including Int of any other value and any non-empty Str, is
// truthy. Verified against original_source's Interpreter::isTruthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return t.Value
	case Int:
		return t.Value != 0
	case Str:
		return t.Value != ""
	default:
		return true
	}
}

// Equal implements GSC's total equality over values: values of different
// variants are never equal, and Nil == Nil is true. There is no implicit
// coercion between variants.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case Int:
		bv, ok := b.(Int)
		return ok && av.Value == bv.Value
	case Str:
		bv, ok := b.(Str)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}
