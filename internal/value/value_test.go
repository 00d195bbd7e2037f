/*
File   : gsc/internal/value/value_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		Value Value
		Want  bool
	}{
		{Nil{}, false},
		{Bool{Value: false}, false},
		{Bool{Value: true}, true},
		{Int{Value: 0}, false},
		{Int{Value: 1}, true},
		{Int{Value: -1}, true},
		{Str{Value: ""}, false},
		{Str{Value: "x"}, true},
	}
	for _, test := range tests {
		assert.Equal(t, test.Want, Truthy(test.Value), "Truthy(%v)", test.Value)
	}
}

func TestEqual_SameVariant(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Bool{Value: true}, Bool{Value: true}))
	assert.False(t, Equal(Bool{Value: true}, Bool{Value: false}))
	assert.True(t, Equal(Int{Value: 3}, Int{Value: 3}))
	assert.False(t, Equal(Int{Value: 3}, Int{Value: 4}))
	assert.True(t, Equal(Str{Value: "a"}, Str{Value: "a"}))
	assert.False(t, Equal(Str{Value: "a"}, Str{Value: "b"}))
}

func TestEqual_DifferentVariantsNeverEqual(t *testing.T) {
	assert.False(t, Equal(Int{Value: 0}, Bool{Value: false}))
	assert.False(t, Equal(Nil{}, Bool{Value: false}))
	assert.False(t, Equal(Str{Value: ""}, Nil{}))
	assert.False(t, Equal(Int{Value: 1}, Str{Value: "1"}))
}

func TestString(t *testing.T) {
	assert.Equal(t, "nil", Nil{}.String())
	assert.Equal(t, "true", Bool{Value: true}.String())
	assert.Equal(t, "false", Bool{Value: false}.String())
	assert.Equal(t, "42", Int{Value: 42}.String())
	assert.Equal(t, "-7", Int{Value: -7}.String())
	assert.Equal(t, "hi", Str{Value: "hi"}.String())
}

func TestType(t *testing.T) {
	assert.Equal(t, NilType, Nil{}.Type())
	assert.Equal(t, BoolType, Bool{}.Type())
	assert.Equal(t, IntType, Int{}.Type())
	assert.Equal(t, StrType, Str{}.Type())
}
