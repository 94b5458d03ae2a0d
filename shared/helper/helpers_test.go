package helper_test

import (
	"testing"

	"github.com/on-the-ground/funtom_go/shared/helper"

	"github.com/stretchr/testify/assert"
)

func TestTypedValueOf(t *testing.T) {
	v, ok := helper.TypedValueOf[int](42)
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = helper.TypedValueOf[string](42)
	assert.False(t, ok)

	_, ok = helper.TypedValueOf[int](nil)
	assert.False(t, ok)
}

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	var s []int
	var f func()
	var e error

	assert.True(t, helper.IsNil(nil))
	assert.True(t, helper.IsNil(p))
	assert.True(t, helper.IsNil(m))
	assert.True(t, helper.IsNil(s))
	assert.True(t, helper.IsNil(f))
	assert.True(t, helper.IsNil(e))

	n := 0
	assert.False(t, helper.IsNil(&n))
	assert.False(t, helper.IsNil(0))
	assert.False(t, helper.IsNil(""))
	assert.False(t, helper.IsNil([]int{}))
}

func TestIsZero(t *testing.T) {
	assert.True(t, helper.IsZero(0))
	assert.True(t, helper.IsZero(""))
	assert.True(t, helper.IsZero(false))
	assert.True(t, helper.IsZero[error](nil))
	assert.True(t, helper.IsZero(struct{ A int }{}))

	assert.False(t, helper.IsZero(1))
	assert.False(t, helper.IsZero("a"))
	assert.False(t, helper.IsZero(true))
	assert.False(t, helper.IsZero([]int{}))
}
