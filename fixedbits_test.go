package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedBitsBasic(t *testing.T) {
	f := NewFixedBits(10)
	assert.Equal(t, 10, f.Len())
	assert.True(t, None(f))

	Set(f, 3, true)
	Set(f, 9, true)
	assert.Equal(t, "0001000001", f.String())
	assert.Equal(t, 2, CountOnes(f))
}

func TestFixedBitsSlice(t *testing.T) {
	f := NewFixedBits(16)
	Set(f, 4, true)
	Set(f, 5, true)
	Set(f, 11, true)

	s := f.Slice(4, 12)
	assert.Equal(t, 8, s.Len())
	assert.True(t, Get(s, 0))
	assert.True(t, Get(s, 1))
	assert.True(t, Get(s, 7))
	assert.False(t, Get(s, 2))
}

func TestFixedBitsImplementsStore(t *testing.T) {
	var s Store = NewFixedBits(5)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 0, s.Offset())
}
