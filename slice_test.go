package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSliceBasic(t *testing.T) {
	v := Zeros(16)
	Set(v, 3, true)
	Set(v, 10, true)
	Set(v, 15, true)

	s := v.Slice(3, 12)
	assert.Equal(t, 9, s.Len())
	assert.True(t, Get(s, 0))
	assert.True(t, Get(s, 7))
	assert.False(t, Get(s, 8))
}

func TestBitSliceWriteThrough(t *testing.T) {
	v := Zeros(16)
	s := v.Slice(4, 12)
	Set(s, 0, true)
	Set(s, 7, true)
	assert.True(t, Get(v, 4))
	assert.True(t, Get(v, 11))
	assert.False(t, Get(v, 3))
	assert.False(t, Get(v, 12))
}

func TestBitSliceCrossingWordBoundaryWithOffset(t *testing.T) {
	v := Zeros(200)
	for i := 60; i < 70; i++ {
		Set(v, i, true)
	}
	s := v.Slice(65, 130)
	for i := 0; i < 5; i++ {
		assert.True(t, Get(s, i), "expected bit %d set", i)
	}
	for i := 5; i < s.Len(); i++ {
		assert.False(t, Get(s, i), "expected bit %d clear", i)
	}
}

func TestBitSliceSetWordDoesNotLeak(t *testing.T) {
	v := Zeros(20)
	SetAll(v, true)
	s := v.Slice(5, 15)
	SetAll(s, false)
	for i := 0; i < 5; i++ {
		assert.True(t, Get(v, i))
	}
	for i := 5; i < 15; i++ {
		assert.False(t, Get(v, i))
	}
	for i := 15; i < 20; i++ {
		assert.True(t, Get(v, i))
	}
}

func TestBitSliceString(t *testing.T) {
	v, _ := FromBinaryString("11010110")
	s := v.Slice(2, 6)
	assert.Equal(t, "0101", s.String())
}
