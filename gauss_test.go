package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitGaussUnderdeterminedSystem(t *testing.T) {
	a := OnesMatrix(3, 3)
	b := Ones(3)

	g := NewBitGauss(a, b)
	assert.Equal(t, 1, g.Rank())
	assert.Equal(t, 2, g.FreeCount())
	assert.True(t, g.IsUnderdetermined())
	assert.True(t, g.IsConsistent())
	assert.Equal(t, 4, g.SolutionCount())

	x0, ok := g.Xi(0)
	assert.True(t, ok)
	assert.Equal(t, "100", x0.String())

	x1, ok := g.Xi(1)
	assert.True(t, ok)
	assert.Equal(t, "010", x1.String())

	x2, ok := g.Xi(2)
	assert.True(t, ok)
	assert.Equal(t, "001", x2.String())

	x3, ok := g.Xi(3)
	assert.True(t, ok)
	assert.Equal(t, "111", x3.String())

	for _, x := range []*BitVector{x0, x1, x2, x3} {
		assert.Equal(t, b.String(), a.Dot(x).String())
	}
}

func TestBitGaussDeterminedSystem(t *testing.T) {
	a := Identity(3)
	b := mustVec("101")

	g := NewBitGauss(a, b)
	assert.Equal(t, 3, g.Rank())
	assert.Equal(t, 0, g.FreeCount())
	assert.False(t, g.IsUnderdetermined())
	assert.Equal(t, 1, g.SolutionCount())

	x, ok := g.X()
	assert.True(t, ok)
	assert.Equal(t, "101", x.String())
}

func TestBitGaussInconsistentSystem(t *testing.T) {
	a := ZerosMatrix(2, 2)
	b := mustVec("11")

	g := NewBitGauss(a, b)
	assert.False(t, g.IsConsistent())
	assert.Equal(t, 0, g.SolutionCount())

	_, ok := g.X()
	assert.False(t, ok)
}

func TestMatrixXForMatchesGauss(t *testing.T) {
	a, _ := FromMatrixString("110;011;101")
	b := mustVec("101")
	x, ok := a.XFor(b)
	assert.True(t, ok)
	assert.Equal(t, b.String(), a.Dot(x).String())
}
