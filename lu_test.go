package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPAEqualsLU(t *testing.T, a *BitMatrix, lu *BitLU) {
	t.Helper()
	pa := lu.P().Multiply(a)
	lTimesU := lu.L().Multiply(lu.U())
	assert.Equal(t, pa.ToBinaryString(), lTimesU.ToBinaryString())
}

func TestBitLUTriangularMatrixNoSwaps(t *testing.T) {
	a, _ := FromMatrixString("110;010;001")
	lu := a.LUDecomposition()

	assert.Equal(t, 3, lu.Rank())
	assert.False(t, lu.IsSingular())
	assert.True(t, lu.Determinant())
	assert.Equal(t, []int{0, 1, 2}, lu.Swaps())
	assert.Equal(t, []int{0, 1, 2}, lu.PermutationVector())
	assert.True(t, lu.P().IsIdentity())

	assertPAEqualsLU(t, a, lu)
}

func TestBitLURequiringRowSwap(t *testing.T) {
	a, _ := FromMatrixString("011;100;001")
	lu := a.LUDecomposition()

	assert.Equal(t, 3, lu.Rank())
	assert.False(t, lu.IsSingular())
	assertPAEqualsLU(t, a, lu)
}

func TestBitLUSolvesX(t *testing.T) {
	a, _ := FromMatrixString("110;010;001")
	lu := a.LUDecomposition()

	b := mustVec("100")
	x, ok := lu.X(b)
	assert.True(t, ok)
	assert.Equal(t, b.String(), a.Dot(x).String())
}

func TestBitLUInverse(t *testing.T) {
	a, _ := FromMatrixString("110;010;001")
	lu := a.LUDecomposition()

	inv, ok := lu.Inverse()
	assert.True(t, ok)
	assert.True(t, a.Multiply(inv).IsIdentity())
	assert.True(t, inv.Multiply(a).IsIdentity())
}

func TestBitLUSingularMatrix(t *testing.T) {
	a := OnesMatrix(2, 2)
	lu := a.LUDecomposition()

	assert.True(t, lu.IsSingular())
	assert.Equal(t, 1, lu.Rank())
	assert.False(t, lu.Determinant())

	_, ok := lu.X(mustVec("11"))
	assert.False(t, ok)

	_, ok = lu.Inverse()
	assert.False(t, ok)
}

func TestBitLUAgreesWithMatrixXFor(t *testing.T) {
	a := LeftRotationMatrix(5, 2)
	lu := a.LUDecomposition()
	assert.False(t, lu.IsSingular())

	b := mustVec("10110")
	x, ok := lu.X(b)
	assert.True(t, ok)
	assert.Equal(t, b.String(), a.Dot(x).String())

	xFor, ok := a.XFor(b)
	assert.True(t, ok)
	assert.Equal(t, xFor.String(), x.String())
}
