package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ny0m/gf2/internal/naive"
)

func toNaiveVec(v *BitVector) naive.Vector {
	out := make(naive.Vector, v.Len())
	for i := range out {
		out[i] = Get(v, i)
	}
	return out
}

func fromNaiveVec(v naive.Vector) *BitVector {
	out := Zeros(len(v))
	for i, b := range v {
		if b {
			Set(out, i, true)
		}
	}
	return out
}

func toNaive(m *BitMatrix) naive.Matrix {
	out := naive.NewMatrix(m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out[i][j] = m.Get(i, j)
		}
	}
	return out
}

func fromNaive(m naive.Matrix) *BitMatrix {
	r := len(m)
	c := 0
	if r > 0 {
		c = len(m[0])
	}
	out := ZerosMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m[i][j] {
				out.Set(i, j, true)
			}
		}
	}
	return out
}

func TestRankAgreesWithNaiveGaussianElimination(t *testing.T) {
	cases := []string{
		"110;011;101",
		"110;010;001",
		"1010;0110;0011;1001",
		"111;111;111",
	}
	for _, s := range cases {
		m, ok := FromMatrixString(s)
		assert.True(t, ok, s)

		hasPivot := m.Clone().ToEchelonForm()
		got := CountOnes(hasPivot)
		want := naive.Rank(toNaive(m))
		assert.Equal(t, want, got, "matrix %s", s)
	}
}

func TestInverseAgreesWithNaiveGaussJordan(t *testing.T) {
	cases := []string{
		"110;010;001",
		"1010;0110;0011;1001",
	}
	for _, s := range cases {
		m, ok := FromMatrixString(s)
		assert.True(t, ok, s)

		got, gotOK := m.Inverse()
		wantNaive, wantOK := naive.Inverse(toNaive(m))
		assert.Equal(t, wantOK, gotOK, "matrix %s", s)
		if wantOK {
			assert.Equal(t, fromNaive(wantNaive).ToBinaryString(), got.ToBinaryString(), "matrix %s", s)
		}
	}
}

func TestSingularMatrixAgreesOnNonInvertibility(t *testing.T) {
	m, ok := FromMatrixString("110;011;101")
	assert.True(t, ok)

	_, gotOK := m.Inverse()
	_, wantOK := naive.Inverse(toNaive(m))
	assert.False(t, gotOK)
	assert.False(t, wantOK)
}

func TestMatrixVectorAgreesWithNaive(t *testing.T) {
	m, ok := FromMatrixString("110;011;101")
	assert.True(t, ok)
	v := mustVec("101")

	got := m.Dot(v)
	want := naive.MatrixVector(toNaive(m), toNaiveVec(v))
	assert.Equal(t, fromNaiveVec(want).String(), got.String())
}

func TestMatrixMatrixAgreesWithNaive(t *testing.T) {
	a, _ := FromMatrixString("110;011;101")
	b, _ := FromMatrixString("100;010;001")

	got := a.Multiply(b)
	want := naive.MatrixMatrix(toNaive(a), toNaive(b))
	assert.Equal(t, fromNaive(want).ToBinaryString(), got.ToBinaryString())
}

func TestTransposeAgreesWithNaive(t *testing.T) {
	m, _ := FromMatrixString("110;011;101")

	want := naive.Transpose(toNaive(m))
	got := m.Transpose()
	assert.Equal(t, fromNaive(want).ToBinaryString(), got.ToBinaryString())
}

func TestNaiveIdentityAndXorAgreeWithPacked(t *testing.T) {
	want := naive.Identity(3)
	got := Identity(3)
	assert.Equal(t, fromNaive(want).ToBinaryString(), got.ToBinaryString())

	a := naive.Vector{true, false, true}
	b := naive.Vector{true, true, false}
	gotXor := mustVec("101").Clone().XorEq(mustVec("110"))
	assert.Equal(t, fromNaiveVec(naive.Xor(a, b)).String(), gotXor.String())
}
