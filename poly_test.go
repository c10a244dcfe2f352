package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolyConstructorsAndPredicates(t *testing.T) {
	assert.True(t, ZeroPoly().IsZero())
	assert.True(t, OnePoly().IsOne())
	assert.True(t, ConstantPoly(true).IsOne())
	assert.True(t, ConstantPoly(false).IsZero())

	x2 := XToThePoly(2)
	assert.Equal(t, 2, x2.Degree())
	assert.True(t, x2.IsMonic())
	assert.False(t, x2.IsConstant())

	ones2 := OnesPoly(2)
	assert.Equal(t, 2, ones2.Degree())
	assert.True(t, ones2.IsMonic())
	assert.Equal(t, "1 + x + x^2", ones2.String())
}

func TestPolyPlusEq(t *testing.T) {
	p := XToThePoly(2)
	q := OnesPoly(2)
	p.PlusEq(q)
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, "1 + x", p.String())
}

func TestPolySquared(t *testing.T) {
	p := OnesPoly(1) // 1 + x
	sq := p.Squared()
	assert.Equal(t, "1010", sq.Coefficients().String())
	assert.Equal(t, "1 + x^2", sq.String())
}

func TestPolyConvolvedWith(t *testing.T) {
	p := OnesPoly(1)   // 1 + x
	q := XToThePoly(1) // x
	prod := p.ConvolvedWith(q)
	assert.Equal(t, "x + x^2", prod.String())
}

func TestPolyEvalBool(t *testing.T) {
	p := OnesPoly(2) // 1 + x + x^2
	assert.True(t, p.EvalBool(true))
	assert.True(t, p.EvalBool(false))

	x2 := XToThePoly(2)
	assert.True(t, x2.EvalBool(true))
	assert.False(t, x2.EvalBool(false))
}

func TestPolyEvalMatrixIdentity(t *testing.T) {
	p := XToThePoly(2)
	m := Identity(2)
	result := p.EvalMatrix(m)
	assert.True(t, result.IsIdentity())
}

func TestReduceXToThe(t *testing.T) {
	p := OnesPoly(2) // x^2 + x + 1

	assert.True(t, p.ReduceXToThe(0).IsOne())
	assert.Equal(t, "x", p.ReduceXToThe(1).String())
	assert.Equal(t, "1 + x", p.ReduceXToThe(2).String())
	assert.True(t, p.ReduceXToThe(3).IsOne())
}

func TestReduceXToThe2ToThe(t *testing.T) {
	p := OnesPoly(2) // x^2 + x + 1
	assert.Equal(t, "1 + x", p.ReduceXToThe2ToThe(1).String())
}

func TestPolyStringFormats(t *testing.T) {
	p := XToThePoly(2)
	assert.Equal(t, "x^2", p.String())
	assert.Equal(t, "0 + 0x + x^2", p.ToFullString())
	assert.Equal(t, "0", ZeroPoly().String())
}
