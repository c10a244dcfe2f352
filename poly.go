package gf2

import (
	"fmt"
	"strings"
)

// BitPoly is a dense polynomial over GF(2), stored as a BitVector of
// coefficients where the coefficient of x^i sits at vector index i. The
// vector need not be monic — it may carry trailing zero coefficients — so
// Degree(), not Len(), is the authoritative measure of polynomial degree.
type BitPoly struct {
	coeffs *BitVector
}

// ZeroPoly returns the zero polynomial p(x) := 0.
func ZeroPoly() *BitPoly { return &BitPoly{coeffs: NewBitVector()} }

// OnePoly returns the constant polynomial p(x) := 1.
func OnePoly() *BitPoly { return &BitPoly{coeffs: Ones(1)} }

// ConstantPoly returns the constant polynomial p(x) := val.
func ConstantPoly(val bool) *BitPoly {
	v := Zeros(1)
	if val {
		Set(v, 0, true)
	}
	return &BitPoly{coeffs: v}
}

// ZerosPoly returns the polynomial 0*x^n + ... + 0, with n+1 coefficients,
// all zero.
func ZerosPoly(n int) *BitPoly { return &BitPoly{coeffs: Zeros(n + 1)} }

// OnesPoly returns the monic polynomial x^n + x^(n-1) + ... + x + 1.
func OnesPoly(n int) *BitPoly { return &BitPoly{coeffs: Ones(n + 1)} }

// XToThePoly returns the polynomial p(x) := x^n.
func XToThePoly(n int) *BitPoly {
	v := Zeros(n + 1)
	Set(v, n, true)
	return &BitPoly{coeffs: v}
}

// FromCoefficients wraps a BitVector of coefficients (consumed, not
// copied) as a bit-polynomial: coefficient i of the vector is the
// coefficient of x^i.
func FromCoefficients(coeffs *BitVector) *BitPoly { return &BitPoly{coeffs: coeffs} }

// RandomPoly returns a random polynomial of degree n: n+1 coefficients
// chosen uniformly at random, with the leading coefficient forced to 1
// when n > 0 so the result is genuinely of degree n.
func RandomPoly(n int) *BitPoly {
	coeffs := Random(n + 1)
	if n > 0 {
		Set(coeffs, n, true)
	}
	return &BitPoly{coeffs: coeffs}
}

// Degree returns the degree of the polynomial: the index of its highest
// set coefficient, or 0 for the zero or constant polynomials.
func (p *BitPoly) Degree() int {
	if d, ok := LastSet(p.coeffs); ok {
		return d
	}
	return 0
}

// IsZero reports whether p is some form of the zero polynomial.
func (p *BitPoly) IsZero() bool { return None(p.coeffs) }

// IsOne reports whether p is the constant polynomial 1.
func (p *BitPoly) IsOne() bool { return p.Degree() == 0 && p.coeffs.Len() >= 1 && Get(p.coeffs, 0) }

// IsConstant reports whether p has degree 0.
func (p *BitPoly) IsConstant() bool { return p.Degree() == 0 }

// IsMonic reports whether p carries no trailing zero coefficients.
func (p *BitPoly) IsMonic() bool { return TrailingZeros(p.coeffs) == 0 }

// Len returns the number of coefficients stored (may exceed Degree()+1).
func (p *BitPoly) Len() int { return p.coeffs.Len() }

// Coefficients returns the underlying coefficient vector.
func (p *BitPoly) Coefficients() *BitVector { return p.coeffs }

// Coeff returns the coefficient of x^i.
func (p *BitPoly) Coeff(i int) bool { return Get(p.coeffs, i) }

// SetCoeff sets the coefficient of x^i.
func (p *BitPoly) SetCoeff(i int, val bool) *BitPoly {
	if i >= p.coeffs.Len() {
		p.coeffs.Resize(i + 1)
	}
	Set(p.coeffs, i, val)
	return p
}

// Clear resets p to the zero polynomial.
func (p *BitPoly) Clear() *BitPoly {
	p.coeffs.Clear()
	return p
}

// Resize pads or truncates the coefficient vector to n entries.
func (p *BitPoly) Resize(n int) *BitPoly {
	p.coeffs.Resize(n)
	return p
}

// MakeMonic drops any trailing zero coefficients beyond Degree().
func (p *BitPoly) MakeMonic() *BitPoly {
	if !p.IsZero() {
		p.coeffs.Resize(p.Degree() + 1)
	}
	return p
}

// PlusEq adds rhs to p in place (GF(2) addition is XOR, so this also
// implements subtraction).
func (p *BitPoly) PlusEq(rhs *BitPoly) *BitPoly {
	if rhs.IsZero() {
		return p
	}
	if p.IsZero() {
		p.coeffs = FromStore(rhs.coeffs)
		return p
	}
	if p.coeffs.Len() < rhs.Degree()+1 {
		p.coeffs.Resize(rhs.Degree() + 1)
	}
	rhsWords := rhs.Degree()/bitsPerWord + 1
	for i := 0; i < rhsWords; i++ {
		p.coeffs.SetWord(i, p.coeffs.Word(i)^rhs.coeffs.Word(i))
	}
	return p
}

// Plus returns p + rhs as a new polynomial.
func (p *BitPoly) Plus(rhs *BitPoly) *BitPoly {
	return p.Clone().PlusEq(rhs)
}

// MinusEq is PlusEq: in GF(2) addition and subtraction coincide.
func (p *BitPoly) MinusEq(rhs *BitPoly) *BitPoly { return p.PlusEq(rhs) }

// Minus returns p - rhs: identical to Plus in GF(2).
func (p *BitPoly) Minus(rhs *BitPoly) *BitPoly { return p.Plus(rhs) }

// Clone returns an independent copy of p.
func (p *BitPoly) Clone() *BitPoly { return &BitPoly{coeffs: FromStore(p.coeffs)} }

// Squared returns p(x)^2 using the riffle identity that holds over GF(2):
// (sum a_i x^i)^2 = sum a_i x^(2i).
func (p *BitPoly) Squared() *BitPoly {
	if p.IsConstant() {
		return p.Clone()
	}
	dst := Zeros(2 * p.coeffs.Len())
	RiffledInto(dst, p.coeffs)
	return &BitPoly{coeffs: dst}
}

// TimesXToThe multiplies p by x^n in place and returns p.
func (p *BitPoly) TimesXToThe(n int) *BitPoly {
	newLen := p.Degree() + n + 1
	if p.coeffs.Len() < newLen {
		p.coeffs.Resize(newLen)
	}
	p.coeffs = p.coeffs.RightShift(n)
	p.coeffs.Resize(newLen)
	return p
}

// ConvolvedWith returns p * rhs, computed as the GF(2) convolution of
// their coefficient vectors.
func (p *BitPoly) ConvolvedWith(rhs *BitPoly) *BitPoly {
	if p.IsZero() || rhs.IsZero() {
		return ZeroPoly()
	}
	if p.IsOne() {
		return rhs.Clone()
	}
	if rhs.IsOne() {
		return p.Clone()
	}
	bits := ConvolvedWith(p.coeffs, rhs.coeffs)
	v := Zeros(len(bits))
	for i, b := range bits {
		if b {
			Set(v, i, true)
		}
	}
	return &BitPoly{coeffs: v}
}

// EvalBool evaluates p(x) at the scalar x in GF(2).
func (p *BitPoly) EvalBool(x bool) bool {
	if p.IsZero() {
		return false
	}
	if !x {
		return p.Coeff(0)
	}
	liveWords := p.Degree()/bitsPerWord + 1
	var sum Word
	for i := 0; i < liveWords; i++ {
		sum ^= p.coeffs.Word(i)
	}
	return countOnesWord(sum)%2 == 1
}

func countOnesWord(w Word) int {
	n := 0
	for w != 0 {
		n += int(w & 1)
		w >>= 1
	}
	return n
}

// EvalMatrix evaluates p(M) via Horner's method for a square bit-matrix M,
// returning the result as a new bit-matrix. Panics if M is not square.
func (p *BitPoly) EvalMatrix(m *BitMatrix) *BitMatrix {
	if m.Rows() != m.Cols() {
		panic(fmt.Sprintf("BitMatrix must be square not %dx%d", m.Rows(), m.Cols()))
	}
	if p.IsZero() {
		return ZerosMatrix(m.Rows(), m.Cols())
	}
	result := Identity(m.Rows())
	d := p.Degree()
	for d > 0 {
		result = result.Multiply(m)
		if p.Coeff(d - 1) {
			result.AddIdentity()
		}
		d--
	}
	return result
}

// ReduceXToThe returns x^n mod p(x). Panics if p is the zero polynomial.
func (p *BitPoly) ReduceXToThe(n int) *BitPoly { return p.ReduceXToPower(n, false) }

// ReduceXToThe2ToThe returns x^(2^n) mod p(x). Panics if p is the zero
// polynomial.
func (p *BitPoly) ReduceXToThe2ToThe(n int) *BitPoly { return p.ReduceXToPower(n, true) }

// ReduceXToPower returns x^e mod p(x), where e = n if nIsExponent is
// false, or e = 2^n (arbitrarily large) if nIsExponent is true. Computed
// by square-and-multiply over precomputed residues x^(d+i) mod p(x).
// Panics if p is the zero polynomial.
func (p *BitPoly) ReduceXToPower(n int, nIsExponent bool) *BitPoly {
	if p.IsZero() {
		panic("... mod P(x) is undefined if P(x) := 0")
	}
	if p.IsOne() {
		return ZeroPoly()
	}
	if n == 0 && !nIsExponent {
		return OnePoly()
	}

	d := p.Degree()
	if d == 1 {
		return ConstantPoly(p.Coeff(0))
	}

	residue := p.coeffs.Slice(0, d)
	pLow := FromStore(residue)

	timesXStep := func(q *BitVector) {
		addP := Get(q, d-1)
		shifted := q.RightShift(1)
		*q = *shifted
		if addP {
			q.XorEq(pLow)
		}
	}

	powerMod := make([]*BitVector, d)
	powerMod[0] = FromStore(pLow)
	for i := 1; i < d; i++ {
		q := FromStore(powerMod[i-1])
		timesXStep(q)
		powerMod[i] = q
	}

	squareStep := func(q *BitVector) {
		s := Zeros(2 * d)
		RiffledInto(s, q)
		lowBits := s.Slice(0, d)
		hiBits := s.Slice(d, 2*d)
		low := FromStore(lowBits)
		high := FromStore(hiBits)
		*q = *low
		if hFirst, ok := FirstSet(high); ok {
			hLast, _ := LastSet(high)
			for i := hFirst; i <= hLast; i += 2 {
				if Get(high, i) {
					q.XorEq(powerMod[i])
				}
			}
		}
	}

	if nIsExponent {
		r := Zeros(d)
		Set(r, 1, true)
		for i := 0; i < n; i++ {
			squareStep(r)
		}
		return FromCoefficients(r)
	}

	if n < d {
		return XToThePoly(n)
	}
	if n == d {
		return FromCoefficients(FromStore(pLow))
	}

	nBit := prevPowerOfTwo(n)
	r := Zeros(d)
	Set(r, 1, true)
	nBit >>= 1
	for nBit > 0 {
		squareStep(r)
		if n&nBit != 0 {
			timesXStep(r)
		}
		nBit >>= 1
	}
	return FromCoefficients(r)
}

func prevPowerOfTwo(n int) int {
	if n == 0 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// String implements fmt.Stringer with the compact "1 + x + x^2" form,
// omitting zero-coefficient terms.
func (p *BitPoly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := 0; i <= p.Degree(); i++ {
		if !p.Coeff(i) {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		switch i {
		case 0:
			b.WriteString("1")
		case 1:
			b.WriteString("x")
		default:
			fmt.Fprintf(&b, "x^%d", i)
		}
	}
	return b.String()
}

// ToFullString renders every term from x^0 to x^Degree(), including zero
// coefficients, e.g. "1 + 0x + x^2".
func (p *BitPoly) ToFullString() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i := 0; i <= p.Degree(); i++ {
		if i > 0 {
			b.WriteString(" + ")
		}
		coeff := ""
		if !p.Coeff(i) {
			coeff = "0"
		}
		switch i {
		case 0:
			if coeff == "0" {
				b.WriteString("0")
			} else {
				b.WriteString("1")
			}
		case 1:
			fmt.Fprintf(&b, "%sx", coeff)
		default:
			fmt.Fprintf(&b, "%sx^%d", coeff, i)
		}
	}
	return b.String()
}

// Describe returns a multi-line diagnostic dump of the polynomial's
// coefficient store.
func (p *BitPoly) Describe() string { return Describe(p.coeffs) }
