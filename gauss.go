package gf2

// BitGauss solves a system of linear equations A.x = b over GF(2) by
// Gaussian elimination. It is built once from A and b and can then answer
// rank/consistency queries and enumerate every solution of an
// underdetermined system.
type BitGauss struct {
	aRef          *BitMatrix
	bRef          *BitVector
	rank          int
	free          []int
	solutionCount int
}

// NewBitGauss constructs a solver for the system A.x = b. Panics if A is
// not square or if A and b disagree on row count.
func NewBitGauss(a *BitMatrix, b *BitVector) *BitGauss {
	if !a.IsSquare() {
		panic("bit-matrix must be square")
	}
	if a.Rows() != b.Len() {
		panic("the matrix and vector must have the same number of rows")
	}

	aRef := a.Clone()
	aRef.AppendCol(b)

	hasPivot := aRef.ToReducedEchelonForm()

	bRef, _ := aRef.RemoveCol()
	hasPivot.Resize(hasPivot.Len() - 1)

	rank := CountOnes(hasPivot)

	FlipAll(hasPivot)
	free := Indices(hasPivot, true)

	consistent := true
	for i := rank; i < aRef.Rows(); i++ {
		if Get(bRef, i) {
			consistent = false
			break
		}
	}

	solutionCount := 0
	if consistent {
		actPow := len(free)
		maxPow := 62
		if actPow > maxPow {
			actPow = maxPow
		}
		solutionCount = 1 << uint(actPow)
	}

	return &BitGauss{aRef: aRef, bRef: bRef, rank: rank, free: free, solutionCount: solutionCount}
}

// Rank returns the rank of A.
func (g *BitGauss) Rank() int { return g.rank }

// FreeCount returns the number of free variables in the system.
func (g *BitGauss) FreeCount() int { return len(g.free) }

// IsUnderdetermined reports whether the system has any free variables.
func (g *BitGauss) IsUnderdetermined() bool { return len(g.free) > 0 }

// IsConsistent reports whether the system A.x = b has at least one solution.
func (g *BitGauss) IsConsistent() bool { return g.solutionCount > 0 }

// X returns a solution to A.x = b, or (nil, false) if the system is
// inconsistent. Free variables, if any, take random values.
func (g *BitGauss) X() (*BitVector, bool) {
	if !g.IsConsistent() {
		return nil, false
	}
	result := Random(g.bRef.Len())
	g.backSubstituteInto(result)
	return result, true
}

// SolutionCount returns the number of solutions this system has: 0 if
// inconsistent, otherwise 2^f for f free variables, capped at 2^62 (the
// largest power of two an int holds).
func (g *BitGauss) SolutionCount() int { return g.solutionCount }

// Xi returns the i-th solution (of SolutionCount() many) to A.x = b, or
// (nil, false) if the system is inconsistent or i is out of range. When
// the system is fully determined, Xi(0) equals X().
func (g *BitGauss) Xi(i int) (*BitVector, bool) {
	if !g.IsConsistent() {
		return nil, false
	}
	if i < 0 || i >= g.solutionCount {
		return nil, false
	}
	x := Zeros(g.bRef.Len())
	for _, f := range g.free {
		Set(x, f, i&1 != 0)
		i >>= 1
	}
	g.backSubstituteInto(x)
	return x, true
}

// backSubstituteInto overwrites the non-free entries of x by back
// substitution through the reduced row echelon form of A.
func (g *BitGauss) backSubstituteInto(x *BitVector) {
	for i := g.rank - 1; i >= 0; i-- {
		j, _ := FirstSet(g.aRef.Row(i))
		Set(x, j, Get(g.bRef, i))
		for k := j + 1; k < x.Len(); k++ {
			if Get(g.aRef.Row(i), k) {
				Set(x, j, Get(x, j) != Get(x, k))
			}
		}
	}
}
