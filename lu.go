package gf2

import "sort"

// BitLU is the LU decomposition of a square bit-matrix A: a unit lower
// triangular L, an upper triangular U, and a permutation P such that
// P.A = L.U. L and U are packed into a single matrix and P is stored as
// a LAPACK-style row swap list.
type BitLU struct {
	lu    *BitMatrix
	swaps []int
	rank  int
}

// NewBitLU computes the LU decomposition of a square bit-matrix A via
// Gaussian elimination with partial pivoting. Works even when A is
// singular, though the solver methods then report no solution. Panics if
// A is not square.
func NewBitLU(a *BitMatrix) *BitLU {
	if !a.IsSquare() {
		panic("bit-matrix must be square")
	}

	lu := a.Clone()
	n := a.Rows()
	swaps := make([]int, n)
	rank := n

	for j := 0; j < n; j++ {
		swaps[j] = j

		p := j
		for p < n && !lu.Get(p, j) {
			p++
		}

		if p == n {
			rank--
			continue
		}

		if p != j {
			lu.SwapRows(p, j)
			swaps[j] = p
		}

		for i := j + 1; i < n; i++ {
			if lu.Get(i, j) {
				for k := j + 1; k < a.Cols(); k++ {
					Set(lu.rows[i], k, lu.Get(i, k) != lu.Get(j, k))
				}
			}
		}
	}

	return &BitLU{lu: lu, swaps: swaps, rank: rank}
}

// Rank returns the rank of A.
func (lu *BitLU) Rank() int { return lu.rank }

// IsSingular reports whether A is rank-deficient.
func (lu *BitLU) IsSingular() bool { return lu.rank < lu.lu.Rows() }

// Determinant returns the determinant of A as a boolean (1 or 0).
func (lu *BitLU) Determinant() bool { return !lu.IsSingular() }

// L returns an independent copy of the unit lower triangular factor.
func (lu *BitLU) L() *BitMatrix { return lu.lu.UnitLower() }

// U returns an independent copy of the upper triangular factor.
func (lu *BitLU) U() *BitMatrix { return lu.lu.Upper() }

// P returns the permutation matrix P such that P.A = L.U.
func (lu *BitLU) P() *BitMatrix {
	p := Identity(lu.lu.Rows())
	for i := 0; i < lu.lu.Rows(); i++ {
		p.SwapRows(i, lu.swaps[i])
	}
	return p
}

// Swaps returns the LAPACK-style row swap instructions backing P.
func (lu *BitLU) Swaps() []int { return lu.swaps }

// PermutationVector returns the row indices 0..n-1 stably sorted by their
// entry in Swaps(). This is not in general the row order of P.A: for
// Swaps() = [1, 1, 2] it returns [0, 1, 2] although row 0 of P.A is row 1
// of A.
func (lu *BitLU) PermutationVector() []int {
	n := lu.lu.Rows()
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	sort.SliceStable(p, func(i, j int) bool { return lu.swaps[p[i]] < lu.swaps[p[j]] })
	return p
}

// PermuteMatrix applies the stored row swaps to B in place. Panics if B's
// row count doesn't match the number of swap instructions.
func (lu *BitLU) PermuteMatrix(b *BitMatrix) {
	if b.Rows() != len(lu.swaps) {
		panic("bit-matrix row count does not match the number of row swap instructions")
	}
	for i := 0; i < b.Rows(); i++ {
		b.SwapRows(i, lu.swaps[i])
	}
}

// PermuteVector applies the stored row swaps to b in place. Panics if b's
// length doesn't match the number of swap instructions.
func (lu *BitLU) PermuteVector(b *BitVector) {
	if b.Len() != len(lu.swaps) {
		panic("bit-vector length does not match the number of row swap instructions")
	}
	for i := 0; i < b.Len(); i++ {
		Swap(b, i, lu.swaps[i])
	}
}

// X solves A.x = b for a single right-hand side, returning (nil, false)
// if A is singular. Panics if b's length doesn't match A's row count.
func (lu *BitLU) X(b *BitVector) (*BitVector, bool) {
	n := lu.lu.Rows()
	if b.Len() != n {
		panic("bit-vector length does not match the matrix's row count")
	}
	if lu.IsSingular() {
		return nil, false
	}

	x := FromStore(b)
	lu.PermuteVector(x)

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if lu.lu.Get(i, j) {
				Set(x, i, Get(x, i) != Get(x, j))
			}
		}
	}
	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if lu.lu.Get(i, j) {
				Set(x, i, Get(x, i) != Get(x, j))
			}
		}
	}
	return x, true
}

// XMatrix solves A.X = B for every column of B at once, returning (nil,
// false) if A is singular. Panics if B's row count doesn't match A's.
func (lu *BitLU) XMatrix(b *BitMatrix) (*BitMatrix, bool) {
	n := lu.lu.Rows()
	if b.Rows() != n {
		panic("right-hand side row count does not match the matrix's row count")
	}
	if lu.IsSingular() {
		return nil, false
	}

	x := b.Clone()
	lu.PermuteMatrix(x)

	for c := 0; c < b.Cols(); c++ {
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				if lu.lu.Get(i, j) {
					x.Set(i, c, x.Get(i, c) != x.Get(j, c))
				}
			}
		}
		for i := n - 1; i >= 0; i-- {
			for j := i + 1; j < n; j++ {
				if lu.lu.Get(i, j) {
					x.Set(i, c, x.Get(i, c) != x.Get(j, c))
				}
			}
		}
	}
	return x, true
}

// Inverse returns the inverse of A, or (nil, false) if A is singular.
func (lu *BitLU) Inverse() (*BitMatrix, bool) {
	if lu.IsSingular() {
		return nil, false
	}
	return lu.XMatrix(Identity(lu.lu.Rows()))
}
