package gf2

import (
	"fmt"
	"strings"

	"github.com/ny0m/gf2/internal/rng"
)

// BitMatrix is a row-major bit-matrix: a slice of equal-length BitVector
// rows. Rows are the unit of storage so row access is cheap; column
// access must synthesize a fresh vector.
type BitMatrix struct {
	rows []*BitVector
}

// NewMatrix returns an empty (0x0) bit-matrix.
func NewMatrix() *BitMatrix { return &BitMatrix{} }

// ZerosMatrix returns an r x c matrix with every entry clear.
func ZerosMatrix(r, c int) *BitMatrix {
	rows := make([]*BitVector, r)
	for i := range rows {
		rows[i] = Zeros(c)
	}
	return &BitMatrix{rows: rows}
}

// SquareZeros returns an n x n matrix with every entry clear.
func SquareZeros(n int) *BitMatrix { return ZerosMatrix(n, n) }

// OnesMatrix returns an r x c matrix with every entry set.
func OnesMatrix(r, c int) *BitMatrix {
	rows := make([]*BitVector, r)
	for i := range rows {
		rows[i] = Ones(c)
	}
	return &BitMatrix{rows: rows}
}

// AlternatingMatrix returns an r x c matrix in a checkerboard pattern.
func AlternatingMatrix(r, c int) *BitMatrix {
	m := ZerosMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if (i+j)%2 == 0 {
				Set(m.rows[i], j, true)
			}
		}
	}
	return m
}

// FromOuterProduct returns the r x c matrix M[i][j] = a[i] AND b[j].
func FromOuterProduct(a, b *BitVector) *BitMatrix {
	m := ZerosMatrix(a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		if !Get(a, i) {
			continue
		}
		for j := 0; j < b.Len(); j++ {
			if Get(b, j) {
				Set(m.rows[i], j, true)
			}
		}
	}
	return m
}

// FromOuterSum returns the r x c matrix M[i][j] = a[i] XOR b[j].
func FromOuterSum(a, b *BitVector) *BitMatrix {
	m := ZerosMatrix(a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		ai := Get(a, i)
		for j := 0; j < b.Len(); j++ {
			if ai != Get(b, j) {
				Set(m.rows[i], j, true)
			}
		}
	}
	return m
}

// FromFunc returns an r x c matrix with entry (i,j) set to f(i,j).
func FromFunc(r, c int, f func(i, j int) bool) *BitMatrix {
	m := ZerosMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if f(i, j) {
				Set(m.rows[i], j, true)
			}
		}
	}
	return m
}

// RandomMatrix returns an r x c matrix with independent uniform bits.
func RandomMatrix(r, c int) *BitMatrix { return RandomBiasedMatrixSeeded(r, c, 0.5, 0) }

// RandomMatrixSeeded is RandomMatrix with a reproducible seed.
func RandomMatrixSeeded(r, c int, seed uint64) *BitMatrix {
	return RandomBiasedMatrixSeeded(r, c, 0.5, seed)
}

// RandomBiasedMatrix returns an r x c matrix with each bit set with
// probability p.
func RandomBiasedMatrix(r, c int, p float64) *BitMatrix {
	return RandomBiasedMatrixSeeded(r, c, p, 0)
}

// RandomBiasedMatrixSeeded is RandomBiasedMatrix with a reproducible seed
// (0 leaves the shared RNG's current state untouched).
func RandomBiasedMatrixSeeded(r, c int, p float64, seed uint64) *BitMatrix {
	m := ZerosMatrix(r, c)
	rng.WithSeed(seed, func() {
		for i := range m.rows {
			m.rows[i] = RandomBiasedSeeded(c, p, 0)
		}
	})
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *BitMatrix {
	m := SquareZeros(n)
	for i := 0; i < n; i++ {
		Set(m.rows[i], i, true)
	}
	return m
}

// LeftShiftMatrix returns the n x n matrix whose product with a vector v
// (M*v) computes v shifted left by p places.
func LeftShiftMatrix(n, p int) *BitMatrix {
	m := SquareZeros(n)
	m.SetSuperDiagonal(p, true)
	return m
}

// RightShiftMatrix returns the n x n matrix whose product with a vector v
// (M*v) computes v shifted right by p places.
func RightShiftMatrix(n, p int) *BitMatrix {
	m := SquareZeros(n)
	m.SetSubDiagonal(p, true)
	return m
}

// LeftRotationMatrix returns the n x n matrix whose product with a vector
// v computes v rotated left by p places.
func LeftRotationMatrix(n, p int) *BitMatrix {
	m := SquareZeros(n)
	for i := 0; i < n; i++ {
		j := (i + p) % n
		Set(m.rows[i], j, true)
	}
	return m
}

// RightRotationMatrix returns the n x n matrix whose product with a
// vector v computes v rotated right by p places.
func RightRotationMatrix(n, p int) *BitMatrix {
	m := SquareZeros(n)
	for i := 0; i < n; i++ {
		j := (i + n - p%n) % n
		Set(m.rows[i], j, true)
	}
	return m
}

// Companion returns the square companion matrix for the given top row: the
// top row is copied verbatim and the sub-diagonal is set to 1.
func Companion(topRow Store) *BitMatrix {
	if topRow.Len() == 0 {
		return NewMatrix()
	}
	m := SquareZeros(topRow.Len())
	for i := 0; i < topRow.Len(); i++ {
		if Get(topRow, i) {
			Set(m.rows[0], i, true)
		}
	}
	m.SetSubDiagonal(1, true)
	return m
}

// FromVectorOfRows reshapes src into an r-row matrix, or returns (nil,
// false) if r does not evenly divide src's length.
func FromVectorOfRows(src *BitVector, r int) (*BitMatrix, bool) {
	if src.Len() == 0 {
		return NewMatrix(), true
	}
	if r == 0 || src.Len()%r != 0 {
		return nil, false
	}
	c := src.Len() / r
	m := ZerosMatrix(r, c)
	for i := 0; i < r; i++ {
		start := i * c
		for j := 0; j < c; j++ {
			if Get(src, start+j) {
				Set(m.rows[i], j, true)
			}
		}
	}
	return m, true
}

// FromVectorOfCols reshapes src into a c-column matrix, or returns (nil,
// false) if c does not evenly divide src's length.
func FromVectorOfCols(src *BitVector, c int) (*BitMatrix, bool) {
	if src.Len() == 0 {
		return NewMatrix(), true
	}
	if c == 0 || src.Len()%c != 0 {
		return nil, false
	}
	r := src.Len() / c
	m := ZerosMatrix(r, c)
	idx := 0
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if Get(src, idx) {
				Set(m.rows[i], j, true)
			}
			idx++
		}
	}
	return m, true
}

// FromMatrixString parses a matrix from rows separated by whitespace or
// semicolons, each row itself a BitVector string in either binary or hex
// form (see parseVectorString); returns (nil, false) on any parse failure
// or if row lengths disagree.
func FromMatrixString(s string) (*BitMatrix, bool) {
	if s == "" {
		return NewMatrix(), true
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return NewMatrix(), true
	}
	var cols int
	m := NewMatrix()
	for i, f := range fields {
		row, ok := parseVectorString(f)
		if !ok {
			return nil, false
		}
		if i == 0 {
			cols = row.Len()
			m.rows = make([]*BitVector, len(fields))
		} else if row.Len() != cols {
			return nil, false
		}
		m.rows[i] = row
	}
	return m, true
}

// parseVectorString parses a single row, dispatching on prefix and
// content the way the bit-vector string format does: a "0b" prefix forces
// binary, a "0x"/"0X" prefix forces hex, a string of only '0'/'1'
// characters is assumed binary, and anything else is tried as hex.
func parseVectorString(s string) (*BitVector, bool) {
	if s == "" {
		return Zeros(0), true
	}
	if rest := strings.TrimPrefix(s, "0b"); rest != s {
		return FromBinaryString(rest)
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return FromHexString(s)
	}
	binaryOnly := true
	for _, c := range s {
		if c != '0' && c != '1' {
			binaryOnly = false
			break
		}
	}
	if binaryOnly {
		return FromBinaryString(s)
	}
	return FromHexString(s)
}

// Rows returns the number of rows.
func (m *BitMatrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns, or 0 for an empty matrix.
func (m *BitMatrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return m.rows[0].Len()
}

// Len returns the total number of entries (Rows()*Cols()).
func (m *BitMatrix) Len() int { return m.Rows() * m.Cols() }

// IsEmptyMatrix reports whether the matrix has no rows.
func (m *BitMatrix) IsEmptyMatrix() bool { return len(m.rows) == 0 }

// Any reports whether any entry is set.
func (m *BitMatrix) Any() bool {
	for _, row := range m.rows {
		if Any(row) {
			return true
		}
	}
	return false
}

// All reports whether every entry is set.
func (m *BitMatrix) All() bool {
	for _, row := range m.rows {
		if !All(row) {
			return false
		}
	}
	return true
}

// None reports whether no entry is set.
func (m *BitMatrix) None() bool { return !m.Any() }

// IsSquare reports whether the matrix is non-empty and square.
func (m *BitMatrix) IsSquare() bool { return !m.IsEmptyMatrix() && m.Rows() == m.Cols() }

// IsZero reports whether the matrix is square and every entry is clear.
func (m *BitMatrix) IsZero() bool { return m.IsSquare() && m.None() }

// IsIdentity reports whether the matrix is the identity matrix.
func (m *BitMatrix) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			want := i == j
			if m.Get(i, j) != want {
				return false
			}
		}
	}
	return true
}

// IsSymmetric reports whether the matrix equals its transpose.
func (m *BitMatrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		for j := i + 1; j < m.Cols(); j++ {
			if m.Get(i, j) != m.Get(j, i) {
				return false
			}
		}
	}
	return true
}

// CountOnes returns the number of set entries.
func (m *BitMatrix) CountOnes() int {
	n := 0
	for _, row := range m.rows {
		n += CountOnes(row)
	}
	return n
}

// CountZeros returns the number of unset entries.
func (m *BitMatrix) CountZeros() int { return m.Len() - m.CountOnes() }

// CountOnesOnDiagonal returns the number of set entries on the main
// diagonal of a square matrix.
func (m *BitMatrix) CountOnesOnDiagonal() int {
	n := 0
	lim := m.Rows()
	if m.Cols() < lim {
		lim = m.Cols()
	}
	for i := 0; i < lim; i++ {
		if m.Get(i, i) {
			n++
		}
	}
	return n
}

// Trace returns the GF(2) trace: the parity of the set bits on the main
// diagonal.
func (m *BitMatrix) Trace() bool { return m.CountOnesOnDiagonal()%2 == 1 }

// Get returns entry (r,c).
func (m *BitMatrix) Get(r, c int) bool {
	m.checkBounds(r, c)
	return Get(m.rows[r], c)
}

// Set sets entry (r,c).
func (m *BitMatrix) Set(r, c int, val bool) *BitMatrix {
	m.checkBounds(r, c)
	Set(m.rows[r], c, val)
	return m
}

// Flip toggles entry (r,c).
func (m *BitMatrix) Flip(r, c int) *BitMatrix {
	m.checkBounds(r, c)
	Flip(m.rows[r], c)
	return m
}

func (m *BitMatrix) checkBounds(r, c int) {
	if r < 0 || r >= m.Rows() || c < 0 || c >= m.Cols() {
		panic(fmt.Sprintf("index (%d,%d) out of bounds for a %dx%d matrix", r, c, m.Rows(), m.Cols()))
	}
}

// Row returns the underlying row i (not a copy — mutate with care).
func (m *BitMatrix) Row(i int) *BitVector {
	if i < 0 || i >= m.Rows() {
		panic(fmt.Sprintf("row index %d out of bounds for %d rows", i, m.Rows()))
	}
	return m.rows[i]
}

// SetRow overwrites row i with the bits of src.
func (m *BitMatrix) SetRow(i int, src Store) *BitMatrix {
	if src.Len() != m.Cols() {
		panic(fmt.Sprintf("row length mismatch %d != %d", src.Len(), m.Cols()))
	}
	m.rows[i] = FromStore(src)
	return m
}

// FlipRow flips every entry in row i.
func (m *BitMatrix) FlipRow(i int) *BitMatrix {
	FlipAll(m.Row(i))
	return m
}

// Col synthesizes and returns column j as a new bit-vector.
func (m *BitMatrix) Col(j int) *BitVector {
	v := Zeros(m.Rows())
	for i := 0; i < m.Rows(); i++ {
		if m.Get(i, j) {
			Set(v, i, true)
		}
	}
	return v
}

// SetAll sets every entry to v.
func (m *BitMatrix) SetAll(v bool) *BitMatrix {
	for _, row := range m.rows {
		SetAll(row, v)
	}
	return m
}

// FlipAll flips every entry.
func (m *BitMatrix) FlipAll() *BitMatrix {
	for _, row := range m.rows {
		FlipAll(row)
	}
	return m
}

// Flipped returns a new matrix with every entry flipped.
func (m *BitMatrix) Flipped() *BitMatrix {
	r := m.Clone()
	r.FlipAll()
	return r
}

// SetDiagonal sets every entry on the main diagonal to val.
func (m *BitMatrix) SetDiagonal(val bool) *BitMatrix {
	lim := m.Rows()
	if m.Cols() < lim {
		lim = m.Cols()
	}
	for i := 0; i < lim; i++ {
		Set(m.rows[i], i, val)
	}
	return m
}

// FlipDiagonal flips every entry on the main diagonal.
func (m *BitMatrix) FlipDiagonal() *BitMatrix {
	lim := m.Rows()
	if m.Cols() < lim {
		lim = m.Cols()
	}
	for i := 0; i < lim; i++ {
		Flip(m.rows[i], i)
	}
	return m
}

// AddIdentity XORs the identity matrix into m in place (adds 1 to every
// diagonal entry over GF(2)).
func (m *BitMatrix) AddIdentity() *BitMatrix { return m.FlipDiagonal() }

// SetSuperDiagonal sets every entry on the d-th super-diagonal (row i, col
// i+d) to val.
func (m *BitMatrix) SetSuperDiagonal(d int, val bool) *BitMatrix {
	for i := 0; i+d < m.Cols() && i < m.Rows(); i++ {
		Set(m.rows[i], i+d, val)
	}
	return m
}

// FlipSuperDiagonal flips every entry on the d-th super-diagonal.
func (m *BitMatrix) FlipSuperDiagonal(d int) *BitMatrix {
	for i := 0; i+d < m.Cols() && i < m.Rows(); i++ {
		Flip(m.rows[i], i+d)
	}
	return m
}

// SetSubDiagonal sets every entry on the d-th sub-diagonal (row i+d, col
// i) to val.
func (m *BitMatrix) SetSubDiagonal(d int, val bool) *BitMatrix {
	for i := 0; i+d < m.Rows() && i < m.Cols(); i++ {
		Set(m.rows[i+d], i, val)
	}
	return m
}

// FlipSubDiagonal flips every entry on the d-th sub-diagonal.
func (m *BitMatrix) FlipSubDiagonal(d int) *BitMatrix {
	for i := 0; i+d < m.Rows() && i < m.Cols(); i++ {
		Flip(m.rows[i+d], i)
	}
	return m
}

// Resize grows or shrinks the matrix to r x c, padding with zero rows/
// columns as needed and truncating otherwise.
func (m *BitMatrix) Resize(r, c int) *BitMatrix {
	for i := range m.rows {
		m.rows[i].Resize(c)
	}
	if r > len(m.rows) {
		for len(m.rows) < r {
			m.rows = append(m.rows, Zeros(c))
		}
	} else {
		m.rows = m.rows[:r]
	}
	return m
}

// Clear empties the matrix to 0x0.
func (m *BitMatrix) Clear() *BitMatrix { return m.Resize(0, 0) }

// MakeSquare resizes the matrix to n x n.
func (m *BitMatrix) MakeSquare(n int) *BitMatrix { return m.Resize(n, n) }

// AppendRow appends row as the new last row of the matrix.
func (m *BitMatrix) AppendRow(row *BitVector) *BitMatrix {
	m.rows = append(m.rows, row)
	return m
}

// RemoveRow removes and returns the last row, or (nil, false) if empty.
func (m *BitMatrix) RemoveRow() (*BitVector, bool) {
	if len(m.rows) == 0 {
		return nil, false
	}
	last := m.rows[len(m.rows)-1]
	m.rows = m.rows[:len(m.rows)-1]
	return last, true
}

// AppendCol appends col as the new last column of the matrix.
func (m *BitMatrix) AppendCol(col *BitVector) *BitMatrix {
	for i := range m.rows {
		m.rows[i].Push(Get(col, i))
	}
	return m
}

// RemoveCol removes and returns the last column, or (nil, false) if there
// are no columns.
func (m *BitMatrix) RemoveCol() (*BitVector, bool) {
	if m.Cols() == 0 {
		return nil, false
	}
	col := Zeros(m.Rows())
	for i := range m.rows {
		val, _ := m.rows[i].Pop()
		if val {
			Set(col, i, true)
		}
	}
	return col, true
}

// AppendCols appends every column of src to the right of m.
func (m *BitMatrix) AppendCols(src *BitMatrix) *BitMatrix {
	for i := range m.rows {
		m.rows[i].AppendStore(src.rows[i])
	}
	return m
}

// RemoveCols removes and returns the rightmost k columns as a new matrix.
func (m *BitMatrix) RemoveCols(k int) (*BitMatrix, bool) {
	if k > m.Cols() {
		return nil, false
	}
	split := m.Cols() - k
	out := ZerosMatrix(m.Rows(), k)
	for i := range m.rows {
		out.rows[i] = m.rows[i].SplitOff(split)
	}
	return out, true
}

// AppendRows appends every row of src below m.
func (m *BitMatrix) AppendRows(src *BitMatrix) *BitMatrix {
	m.rows = append(m.rows, src.rows...)
	return m
}

// RemoveRows removes and returns the bottommost k rows as a new matrix.
func (m *BitMatrix) RemoveRows(k int) (*BitMatrix, bool) {
	if k > m.Rows() {
		return nil, false
	}
	split := m.Rows() - k
	out := &BitMatrix{rows: append([]*BitVector(nil), m.rows[split:]...)}
	m.rows = m.rows[:split]
	return out, true
}

// SwapRows exchanges rows i0 and i1.
func (m *BitMatrix) SwapRows(i0, i1 int) *BitMatrix {
	m.rows[i0], m.rows[i1] = m.rows[i1], m.rows[i0]
	return m
}

// SwapCols exchanges columns j0 and j1.
func (m *BitMatrix) SwapCols(j0, j1 int) *BitMatrix {
	for _, row := range m.rows {
		Swap(row, j0, j1)
	}
	return m
}

// Transpose transposes the matrix in place.
func (m *BitMatrix) Transpose() *BitMatrix {
	*m = *m.Transposed()
	return m
}

// Transposed returns a new matrix that is the transpose of m.
func (m *BitMatrix) Transposed() *BitMatrix {
	t := ZerosMatrix(m.Cols(), m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if m.Get(i, j) {
				Set(t.rows[j], i, true)
			}
		}
	}
	return t
}

// SubMatrix returns a new matrix holding rows [r0,r1) and columns
// [c0,c1) of m.
func (m *BitMatrix) SubMatrix(r0, r1, c0, c1 int) *BitMatrix {
	out := ZerosMatrix(r1-r0, c1-c0)
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			if m.Get(i, j) {
				Set(out.rows[i-r0], j-c0, true)
			}
		}
	}
	return out
}

// ReplaceSubMatrix overwrites the sub-matrix of m starting at (top,left)
// with the entries of src.
func (m *BitMatrix) ReplaceSubMatrix(top, left int, src *BitMatrix) *BitMatrix {
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			Set(m.rows[top+i], left+j, src.Get(i, j))
		}
	}
	return m
}

// Lower returns the lower-triangular part of m (including the diagonal),
// all else zero.
func (m *BitMatrix) Lower() *BitMatrix { return m.triangle(true, true) }

// Upper returns the upper-triangular part of m (including the diagonal),
// all else zero.
func (m *BitMatrix) Upper() *BitMatrix { return m.triangle(false, true) }

// StrictlyLower returns the strictly-lower-triangular part of m (diagonal
// excluded).
func (m *BitMatrix) StrictlyLower() *BitMatrix { return m.triangle(true, false) }

// StrictlyUpper returns the strictly-upper-triangular part of m (diagonal
// excluded).
func (m *BitMatrix) StrictlyUpper() *BitMatrix { return m.triangle(false, false) }

// UnitLower returns the unit lower-triangular part of m: strictly-lower
// entries from m, with the diagonal forced to 1.
func (m *BitMatrix) UnitLower() *BitMatrix {
	r := m.StrictlyLower()
	r.SetDiagonal(true)
	return r
}

// UnitUpper returns the unit upper-triangular part of m: strictly-upper
// entries from m, with the diagonal forced to 1.
func (m *BitMatrix) UnitUpper() *BitMatrix {
	r := m.StrictlyUpper()
	r.SetDiagonal(true)
	return r
}

func (m *BitMatrix) triangle(lower, includeDiagonal bool) *BitMatrix {
	out := ZerosMatrix(m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			onDiag := i == j
			inTriangle := (lower && i > j) || (!lower && i < j) || (includeDiagonal && onDiag)
			if inTriangle && m.Get(i, j) {
				Set(out.rows[i], j, true)
			}
		}
	}
	return out
}

// Dot returns M * v as a new bit-vector.
func (m *BitMatrix) Dot(v Store) *BitVector {
	if m.Cols() != v.Len() {
		panic(fmt.Sprintf("incompatible dimensions: %d != %d", m.Cols(), v.Len()))
	}
	result := Zeros(m.Rows())
	for i := 0; i < m.Rows(); i++ {
		if Dot(m.rows[i], v) {
			Set(result, i, true)
		}
	}
	return result
}

// LeftDot returns v * M as a new bit-vector.
func (m *BitMatrix) LeftDot(v Store) *BitVector {
	if m.Rows() != v.Len() {
		panic(fmt.Sprintf("incompatible dimensions: %d != %d", m.Rows(), v.Len()))
	}
	result := Zeros(m.Cols())
	for j := 0; j < m.Cols(); j++ {
		if Dot(v, m.Col(j)) {
			Set(result, j, true)
		}
	}
	return result
}

// Multiply returns M * N as a new bit-matrix.
func (m *BitMatrix) Multiply(n *BitMatrix) *BitMatrix {
	if m.Cols() != n.Rows() {
		panic(fmt.Sprintf("incompatible dimensions: %d != %d", m.Cols(), n.Rows()))
	}
	r, c := m.Rows(), n.Cols()
	result := ZerosMatrix(r, c)
	for j := 0; j < c; j++ {
		col := n.Col(j)
		for i := 0; i < r; i++ {
			if Dot(m.rows[i], col) {
				Set(result.rows[i], j, true)
			}
		}
	}
	return result
}

// ToThe returns M raised to the power n via square-and-multiply. Panics
// if m is not square.
func (m *BitMatrix) ToThe(n int) *BitMatrix {
	if !m.IsSquare() {
		panic("bit-matrix must be square")
	}
	if n == 0 {
		return Identity(m.Rows())
	}
	nBit := prevPowerOfTwo(n)
	result := m.Clone()
	nBit >>= 1
	for nBit > 0 {
		result = result.Multiply(result)
		if n&nBit != 0 {
			result = result.Multiply(m)
		}
		nBit >>= 1
	}
	return result
}

// ToThe2ToThe returns M raised to the power 2^n. Panics if m is not
// square.
func (m *BitMatrix) ToThe2ToThe(n int) *BitMatrix {
	if !m.IsSquare() {
		panic("bit-matrix must be square")
	}
	result := m.Clone()
	for i := 0; i < n; i++ {
		result = result.Multiply(result)
	}
	return result
}

// ToVector concatenates the rows of m into a single bit-vector.
func (m *BitMatrix) ToVector() *BitVector {
	v := Zeros(0)
	for _, row := range m.rows {
		v.AppendStore(row)
	}
	return v
}

// ToVectorOfCols concatenates the columns of m into a single bit-vector.
func (m *BitMatrix) ToVectorOfCols() *BitVector {
	v := Zeros(0)
	for j := 0; j < m.Cols(); j++ {
		v.AppendStore(m.Col(j))
	}
	return v
}

// ToEchelonForm reduces m to row-echelon form in place via Gaussian
// elimination (zero rows sink to the bottom) and returns a bit-vector
// marking which columns hold a pivot — CountOnes of the result is the
// matrix's rank. Panics if m is empty.
func (m *BitMatrix) ToEchelonForm() *BitVector {
	if m.IsEmptyMatrix() {
		panic("bit-matrix must not be empty")
	}
	hasPivot := Zeros(m.Cols())
	r := 0
	numRows := m.Rows()
	for j := 0; j < m.Cols(); j++ {
		p := r
		for p < numRows && !m.Get(p, j) {
			p++
		}
		if p >= numRows {
			continue
		}
		Set(hasPivot, j, true)
		if p != r {
			m.SwapRows(p, r)
		}
		rowR := FromStore(m.rows[r])
		for i := r + 1; i < numRows; i++ {
			if m.Get(i, j) {
				m.rows[i].XorEq(rowR)
			}
		}
		r++
		if r == numRows {
			break
		}
	}
	return hasPivot
}

// ToReducedEchelonForm reduces m to reduced row-echelon form (Gauss-
// Jordan elimination) in place and returns the pivot-column indicator
// vector, exactly as ToEchelonForm. Panics if m is empty.
func (m *BitMatrix) ToReducedEchelonForm() *BitVector {
	hasPivot := m.ToEchelonForm()
	for r := m.Rows() - 1; r >= 0; r-- {
		if p, ok := FirstSet(m.rows[r]); ok {
			rowR := FromStore(m.rows[r])
			for i := 0; i < r; i++ {
				if m.Get(i, p) {
					m.rows[i].XorEq(rowR)
				}
			}
		}
	}
	return hasPivot
}

// Inverse returns the inverse of a square matrix, or (nil, false) if the
// matrix is singular or non-square.
func (m *BitMatrix) Inverse() (*BitMatrix, bool) {
	if !m.IsSquare() {
		return nil, false
	}
	augmented := m.Clone()
	augmented.AppendCols(Identity(m.Rows()))
	augmented.ToReducedEchelonForm()
	if augmented.SubMatrix(0, m.Rows(), 0, m.Cols()).IsIdentity() {
		return augmented.SubMatrix(0, m.Rows(), m.Cols(), 2*m.Cols()), true
	}
	return nil, false
}

// ProbabilityInvertible returns the probability that a uniformly random n
// x n bit-matrix is invertible: the infinite product prod(1 - 2^-k),
// truncated at float64's mantissa width (53 terms) regardless of n, since
// the product's tail beyond that is indistinguishable from 1.0 in a
// float64. Panics if n <= 0; n itself plays no role beyond that check.
func ProbabilityInvertible(n int) float64 {
	if n <= 0 {
		panic("querying the probability of a 0x0 bit-matrix being invertible")
	}
	const mantissaDigits = 53
	result := 1.0
	pow2 := 1.0
	for k := 0; k < mantissaDigits; k++ {
		pow2 *= 0.5
		result *= 1.0 - pow2
	}
	return result
}

// ProbabilitySingular returns 1 - ProbabilityInvertible(n).
func ProbabilitySingular(n int) float64 { return 1.0 - ProbabilityInvertible(n) }

// SolverFor returns the Gaussian-elimination solver for m.x = b.
func (m *BitMatrix) SolverFor(b *BitVector) *BitGauss { return NewBitGauss(m, b) }

// XFor returns a solution to m.x = b, or (nil, false) if the system is
// inconsistent. Underdetermined systems get random values for their free
// variables.
func (m *BitMatrix) XFor(b *BitVector) (*BitVector, bool) { return m.SolverFor(b).X() }

// LUDecomposition returns the LU decomposition of m. Panics if m is not
// square.
func (m *BitMatrix) LUDecomposition() *BitLU { return NewBitLU(m) }

// CharacteristicPolynomial returns the characteristic polynomial of a
// square bit-matrix, computed by reducing to Frobenius form via a
// sequence of similarity transformations (Danilevsky's algorithm) and
// multiplying the companion blocks' characteristic polynomials. Panics if
// m is not square.
func (m *BitMatrix) CharacteristicPolynomial() *BitPoly {
	if !m.IsSquare() {
		panic(fmt.Sprintf("bit-matrix must be square not %dx%d", m.Rows(), m.Cols()))
	}
	return CharacteristicPolynomialOfFrobenius(m.FrobeniusForm())
}

// CharacteristicPolynomialOfFrobenius returns the characteristic
// polynomial of a Frobenius matrix given as the top rows of its diagonal
// companion blocks: the product of each block's companion-matrix
// characteristic polynomial.
func CharacteristicPolynomialOfFrobenius(topRows []*BitVector) *BitPoly {
	if len(topRows) == 0 {
		return ZeroPoly()
	}
	result := CharacteristicPolynomialOfCompanion(topRows[0])
	for i := 1; i < len(topRows); i++ {
		result = result.ConvolvedWith(CharacteristicPolynomialOfCompanion(topRows[i]))
	}
	return result
}

// CharacteristicPolynomialOfCompanion returns the characteristic
// polynomial of the companion matrix whose top row is topRow: a monic
// polynomial of degree n = topRow.Len() whose low-order coefficients are
// the top row reversed.
func CharacteristicPolynomialOfCompanion(topRow *BitVector) *BitPoly {
	n := topRow.Len()
	coeffs := Ones(n + 1)
	for j := 0; j < n; j++ {
		Set(coeffs, n-j-1, Get(topRow, j))
	}
	return FromCoefficients(coeffs)
}

// FrobeniusForm reduces m to Frobenius form (block-diagonal companion
// matrices) via repeated Danilevsky steps and returns the top row of each
// companion block, bottom-right block first. Panics if m is not square.
func (m *BitMatrix) FrobeniusForm() []*BitVector {
	if !m.IsSquare() {
		panic(fmt.Sprintf("bit-matrix must be square not %dx%d", m.Rows(), m.Cols()))
	}
	topRows := make([]*BitVector, 0)
	working := m.Clone()
	n := working.Rows()
	for n > 0 {
		companion := working.danilevskyStep(n)
		n -= companion.Len()
		topRows = append(topRows, companion)
	}
	return topRows
}

// danilevskyStep performs one step of Danilevsky's algorithm on the
// top-left n x n sub-matrix of m, reducing rows from the bottom up into
// companion form. It returns the top row of the bottom-right companion
// sub-matrix it could not reduce further.
func (m *BitMatrix) danilevskyStep(n int) *BitVector {
	if n > m.Rows() {
		panic(fmt.Sprintf("asked to look at the top-left %dx%d sub-matrix but the matrix has only %d rows", n, n, m.Rows()))
	}
	if n == 1 {
		return ConstantPoly(m.Get(0, 0)).coeffs // a length-1 vector holding m[0][0]
	}

	k := n - 1
	for k > 0 {
		if !m.Get(k, k-1) {
			for j := 0; j < k-1; j++ {
				if m.Get(k, j) {
					m.SwapRows(j, k-1)
					m.SwapCols(j, k-1)
					break
				}
			}
		}
		if !m.Get(k, k-1) {
			break
		}

		mRow := Zeros(n)
		for j := 0; j < n; j++ {
			Set(mRow, j, m.Get(k, j))
		}
		colWithinBlock := func(j int) *BitVector {
			col := Zeros(n)
			for i := 0; i < n; i++ {
				if m.Get(i, j) {
					Set(col, i, true)
				}
			}
			return col
		}
		for j := 0; j < n; j++ {
			Set(m.rows[k-1], j, Dot(mRow, colWithinBlock(j)))
		}

		for i := 0; i < k; i++ {
			for j := 0; j < n; j++ {
				tmp := m.Get(i, k-1) && Get(mRow, j)
				if j == k-1 {
					Set(m.rows[i], j, tmp)
				} else {
					Set(m.rows[i], j, m.Get(i, j) != tmp)
				}
			}
		}

		SetAll(m.rows[k], false)
		Set(m.rows[k], k-1, true)
		k--
	}

	topRow := Zeros(n - k)
	for j := 0; j < n-k; j++ {
		if m.Get(k, k+j) {
			Set(topRow, j, true)
		}
	}
	return topRow
}

// Clone returns an independent deep copy of m.
func (m *BitMatrix) Clone() *BitMatrix {
	rows := make([]*BitVector, len(m.rows))
	for i, row := range m.rows {
		rows[i] = FromStore(row)
	}
	return &BitMatrix{rows: rows}
}

// ToBinaryString renders the matrix row by row, rows separated by
// newlines and no spacing between the entries within a row.
func (m *BitMatrix) ToBinaryString() string { return m.toCustomBinaryString("\n", "", "", "") }

// ToCompactBinaryString renders the matrix as its rows space-separated
// with no internal spacing within each row.
func (m *BitMatrix) ToCompactBinaryString() string { return m.toCustomBinaryString(" ", "", "", "") }

func (m *BitMatrix) toCustomBinaryString(rowSep, sep, left, right string) string {
	rows := make([]string, len(m.rows))
	for i, row := range m.rows {
		var b strings.Builder
		b.WriteString(left)
		for j := 0; j < row.Len(); j++ {
			if j > 0 {
				b.WriteString(sep)
			}
			if Get(row, j) {
				b.WriteString("1")
			} else {
				b.WriteString("0")
			}
		}
		b.WriteString(right)
		rows[i] = b.String()
	}
	return strings.Join(rows, rowSep)
}

// String implements fmt.Stringer using ToBinaryString.
func (m *BitMatrix) String() string { return m.ToBinaryString() }

// Describe returns a multi-line diagnostic dump of the matrix's shape and
// contents.
func (m *BitMatrix) Describe() string {
	return fmt.Sprintf("rows: %d\ncols: %d\n%s\n", m.Rows(), m.Cols(), m.ToBinaryString())
}

// XorEq sets m := m XOR rhs, entrywise.
func (m *BitMatrix) XorEq(rhs *BitMatrix) *BitMatrix {
	for i := range m.rows {
		m.rows[i].XorEq(rhs.rows[i])
	}
	return m
}

// Xor returns m XOR rhs as a new matrix.
func (m *BitMatrix) Xor(rhs *BitMatrix) *BitMatrix { return m.Clone().XorEq(rhs) }

// AndEq sets m := m AND rhs, entrywise.
func (m *BitMatrix) AndEq(rhs *BitMatrix) *BitMatrix {
	for i := range m.rows {
		m.rows[i].AndEq(rhs.rows[i])
	}
	return m
}

// And returns m AND rhs as a new matrix.
func (m *BitMatrix) And(rhs *BitMatrix) *BitMatrix { return m.Clone().AndEq(rhs) }

// OrEq sets m := m OR rhs, entrywise.
func (m *BitMatrix) OrEq(rhs *BitMatrix) *BitMatrix {
	for i := range m.rows {
		m.rows[i].OrEq(rhs.rows[i])
	}
	return m
}

// Or returns m OR rhs as a new matrix.
func (m *BitMatrix) Or(rhs *BitMatrix) *BitMatrix { return m.Clone().OrEq(rhs) }

// PlusEq is XorEq: in GF(2), matrix addition is entrywise XOR.
func (m *BitMatrix) PlusEq(rhs *BitMatrix) *BitMatrix { return m.XorEq(rhs) }

// Plus returns m + rhs: identical to Xor in GF(2).
func (m *BitMatrix) Plus(rhs *BitMatrix) *BitMatrix { return m.Xor(rhs) }

// MinusEq is XorEq: in GF(2), matrix subtraction coincides with addition.
func (m *BitMatrix) MinusEq(rhs *BitMatrix) *BitMatrix { return m.XorEq(rhs) }

// Minus returns m - rhs: identical to Plus in GF(2).
func (m *BitMatrix) Minus(rhs *BitMatrix) *BitMatrix { return m.Plus(rhs) }
