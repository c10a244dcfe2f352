// Package gf2 implements dense linear algebra over GF(2): bit-vectors,
// bit-slices, bit-polynomials, and bit-matrices packed into uint64 words,
// plus Gaussian elimination and LU decomposition solvers.
//
// Addition and multiplication in GF(2) are XOR and AND respectively.
// Indexing throughout the package is in "vector order": index 0 is the
// leftmost bit, and a left shift moves bits toward index 0.
package gf2

import (
	"fmt"
	"math"

	"github.com/ny0m/gf2/internal/rng"
	"github.com/ny0m/gf2/word"
)

// Word is the fixed production word type every concrete bit-store in this
// package packs its bits into.
type Word = uint64

const bitsPerWord = 64

// Store is the five-primitive contract every packed bit sequence satisfies.
// The bit-level algorithms in this file — scans, counts, dot products,
// string conversions — are written exactly once against this interface
// and are inherited for free by BitVector, BitSlice, and FixedBits. The
// shifts are not among them: LeftShift and RightShift are BitVector
// methods.
type Store interface {
	// Len returns the number of bit elements in the store.
	Len() int

	// Offset returns the number of bits from the least significant bit of
	// the underlying word 0 to the first bit in the store. Zero for owning
	// stores, generally non-zero for BitSlice.
	Offset() int

	// Words returns the fewest number of Word values needed to hold Len()
	// bits; equals wordsNeeded(Len()).
	Words() int

	// Word returns logical word i as if the store were perfectly
	// word-aligned: bit 0 of the store sits at the low bit of Word(0). The
	// high bits of the final logical word beyond Len() are always zero.
	Word(i int) Word

	// SetWord sets logical word i, following the same alignment contract
	// as Word. Bits outside the store's range are left untouched.
	SetWord(i int, v Word)
}

func wordsNeeded(bits int) int {
	if bits == 0 {
		return 0
	}
	return (bits-1)/bitsPerWord + 1
}

func checkIndex(s Store, i int) {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("index %d is out of bounds for a store of length %d", i, s.Len()))
	}
}

func indexAndMask(i int) (int, Word) {
	return word.IndexAndMask[Word](i)
}

// Get returns true if bit i is set.
func Get(s Store, i int) bool {
	checkIndex(s, i)
	wi, mask := indexAndMask(i)
	return s.Word(wi)&mask != 0
}

// First returns true if the first bit of the store is set. Panics if empty.
func First(s Store) bool {
	if s.Len() == 0 {
		panic("the store is empty")
	}
	return Get(s, 0)
}

// Last returns true if the final bit of the store is set. Panics if empty.
func Last(s Store) bool {
	if s.Len() == 0 {
		panic("the store is empty")
	}
	return Get(s, s.Len()-1)
}

// Set sets bit i to val.
func Set(s Store, i int, val bool) {
	checkIndex(s, i)
	wi, mask := indexAndMask(i)
	w := s.Word(wi)
	cur := w&mask != 0
	if cur != val {
		s.SetWord(wi, w^mask)
	}
}

// Flip toggles bit i.
func Flip(s Store, i int) {
	checkIndex(s, i)
	wi, mask := indexAndMask(i)
	s.SetWord(wi, s.Word(wi)^mask)
}

// Swap exchanges bits i0 and i1.
func Swap(s Store, i0, i1 int) {
	checkIndex(s, i0)
	checkIndex(s, i1)
	if i0 == i1 {
		return
	}
	w0, m0 := indexAndMask(i0)
	w1, m1 := indexAndMask(i1)
	v0 := s.Word(w0)&m0 != 0
	v1 := s.Word(w1)&m1 != 0
	if v0 == v1 {
		return
	}
	if w0 == w1 {
		s.SetWord(w0, s.Word(w0)^m0^m1)
	} else {
		s.SetWord(w0, s.Word(w0)^m0)
		s.SetWord(w1, s.Word(w1)^m1)
	}
}

// IsEmpty returns true if the store has no bits.
func IsEmpty(s Store) bool { return s.Len() == 0 }

// Any returns true if at least one bit is set. Empty stores return false.
func Any(s Store) bool {
	for i := 0; i < s.Words(); i++ {
		if s.Word(i) != 0 {
			return true
		}
	}
	return false
}

// All returns true if every bit is set. Empty stores return true.
func All(s Store) bool {
	if s.Len() == 0 {
		return true
	}
	for i := 0; i < s.Words()-1; i++ {
		if s.Word(i) != word.Max[Word]() {
			return false
		}
	}
	unused := bitsPerWord - s.Len()%bitsPerWord
	if unused == bitsPerWord {
		unused = 0
	}
	lastMax := word.Max[Word]() >> uint(unused)
	return s.Word(s.Words()-1) == lastMax
}

// None returns true if no bit is set. Empty stores return true.
func None(s Store) bool { return !Any(s) }

// SetAll sets every bit in the store to v.
func SetAll(s Store, v bool) {
	value := Word(0)
	if v {
		value = word.Max[Word]()
	}
	for i := 0; i < s.Words(); i++ {
		s.SetWord(i, value)
	}
}

// FlipAll flips every bit in the store.
func FlipAll(s Store) {
	for i := 0; i < s.Words(); i++ {
		s.SetWord(i, ^s.Word(i))
	}
}

// CountOnes returns the number of set bits.
func CountOnes(s Store) int {
	n := 0
	for i := 0; i < s.Words(); i++ {
		n += word.CountOnes(s.Word(i))
	}
	return n
}

// CountZeros returns the number of unset bits.
func CountZeros(s Store) int { return s.Len() - CountOnes(s) }

// LeadingZeros returns the number of zero bits before the first set bit.
func LeadingZeros(s Store) int {
	for i := 0; i < s.Words(); i++ {
		w := s.Word(i)
		if w != 0 {
			lo, _ := word.LowestSetBit(w)
			return i*bitsPerWord + lo
		}
	}
	return s.Len()
}

// TrailingZeros returns the number of zero bits after the last set bit.
func TrailingZeros(s Store) int {
	if s.Len() == 0 {
		return 0
	}
	last := s.Words() - 1
	unused := bitsPerWord - s.Len()%bitsPerWord
	if unused == bitsPerWord {
		unused = 0
	}
	for i := last; i >= 0; i-- {
		w := s.Word(i)
		if w != 0 {
			hi, _ := word.HighestSetBit(w)
			return (last-i)*bitsPerWord + (bitsPerWord - 1 - hi) - unused
		}
	}
	return s.Len()
}

// FirstSet returns the index of the first set bit, or (0, false) if none.
func FirstSet(s Store) (int, bool) {
	for i := 0; i < s.Words(); i++ {
		if loc, ok := word.LowestSetBit(s.Word(i)); ok {
			return i*bitsPerWord + loc, true
		}
	}
	return 0, false
}

// LastSet returns the index of the last set bit, or (0, false) if none.
func LastSet(s Store) (int, bool) {
	for i := s.Words() - 1; i >= 0; i-- {
		if loc, ok := word.HighestSetBit(s.Word(i)); ok {
			return i*bitsPerWord + loc, true
		}
	}
	return 0, false
}

// NextSet returns the index of the first set bit strictly after index, or
// (0, false) if none exists.
func NextSet(s Store, index int) (int, bool) {
	index++
	if index >= s.Len() {
		return 0, false
	}
	wi, bit := word.WordIndex[Word](index), word.BitOffset[Word](index)
	for i := wi; i < s.Words(); i++ {
		w := s.Word(i)
		if i == wi {
			w &^= word.WithSetBits[Word](0, bit)
		}
		if loc, ok := word.LowestSetBit(w); ok {
			return i*bitsPerWord + loc, true
		}
	}
	return 0, false
}

// PreviousSet returns the index of the last set bit strictly before index,
// or (0, false) if none exists.
func PreviousSet(s Store, index int) (int, bool) {
	if s.Len() == 0 || index == 0 {
		return 0, false
	}
	index--
	wi, bit := word.WordIndex[Word](index), word.BitOffset[Word](index)
	for i := wi; i >= 0; i-- {
		w := s.Word(i)
		if i == wi {
			w &^= word.WithSetBits[Word](bit+1, bitsPerWord)
		}
		if loc, ok := word.HighestSetBit(w); ok {
			return i*bitsPerWord + loc, true
		}
	}
	return 0, false
}

// NextUnset returns the index of the first unset bit strictly after index,
// or (0, false) if none exists.
func NextUnset(s Store, index int) (int, bool) {
	index++
	if index >= s.Len() {
		return 0, false
	}
	wi, bit := word.WordIndex[Word](index), word.BitOffset[Word](index)
	for i := wi; i < s.Words(); i++ {
		w := s.Word(i)
		if i == wi {
			w |= word.WithSetBits[Word](0, bit)
		}
		if loc, ok := word.LowestUnsetBit(w); ok {
			pos := i*bitsPerWord + loc
			if pos >= s.Len() {
				return 0, false
			}
			return pos, true
		}
	}
	return 0, false
}

// PreviousUnset returns the index of the last unset bit strictly before
// index, or (0, false) if none exists.
func PreviousUnset(s Store, index int) (int, bool) {
	if s.Len() == 0 || index == 0 {
		return 0, false
	}
	index--
	wi, bit := word.WordIndex[Word](index), word.BitOffset[Word](index)
	for i := wi; i >= 0; i-- {
		w := s.Word(i)
		if i == wi {
			w |= word.WithSetBits[Word](bit+1, bitsPerWord)
		}
		if loc, ok := word.HighestUnsetBit(w); ok {
			return i*bitsPerWord + loc, true
		}
	}
	return 0, false
}

// Indices returns every index in the store whose bit equals val, in
// increasing order.
func Indices(s Store, val bool) []int {
	out := make([]int, 0)
	if val {
		for i, ok := FirstSet(s); ok; i, ok = NextSet(s, i) {
			out = append(out, i)
		}
	} else {
		for i := 0; i < s.Len(); i++ {
			if !Get(s, i) {
				out = append(out, i)
			}
		}
	}
	return out
}

// Dot computes the GF(2) dot product (parity of the bitwise AND) of two
// equal-length stores.
func Dot(a, b Store) bool {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("length mismatch %d != %d", a.Len(), b.Len()))
	}
	parity := 0
	n := a.Words()
	for i := 0; i < n; i++ {
		parity += word.CountOnes(a.Word(i) & b.Word(i))
	}
	return parity%2 == 1
}

// XorInto sets dst := dst XOR src for stores of equal length.
func XorInto(dst, src Store) {
	if dst.Len() != src.Len() {
		panic(fmt.Sprintf("length mismatch %d != %d", dst.Len(), src.Len()))
	}
	for i := 0; i < dst.Words(); i++ {
		dst.SetWord(i, dst.Word(i)^src.Word(i))
	}
}

// AndInto sets dst := dst AND src for stores of equal length.
func AndInto(dst, src Store) {
	if dst.Len() != src.Len() {
		panic(fmt.Sprintf("length mismatch %d != %d", dst.Len(), src.Len()))
	}
	for i := 0; i < dst.Words(); i++ {
		dst.SetWord(i, dst.Word(i)&src.Word(i))
	}
}

// OrInto sets dst := dst OR src for stores of equal length.
func OrInto(dst, src Store) {
	if dst.Len() != src.Len() {
		panic(fmt.Sprintf("length mismatch %d != %d", dst.Len(), src.Len()))
	}
	for i := 0; i < dst.Words(); i++ {
		dst.SetWord(i, dst.Word(i)|src.Word(i))
	}
}

// RiffledInto spreads the bits of src with a zero between each one into
// dst, which must have twice the length of src: dst[2i] = src[i],
// dst[2i+1] = 0. Used by BitPoly.Squared to compute p(x)^2 over GF(2).
func RiffledInto(dst, src Store) {
	if dst.Len() != 2*src.Len() {
		panic(fmt.Sprintf("destination length %d must be twice source length %d", dst.Len(), src.Len()))
	}
	for i := 0; i < src.Words(); i++ {
		lo, hi := word.Riffle(src.Word(i))
		dst.SetWord(2*i, lo)
		if 2*i+1 < dst.Words() {
			dst.SetWord(2*i+1, hi)
		}
	}
}

// ConvolvedWith returns the GF(2) convolution (carry-less / polynomial
// multiplication) of a and b: a dense vector of length a.Len()+b.Len()-1
// whose i-th bit is XOR_{j} a[j]&b[i-j].
func ConvolvedWith(a, b Store) []bool {
	if a.Len() == 0 || b.Len() == 0 {
		return nil
	}
	n := a.Len() + b.Len() - 1
	out := make([]bool, n)
	for i := 0; i < a.Len(); i++ {
		if !Get(a, i) {
			continue
		}
		for j := 0; j < b.Len(); j++ {
			if Get(b, j) {
				out[i+j] = !out[i+j]
			}
		}
	}
	return out
}

// Equal reports whether two stores hold the same length and bits.
func Equal(a, b Store) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Words(); i++ {
		if a.Word(i) != b.Word(i) {
			return false
		}
	}
	return true
}

// ToBinaryString renders the store in vector order (index 0 first) as a
// compact string of '0'/'1' characters.
func ToBinaryString(s Store) string {
	buf := make([]byte, s.Len())
	for i := 0; i < s.Len(); i++ {
		if Get(s, i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// ToPrettyString renders the store bracketed with space-separated bits,
// e.g. "[1 0 1 1]".
func ToPrettyString(s Store) string {
	buf := []byte{'['}
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		if Get(s, i) {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	buf = append(buf, ']')
	return string(buf)
}

// ToHexString renders the store in vector order as a hex string: each
// digit decodes most-significant-bit first, so digit 0 covers vector
// positions (v0,v1,v2,v3) = (bit3,bit2,bit1,bit0) of its value. When
// Len() isn't a multiple of 4, the final digit is replaced by the value
// of the trailing 1, 2, or 3 bits and a ".2"/".4"/".8" suffix records
// which base it's in.
func ToHexString(s Store) string {
	n := s.Len()
	if n == 0 {
		return ""
	}

	digits := (n + 3) / 4
	buf := make([]byte, 0, digits+2)
	for i := 0; i < s.Words(); i++ {
		w := word.ReverseBits[Word](s.Word(i))
		buf = append(buf, []byte(fmt.Sprintf("%016X", w))...)
	}
	buf = buf[:digits]

	if k := n % 4; k != 0 {
		var num uint64
		for i := 0; i < k; i++ {
			if Get(s, n-1-i) {
				num |= 1 << uint(i)
			}
		}
		buf = buf[:digits-1]
		buf = append(buf, []byte(fmt.Sprintf("%X.%d", num, 1<<uint(k)))...)
	}
	return string(buf)
}

var twoPow64 = math.Pow(2, 64)

// fillRandomBiased fills s with bits independently set with probability p,
// reseeding the shared RNG for the duration of the fill if seed != 0.
func fillRandomBiased(s Store, p float64, seed uint64) {
	scaled := uint64(twoPow64 * p)
	rng.WithSeed(seed, func() {
		SetAll(s, false)
		for i := 0; i < s.Len(); i++ {
			if rng.U64() < scaled {
				Set(s, i, true)
			}
		}
	})
}

// Describe renders a multi-line diagnostic dump of the store: its length,
// word count, and binary/hex representations.
func Describe(s Store) string {
	return fmt.Sprintf(
		"length:  %d\nwords:   %d\noffset:  %d\nbinary:  %s\nhex:     %s\n",
		s.Len(), s.Words(), s.Offset(), ToBinaryString(s), ToHexString(s),
	)
}
