// Package word provides width-independent bit-twiddling over native unsigned
// integer types. It plays the role the `Unsigned` trait plays for the
// bit-store algorithms built on top of it: every function here is written
// once and works for any instantiation of the Word constraint.
package word

import "math/bits"

// Word is the set of unsigned integer types that can back a packed bit
// sequence. gf2's production types all instantiate this at uint64; the
// generic form exists so the word algebra itself is reusable at any width.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitSize returns the number of bits in W.
func BitSize[W Word]() int {
	var w W
	switch any(w).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		return 64
	}
}

// Max returns the all-ones value for W.
func Max[W Word]() W {
	return ^W(0)
}

// Alternating returns the 0b...01010101 pattern for W (MAX/3).
func Alternating[W Word]() W {
	return Max[W]() / 3
}

// WordIndex returns i / BitSize[W]().
func WordIndex[W Word](i int) int {
	return i / BitSize[W]()
}

// BitOffset returns i mod BitSize[W]().
func BitOffset[W Word](i int) int {
	return i % BitSize[W]()
}

// IndexAndMask returns the (word index, single-bit mask) pair that isolates
// logical bit i within a contiguous array of W words.
func IndexAndMask[W Word](i int) (int, W) {
	return WordIndex[W](i), W(1) << uint(BitOffset[W](i))
}

// unboundedShl shifts left by n bits, returning zero if n >= BitSize[W]()
// rather than relying on (and being tripped up by) native shift-amount
// wraparound for shift counts greater than the type's width.
func unboundedShl[W Word](w W, n int) W {
	if n >= BitSize[W]() || n < 0 {
		return 0
	}
	return w << uint(n)
}

// unboundedShr is the right-shift analogue of unboundedShl.
func unboundedShr[W Word](w W, n int) W {
	if n >= BitSize[W]() || n < 0 {
		return 0
	}
	return w >> uint(n)
}

// WithSetBits returns a W with exactly the bits in [start,end) set, all
// others clear. An empty range (start==end) yields zero; the full range
// [0,BitSize) yields Max.
func WithSetBits[W Word](start, end int) W {
	return unboundedShl(Max[W](), start) & unboundedShr(Max[W](), BitSize[W]()-end)
}

// WithUnsetBits is the complement of WithSetBits.
func WithUnsetBits[W Word](start, end int) W {
	return ^WithSetBits[W](start, end)
}

// LowestSetBit returns the position of the lowest set bit, or (0, false) if w
// is zero.
func LowestSetBit[W Word](w W) (int, bool) {
	if w == 0 {
		return 0, false
	}
	return trailingZeros(w), true
}

// HighestSetBit returns the position of the highest set bit, or (0, false)
// if w is zero.
func HighestSetBit[W Word](w W) (int, bool) {
	if w == 0 {
		return 0, false
	}
	return BitSize[W]() - 1 - leadingZeros(w), true
}

// LowestUnsetBit returns the position of the lowest unset bit, or (0, false)
// if w is all ones.
func LowestUnsetBit[W Word](w W) (int, bool) {
	max := Max[W]()
	if w == max {
		return 0, false
	}
	return trailingOnes(w), true
}

// HighestUnsetBit returns the position of the highest unset bit, or (0,
// false) if w is all ones.
func HighestUnsetBit[W Word](w W) (int, bool) {
	max := Max[W]()
	if w == max {
		return 0, false
	}
	return BitSize[W]() - 1 - leadingOnes(w), true
}

// PrevPowerOfTwo returns the greatest power of two <= w, or 0 if w is 0.
func PrevPowerOfTwo[W Word](w W) W {
	highest := BitSize[W]() - 1 - leadingZeros(w|1)
	return (W(1) << uint(highest)) & w
}

// Riffle splits the bits b0..b(n-1) of w into two words where the bits of
// each half are interleaved with zero: lo gets b0,0,b1,0,..., hi gets the
// upper half similarly spread. This is the building block for squaring
// polynomials over GF(2): (sum a_i x^i)^2 = sum a_i x^(2i).
func Riffle[W Word](w W) (lo, hi W) {
	bits := BitSize[W]()
	half := bits / 2
	lo = w & unboundedShr(Max[W](), half)
	hi = w >> uint(half)
	for i := bits / 4; i > 0; i /= 2 {
		div := (W(1) << uint(i)) | W(1)
		mask := Max[W]() / div
		lo = (lo ^ (lo << uint(i))) & mask
		hi = (hi ^ (hi << uint(i))) & mask
	}
	return lo, hi
}

func leadingZeros[W Word](w W) int {
	switch v := any(w).(type) {
	case uint8:
		return bits.LeadingZeros8(v)
	case uint16:
		return bits.LeadingZeros16(v)
	case uint32:
		return bits.LeadingZeros32(v)
	case uint64:
		return bits.LeadingZeros64(v)
	default:
		return 0
	}
}

func trailingZeros[W Word](w W) int {
	switch v := any(w).(type) {
	case uint8:
		return bits.TrailingZeros8(v)
	case uint16:
		return bits.TrailingZeros16(v)
	case uint32:
		return bits.TrailingZeros32(v)
	case uint64:
		return bits.TrailingZeros64(v)
	default:
		return 0
	}
}

func leadingOnes[W Word](w W) int {
	return leadingZeros(^w)
}

func trailingOnes[W Word](w W) int {
	return trailingZeros(^w)
}

// CountOnes returns the population count of w.
func CountOnes[W Word](w W) int {
	switch v := any(w).(type) {
	case uint8:
		return bits.OnesCount8(v)
	case uint16:
		return bits.OnesCount16(v)
	case uint32:
		return bits.OnesCount32(v)
	case uint64:
		return bits.OnesCount64(v)
	default:
		return 0
	}
}

// ReverseBits reverses the bit order of w, used when rendering a word in
// vector-order (index 0 leftmost) via a standard MSB-first integer format.
func ReverseBits[W Word](w W) W {
	switch v := any(w).(type) {
	case uint8:
		return W(bits.Reverse8(v))
	case uint16:
		return W(bits.Reverse16(v))
	case uint32:
		return W(bits.Reverse32(v))
	case uint64:
		return W(bits.Reverse64(v))
	default:
		return w
	}
}
