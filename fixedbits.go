package gf2

import "fmt"

// FixedBits is the idiomatic Go analogue of the original's const-generic
// BitArray: a fixed-length owning bit sequence. Go has no const-generic
// array lengths, so unlike BitVector it never grows or shrinks after
// construction — NewFixedBits fixes the length for the value's lifetime.
// Get/Set/scans/counts/format are inherited for free from the Store
// algorithms in store.go, exactly as for BitVector; the shifts are not,
// since LeftShift and RightShift are BitVector methods.
type FixedBits struct {
	store []Word
	len   int
}

var _ Store = (*FixedBits)(nil)

// NewFixedBits returns an n-bit FixedBits with every bit clear.
func NewFixedBits(n int) *FixedBits {
	return &FixedBits{store: make([]Word, wordsNeeded(n)), len: n}
}

// Len returns the fixed number of bit elements.
func (f *FixedBits) Len() int { return f.len }

// Offset is always zero for an owning FixedBits.
func (f *FixedBits) Offset() int { return 0 }

// Words returns the number of words backing the array.
func (f *FixedBits) Words() int { return wordsNeeded(f.len) }

// Word returns logical word i.
func (f *FixedBits) Word(i int) Word {
	if i < 0 || i >= len(f.store) {
		return 0
	}
	return f.store[i]
}

// SetWord sets logical word i, masking off any bits beyond Len().
func (f *FixedBits) SetWord(i int, val Word) {
	if i < 0 || i >= len(f.store) {
		panic(fmt.Sprintf("word index %d out of range for %d words", i, len(f.store)))
	}
	if i == f.Words()-1 {
		val = maskTail(val, f.len)
	}
	f.store[i] = val
}

// String implements fmt.Stringer using the compact binary representation.
func (f *FixedBits) String() string { return ToBinaryString(f) }

// Describe returns a multi-line diagnostic dump of the array.
func (f *FixedBits) Describe() string { return Describe(f) }

// rawWords exposes the backing word slice for BitSlice construction.
func (f *FixedBits) rawWords() []Word { return f.store }

// Slice returns a non-owning BitSlice view onto f's bits in [start, end).
func (f *FixedBits) Slice(start, end int) *BitSlice {
	if start < 0 || end > f.len || start > end {
		panic(fmt.Sprintf("slice range [%d,%d) invalid for length %d", start, end, f.len))
	}
	return newSliceFromStore(f, start, end)
}
