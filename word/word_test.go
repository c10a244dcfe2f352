package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSizeAndMax(t *testing.T) {
	assert.Equal(t, 8, BitSize[uint8]())
	assert.Equal(t, 64, BitSize[uint64]())
	assert.Equal(t, uint8(0xff), Max[uint8]())
	assert.Equal(t, uint64(0xffffffffffffffff), Max[uint64]())
}

func TestAlternating(t *testing.T) {
	assert.Equal(t, uint8(0x55), Alternating[uint8]())
	assert.Equal(t, uint64(0x5555555555555555), Alternating[uint64]())
}

func TestWordIndexAndBitOffset(t *testing.T) {
	assert.Equal(t, 0, WordIndex[uint64](0))
	assert.Equal(t, 0, WordIndex[uint64](63))
	assert.Equal(t, 1, WordIndex[uint64](64))
	assert.Equal(t, 63, BitOffset[uint64](63))
	assert.Equal(t, 0, BitOffset[uint64](64))
}

func TestLowestAndHighestSetBit(t *testing.T) {
	i, ok := LowestSetBit[uint8](0b00101000)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = HighestSetBit[uint8](0b00101000)
	assert.True(t, ok)
	assert.Equal(t, 5, i)

	_, ok = LowestSetBit[uint8](0)
	assert.False(t, ok)
}

func TestLowestAndHighestUnsetBit(t *testing.T) {
	i, ok := LowestUnsetBit[uint8](0b00000111)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = HighestUnsetBit[uint8](Max[uint8]())
	assert.False(t, ok)
}

func TestPrevPowerOfTwo(t *testing.T) {
	assert.Equal(t, uint32(1), PrevPowerOfTwo[uint32](1))
	assert.Equal(t, uint32(4), PrevPowerOfTwo[uint32](7))
	assert.Equal(t, uint32(8), PrevPowerOfTwo[uint32](8))
}

func TestCountOnes(t *testing.T) {
	assert.Equal(t, 4, CountOnes[uint16](0b1010101000000000))
	assert.Equal(t, 0, CountOnes[uint64](0))
}

func TestReverseBits(t *testing.T) {
	assert.Equal(t, uint8(0b10000000), ReverseBits[uint8](0b00000001))
	assert.Equal(t, uint8(0b11010000), ReverseBits[uint8](0b00001011))
}

func TestRiffleSpreadsBitsToEvenPositions(t *testing.T) {
	lo, hi := Riffle[uint8](0b1111)
	// Every input bit i lands at output position 2i.
	assert.Equal(t, uint8(0b01010101), lo)
	assert.Equal(t, uint8(0), hi)

	lo, hi = Riffle[uint8](0xff)
	assert.Equal(t, uint8(0x55), lo)
	assert.Equal(t, uint8(0x55), hi)
}

func TestWithSetAndUnsetBits(t *testing.T) {
	assert.Equal(t, uint8(0b00011100), WithSetBits[uint8](2, 5))
	assert.Equal(t, uint8(0xff)&^uint8(0b00011100), WithUnsetBits[uint8](2, 5))
}
