// Package gf2 provides bit-vectors, bit-matrices, and bit-polynomials
// over the field GF(2), where addition is XOR and multiplication is AND.
// Every type packs its elements into machine words so that operations
// that would naively cost one step per bit instead cost one step per 64
// bits.
//
// BitVector, BitSlice, and FixedBits are three flavors of the same
// underlying bit sequence: an owning growable vector, a non-owning view
// onto another sequence's storage, and a fixed-length owning array. All
// three share their algorithms (Get, Set, scans, counts, string
// conversions) through the Store interface; the shifts are BitVector
// methods only.
//
// BitMatrix builds on BitVector rows to provide Gaussian elimination,
// LU decomposition, matrix inversion, and characteristic polynomial
// computation via Danilevsky's algorithm. BitPoly represents dense
// polynomials over GF(2), including modular reduction of x^n against a
// fixed modulus, useful for binary field arithmetic.
//
// This package aims to be clear and easy to read, and may contain bugs.
// Do not use it for real cryptography.
package gf2
