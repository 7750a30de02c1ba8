// SPDX-License-Identifier: MIT

package gf2

import "math/bits"

// WordBits is the width of one packed word.
const WordBits = 32

const (
	wordShift = 5
	wordMask  = WordBits - 1
)

// Words returns the number of packed words needed for n bits, ceil(n/32).
func Words(n int) int {
	return (n + wordMask) >> wordShift
}

// Parity returns the XOR of all bits of v (population count mod 2).
func Parity(v uint32) uint32 {
	return uint32(bits.OnesCount32(v) & 1)
}

// DotParity returns the GF(2) inner product of two packed bit rows:
// parity(a AND b). Only min(len(a), len(b)) words are read.
func DotParity(a, b []uint32) uint32 {
	if len(b) < len(a) {
		a = a[:len(b)]
	}
	var acc uint32
	for i, w := range a {
		acc ^= w & b[i]
	}

	return Parity(acc)
}

// xorInto computes dst ^= src word by word.
func xorInto(dst, src []uint32) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func onesCount(w uint32) int {
	return bits.OnesCount32(w)
}
