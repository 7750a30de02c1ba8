// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"
	"slices"
	"strings"
)

// Vector is an n-bit column vector over GF(2), packed into ceil(n/32) words.
type Vector struct {
	n     int
	words []uint32
}

// NewVector allocates a zero vector of n bits. n == 0 is allowed.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrBadShape)
	}

	return &Vector{n: n, words: make([]uint32, Words(n))}, nil
}

// VectorFromBools packs bs into a new vector.
func VectorFromBools(bs []bool) *Vector {
	v, _ := NewVector(len(bs))
	for i, b := range bs {
		if b {
			v.set(i)
		}
	}

	return v
}

// Len returns the number of bits.
func (v *Vector) Len() int { return v.n }

// Words returns the packed words as a view; writes modify the vector.
func (v *Vector) Words() []uint32 { return v.words }

func (v *Vector) bit(i int) uint32 {
	return (v.words[i>>wordShift] >> uint(i&wordMask)) & 1
}

func (v *Vector) set(i int) {
	v.words[i>>wordShift] |= uint32(1) << uint(i&wordMask)
}

func (v *Vector) flip(i int) {
	v.words[i>>wordShift] ^= uint32(1) << uint(i&wordMask)
}

// swap exchanges bits i and j; only differing bits need flipping.
func (v *Vector) swap(i, j int) {
	if v.bit(i) != v.bit(j) {
		v.flip(i)
		v.flip(j)
	}
}

func (v *Vector) check(method string, i int) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("Vector.%s(%d): %w", method, i, ErrOutOfRange)
	}

	return nil
}

// Get reports whether bit i is 1.
func (v *Vector) Get(i int) (bool, error) {
	if err := v.check("Get", i); err != nil {
		return false, err
	}

	return v.bit(i) == 1, nil
}

// Set writes bit i.
func (v *Vector) Set(i int, b bool) error {
	if err := v.check("Set", i); err != nil {
		return err
	}
	if b {
		v.set(i)
	} else {
		v.words[i>>wordShift] &^= uint32(1) << uint(i&wordMask)
	}

	return nil
}

// Flip toggles bit i.
func (v *Vector) Flip(i int) error {
	if err := v.check("Flip", i); err != nil {
		return err
	}
	v.flip(i)

	return nil
}

// Swap exchanges bits i and j.
func (v *Vector) Swap(i, j int) error {
	if err := v.check("Swap", i); err != nil {
		return err
	}
	if err := v.check("Swap", j); err != nil {
		return err
	}
	v.swap(i, j)

	return nil
}

// Zero clears all bits in place.
func (v *Vector) Zero() {
	clear(v.words)
}

// OnesCount returns the number of 1 bits.
func (v *Vector) OnesCount() int {
	n := 0
	for _, w := range v.words {
		n += onesCount(w)
	}

	return n
}

// Bools unpacks the vector into dst, growing it if needed, and returns it.
func (v *Vector) Bools(dst []bool) []bool {
	dst = slices.Grow(dst[:0], v.n)[:v.n]
	for i := range dst {
		dst[i] = v.bit(i) == 1
	}

	return dst
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	return &Vector{n: v.n, words: slices.Clone(v.words)}
}

// Equal reports whether o has the same length and bits.
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}

	return v.n == o.n && slices.Equal(v.words, o.words)
}

// String renders the bits as '0'/'1', index 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		sb.WriteByte('0' + byte(v.bit(i)))
	}

	return sb.String()
}
