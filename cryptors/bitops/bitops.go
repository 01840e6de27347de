// bitops project bitops.go
package bitops

import "math/bits"

// Set is a set of alphabet positions, one bit per position.  It is large
// enough for the 26 letter alphabet.
type Set uint32

func (s Set) SetBit(bit uint) Set {
	return s | (1 << bit)
}

func (s Set) ClrBit(bit uint) Set {
	return s &^ (1 << bit)
}

func (s Set) GetBit(bit uint) bool {
	return s&(1<<bit) != 0
}

// Count returns the number of bits set.
func (s Set) Count() int {
	return bits.OnesCount32(uint32(s))
}

// Bits returns the set bits in ascending order.
func (s Set) Bits() []uint {
	res := make([]uint, 0, s.Count())
	for s != 0 {
		b := uint(bits.TrailingZeros32(uint32(s)))
		res = append(res, b)
		s = s.ClrBit(b)
	}

	return res
}
