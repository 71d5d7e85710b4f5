package posit

import (
	"github.com/shogo82148/int128"
)

// hiddenBit is the position of the hidden bit in a normalized significand.
// Bit 127 stays clear to take the carry of an addition.
const hiddenBit = 126

// normalize installs the hidden bit above the fracBits bits of frac,
// giving the significand 1.frac with the hidden bit at hiddenBit.
//
//	h.bbbb_bbbb_bbbb_b...
func normalize(frac uint64, fracBits uint) int128.Uint128 {
	sig := int128.Uint128{L: frac}.Lsh(hiddenBit - fracBits)
	sig.H |= 1 << (hiddenBit - 64)
	return sig
}

// denormalize aligns a normalized significand to a binary point shift places
// to its left. The bits shifted out are discarded, and a shift that moves the
// hidden bit to position 0 or beyond leaves nothing.
//
//	h.bbbb_bbbb_bbbb_b...       sig
//	0.000h_bbbb_bbbb_bbbb_b...  denormalize(sig, 4)
func denormalize(sig int128.Uint128, shift uint) int128.Uint128 {
	if shift >= hiddenBit {
		return int128.Uint128{}
	}
	return sig.Rsh(shift)
}
