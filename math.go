package posit

import (
	"github.com/shogo82148/int128"
)

// Neg returns -b.
// Zero and NaR are their own negations.
func (l Layout) Neg(b uint64) uint64 {
	b &= l.mask()
	if b == 0 || b == l.NaR() {
		return b
	}
	return NewBitField(l.nbits, b).Negate().Bits()
}

// Abs returns |b|. The absolute value of NaR is NaR.
func (l Layout) Abs(b uint64) uint64 {
	b &= l.mask()
	if b&l.signMask() != 0 {
		return l.Neg(b)
	}
	return b
}

// Add returns the sum a+b, rounded to nearest even.
//
// Special cases are:
//
//	NaR + x = NaR
//	x + NaR = NaR
//	0 + x = x
//	x + 0 = x
//
// Sums beyond maxpos saturate to maxpos.
func (l Layout) Add(a, b uint64) uint64 {
	a &= l.mask()
	b &= l.mask()
	switch {
	case a == l.NaR() || b == l.NaR():
		return l.NaR()
	case a == 0:
		return b
	case b == 0:
		return a
	}

	da := l.decode(a)
	db := l.decode(b)
	scaleA := l.scale(da)
	scaleB := l.scale(db)
	sigA := normalize(da.frac, da.fracBits)
	sigB := normalize(db.frac, db.fracBits)

	// make a the operand of larger magnitude
	if scaleA < scaleB || scaleA == scaleB && sigA.Cmp(sigB) < 0 {
		da, db = db, da
		scaleA, scaleB = scaleB, scaleA
		sigA, sigB = sigB, sigA
	}
	sigB = denormalize(sigB, uint(scaleA-scaleB))

	var sig int128.Uint128
	if da.neg == db.neg {
		sig = sigA.Add(sigB)
	} else {
		sig = sigA.Sub(sigB)
		if sig == (int128.Uint128{}) {
			// x + (-x) = 0
			return 0
		}
	}

	// move the leading one to bit 127; a carry raises the scale, cancellation lowers it.
	n := sig.Len()
	scale := scaleA + n - 1 - hiddenBit
	sig = sig.Lsh(uint(128 - n))
	return l.pack(da.neg, scale, sig.H, sig.L != 0)
}

// Sub returns the difference a-b, rounded to nearest even.
func (l Layout) Sub(a, b uint64) uint64 {
	return l.Add(a, l.Neg(b))
}

// Compare compares a and b and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
//
// NaR is less than every real posit, and equal to itself.
func (l Layout) Compare(a, b uint64) int {
	// posits order like the two's-complement integers of the same width.
	shift := 64 - l.nbits
	ia := int64(a<<shift) >> shift
	ib := int64(b<<shift) >> shift
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	}
	return 0
}
