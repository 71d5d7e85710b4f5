package posit

import (
	"math"
	"math/bits"

	"github.com/shogo82148/int128"
)

// decoded holds the fields of a nonzero, non-NaR posit.
type decoded struct {
	neg      bool
	k        int
	exp      uint64 // raw exponent bits; missing low bits are zero
	expBits  uint
	frac     uint64
	fracBits uint
}

// decode splits b into its fields. b must not be zero or NaR.
func (l Layout) decode(b uint64) decoded {
	var d decoded
	f := NewBitField(l.nbits-1, b)
	if b&l.signMask() != 0 {
		d.neg = true
		f = f.Negate()
	}

	k, used := decodeRegime(f)
	rest := f.Width() - used
	eb := l.es
	if rest < eb {
		eb = rest
	}
	d.k = k
	d.expBits = eb
	// the exponent follows the regime at the top of what remains
	d.exp = f.Lsh(used).Rsh(f.Width() - eb).Bits()
	d.fracBits = rest - eb
	d.frac = f.Field(0, d.fracBits)
	return d
}

// scale returns the binary exponent of d, k·2^E + e.
func (l Layout) scale(d decoded) int {
	return d.k<<l.es + int(d.exp<<(l.es-d.expBits))
}

// pack encodes ±2^scale × sig/2^63, where sig has its leading one at bit 63.
// sticky reports that nonzero bits below sig were lost.
// The result is rounded to nearest, ties to even, on the bit string.
// Magnitudes beyond maxpos or below minpos saturate.
func (l Layout) pack(neg bool, scale int, sig uint64, sticky bool) uint64 {
	k := scale >> l.es
	var p uint64
	switch {
	case k >= l.maxK():
		p = l.MaxPos()
	case k < -l.maxK():
		p = l.MinPos()
	default:
		e := uint64(scale) & (1<<l.es - 1)
		regime, length := encodeRegime(k)
		rem := l.nbits - 1 - length

		// the exponent followed by the fraction: 64+E bits, of which rem are kept.
		tail := int128.Uint128{H: e, L: sig << 1}
		drop := 64 + l.es - rem
		p = regime<<rem | tail.Rsh(drop).L

		round := tail.Rsh(drop-1).L&1 != 0
		if round && (sticky || tail.TrailingZeros() < int(drop-1) || p&1 != 0) {
			// the carry may run into the regime, which is still a valid posit.
			p++
		}
	}
	if neg {
		p = NewBitField(l.nbits-1, p).Negate().Bits() | l.signMask()
	}
	return p
}

// FromFloat64 returns the posit nearest to f.
// ±Inf and NaN are NaR.
func (l Layout) FromFloat64(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f) || math.IsInf(f, 0):
		return l.NaR()
	}
	frac, exp := math.Frexp(math.Abs(f))
	sig := uint64(math.Ldexp(frac, 64))
	return l.pack(f < 0, exp-1, sig, false)
}

// FromInt64 returns the posit nearest to i.
func (l Layout) FromInt64(i int64) uint64 {
	m := uint64(i)
	if i < 0 {
		m = -m
	}
	return l.fromMagnitude(i < 0, m)
}

// FromUint64 returns the posit nearest to u.
func (l Layout) FromUint64(u uint64) uint64 {
	return l.fromMagnitude(false, u)
}

func (l Layout) fromMagnitude(neg bool, m uint64) uint64 {
	if m == 0 {
		return 0
	}
	lz := bits.LeadingZeros64(m)
	return l.pack(neg, 63-lz, m<<lz, false)
}

// Float64 returns the float64 value of b.
// NaR is NaN. Posits wider than 55 bits may carry more fraction bits than
// a float64; those are rounded to nearest even.
func (l Layout) Float64(b uint64) float64 {
	b &= l.mask()
	switch b {
	case 0:
		return 0
	case l.NaR():
		return math.NaN()
	}
	d := l.decode(b)
	sig := d.frac | 1<<d.fracBits
	v := math.Ldexp(float64(sig), l.scale(d)-int(d.fracBits))
	if d.neg {
		v = -v
	}
	return v
}

// Components is the decomposition of a posit into its fields, as plain data.
type Components struct {
	// Sign is +1 or -1.
	Sign int

	// Regime is the k-value of the regime; the regime scale is useed^k.
	Regime int

	// Exponent holds the ExponentBits exponent bits present in the pattern.
	// Exponent bits cut off by the end of the pattern count as zeros.
	Exponent     uint64
	ExponentBits int

	// Fraction holds the FractionBits fraction bits, without the hidden bit.
	Fraction     uint64
	FractionBits int

	// Scale is the binary exponent k·2^E + e.
	Scale int

	// Value is the decoded value, NaN for NaR.
	Value float64
}

// Components returns the decomposition of b.
func (l Layout) Components(b uint64) Components {
	b &= l.mask()
	switch b {
	case 0:
		return Components{Sign: 1}
	case l.NaR():
		return Components{Sign: -1, Regime: -int(l.nbits - 1), Value: math.NaN()}
	}
	d := l.decode(b)
	c := Components{
		Sign:         1,
		Regime:       d.k,
		Exponent:     d.exp,
		ExponentBits: int(d.expBits),
		Fraction:     d.frac,
		FractionBits: int(d.fracBits),
		Scale:        l.scale(d),
		Value:        l.Float64(b),
	}
	if d.neg {
		c.Sign = -1
	}
	return c
}
