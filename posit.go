// Package posit implements posit arithmetic: a fixed-width, tapered-precision
// alternative to IEEE 754 floating point.
//
// A posit of width W and exponent field width E packs a sign bit, a run-length
// coded regime, up to E exponent bits and a fraction into W bits:
//
//	s rrr...r̄ eee fff...
//
// Its value is (-1)^s × useed^k × 2^e × 1.f with useed = 2^(2^E).
// Negative posits are stored in two's complement. The all-zero pattern is zero
// and the sign bit alone is NaR (Not a Real), which stands for every infinite
// or undefined result.
//
// The configuration is a type parameter:
//
//	a := posit.FromFloat64[posit.W8E2](1.5)
//	b := posit.FromFloat64[posit.W8E2](0.25)
//	fmt.Println(a.Add(b)) // 1.75
//
// Layout provides the same operations on raw bit patterns for configurations
// chosen at run time.
package posit

import (
	"golang.org/x/exp/constraints"
)

// Config is a posit configuration fixed at compile time.
// Implementations are empty structs whose methods return constants.
type Config interface {
	// Width returns the total number of bits W.
	Width() int

	// ExponentBits returns the width E of the exponent field.
	ExponentBits() int
}

type (
	W4E0  struct{}
	W5E1  struct{}
	W8E0  struct{}
	W8E1  struct{}
	W8E2  struct{}
	W16E1 struct{}
	W16E2 struct{}
	W32E2 struct{}
	W32E3 struct{}
	W64E2 struct{}
	W64E3 struct{}
)

func (W4E0) Width() int         { return 4 }
func (W4E0) ExponentBits() int  { return 0 }
func (W5E1) Width() int         { return 5 }
func (W5E1) ExponentBits() int  { return 1 }
func (W8E0) Width() int         { return 8 }
func (W8E0) ExponentBits() int  { return 0 }
func (W8E1) Width() int         { return 8 }
func (W8E1) ExponentBits() int  { return 1 }
func (W8E2) Width() int         { return 8 }
func (W8E2) ExponentBits() int  { return 2 }
func (W16E1) Width() int        { return 16 }
func (W16E1) ExponentBits() int { return 1 }
func (W16E2) Width() int        { return 16 }
func (W16E2) ExponentBits() int { return 2 }
func (W32E2) Width() int        { return 32 }
func (W32E2) ExponentBits() int { return 2 }
func (W32E3) Width() int        { return 32 }
func (W32E3) ExponentBits() int { return 3 }
func (W64E2) Width() int        { return 64 }
func (W64E2) ExponentBits() int { return 2 }
func (W64E3) Width() int        { return 64 }
func (W64E3) ExponentBits() int { return 3 }

// Posit is a posit of configuration C, its bit pattern right aligned.
type Posit[C Config] uint64

// The posit types of the 2022 posit standard, all with E = 2.
type (
	Posit8  = Posit[W8E2]
	Posit16 = Posit[W16E2]
	Posit32 = Posit[W32E2]
	Posit64 = Posit[W64E2]
)

// Number is the set of types a posit can be converted from.
type Number interface {
	constraints.Integer | constraints.Float
}

// layoutOf returns the layout of C.
// It panics if C is not a valid configuration.
func layoutOf[C Config]() Layout {
	var c C
	return MustLayout(c.Width(), c.ExponentBits())
}

// FromBits returns the posit with the bit pattern b.
// Bits above the width are ignored.
func FromBits[C Config](b uint64) Posit[C] {
	return Posit[C](b & layoutOf[C]().mask())
}

// FromFloat64 returns the posit nearest to f, ties to even.
//
// Special cases are:
//
//	FromFloat64(±Inf) = NaR
//	FromFloat64(NaN) = NaR
//	FromFloat64(±0) = 0
//
// Magnitudes beyond the range of the posit saturate to ±maxpos or ±minpos.
func FromFloat64[C Config](f float64) Posit[C] {
	return Posit[C](layoutOf[C]().FromFloat64(f))
}

// FromFloat32 returns the posit nearest to f, ties to even.
func FromFloat32[C Config](f float32) Posit[C] {
	return Posit[C](layoutOf[C]().FromFloat64(float64(f)))
}

// From returns the posit nearest to v, ties to even.
// Integers are converted exactly before rounding, even those beyond 2^53.
func From[C Config, T Number](v T) Posit[C] {
	l := layoutOf[C]()

	var half T = 1
	half /= 2
	if half != 0 {
		return Posit[C](l.FromFloat64(float64(v)))
	}

	var zero T
	if zero-1 < 0 {
		return Posit[C](l.FromInt64(int64(v)))
	}
	return Posit[C](l.FromUint64(uint64(v)))
}

// NaR returns Not a Real.
func NaR[C Config]() Posit[C] {
	return Posit[C](layoutOf[C]().NaR())
}

// MaxPos returns the largest positive posit.
func MaxPos[C Config]() Posit[C] {
	return Posit[C](layoutOf[C]().MaxPos())
}

// MinPos returns the smallest positive posit.
func MinPos[C Config]() Posit[C] {
	return Posit[C](layoutOf[C]().MinPos())
}

// Layout returns the run-time description of the configuration of p.
func (p Posit[C]) Layout() Layout {
	return layoutOf[C]()
}

// Bits returns the bit pattern of p.
func (p Posit[C]) Bits() uint64 {
	return uint64(p)
}

// Float64 returns the float64 representation of p.
// NaR is NaN. Posits with more than 52 fraction bits are rounded,
// so a wide posit may not survive FromFloat64(p.Float64()).
func (p Posit[C]) Float64() float64 {
	return layoutOf[C]().Float64(uint64(p))
}

// Float32 returns the float32 representation of p.
// NaR is NaN.
func (p Posit[C]) Float32() float32 {
	return float32(layoutOf[C]().Float64(uint64(p)))
}

// IsZero reports whether p is zero.
func (p Posit[C]) IsZero() bool {
	return layoutOf[C]().IsZero(uint64(p))
}

// IsNaR reports whether p is NaR.
func (p Posit[C]) IsNaR() bool {
	return layoutOf[C]().IsNaR(uint64(p))
}

// IsInf reports whether p is infinite. NaR is the only infinite posit.
func (p Posit[C]) IsInf() bool {
	return p.IsNaR()
}

// Signbit reports whether p is negative or NaR.
func (p Posit[C]) Signbit() bool {
	return layoutOf[C]().Signbit(uint64(p))
}

// Neg returns -p.
func (p Posit[C]) Neg() Posit[C] {
	return Posit[C](layoutOf[C]().Neg(uint64(p)))
}

// Abs returns |p|.
func (p Posit[C]) Abs() Posit[C] {
	return Posit[C](layoutOf[C]().Abs(uint64(p)))
}

// Add returns the sum p+q, rounded to nearest even.
func (p Posit[C]) Add(q Posit[C]) Posit[C] {
	return Posit[C](layoutOf[C]().Add(uint64(p), uint64(q)))
}

// Sub returns the difference p-q, rounded to nearest even.
func (p Posit[C]) Sub(q Posit[C]) Posit[C] {
	return Posit[C](layoutOf[C]().Sub(uint64(p), uint64(q)))
}

// Compare compares p and q and returns:
//
//	-1 if p <  q
//	 0 if p == q
//	+1 if p >  q
//
// NaR is less than any real posit, and two NaRs are equal.
func (p Posit[C]) Compare(q Posit[C]) int {
	return layoutOf[C]().Compare(uint64(p), uint64(q))
}

// Components returns the fields of p as plain data.
func (p Posit[C]) Components() Components {
	return layoutOf[C]().Components(uint64(p))
}
