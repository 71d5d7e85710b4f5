package posit

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("posit")

const (
	// MaxWidth is the widest supported posit.
	MaxWidth = 64

	// MinWidth is the narrowest supported posit: zero, one, minus one and NaR.
	MinWidth = 2

	// maxScale bounds (W-2)·2^E so that every posit is a normal float64.
	maxScale = 1000

	// maxExponentBits bounds E independently of W.
	maxExponentBits = 16
)

// Layout describes a posit configuration chosen at run time:
// the total width W and the width E of the exponent field.
//
// The methods of Layout operate on raw bit patterns, right aligned in a uint64.
// Bits above the width are ignored.
type Layout struct {
	nbits uint
	es    uint
}

// NewLayout returns the layout of posits with the given total width and exponent field width.
func NewLayout(width, es int) (Layout, error) {
	if width < MinWidth || width > MaxWidth {
		return Layout{}, Error.New("width %d out of range [%d, %d]", width, MinWidth, MaxWidth)
	}
	if es < 0 || es > maxExponentBits {
		return Layout{}, Error.New("exponent field width %d out of range [0, %d]", es, maxExponentBits)
	}
	if (width-2)<<es > maxScale {
		return Layout{}, Error.New("posit<%d,%d> exceeds the float64 range", width, es)
	}
	return Layout{nbits: uint(width), es: uint(es)}, nil
}

// MustLayout is like NewLayout but panics if the configuration is invalid.
func MustLayout(width, es int) Layout {
	l, err := NewLayout(width, es)
	if err != nil {
		panic(err)
	}
	return l
}

// Width returns the total number of bits.
func (l Layout) Width() int {
	return int(l.nbits)
}

// ExponentBits returns the width of the exponent field.
func (l Layout) ExponentBits() int {
	return int(l.es)
}

func (l Layout) mask() uint64 {
	return ^uint64(0) >> (64 - l.nbits)
}

func (l Layout) signMask() uint64 {
	return 1 << (l.nbits - 1)
}

// maxK is the largest regime value; its regime fills all W-1 bits.
func (l Layout) maxK() int {
	return int(l.nbits) - 2
}

// NaR returns the pattern of NaR, the sign bit alone.
func (l Layout) NaR() uint64 {
	return l.signMask()
}

// MaxPos returns the pattern of the largest positive posit.
func (l Layout) MaxPos() uint64 {
	return l.signMask() - 1
}

// MinPos returns the pattern of the smallest positive posit.
func (l Layout) MinPos() uint64 {
	return 1
}

// UseedLog2 returns the base-2 logarithm of useed = 2^(2^E), that is 2^E.
func (l Layout) UseedLog2() int {
	return 1 << l.es
}

// IsNaR reports whether b is NaR.
func (l Layout) IsNaR(b uint64) bool {
	return b&l.mask() == l.signMask()
}

// IsZero reports whether b is zero.
func (l Layout) IsZero(b uint64) bool {
	return b&l.mask() == 0
}

// Signbit reports whether b is negative or NaR.
func (l Layout) Signbit(b uint64) bool {
	return b&l.signMask() != 0
}
