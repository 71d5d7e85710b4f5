package posit

import (
	"math/bits"
)

// BitField is a fixed-width container of up to 64 bits.
// Bit 0 is the least significant bit and bit Width()-1 the most significant.
//
// Indexing outside [0, Width()) panics.
type BitField struct {
	width uint
	bits  uint64
}

// NewBitField returns a width-bit field holding the low width bits of b.
func NewBitField(width uint, b uint64) BitField {
	if width == 0 || width > 64 {
		panic("posit: bit field width out of range")
	}
	f := BitField{width: width}
	f.bits = b & f.mask()
	return f
}

func (f BitField) mask() uint64 {
	return ^uint64(0) >> (64 - f.width)
}

func (f BitField) check(i uint) {
	if i >= f.width {
		panic("posit: bit index out of range")
	}
}

// Width returns the number of bits in f.
func (f BitField) Width() uint {
	return f.width
}

// Bits returns the content of f, right aligned.
func (f BitField) Bits() uint64 {
	return f.bits
}

// Get reports whether bit i is set.
func (f BitField) Get(i uint) bool {
	f.check(i)
	return f.bits>>i&1 != 0
}

// Set sets bit i to v.
func (f *BitField) Set(i uint, v bool) {
	f.check(i)
	if v {
		f.bits |= 1 << i
	} else {
		f.bits &^= 1 << i
	}
}

// Reset clears every bit.
func (f *BitField) Reset() {
	f.bits = 0
}

// Run returns the length of the run of bits equal to bit i,
// starting at i and moving toward bit 0.
func (f BitField) Run(i uint) uint {
	f.check(i)
	x := f.bits
	if x>>i&1 != 0 {
		x = ^x
	}
	x <<= 63 - i
	n := uint(bits.LeadingZeros64(x))
	if n > i+1 {
		n = i + 1
	}
	return n
}

// Field returns the n bits of f starting at bit lo.
// A zero-length field is 0.
func (f BitField) Field(lo, n uint) uint64 {
	if n == 0 {
		return 0
	}
	f.check(lo + n - 1)
	return f.bits >> lo & (^uint64(0) >> (64 - n))
}

// Lsh returns f shifted left by n, dropping the bits shifted past the top.
func (f BitField) Lsh(n uint) BitField {
	if n >= f.width {
		return BitField{width: f.width}
	}
	return BitField{width: f.width, bits: f.bits << n & f.mask()}
}

// Rsh returns f shifted right by n.
func (f BitField) Rsh(n uint) BitField {
	if n >= f.width {
		return BitField{width: f.width}
	}
	return BitField{width: f.width, bits: f.bits >> n}
}

// Negate returns the two's complement of f within its width:
// every bit inverted, then incremented, with the carry out of the top dropped.
func (f BitField) Negate() BitField {
	return BitField{width: f.width, bits: (^f.bits + 1) & f.mask()}
}

// IsZero reports whether every bit of f is clear.
func (f BitField) IsZero() bool {
	return f.bits == 0
}

// String returns the bits of f, most significant first.
func (f BitField) String() string {
	return string(f.Append(make([]byte, 0, f.width)))
}

// Append appends the bits of f, most significant first, to buf.
func (f BitField) Append(buf []byte) []byte {
	for i := int(f.width) - 1; i >= 0; i-- {
		buf = append(buf, '0'+byte(f.bits>>uint(i)&1))
	}
	return buf
}
