package posit

import "math"

// xorshift64 is a fast pseudo random number generator for benchmarks.
type xorshift64 uint64

func newXorshift64() *xorshift64 {
	x := xorshift64(88172645463325252)
	return &x
}

func (x *xorshift64) Uint64() uint64 {
	y := uint64(*x)
	y ^= y << 13
	y ^= y >> 7
	y ^= y << 17
	*x = xorshift64(y)
	return y
}

// Float64 returns a finite float64 with uniformly distributed bits.
func (x *xorshift64) Float64() float64 {
	for {
		f := math.Float64frombits(x.Uint64())
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
}

// PositPair returns two random bit patterns of width bits.
func (x *xorshift64) PositPair(width int) (uint64, uint64) {
	mask := ^uint64(0) >> (64 - width)
	return x.Uint64() & mask, x.Uint64() & mask
}
