package posit

// decodeRegime reads the regime at the top of f, the W-1 bits following the sign.
//
// A run of m ones is k = m-1 and a run of m zeros is k = -m.
// The run and its terminating bit occupy m+1 bits; when the run reaches
// bit 0 there is no terminator and every bit of f is used.
func decodeRegime(f BitField) (k int, used uint) {
	top := f.Width() - 1
	m := f.Run(top)
	if f.Get(top) {
		k = int(m) - 1
	} else {
		k = -int(m)
	}
	used = m + 1
	if used > f.Width() {
		used = f.Width()
	}
	return k, used
}

// encodeRegime returns the regime bits for k and their count.
// k >= 0 is k+1 ones and a zero, k < 0 is -k zeros and a one.
// The caller keeps k within the range whose regime fits in W-1 bits.
func encodeRegime(k int) (regime uint64, length uint) {
	if k >= 0 {
		length = uint(k) + 2
		return (1<<(uint(k)+1) - 1) << 1, length
	}
	return 1, uint(-k) + 1
}
