// convert posit to string

package posit

import (
	"strconv"
)

// String returns p formatted with the 'g' format and the smallest precision
// that reproduces the float64 value of p. NaR is "NaR".
func (p Posit[C]) String() string {
	return p.Text('g', -1)
}

// Text converts p to a string, according to the format fmt and precision prec.
// The formats are those of [strconv.FormatFloat].
func (p Posit[C]) Text(fmt byte, prec int) string {
	return string(p.Append(make([]byte, 0, 16), fmt, prec))
}

// Append appends the string form of p, as generated by Text, to buf.
func (p Posit[C]) Append(buf []byte, fmt byte, prec int) []byte {
	return layoutOf[C]().Append(buf, uint64(p), fmt, prec)
}

// Text converts the posit b to a string, see [Posit.Text].
func (l Layout) Text(b uint64, fmt byte, prec int) string {
	return string(l.Append(make([]byte, 0, 16), b, fmt, prec))
}

// Append appends the string form of the posit b to buf, see [Posit.Text].
func (l Layout) Append(buf []byte, b uint64, fmt byte, prec int) []byte {
	if l.IsNaR(b) {
		return append(buf, "NaR"...)
	}
	if fmt == 'b' {
		return l.appendBin(buf, b)
	}
	return strconv.AppendFloat(buf, l.Float64(b), fmt, prec, 64)
}

// appendBin formats b as an exact binary exponent, -ddddp±dd,
// where dddd is the significand including the hidden bit.
func (l Layout) appendBin(buf []byte, b uint64) []byte {
	if l.IsZero(b) {
		return append(buf, "0p+00"...)
	}
	d := l.decode(b & l.mask())
	if d.neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, d.frac|1<<d.fracBits, 10)

	exp := l.scale(d) - int(d.fracBits)
	buf = append(buf, 'p')
	if exp >= 0 {
		buf = append(buf, '+')
	} else {
		buf = append(buf, '-')
		exp = -exp
	}
	if exp < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, int64(exp), 10)
}
