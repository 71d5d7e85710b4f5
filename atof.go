// convert string to posit

package posit

import (
	"math"
	"strconv"
)

// lower(c) is a lower-case letter if and only if
// c is either that lower-case letter or the equivalent upper-case letter.
func lower(c byte) byte {
	return c | ('x' - 'X')
}

// isNaRText reports whether s spells NaR, with an optional sign, ignoring case.
func isNaRText(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) == 3 && lower(s[0]) == 'n' && lower(s[1]) == 'a' && lower(s[2]) == 'r'
}

// Parse converts the string s to the nearest posit of configuration C.
//
// s is a decimal or hexadecimal floating-point number as accepted by
// [strconv.ParseFloat], or "NaR". "Inf", "Infinity" and "NaN" are NaR too.
// The value is rounded to a float64 first and then to the posit.
// Numbers beyond the posit range saturate.
//
// Syntax errors are reported as a *strconv.NumError with Err = strconv.ErrSyntax.
func Parse[C Config](s string) (Posit[C], error) {
	b, err := layoutOf[C]().Parse(s)
	return Posit[C](b), err
}

// Parse converts the string s to the nearest posit, see the package-level Parse.
func (l Layout) Parse(s string) (uint64, error) {
	if isNaRText(s) {
		return l.NaR(), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange && math.IsInf(f, 0) {
			// beyond float64, so far beyond maxpos.
			return l.FromFloat64(math.Copysign(math.MaxFloat64, f)), nil
		}
		return 0, &strconv.NumError{Func: "posit.Parse", Num: s, Err: strconv.ErrSyntax}
	}
	return l.FromFloat64(f), nil
}
