package posit

import "fmt"

var _ fmt.Formatter = Posit8(0)

// Format implements [fmt.Formatter].
// The verbs b, e, E, f, F, g, G, x and X format the value like Text does,
// v and s use the 'g' format. Flags '+', ' ' and '-' and the width are honored.
func (p Posit[C]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X', 'v', 's':
	default:
		fmt.Fprintf(s, "%%!%c(posit=%s)", verb, p.String())
		return
	}
	if p.IsNaR() {
		s.Write([]byte("NaR"))
		return
	}

	var prefix []byte
	var data []byte

	// sign
	if p.Signbit() {
		prefix = append(prefix, '-')
		p = p.Neg()
	} else {
		if s.Flag('+') {
			prefix = append(prefix, '+')
		} else if s.Flag(' ') {
			prefix = append(prefix, ' ')
		}
	}

	prec, ok := s.Precision()
	if !ok {
		prec = -1
	}
	switch verb {
	case 'b':
		data = p.Append(data, 'b', -1)
	case 'F':
		data = p.Append(data, 'f', prec)
	case 'e', 'E', 'f', 'g', 'G', 'x', 'X':
		data = p.Append(data, byte(verb), prec)
	default:
		data = p.Append(data, 'g', -1)
	}

	if w, ok := s.Width(); ok {
		var buf [1]byte
		buf[0] = ' '
		n := len(prefix) + len(data)
		if s.Flag('-') {
			s.Write(prefix)
			s.Write(data)
			for i := n; i < w; i++ {
				s.Write(buf[:1])
			}
		} else {
			for i := n; i < w; i++ {
				s.Write(buf[:1])
			}
			s.Write(prefix)
			s.Write(data)
		}
		return
	}

	if len(prefix) > 0 {
		s.Write(prefix)
	}
	s.Write(data)
}
