package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shogo82148/posit"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// maxTableWidth bounds the width of the configurations that table prints in full.
const maxTableWidth = 16

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table [flags] [config]",
		Short: "Print every pattern of a configuration with its fields.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, rest, err := layoutFromArgs(cmd, args)
			if err != nil {
				return err
			}
			if len(rest) != 0 {
				return Error.New("unexpected argument %q", rest[0])
			}
			if l.Width() > maxTableWidth {
				return Error.New("%s has too many patterns to print, the limit is %d bits", configName(l), maxTableWidth)
			}
			log.Debugf("printing %d patterns of %s", uint64(1)<<l.Width(), configName(l))
			return writeTable(cmd.OutOrStdout(), l)
		},
	}
}

// writeTable writes the header and one row per pattern of l.
func writeTable(w io.Writer, l posit.Layout) error {
	if _, err := fmt.Fprintln(w, configName(l)); err != nil {
		return Error.Wrap(err)
	}
	if err := writeHeader(w); err != nil {
		return err
	}
	for b := uint64(0); b < 1<<l.Width(); b++ {
		if err := newRow(l, b).write(w); err != nil {
			return err
		}
	}
	return nil
}

// row is the decomposition of one pattern, as printed by table and decode.
type row struct {
	index    uint64
	binary   string
	decoded  string
	k        int
	sign     int
	regime   string
	exponent string
	fraction string
	value    string
}

func newRow(l posit.Layout, b uint64) row {
	width := uint(l.Width())
	c := l.Components(b)
	r := row{
		index:    b,
		binary:   posit.NewBitField(width, b).String(),
		decoded:  decodedBits(l, b),
		k:        c.Regime,
		sign:     c.Sign,
		exponent: "-",
		value:    l.Text(b, 'g', -1),
	}

	if l.IsNaR(b) {
		r.regime = "NaR"
	} else {
		r.regime = strconv.FormatFloat(math.Ldexp(1, c.Regime*l.UseedLog2()), 'g', -1, 64)
	}
	if c.ExponentBits > 0 {
		r.exponent = posit.NewBitField(uint(c.ExponentBits), c.Exponent).String()
	}

	var frac string
	if c.FractionBits > 0 {
		frac = posit.NewBitField(uint(c.FractionBits), c.Fraction).String()
	}
	if len(frac) < int(width) {
		frac += strings.Repeat("-", int(width)-len(frac))
	}
	r.fraction = frac
	return r
}

// decodedBits returns the sign bit of b followed by the two's complement
// of its magnitude bits when b is negative.
func decodedBits(l posit.Layout, b uint64) string {
	width := uint(l.Width())
	f := posit.NewBitField(width, b)
	if f.Get(width - 1) {
		mag := posit.NewBitField(width-1, b).Negate()
		f = posit.NewBitField(width, 1<<(width-1)|mag.Bits())
	}
	return f.String()
}

func writeHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%5s%17s%16s%16s%16s%30s%16s%16s%30s\n",
		"#", "Binary", "Decoded", "k-value", "sign", "regime", "exponent", "fraction", "value")
	return Error.Wrap(err)
}

func (r row) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%4d:%17s%16s%16d%16d%30s%16s%16s%30s\n",
		r.index, r.binary, r.decoded, r.k, r.sign, r.regime, r.exponent, r.fraction, r.value)
	return Error.Wrap(err)
}
