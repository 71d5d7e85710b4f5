package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shogo82148/posit"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return newBinaryCmd("add", "+", "Add two numbers in a configuration.", posit.Layout.Add)
}

func newSubCmd() *cobra.Command {
	return newBinaryCmd("sub", "-", "Subtract two numbers in a configuration.", posit.Layout.Sub)
}

func newBinaryCmd(name, op, short string, fn func(posit.Layout, uint64, uint64) uint64) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags] [config] a b",
		Short: short,
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, rest, err := layoutFromArgs(cmd, args)
			if err != nil {
				return err
			}
			if len(rest) != 2 {
				return Error.New("%s takes two operands, got %d", name, len(rest))
			}
			a, err := l.Parse(rest[0])
			if err != nil {
				return Error.Wrap(err)
			}
			b, err := l.Parse(rest[1])
			if err != nil {
				return Error.Wrap(err)
			}
			r := fn(l, a, b)
			log.Debugf("%s: %s %s %s = %s", configName(l), bitString(l, a), op, bitString(l, b), bitString(l, r))
			return writeResult(cmd.OutOrStdout(), l, l.Text(a, 'g', -1)+" "+op+" "+l.Text(b, 'g', -1), r)
		},
	}
	// negative operands are not flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newNegCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neg [flags] [config] a",
		Short: "Negate a number in a configuration.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, rest, err := layoutFromArgs(cmd, args)
			if err != nil {
				return err
			}
			if len(rest) != 1 {
				return Error.New("neg takes one operand, got %d", len(rest))
			}
			a, err := l.Parse(rest[0])
			if err != nil {
				return Error.Wrap(err)
			}
			return writeResult(cmd.OutOrStdout(), l, "-("+l.Text(a, 'g', -1)+")", l.Neg(a))
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [flags] [config] bits...",
		Short: "Print the fields of bit patterns, written 0b0101, 0x5 or 5.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, rest, err := layoutFromArgs(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := writeHeader(out); err != nil {
				return err
			}
			for _, s := range rest {
				b, err := strconv.ParseUint(s, 0, l.Width())
				if err != nil {
					return Error.New("invalid %d-bit pattern %q", l.Width(), s)
				}
				if err := newRow(l, b).write(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// writeResult writes "expr = value (bits)".
func writeResult(w io.Writer, l posit.Layout, expr string, r uint64) error {
	_, err := fmt.Fprintf(w, "%s = %s (%s)\n", expr, l.Text(r, 'g', -1), bitString(l, r))
	return Error.Wrap(err)
}

func bitString(l posit.Layout, b uint64) string {
	return posit.NewBitField(uint(l.Width()), b).String()
}
