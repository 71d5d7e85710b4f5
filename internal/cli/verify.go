package cli

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/bits-and-blooms/bitset"
	"github.com/shogo82148/posit"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"golang.org/x/term"
)

// maxVerifyWidth bounds the configurations whose pairs are enumerated.
const maxVerifyWidth = 12

// tolerance is the largest accepted distance between a result and its reference.
const tolerance = 1e-4

var defaultVerifyConfigs = []string{"posit<4,0>", "posit<5,1>"}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [flags] [config...]",
		Short: "Check add, subtract and negate against a reference computation.",
		Long: `Check add, subtract and negate against a reference computation.
	Every pair of values of each configuration is added and subtracted, and the
	result is compared with the float64 result rounded to the configuration.
	Without arguments posit<4,0> and posit<5,1> are checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultVerifyConfigs
			}
			var layouts []posit.Layout
			for _, arg := range args {
				l, err := parseConfig(arg)
				if err != nil {
					return err
				}
				if l.Width() > maxVerifyWidth {
					return Error.New("%s has too many pairs to check, the limit is %d bits", configName(l), maxVerifyWidth)
				}
				layouts = append(layouts, l)
			}
			return verify(cmd.OutOrStdout(), layouts)
		},
	}
}

// check is one property verified over a whole configuration.
type check struct {
	name string

	// run returns the number of failing cases.
	run func(l posit.Layout) int
}

var checks = []check{
	{"addition", checkAddition},
	{"negation", checkNegation},
	{"neg addition", checkNegAddition},
	{"subtraction", checkSubtraction},
	{"round trip", checkRoundTrip},
}

// verify runs every check on every layout and reports PASS or FAIL for each.
// The error names every failed check.
func verify(w io.Writer, layouts []posit.Layout) error {
	colour := isTerminal(w)
	var group errs.Group
	for _, l := range layouts {
		for _, c := range checks {
			n := c.run(l)
			log.Debugf("%s %s: %d failures", configName(l), c.name, n)
			if err := writeStatus(w, colour, configName(l), c.name, n == 0); err != nil {
				return err
			}
			if n != 0 {
				group.Add(Error.New("%s %s: %d failures", configName(l), c.name, n))
			}
		}
	}
	return group.Err()
}

func writeStatus(w io.Writer, colour bool, config, name string, pass bool) error {
	status := "PASS"
	if !pass {
		status = "FAIL"
	}
	if colour {
		code := "32"
		if !pass {
			code = "31"
		}
		status = "\x1b[" + code + "m" + status + "\x1b[0m"
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", config, name, status)
	return Error.Wrap(err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// values returns the value of every pattern of l, with +Inf for NaR.
func values(l posit.Layout) []float64 {
	n := uint64(1) << l.Width()
	vs := make([]float64, 0, n)
	for b := uint64(0); b < n; b++ {
		if l.IsNaR(b) {
			vs = append(vs, math.Inf(1))
			continue
		}
		vs = append(vs, l.Float64(b))
	}
	return vs
}

// near reports whether x matches the reference ref:
// the same pattern, or real values at most tolerance apart.
func near(l posit.Layout, x, ref uint64) bool {
	if x == ref {
		return true
	}
	if l.IsNaR(x) || l.IsNaR(ref) {
		return false
	}
	return math.Abs(l.Float64(x)-l.Float64(ref)) <= tolerance
}

func checkAddition(l posit.Layout) int {
	return checkBinary(l, "+", posit.Layout.Add, func(a, b float64) float64 { return a + b })
}

func checkSubtraction(l posit.Layout) int {
	return checkBinary(l, "-", posit.Layout.Sub, func(a, b float64) float64 { return a - b })
}

func checkBinary(l posit.Layout, op string, fn func(posit.Layout, uint64, uint64) uint64, ref func(a, b float64) float64) int {
	failures := 0
	vs := values(l)
	for _, fa := range vs {
		pa := l.FromFloat64(fa)
		for _, fb := range vs {
			pb := l.FromFloat64(fb)
			got := fn(l, pa, pb)
			want := l.FromFloat64(ref(fa, fb))
			if !near(l, got, want) {
				log.Warnf("%s %s %s %s: expected %s (%s), got %s (%s)", configName(l),
					l.Text(pa, 'g', -1), op, l.Text(pb, 'g', -1),
					l.Text(want, 'g', -1), bitString(l, want), l.Text(got, 'g', -1), bitString(l, got))
				failures++
			}
		}
	}
	return failures
}

func checkNegation(l posit.Layout) int {
	failures := 0
	for _, v := range values(l) {
		pa := l.FromFloat64(v)
		want := l.FromFloat64(-v)
		if got := l.Neg(pa); got != want {
			log.Warnf("%s -(%s): expected %s, got %s", configName(l), l.Text(pa, 'g', -1), bitString(l, want), bitString(l, got))
			failures++
		}
	}
	return failures
}

func checkNegAddition(l posit.Layout) int {
	failures := 0
	for _, v := range values(l) {
		pa := l.FromFloat64(v)
		sum := l.Add(pa, l.Neg(pa))
		if l.IsNaR(pa) {
			if !l.IsNaR(sum) {
				log.Warnf("%s NaR + NaR: expected NaR, got %s", configName(l), l.Text(sum, 'g', -1))
				failures++
			}
			continue
		}
		if l.IsNaR(sum) || math.Abs(l.Float64(sum)) > tolerance {
			c := l.Components(sum)
			log.Warnf("%s %s + -(%s): expected 0, got %s %+v", configName(l), l.Text(pa, 'g', -1), l.Text(pa, 'g', -1), l.Text(sum, 'g', -1), c)
			failures++
		}
	}
	return failures
}

// checkRoundTrip decodes and encodes every pattern, which must come back
// unchanged, so that every pattern is reached.
func checkRoundTrip(l posit.Layout) int {
	failures := 0
	n := uint64(1) << l.Width()
	seen := bitset.New(uint(n))
	for b := uint64(0); b < n; b++ {
		got := l.FromFloat64(l.Float64(b))
		if got != b {
			log.Warnf("%s %s: decoded and encoded to %s", configName(l), bitString(l, b), bitString(l, got))
			failures++
		}
		seen.Set(uint(got))
	}
	if !seen.All() {
		missing := n - uint64(seen.Count())
		log.Warnf("%s: %d patterns are never produced", configName(l), missing)
		failures += int(missing)
	}
	return failures
}
