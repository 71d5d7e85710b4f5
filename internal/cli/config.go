package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shogo82148/posit"
	"github.com/spf13/cobra"
)

// isConfig reports whether s is spelled like a configuration.
func isConfig(s string) bool {
	return strings.Contains(s, ",")
}

// parseConfig parses a configuration written posit<W,E> or W,E.
func parseConfig(s string) (posit.Layout, error) {
	t := s
	if strings.HasPrefix(t, "posit<") && strings.HasSuffix(t, ">") {
		t = t[len("posit<") : len(t)-1]
	}
	ws, es, ok := strings.Cut(t, ",")
	if !ok {
		return posit.Layout{}, Error.New("invalid configuration %q", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return posit.Layout{}, Error.New("invalid width in %q", s)
	}
	e, err := strconv.Atoi(strings.TrimSpace(es))
	if err != nil {
		return posit.Layout{}, Error.New("invalid exponent field width in %q", s)
	}
	l, err := posit.NewLayout(width, e)
	return l, Error.Wrap(err)
}

// layoutFromArgs takes the configuration from the first argument if it is
// spelled like one, and from the --width and --es flags otherwise.
// It returns the remaining arguments.
func layoutFromArgs(cmd *cobra.Command, args []string) (posit.Layout, []string, error) {
	if len(args) > 0 && isConfig(args[0]) {
		l, err := parseConfig(args[0])
		return l, args[1:], err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return posit.Layout{}, nil, Error.Wrap(err)
	}
	es, err := cmd.Flags().GetInt("es")
	if err != nil {
		return posit.Layout{}, nil, Error.Wrap(err)
	}
	l, err := posit.NewLayout(width, es)
	return l, args, Error.Wrap(err)
}

// configName returns the conventional name of l, posit<W,E>.
func configName(l posit.Layout) string {
	return fmt.Sprintf("posit<%d,%d>", l.Width(), l.ExponentBits())
}
