// Package cli implements the posit command: tables of every pattern of a
// configuration, one-off arithmetic and the reference check of add, subtract
// and negate.
package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by the commands.
var Error = errs.Class("cli")

// Version is set at link time; otherwise the module version is reported.
var Version string

// NewCommand returns the root command with every subcommand attached.
func NewCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "posit",
		Short: "Inspect and exercise posit arithmetic.",
		Long: `Inspect and exercise posit arithmetic.
	A configuration is written posit<W,E> or W,E, where W is the width
	and E the width of the exponent field.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "posit %s\n", version())
				return nil
			}
			return cmd.Help()
		},
	}

	root.Flags().Bool("version", false, "report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().IntP("width", "n", 8, "total number of bits W")
	root.PersistentFlags().IntP("es", "e", 2, "width E of the exponent field")

	root.AddCommand(
		newTableCmd(),
		newAddCmd(),
		newSubCmd(),
		newNegCmd(),
		newDecodeCmd(),
		newVerifyCmd(),
	)
	return root
}

// Execute runs the root command with the arguments of the process.
// This is called by main.main().
func Execute() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}

// getFlag returns a boolean flag, or false if it is not defined.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Debugf("flag %s: %v", flag, err)
		return false
	}
	return r
}
