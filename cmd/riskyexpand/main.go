// Package main is the entry point for the riskyexpand daemon.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emmertex/riskyexpand/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int
	var useTerminal bool

	root := &cobra.Command{
		Use:   "riskyexpand",
		Short: "A text expander for Wayland",
		Long: `riskyexpand watches your keystrokes for configured trigger words and
replaces them with longer text and keyboard macros, using wl-copy for
clipboard output and ydotool for key injection.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(useTerminal)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	root.Flags().BoolVar(&useTerminal, "terminal", false, "read keystrokes from this terminal instead of an input device")

	root.AddCommand(newRunCmd(), newInitCmd(), newDevicesCmd(), newVersionCmd())
	return root
}
