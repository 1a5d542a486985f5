// Package cli — wait.go implements the "plugkit wait" command.
//
// The wait command is the end-to-end demonstration of the duration flag
// type: --for is a flags.Duration registered as a pflag.Value with a
// default and bounds, so invalid or out-of-range values fail flag parsing
// with the localized catalog messages before the command body runs.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/plugkit/internal/flags"
)

// waitFlags holds the flag values for the wait command.
type waitFlags struct {
	// forFlag is the validated duration value bound to --for.
	forFlag *flags.Duration

	// dryRun skips the actual sleep and only prints what would happen.
	dryRun bool
}

// NewWaitCommand creates the "wait" cobra command.
func NewWaitCommand() *cobra.Command {
	wf := &waitFlags{}

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Sleep for a validated duration",
		Long: `Wait sleeps for the duration given via --for, a whole number of
seconds between 1 and 3600. When --for is omitted the configured
default of 5 seconds applies.

Examples:
  plugkit wait --for 30
  plugkit wait --for 2 --dry-run`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runWait(cmd.OutOrStdout(), wf)
		},
	}

	// The flag config is fixed at registration time; Set validates every
	// command-line value against it during flag parsing.
	wf.forFlag = flags.Var(cmd.Flags(), "for",
		"Seconds to wait (1-3600, default 5)",
		flags.Config{Unit: flags.Seconds, Default: 5, Min: 1, Max: 3600})
	cmd.Flags().BoolVar(&wf.dryRun, "dry-run", false, "Print the duration without sleeping")

	return cmd
}

// runWait is the main logic function for the wait command.
func runWait(out io.Writer, wf *waitFlags) error {
	d, ok := wf.forFlag.Get()
	if !ok {
		// Unreachable with the current config (it has a default), kept for
		// the day the default is removed.
		return fmt.Errorf("no duration given and no default configured")
	}

	if wf.dryRun {
		_, err := fmt.Fprintf(out, "would wait %s\n", d)
		return err
	}

	slog.Debug("sleeping", "duration", d)
	time.Sleep(d)
	_, err := fmt.Fprintf(out, "waited %s\n", d)
	return err
}
