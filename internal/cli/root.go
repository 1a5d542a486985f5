// Package cli implements the cobra commands for the plugkit binary.
//
// Each subcommand (classify, wait) is defined in its own file within this
// package. This file defines the root command, global flags, logger setup,
// and the Execute error handler that maps returned errors onto process
// exit codes via internal/exiterr.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/plugkit/internal/catalog"
	"github.com/mmr-tortoise/plugkit/internal/exiterr"
)

// Global flag variables shared across all subcommands. They are bound to
// persistent flags on the root command, which makes them available to every
// subcommand automatically.
var (
	// jsonOutput switches error output to a machine-readable report on
	// stderr instead of the colored one-line message.
	jsonOutput bool

	// verbose lowers the log level to debug.
	verbose bool

	// localeFlag selects the message-catalog language (e.g., "en", "ja").
	localeFlag string
)

// Version, Commit, and Date are set at build time via ldflags. They are
// injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command. The root
// command performs no action itself; functionality lives in subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plugkit",
		Short: "Exit-code classification and duration flags for CLI plugins",
		Long: `plugkit bundles the cross-cutting helpers shared by CLI plugins:
error classification with deterministic exit codes (20 for internal
"gack" failures, 10 for type errors) and validated duration flags.

The classify command inspects an error description and reports the
exit code a plugin process would terminate with. The wait command
demonstrates the duration flag type end to end.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// SilenceErrors prevents double-printing; Execute formats errors.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// PersistentPreRun fires before any subcommand, after flags are
		// parsed, so logger and locale reflect the global flags.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
			if localeFlag != "" {
				catalog.SetLocale(localeFlag)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output errors as JSON reports")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "Message catalog locale (default: en)")

	rootCmd.AddCommand(NewClassifyCommand())
	rootCmd.AddCommand(NewWaitCommand())

	return rootCmd
}

// setupLogger installs a tint slog handler on stderr. Debug level when
// --verbose is set, warn otherwise so normal runs stay quiet.
func setupLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

// Execute runs the root command and terminates the process. Errors returned
// by subcommands are resolved to an exit code by the classifier, so a gack
// or type error surfacing anywhere in a command exits with 20 or 10 without
// the command having to know about exit codes.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	code := exiterr.ResolveDefault(err)
	printError(code, err, rootCmd.Name())
	os.Exit(code)
}

// printError writes the error to stderr, as a JSON report in --json mode or
// as a colored one-liner otherwise. Stdout stays reserved for command
// output either way.
func printError(code int, err error, commandName string) {
	if jsonOutput {
		report := exiterr.NewReport(code, err, commandName)
		data, marshalErr := json.MarshalIndent(report, "", "  ")
		if marshalErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(os.Stderr, string(data))
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
}
