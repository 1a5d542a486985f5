// Package main is the entry point for the plugkit CLI.
//
// The binary exists to exercise the plugkit libraries (error
// classification, duration flags) from the command line; all functionality
// lives in the internal/cli package, which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process and default to development placeholders.
package main

import (
	"github.com/mmr-tortoise/plugkit/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
