package cmd

import (
	"github.com/spf13/cobra"
)

// Set at release time via -ldflags "-X github.com/Jakob-Lindstrom/extinv/cmd.version=...".
var version = "v0.0.0-dev"

var rootCmd = &cobra.Command{
	Use:     "extinv",
	Short:   "Inventory browser extensions installed for the interactive user",
	Version: version,
	Long: `extinv walks the extension stores of the supported browsers (Chrome and
Edge), resolves each extension's display name (including locale-indirected
names), deduplicates across browsers, and reports the result to the
terminal, a local CSV file, a blob-storage endpoint, or an S3 bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Root returns the fully assembled command tree.
func Root() *cobra.Command {
	return rootCmd
}
