package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Jakob-Lindstrom/extinv/pkg/update"
)

var upgradeCmd = &cobra.Command{
	Use:     "upgrade",
	Aliases: []string{"update"},
	Short:   "Check for a newer extinv release",
	RunE:    runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	pterm.Info.Println("Checking for updates...")

	latestTag, releaseURL, err := update.FetchLatest(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	isNewer, err := update.IsNewerVersion(version, latestTag)
	if err != nil {
		pterm.Warning.Printfln("Could not compare versions (%s vs %s): %v", version, latestTag, err)
	} else if !isNewer {
		pterm.Success.Printfln("You are already on the latest version (%s)", strings.TrimPrefix(version, "v"))
		return nil
	}

	pterm.Info.Printfln("New version available: %s → %s", strings.TrimPrefix(version, "v"), strings.TrimPrefix(latestTag, "v"))
	if releaseURL != "" {
		pterm.Info.Printfln("Release notes: %s", releaseURL)
	}
	pterm.Println()
	pterm.Info.Println("Upgrade with:")
	pterm.Printf("  go install github.com/Jakob-Lindstrom/extinv@%s\n", latestTag)
	pterm.Println("or download a binary from the release page.")
	return nil
}
