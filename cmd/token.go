package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const (
	keyringService = "extinv"
	keyringUser    = "blob-upload"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the report upload token",
	Long: `Manage the bearer token used when uploading reports to a blob endpoint.

The token is stored in the operating system keyring. EXTINV_BLOB_TOKEN, when
set, takes precedence over the stored token.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <token>",
	Short: "Store the upload token in the OS keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Set(keyringService, keyringUser, args[0]); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		pterm.Success.Println("Upload token stored")
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the upload token from the OS keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(keyringService, keyringUser); err != nil {
			return fmt.Errorf("failed to remove token: %w", err)
		}
		pterm.Success.Println("Upload token removed")
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenClearCmd)
	rootCmd.AddCommand(tokenCmd)
}
