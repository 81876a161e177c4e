package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for extinv.

To load completions:

Bash:
  $ source <(extinv completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ extinv completion bash > /etc/bash_completion.d/extinv
  # macOS:
  $ extinv completion bash > $(brew --prefix)/etc/bash_completion.d/extinv

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ extinv completion zsh > "${fpath[1]}/_extinv"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ extinv completion fish | source

  # To load completions for each session, execute once:
  $ extinv completion fish > ~/.config/fish/completions/extinv.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
