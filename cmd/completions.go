package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completions [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for rusty-sweeper.

Installation instructions:

Bash:
  # Linux:
  rusty-sweeper completions bash | sudo tee /etc/bash_completion.d/rusty-sweeper > /dev/null

  # macOS:
  rusty-sweeper completions bash | sudo tee /usr/local/etc/bash_completion.d/rusty-sweeper > /dev/null

Zsh:
  # Add to ~/.zshrc:
  autoload -U compinit; compinit
  source <(rusty-sweeper completions zsh)

  # Or generate to file:
  rusty-sweeper completions zsh > "${fpath[1]}/_rusty-sweeper"

Fish:
  rusty-sweeper completions fish | source

  # Or generate to file:
  rusty-sweeper completions fish > ~/.config/fish/completions/rusty-sweeper.fish

PowerShell:
  # Add to PowerShell profile:
  rusty-sweeper completions powershell | Out-String | Invoke-Expression

After installing, restart your shell or source the completion file.`,

	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
