package main

import (
	"fmt"

	"mercator-hq/g8/pkg/cli"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for g8.

To load completions:

Bash:
  $ source <(g8 completion bash)
  # To load permanently:
  $ g8 completion bash > /etc/bash_completion.d/g8

Zsh:
  $ g8 completion zsh > "${fpath[1]}/_g8"
  $ compinit

Fish:
  $ g8 completion fish | source
  # To load permanently:
  $ g8 completion fish > ~/.config/fish/completions/g8.fish

PowerShell:
  PS> g8 completion powershell | Out-String | Invoke-Expression
  # To load permanently, add to your PowerShell profile
`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(stdout)
		case "fish":
			return rootCmd.GenFishCompletion(stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(stdout)
		default:
			return cli.NewConfigError("shell", fmt.Sprintf("unsupported shell: %s", args[0]))
		}
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)
}
