package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for colorcif.

To load completions:

Bash:

  $ source <(colorcif completion bash)

  To load completions for each session, execute once:
  Linux:
    $ colorcif completion bash > /etc/bash_completion.d/colorcif
  macOS:
    $ colorcif completion bash > /usr/local/etc/bash_completion.d/colorcif

Zsh:

  $ colorcif completion zsh > "${fpath[1]}/_colorcif"

  You will need to start a new shell for this setup to take effect.

Fish:

  $ colorcif completion fish > ~/.config/fish/completions/colorcif.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		default:
			return rootCmd.GenFishCompletion(out, true)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
