package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for battlesearch.

To load completions:

Bash:
  $ source <(battlesearch completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ battlesearch completion bash > /etc/bash_completion.d/battlesearch
  # macOS:
  $ battlesearch completion bash > $(brew --prefix)/etc/bash_completion.d/battlesearch

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ battlesearch completion zsh > "${fpath[1]}/_battlesearch"

Fish:
  $ battlesearch completion fish | source

PowerShell:
  PS> battlesearch completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}

			root := cmd.Root()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeLogFormats completes --log-format values by case-insensitive prefix.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	current := strings.ToLower(strings.TrimSpace(toComplete))

	var candidates []string
	for _, name := range LogFormatNames() {
		if strings.HasPrefix(name, current) {
			candidates = append(candidates, name)
		}
	}
	return candidates, cobra.ShellCompDirectiveNoFileComp
}

// registerLogFormatCompletion registers completion for a log format flag.
func registerLogFormatCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, completeLogFormats)
}
