package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by ldflags)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battlesearch [flags] <username> <directory>...",
		Short: "Search Pokémon Showdown battle logs",
		Long: `battlesearch finds every battle a player took part in across trees of
Pokémon Showdown battle logs (one <room>.log.json file per battle).

Every directory is searched recursively. Each file found under a directory
is labelled with that directory's name (usually a date), and one line is
printed per matching battle:

  (2021-01-01) <<gen8ou-1234>> annika vs. bob (annika won normally)

Examples:
  # All battles of a player in one month of logs
  battlesearch Annika logs/2021-01/*

  # Only battles the player won by forfeit, with 8 workers
  battlesearch -w -f -j 8 Annika logs/2021-01-01

  # Keep searching battles appended to a manifest
  battlesearch --manifest completed.txt --follow Annika

A username that is also a subcommand name (version, completion, help)
must follow "--":
  battlesearch -- version logs/2021-01-01

Flags can also be set through BATTLESEARCH_* environment variables
(BATTLESEARCH_THREADS=8) or a config file given with --config.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // main prints errors
		RunE:          runSearch,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				// The username cannot be completed.
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
	}

	// Global flags (inherited by all subcommands)
	cmd.PersistentFlags().BoolP(keyVerbose, "v", false,
		"Enable verbose logging")
	cmd.PersistentFlags().String(keyConfig, "",
		"Config file (toml, yaml or json)")

	addSearchFlags(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "battlesearch %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
