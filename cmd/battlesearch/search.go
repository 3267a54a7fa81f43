package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/battlesearch/battlesearch-go/pkg/battlesearch"
)

func addSearchFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolP(keyWinsOnly, "w", false,
		"Only show games the user won")
	flags.BoolP(keyForfeitsOnly, "f", false,
		"Only show games that ended in a forfeit")
	flags.IntP(keyThreads, "j", battlesearch.DefaultWorkers,
		"Number of worker threads")
	flags.String(keyManifest, "",
		"File listing battle log paths, one per line (optionally label<TAB>path)")
	flags.Bool(keyFollow, false,
		"Keep reading paths appended to the manifest until interrupted")
	flags.Bool(keySummary, false,
		"Print a per-worker summary to stderr when done")
	flags.String(keyLogFormat, "console",
		"Diagnostic log format: console, json")

	registerLogFormatCompletion(cmd, keyLogFormat)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogFormat, cfg.Verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []battlesearch.SearchOption{
		battlesearch.WithWorkers(cfg.Threads),
		battlesearch.WithWinsOnly(cfg.WinsOnly),
		battlesearch.WithForfeitsOnly(cfg.ForfeitsOnly),
		battlesearch.WithOutput(cmd.OutOrStdout()),
		battlesearch.WithLogger(logger),
	}
	if cfg.Manifest != "" {
		opts = append(opts, battlesearch.WithManifest(cfg.Manifest, cfg.Follow))
	}

	logger.Debug().
		Str("user", string(battlesearch.ToID(cfg.Username))).
		Strs("roots", cfg.Roots).
		Int("threads", cfg.Threads).
		Msg("starting search")

	summary, err := battlesearch.Search(ctx, cfg.Username, cfg.Roots, opts...)
	if cfg.Summary && len(summary.Workers) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), renderSummary(summary))
	}
	if err != nil {
		// Ctrl+C is a normal way to stop
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
