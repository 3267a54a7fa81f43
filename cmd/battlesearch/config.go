package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/battlesearch/battlesearch-go/internal/logwalk"
	"github.com/battlesearch/battlesearch-go/pkg/battlesearch"
)

// envPrefix is the prefix of environment variables overriding flags,
// e.g. BATTLESEARCH_THREADS or BATTLESEARCH_WINS_ONLY.
const envPrefix = "BATTLESEARCH"

// Config keys, shared by flags, environment variables and config files.
const (
	keyWinsOnly     = "wins-only"
	keyForfeitsOnly = "forfeits-only"
	keyThreads      = "threads"
	keyManifest     = "manifest"
	keyFollow       = "follow"
	keySummary      = "summary"
	keyLogFormat    = "log-format"
	keyVerbose      = "verbose"
	keyConfig       = "config"

	// keyRoots has no flag: roots come from arguments, or from the
	// environment or config file when only a username is given.
	keyRoots = "roots"
)

// cliConfig is the validated result of flags, environment and config file.
type cliConfig struct {
	Username     string
	Roots        []string
	WinsOnly     bool
	ForfeitsOnly bool
	Threads      int
	Manifest     string
	Follow       bool
	Summary      bool
	LogFormat    string
	Verbose      bool
}

// loadConfig merges, in decreasing priority, explicitly set flags,
// BATTLESEARCH_* environment variables, the --config file and flag
// defaults.
func loadConfig(cmd *cobra.Command, args []string) (cliConfig, error) {
	if len(args) == 0 {
		return cliConfig{}, errors.New("username required")
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Persistent flags are only merged into Flags() once cobra parses.
	for _, fs := range []*pflag.FlagSet{cmd.PersistentFlags(), cmd.Flags()} {
		if err := v.BindPFlags(fs); err != nil {
			return cliConfig{}, fmt.Errorf("binding flags: %w", err)
		}
	}

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cliConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := cliConfig{
		Username:     args[0],
		WinsOnly:     v.GetBool(keyWinsOnly),
		ForfeitsOnly: v.GetBool(keyForfeitsOnly),
		Threads:      v.GetInt(keyThreads),
		Manifest:     v.GetString(keyManifest),
		Follow:       v.GetBool(keyFollow),
		Summary:      v.GetBool(keySummary),
		LogFormat:    strings.ToLower(strings.TrimSpace(v.GetString(keyLogFormat))),
		Verbose:      v.GetBool(keyVerbose),
	}

	roots := args[1:]
	if len(roots) == 0 {
		roots = v.GetStringSlice(keyRoots)
	}
	if len(roots) > 0 {
		resolved, err := logwalk.ResolveRoots(roots)
		if err != nil && !errors.Is(err, logwalk.ErrNoRoots) {
			return cliConfig{}, err
		}
		cfg.Roots = resolved
	}

	if err := cfg.validate(); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}

func (c cliConfig) validate() error {
	if battlesearch.ToID(c.Username) == "" {
		return fmt.Errorf("username %q contains no letters or digits", c.Username)
	}
	if len(c.Roots) == 0 && c.Manifest == "" {
		return errors.New("at least one directory or --manifest is required")
	}
	if c.Threads < 1 {
		return fmt.Errorf("--threads must be at least 1, got %d", c.Threads)
	}
	if c.Follow && c.Manifest == "" {
		return errors.New("--follow requires --manifest")
	}
	if !ValidLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log format %q: must be one of: %s", c.LogFormat, strings.Join(LogFormatNames(), ", "))
	}
	return nil
}
