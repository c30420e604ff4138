package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	config  Config
	logger  *zap.Logger
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cospan",
	Short: "Inspect and rewrite string-diagram files",
	Long: `cospan works with string diagrams stored as hypergraphs with boundary:
.chyp files hold single diagrams, .chyprule files hold rewrite rules.
It can pretty-print diagrams as terms, test isomorphism, enumerate the
convex matches of a rule, apply a rewrite, and re-validate files as they
change on disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "cospan.yaml", "path to the yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		explicit := cmd.Flags().Changed("config")
		var err error
		if config, err = loadConfig(cfgPath, explicit); err != nil {
			return err
		}
		if logger, err = buildLogger(config.LogLevel, verbose); err != nil {
			return err
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	}
}

// buildLogger returns a console zap logger at the configured level; the
// --verbose flag forces debug.
func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.Set(level); err != nil {
			return nil, fmt.Errorf("log_level: %w", err)
		}
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
