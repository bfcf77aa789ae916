// Package main provides the entry point for the story CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version       = "0.1.0-dev"
	globalVerbose bool

	// logger is replaced in PersistentPreRunE.
	logger = zap.NewNop()
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "story",
		Short:   "Assemble short stories from phrase tables or write them with an LLM",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(globalVerbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newAssembleCmd(),
		newCatalogCmd(),
		newServeCmd(),
		newStartCmd(),
		newContinueCmd(),
		newEndCmd(),
		newListCmd(),
		newShowCmd(),
		newExportCmd(),
		newDeleteCmd(),
		newPresetsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// newLogger logs JSON to stderr; verbose lowers the level to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return l, nil
}
