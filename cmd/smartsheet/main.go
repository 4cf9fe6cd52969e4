// Package main provides the smartsheet command line client.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ukaji3/smartsheet-go/internal/cache"
	"github.com/ukaji3/smartsheet-go/internal/config"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smartsheet",
		Short: "Read and write Smartsheet sheets",
		Long: `smartsheet lists sheets, fetches them as JSON or xlsx, finds rows by
column value and imports rows from Excel files.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default: $SMARTSHEET_CONFIG_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(
		newSheetsCmd(),
		newSheetCmd(),
		newColumnsCmd(),
		newRowsCmd(),
		newExportCmd(),
		newAttachmentsCmd(),
		newCacheCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func newClient() (*smartsheet.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return smartsheet.NewClient(cfg.API.Token, smartsheet.Options{
		Endpoint:  cfg.API.Endpoint,
		Timeout:   cfg.API.Timeout,
		Logger:    logger,
		UserAgent: "smartsheet-go",
	})
}

// openCache returns nil when no cache path is configured.
func openCache() (*cache.DB, error) {
	if cfg.Cache.Path == "" {
		return nil, nil
	}
	db, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return db, nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func writeOutput(ctx context.Context, path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.InfoContext(ctx, "wrote output", "path", path, "bytes", len(data))
	return nil
}
