// Package main implements outreachctl, the operator CLI for the outreach pipeline.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"mbg_outreach/internal/bootstrap"
	"mbg_outreach/internal/config"
	"mbg_outreach/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// configPath overrides OUTREACH_CONFIG
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "outreachctl",
	Short: "Operate the MBG outreach pipeline",
	Long: `outreachctl runs the outreach pipeline against the configured record store
without going through the HTTP API.

Configuration is read from --config (or OUTREACH_CONFIG, or ./config.yaml)
and environment variables such as OPENAI_API_KEY and WHATSAPP_TOKEN.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")
	rootCmd.AddCommand(runCmd, statusCmd, importCmd, scanContactCmd, dedupeCmd, serveCmd)
}

// withApp loads configuration, wires the service and hands it to fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	return fn(ctx, app)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
