package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"mbg_outreach/internal/adapter/http/routes"
	"mbg_outreach/internal/bootstrap"
	"mbg_outreach/internal/infrastructure/leadsource"

	"github.com/spf13/cobra"
)

var importFile string

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file with nama_sppg, alamat, provinsi, kab_kota, kecamatan, desa columns")
	_ = importCmd.MarkFlagRequired("file")
}

// runCmd runs discovery, drafting and dispatch once
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full outreach workflow once",
	Long: `Run discovery, drafting and dispatch once and print the workflow report.

Examples:
  # Simulation mode when WhatsApp credentials are absent
  outreachctl run

  # Against a specific config
  outreachctl run --config /etc/outreach/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
			release, ok, err := app.RunLock.TryAcquire(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("another workflow run is in progress")
			}
			defer release()

			res := app.Orchestrator.RunFullWorkflow(ctx)
			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("workflow finished with errors: %v", res.Summary.Errors)
			}
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show preflight readiness and lead counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
			stats, err := app.LeadUseCase.Stats(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"system": app.Orchestrator.GetSystemStatus(ctx),
				"leads":  stats,
			})
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import leads from a CSV export",
	Long: `Import leads from a CSV file. Rows whose (name, city) already exist are skipped.
Imported leads get confidence 1.0.

Examples:
  outreachctl import --file sppg_jabar.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
			res, err := app.Locator.ImportLeads(ctx, leadsource.NewCSVSource(importFile))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		})
	},
}

var scanContactCmd = &cobra.Command{
	Use:   "scan-contact <lead-id>",
	Short: "Search public web pages for a lead's phone number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
			res, err := app.Scanner.FindContact(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		})
	},
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Report leads sharing a (name, city) key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
			groups, err := app.LeadUseCase.FindDuplicates(ctx)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no duplicate leads")
				return err
			}
			return printJSON(cmd.OutOrStdout(), groups)
		})
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		cmd.SetContext(ctx)
		return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
			return routes.Run(ctx, app)
		})
	},
}
