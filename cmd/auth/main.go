package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aussiebroadwan/pahiram/internal/auth/app"
	"github.com/spf13/cobra"

	_ "time/tzdata" // APCIS_TIME_LOCATION on minimal images
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "pahiram-auth",
		Short:         "Pahiram authentication service (APCIS federated login)",
		Version:       app.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.LoadEnvFiles(envFiles...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"},
		"dotenv files loaded before reading configuration; missing files are ignored")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := app.LoadConfig()
				logger := app.NewLogger(cfg)

				db, err := app.OpenStore(cfg)
				if err != nil {
					return err
				}
				defer db.Close()

				version, dirty, err := db.MigrationVersion()
				if err != nil {
					return fmt.Errorf("read migration version: %w", err)
				}
				logger.Info("database migrated", "file", cfg.DatabaseFile, "version", version, "dirty", dirty)
				return nil
			},
		},
		&cobra.Command{
			Use:   "prune",
			Short: "Delete expired session and APCIS tokens once and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := app.LoadConfig()
				logger := app.NewLogger(cfg)

				stats, err := app.Prune(context.Background(), cfg, logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "session_tokens=%d apcis_tokens=%d\n", stats.SessionTokens, stats.RemoteTokens)
				return nil
			},
		},
	)

	return root
}

func serve() error {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run()
}
