package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"freightdesk/internal/pkg/config"
	"freightdesk/internal/pkg/dotenv"
	"freightdesk/internal/pkg/migrations"
	"freightdesk/internal/pkg/postgres"
	"freightdesk/pkg/logger"
	"freightdesk/pkg/logger/zap_adapter"
)

func newRootCmd() *cobra.Command {
	var envPath string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the freightdesk database schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envPath, "env", dotenv.DefaultPath, "path to the .env file")

	root.AddCommand(
		newUpCmd(&envPath),
		newDownCmd(&envPath),
		newStatusCmd(&envPath),
	)
	return root
}

func newUpCmd(envPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), *envPath, func(ctx context.Context, m *migrations.Migrator) error {
				return m.Up(ctx)
			})
		},
	}
}

func newDownCmd(envPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), *envPath, func(ctx context.Context, m *migrations.Migrator) error {
				return m.Down(ctx)
			})
		},
	}
}

func newStatusCmd(envPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd.Context(), *envPath, func(ctx context.Context, m *migrations.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
				for _, s := range statuses {
					state, appliedAt := "pending", "-"
					if s.Applied {
						state = "applied"
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Version, state, appliedAt, s.Path)
				}
				return w.Flush()
			})
		},
	}
}

func withMigrator(ctx context.Context, envPath string, fn func(context.Context, *migrations.Migrator) error) error {
	if _, err := dotenv.Load(envPath); err != nil {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	migrator, err := migrations.New(pool, log)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.With(logger.NewField("error", err)).Warn("close migrator")
		}
	}()

	return fn(ctx, migrator)
}
