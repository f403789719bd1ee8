package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/note-crud/persistence/v1/schema"
	"github.com/ribgsilva/note-crud/platform/database"
	"github.com/ribgsilva/note-crud/platform/env"
	"github.com/ribgsilva/note-crud/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command returns the schema command and its create and drop subcommands
func Command(log *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes table",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Creates the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), log, func(ctx context.Context) error {
				cmd.Println("creating schema")
				if err := schema.Create(ctx); err != nil {
					return fmt.Errorf("failed to create schema: %w", err)
				}
				cmd.Println("created schema")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "drop",
		Aliases: []string{"delete"},
		Short:   "Deletes the schema",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), log, func(ctx context.Context) error {
				cmd.Println("deleting schema")
				if err := schema.Drop(ctx); err != nil {
					return fmt.Errorf("failed to delete schema: %w", err)
				}
				cmd.Println("deleted schema")
				return nil
			})
		},
	})

	return cmd
}

// withDatabase opens the database the env vars point at, runs f and closes it again
func withDatabase(ctx context.Context, log *zap.SugaredLogger, f func(ctx context.Context) error) error {
	url, err := env.Required("DATABASE_URL")
	if err != nil {
		return err
	}
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", database.Postgres)
	sys.Configs.Database.ConnectionURL = url
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	db, err := database.Open(database.Config{
		Driver:       sys.Configs.Database.Driver,
		URL:          sys.Configs.Database.ConnectionURL,
		MaxOpenConns: 1,
		PingTimeout:  sys.Configs.Database.PingTimeout,
	})
	if err != nil {
		return err
	}
	sys.R.Database = db
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()

	opCtx, cancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer cancel()
	return f(opCtx)
}
