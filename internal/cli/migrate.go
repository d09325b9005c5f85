package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomi-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yomi-backend/internal/app"
	"github.com/heartmarshall/yomi-backend/internal/config"
)

func newMigrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				dsn = os.Getenv("DATABASE_DSN")
			}
			if dsn == "" {
				return fmt.Errorf("--dsn or DATABASE_DSN is required")
			}
			logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})
			return postgres.Migrate(cmd.Context(), dsn, logger)
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN (default $DATABASE_DSN)")

	return cmd
}
