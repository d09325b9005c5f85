// Command server runs the yomi study API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables; DATABASE_DSN and AUTH_JWT_SECRET are required.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/yomi-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
