// Command srsctl is the operator CLI for the yomi study backend.
//
// Usage:
//
//	srsctl simulate --ratings good,good,again,good
//	srsctl token --user <uuid>
//	srsctl migrate --dsn postgres://...
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/heartmarshall/yomi-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
