// Package cli holds the srsctl command tree: offline schedule simulation,
// dev token minting and schema migration.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/yomi-backend/internal/app"
)

// NewRootCmd builds the srsctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "srsctl",
		Short:         "Operator tooling for the yomi study backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSimulateCmd(),
		newTokenCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "srsctl", app.BuildVersion())
		},
	}
}
