// Package cmd implements the plazactl command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "plazactl",
	Short: "Command-line client for the plaza management platform",
	Long: `plazactl manages a shopping plaza from the terminal: plazas, stores,
products, users, bulletins, the parking dashboard and tenant payments.

Authentication state is kept in $HOME/.plazactl (override with
PLAZACTL_HOME). Start with:

  plazactl auth login --username gerente --password <password>`,
	SilenceUsage: true,
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
