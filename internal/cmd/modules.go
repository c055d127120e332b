package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the feature modules enabled for this plaza",
	Long: `List the feature modules the backend reports for this plaza.

When the backend does not publish a module list, every module is
treated as available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(); err != nil {
			return err
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		a.gate.Refresh(ctx)
		mods := a.gate.Available()
		if len(mods) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No module list published; all modules available")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tROUTE\tDESCRIPTION")
		for _, m := range mods {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.Route, m.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
