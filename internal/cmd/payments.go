package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Review tenant payment obligations",
}

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payment obligations",
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

		if err := a.requireModule(ctx, "Payments"); err != nil {
			return err
		}

		payments, err := a.client.ListPayments(ctx)
		if err != nil {
			return err
		}

		pendingOnly, _ := cmd.Flags().GetBool("pending")

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CONCEPT\tAMOUNT\tDATE\tSTATUS")
		for _, p := range payments {
			if pendingOnly && !p.Pending() {
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", p.Concept, p.Amount, p.Date, p.Status)
		}
		return w.Flush()
	},
}

// paymentsPayCmd simulates settling a pending payment. No money moves
// and the backend is not told; it prints a reference receipt the way
// the plaza front desk does on paper.
var paymentsPayCmd = &cobra.Command{
	Use:   "pay <concept>",
	Short: "Simulate paying a pending obligation",
	Args:  cobra.ExactArgs(1),
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

		if err := a.requireModule(ctx, "Payments"); err != nil {
			return err
		}

		payments, err := a.client.ListPayments(ctx)
		if err != nil {
			return err
		}

		concept := args[0]
		for _, p := range payments {
			if p.Concept != concept {
				continue
			}
			if !p.Pending() {
				return fmt.Errorf("payment %q is already settled", concept)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- RECEIPT (simulation) ---")
			fmt.Fprintf(out, "Reference: %s\n", uuid.NewString())
			fmt.Fprintf(out, "Concept:   %s\n", p.Concept)
			fmt.Fprintf(out, "Amount:    %d\n", p.Amount)
			fmt.Fprintf(out, "Paid at:   %s\n", time.Now().Format(time.RFC3339))
			fmt.Fprintf(out, "Payer:     %s\n", a.manager.CurrentUser().Username)
			return nil
		}
		return fmt.Errorf("no payment with concept %q", concept)
	},
}

func init() {
	paymentsListCmd.Flags().Bool("pending", false, "Only pending payments")

	paymentsCmd.AddCommand(paymentsListCmd)
	paymentsCmd.AddCommand(paymentsPayCmd)
	rootCmd.AddCommand(paymentsCmd)
}
