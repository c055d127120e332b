package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var parkingCmd = &cobra.Command{
	Use:   "parking",
	Short: "Show the parking occupancy dashboard",
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

		if err := a.requireModule(ctx, "Parking"); err != nil {
			return err
		}

		snap, err := a.client.GetParking(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Occupancy: %d/%d (%.0f%%)\n", snap.Occupied, snap.TotalSpots, snap.OccupancyPct)
		fmt.Fprintf(out, "Revenue today: %d\n", snap.RevenueToday)

		if len(snap.VehiclesInside) > 0 {
			fmt.Fprintln(out, "\nVehicles inside:")
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLATE\tTYPE\tCLIENT\tENTERED")
			for _, v := range snap.VehiclesInside {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Plate, v.VehicleType, v.ClientType, v.EntryTime)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		if len(snap.MovementsToday) > 0 {
			fmt.Fprintln(out, "\nMovements today:")
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLATE\tTYPE\tENTERED\tLEFT\tHOURS\tAMOUNT")
			for _, m := range snap.MovementsToday {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n", m.Plate, m.VehicleType, m.EntryTime, m.ExitTime, m.Hours, m.Amount)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		if len(snap.MonthlyRevenue) > 0 {
			fmt.Fprintln(out, "\nMonthly revenue:")
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, m := range snap.MonthlyRevenue {
				fmt.Fprintf(w, "%s\t%d\n", m.Month, m.Revenue)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parkingCmd)
}
