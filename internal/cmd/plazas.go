package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/platform"
)

var plazasCmd = &cobra.Command{
	Use:   "plazas",
	Short: "Manage shopping plazas",
}

var plazasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plazas",
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

		plazas, err := a.client.ListPlazas(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tADDRESS\tPHONE")
		for _, p := range plazas {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Address, p.PhoneNumber)
		}
		return w.Flush()
	},
}

var plazasGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one plaza",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(); err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		p, err := a.client.GetPlaza(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plaza %d: %s\n", p.ID, p.Name)
		if p.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", p.Description)
		}
		if p.Address != "" {
			fmt.Fprintf(out, "  Address:     %s\n", p.Address)
		}
		if p.PhoneNumber != "" {
			fmt.Fprintf(out, "  Phone:       %s\n", p.PhoneNumber)
		}
		if p.Email != "" {
			fmt.Fprintf(out, "  Email:       %s\n", p.Email)
		}
		if p.OpeningHours != "" || p.ClosingHours != "" {
			fmt.Fprintf(out, "  Hours:       %s - %s\n", p.OpeningHours, p.ClosingHours)
		}
		return nil
	},
}

var plazasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a plaza",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(); err != nil {
			return err
		}

		req := plazaRequestFromFlags(cmd)
		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		p, err := a.client.CreatePlaza(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created plaza %d: %s\n", p.ID, p.Name)
		return nil
	},
}

var plazasUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a plaza",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(); err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req := plazaRequestFromFlags(cmd)
		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		p, err := a.client.UpdatePlaza(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated plaza %d: %s\n", p.ID, p.Name)
		return nil
	},
}

func plazaRequestFromFlags(cmd *cobra.Command) *platform.PlazaRequest {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	address, _ := cmd.Flags().GetString("address")
	phone, _ := cmd.Flags().GetString("phone")
	email, _ := cmd.Flags().GetString("email")
	opens, _ := cmd.Flags().GetString("opens")
	closes, _ := cmd.Flags().GetString("closes")
	return &platform.PlazaRequest{
		Name:         name,
		Description:  description,
		Address:      address,
		PhoneNumber:  phone,
		Email:        email,
		OpeningHours: opens,
		ClosingHours: closes,
	}
}

func addPlazaFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Plaza name (required)")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("address", "", "Street address")
	cmd.Flags().String("phone", "", "Contact phone number")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("opens", "", "Opening hours")
	cmd.Flags().String("closes", "", "Closing hours")
}

func init() {
	addPlazaFlags(plazasCreateCmd)
	addPlazaFlags(plazasUpdateCmd)

	plazasCmd.AddCommand(plazasListCmd)
	plazasCmd.AddCommand(plazasGetCmd)
	plazasCmd.AddCommand(plazasCreateCmd)
	plazasCmd.AddCommand(plazasUpdateCmd)
	rootCmd.AddCommand(plazasCmd)
}
