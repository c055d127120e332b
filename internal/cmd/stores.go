package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/platform"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Manage the plaza's commercial stores",
}

var storesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stores",
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

		stores, err := a.client.ListStores(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tOWNER\tPHONE\tPLAZA")
		for _, s := range stores {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.OwnerName, s.PhoneNumber, s.PlazaName)
		}
		return w.Flush()
	},
}

var storesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one store",
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

		s, err := a.client.GetStore(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Store %d: %s\n", s.ID, s.Name)
		if s.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", s.Description)
		}
		if s.OwnerName != "" {
			fmt.Fprintf(out, "  Owner:       %s\n", s.OwnerName)
		}
		if s.PhoneNumber != "" {
			fmt.Fprintf(out, "  Phone:       %s\n", s.PhoneNumber)
		}
		if s.Email != "" {
			fmt.Fprintf(out, "  Email:       %s\n", s.Email)
		}
		if s.PlazaName != "" {
			fmt.Fprintf(out, "  Plaza:       %s\n", s.PlazaName)
		}
		return nil
	},
}

var storesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a store",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(); err != nil {
			return err
		}

		req := storeRequestFromFlags(cmd)
		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		s, err := a.client.CreateStore(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created store %d: %s\n", s.ID, s.Name)
		return nil
	},
}

var storesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a store",
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
		req := storeRequestFromFlags(cmd)
		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		s, err := a.client.UpdateStore(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated store %d: %s\n", s.ID, s.Name)
		return nil
	},
}

var storesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a store",
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

		if err := a.client.DeleteStore(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted store %d\n", id)
		return nil
	},
}

var storesOwnerCmd = &cobra.Command{
	Use:   "create-owner <store-id>",
	Short: "Create the user account owning a store",
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

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		email, _ := cmd.Flags().GetString("email")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		if username == "" || password == "" || email == "" {
			return fmt.Errorf("--username, --password and --email are required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		u, err := a.client.CreateStoreOwner(ctx, id, &platform.StoreOwnerRequest{
			Username:  username,
			Password:  password,
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created owner %s for store %d\n", u.Username, id)
		return nil
	},
}

func storeRequestFromFlags(cmd *cobra.Command) *platform.StoreRequest {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	owner, _ := cmd.Flags().GetString("owner")
	phone, _ := cmd.Flags().GetString("phone")
	email, _ := cmd.Flags().GetString("email")
	plazaID, _ := cmd.Flags().GetInt64("plaza-id")
	return &platform.StoreRequest{
		Name:        name,
		Description: description,
		OwnerName:   owner,
		PhoneNumber: phone,
		Email:       email,
		PlazaID:     plazaID,
	}
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Store name (required)")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("owner", "", "Owner display name")
	cmd.Flags().String("phone", "", "Contact phone number")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().Int64("plaza-id", 0, "Plaza the store belongs to")
}

func init() {
	addStoreFlags(storesCreateCmd)
	addStoreFlags(storesUpdateCmd)

	storesOwnerCmd.Flags().String("username", "", "Owner username (required)")
	storesOwnerCmd.Flags().String("password", "", "Owner password (required)")
	storesOwnerCmd.Flags().String("email", "", "Owner email (required)")
	storesOwnerCmd.Flags().String("first-name", "", "Owner first name")
	storesOwnerCmd.Flags().String("last-name", "", "Owner last name")

	storesCmd.AddCommand(storesListCmd)
	storesCmd.AddCommand(storesGetCmd)
	storesCmd.AddCommand(storesCreateCmd)
	storesCmd.AddCommand(storesUpdateCmd)
	storesCmd.AddCommand(storesDeleteCmd)
	storesCmd.AddCommand(storesOwnerCmd)
	rootCmd.AddCommand(storesCmd)
}
