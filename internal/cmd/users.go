package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/platform"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage plaza user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
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

		users, err := a.client.ListUsers(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLES\tPLAZA")
		for _, u := range users {
			names := make([]string, 0, len(u.Roles))
			for _, r := range u.Roles {
				names = append(names, r.Name)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, strings.Join(names, ","), u.PlazaName)
		}
		return w.Flush()
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
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

		u, err := a.client.GetUser(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "User %d: %s\n", u.ID, u.Username)
		if u.FullName != "" {
			fmt.Fprintf(out, "  Name:  %s\n", u.FullName)
		}
		fmt.Fprintf(out, "  Email: %s\n", u.Email)
		if u.PlazaName != "" {
			fmt.Fprintf(out, "  Plaza: %s\n", u.PlazaName)
		}
		if len(u.Roles) > 0 {
			names := make([]string, 0, len(u.Roles))
			for _, r := range u.Roles {
				names = append(names, r.Name)
			}
			fmt.Fprintf(out, "  Roles: %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(); err != nil {
			return err
		}

		req := userRequestFromFlags(cmd)
		if req.Username == "" || req.Email == "" {
			return fmt.Errorf("--username and --email are required")
		}
		if req.Password == "" {
			return fmt.Errorf("--password is required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		u, err := a.client.CreateUser(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created user %d: %s\n", u.ID, u.Username)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user",
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
		req := userRequestFromFlags(cmd)
		if req.Username == "" || req.Email == "" {
			return fmt.Errorf("--username and --email are required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		u, err := a.client.UpdateUser(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated user %d: %s\n", u.ID, u.Username)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
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

		if err := a.client.DeleteUser(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %d\n", id)
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the backend's roles",
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

		roles, err := a.client.ListRoles(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, r := range roles {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.Name, r.Description)
		}
		return w.Flush()
	},
}

func userRequestFromFlags(cmd *cobra.Command) *platform.UserRequest {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	email, _ := cmd.Flags().GetString("email")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")
	phone, _ := cmd.Flags().GetString("phone")
	plazaID, _ := cmd.Flags().GetInt64("plaza-id")
	roles, _ := cmd.Flags().GetStringSlice("roles")
	return &platform.UserRequest{
		Username:    username,
		Password:    password,
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phone,
		PlazaID:     plazaID,
		Roles:       roles,
	}
}

func addUserFlags(cmd *cobra.Command) {
	cmd.Flags().String("username", "", "Username (required)")
	cmd.Flags().String("password", "", "Password")
	cmd.Flags().String("email", "", "Email (required)")
	cmd.Flags().String("first-name", "", "First name")
	cmd.Flags().String("last-name", "", "Last name")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().Int64("plaza-id", 0, "Plaza the user belongs to")
	cmd.Flags().StringSlice("roles", nil, "Roles to assign (e.g. MANAGER,EMPLOYEE_SECURITY)")
}

func init() {
	addUserFlags(usersCreateCmd)
	addUserFlags(usersUpdateCmd)

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(rolesCmd)
}
