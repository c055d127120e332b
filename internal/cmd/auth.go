package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication with the plaza backend",
	Long: `Manage authentication with the plaza backend.

Sessions are stored under the plazactl home directory and reused by
subsequent commands until they expire or you log out.

Examples:
  plazactl auth login --username admin --password secret
  plazactl auth status
  plazactl auth logout`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the plaza backend",
	Long: `Login to the plaza backend with your username and password.

On success the session token and user profile are stored locally and
reused by subsequent commands.

Examples:
  plazactl auth login --username admin --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if username == "" {
			return fmt.Errorf("--username is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		a, err := getApp()
		if err != nil {
			return err
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		profile, err := a.manager.Login(ctx, username, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s", profile.Username)
		if profile.PlazaName != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (%s)", profile.PlazaName)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		a.manager.Restore()
		a.manager.Logout()
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		profile := a.manager.Restore()
		if profile == nil || !a.manager.IsAuthenticated() {
			fmt.Fprintln(cmd.OutOrStdout(), "Not authenticated")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Authenticated as %s\n", profile.Username)
		if profile.FullName != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  Name:  %s\n", profile.FullName)
		}
		if profile.Email != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  Email: %s\n", profile.Email)
		}
		if profile.PlazaName != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  Plaza: %s\n", profile.PlazaName)
		}
		if len(profile.Roles) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  Roles: %s\n", strings.Join(profile.Roles, ", "))
		}
		if len(profile.Permissions) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  Permissions: %s\n", strings.Join(profile.Permissions, ", "))
		}
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the authenticated username",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(); err != nil {
			return err
		}

		if remote, _ := cmd.Flags().GetBool("remote"); remote {
			ctx, cancel := a.commandContext(cmd.Context())
			defer cancel()

			me, err := a.client.Me(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), me.Username)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), a.manager.CurrentUser().Username)
		return nil
	},
}

func init() {
	authWhoamiCmd.Flags().Bool("remote", false, "ask the backend instead of the local session")

	authLoginCmd.Flags().StringP("username", "u", "", "Username (required)")
	authLoginCmd.Flags().StringP("password", "p", "", "Password (required)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
