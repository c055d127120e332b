package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/platform"
)

var bulletinsCmd = &cobra.Command{
	Use:   "bulletins",
	Short: "Manage the plaza's bulletin board",
}

var bulletinsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bulletins",
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

		if err := a.requireModule(ctx, "Bulletin"); err != nil {
			return err
		}

		today, _ := cmd.Flags().GetBool("today")
		date, _ := cmd.Flags().GetString("date")

		var bulletins []platform.Bulletin
		switch {
		case today:
			bulletins, err = a.client.ListTodayBulletins(ctx)
		case date != "":
			bulletins, err = a.client.ListBulletinsByDate(ctx, date)
		default:
			bulletins, err = a.client.ListBulletins(ctx)
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTITLE\tAUTHOR")
		for _, b := range bulletins {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, b.PublicationDate, b.Title, b.CreatedByUsername)
		}
		return w.Flush()
	},
}

var bulletinsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one bulletin",
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

		b, err := a.client.GetBulletin(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", b.Title)
		if b.PublicationDate != "" {
			fmt.Fprintf(out, "Published: %s", b.PublicationDate)
			if b.CreatedByFullName != "" {
				fmt.Fprintf(out, " by %s", b.CreatedByFullName)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, b.Content)
		return nil
	},
}

var bulletinsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a bulletin",
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

		if err := a.requireModule(ctx, "Bulletin"); err != nil {
			return err
		}

		req := bulletinRequestFromFlags(cmd)
		if req.Title == "" || req.Content == "" {
			return fmt.Errorf("--title and --content are required")
		}

		b, err := a.client.CreateBulletin(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published bulletin %d: %s\n", b.ID, b.Title)
		return nil
	},
}

var bulletinsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a bulletin",
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
		req := bulletinRequestFromFlags(cmd)
		if req.Title == "" || req.Content == "" {
			return fmt.Errorf("--title and --content are required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		b, err := a.client.UpdateBulletin(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated bulletin %d: %s\n", b.ID, b.Title)
		return nil
	},
}

var bulletinsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a bulletin",
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

		if err := a.client.DeleteBulletin(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted bulletin %d\n", id)
		return nil
	},
}

func bulletinRequestFromFlags(cmd *cobra.Command) *platform.BulletinRequest {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	date, _ := cmd.Flags().GetString("date")
	return &platform.BulletinRequest{
		Title:           title,
		Content:         content,
		PublicationDate: date,
	}
}

func addBulletinFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Bulletin title (required)")
	cmd.Flags().String("content", "", "Bulletin body (required)")
	cmd.Flags().String("date", "", "Publication date (YYYY-MM-DD)")
}

func init() {
	bulletinsListCmd.Flags().Bool("today", false, "Only today's bulletins")
	bulletinsListCmd.Flags().String("date", "", "Bulletins for one date (YYYY-MM-DD)")
	addBulletinFlags(bulletinsCreateCmd)
	addBulletinFlags(bulletinsUpdateCmd)

	bulletinsCmd.AddCommand(bulletinsListCmd)
	bulletinsCmd.AddCommand(bulletinsGetCmd)
	bulletinsCmd.AddCommand(bulletinsCreateCmd)
	bulletinsCmd.AddCommand(bulletinsUpdateCmd)
	bulletinsCmd.AddCommand(bulletinsDeleteCmd)
	rootCmd.AddCommand(bulletinsCmd)
}
