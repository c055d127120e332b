package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/platform"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the plaza's product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
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

		availableOnly, _ := cmd.Flags().GetBool("available")
		var products []platform.Product
		if availableOnly {
			products, err = a.client.ListAvailableProducts(ctx)
		} else {
			products, err = a.client.ListProducts(ctx)
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tUNIT\tPRICE")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\n", p.ID, p.Name, p.Category, p.Unit, p.Price)
		}
		return w.Flush()
	},
}

var productsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
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

		categories, err := a.client.ListProductCategories(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(categories, "\n"))
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
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

		p, err := a.client.GetProduct(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Product %d: %s\n", p.ID, p.Name)
		if p.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", p.Description)
		}
		if p.Category != "" {
			fmt.Fprintf(out, "  Category:    %s\n", p.Category)
		}
		if p.Unit != "" {
			fmt.Fprintf(out, "  Unit:        %s\n", p.Unit)
		}
		fmt.Fprintf(out, "  Price:       %.2f\n", p.Price)
		return nil
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(); err != nil {
			return err
		}

		req := productRequestFromFlags(cmd)
		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		p, err := a.client.CreateProduct(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created product %d: %s\n", p.ID, p.Name)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
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
		req := productRequestFromFlags(cmd)
		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		p, err := a.client.UpdateProduct(ctx, id, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated product %d: %s\n", p.ID, p.Name)
		return nil
	},
}

var productsPriceCmd = &cobra.Command{
	Use:   "price <id> <price>",
	Short: "Update a product's price",
	Args:  cobra.ExactArgs(2),
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
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", args[1])
		}

		ctx, cancel := a.commandContext(cmd.Context())
		defer cancel()

		p, err := a.client.UpdateProductPrice(ctx, id, price)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s price to %.2f\n", p.Name, p.Price)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
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

		if err := a.client.DeleteProduct(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %d\n", id)
		return nil
	},
}

func productRequestFromFlags(cmd *cobra.Command) *platform.ProductRequest {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	category, _ := cmd.Flags().GetString("category")
	unit, _ := cmd.Flags().GetString("unit")
	price, _ := cmd.Flags().GetFloat64("price")
	plazaID, _ := cmd.Flags().GetInt64("plaza-id")
	return &platform.ProductRequest{
		Name:        name,
		Description: description,
		Category:    category,
		Unit:        unit,
		Price:       price,
		PlazaID:     plazaID,
	}
}

func addProductFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Product name (required)")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().String("unit", "", "Sale unit")
	cmd.Flags().Float64("price", 0, "Price")
	cmd.Flags().Int64("plaza-id", 0, "Plaza the product belongs to")
}

func init() {
	productsListCmd.Flags().Bool("available", false, "Only list available products")
	addProductFlags(productsCreateCmd)
	addProductFlags(productsUpdateCmd)

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsCategoriesCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsPriceCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
