package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"storefront/internal/catalog"
)

func productsCmd(v *viper.Viper) *cobra.Command {
	var (
		query    string
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products matching a search and category",
		Long: "Fetch the product set once and print the products whose title contains\n" +
			"the query (ignoring case) and whose category matches exactly.",
		Example: `  # Everything the storefront shows
  storefront products

  # Title search within one category
  storefront products --query shirt --category clothing

  # Machine readable
  storefront products --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fetcher, err := newFetcher(v)
			if err != nil {
				return err
			}
			state := catalog.Load(cmd.Context(), fetcher, limit)
			if state.Err != nil {
				return fmt.Errorf("load products: %w", state.Err)
			}

			visible := catalog.Visible(state.Products, query, category)
			out := cmd.OutOrStdout()
			if jsonOutput(v) {
				return outputJSON(out, visible)
			}
			if len(visible) == 0 {
				_, err := fmt.Fprintln(out, "No products found.")
				return err
			}
			if _, err := fmt.Fprintf(out, "Showing %d of %d products\n\n", len(visible), len(state.Products)); err != nil {
				return err
			}
			return printProductsTable(out, visible)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive title search")
	cmd.Flags().StringVarP(&category, "category", "c", catalog.AllCategories, "exact category, or \"all\"")
	cmd.Flags().IntVarP(&limit, "limit", "n", catalog.DefaultLimit, "maximum number of products to fetch")

	return cmd
}

func categoriesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories present in the product set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fetcher, err := newFetcher(v)
			if err != nil {
				return err
			}
			state := catalog.Load(cmd.Context(), fetcher, catalog.DefaultLimit)
			if state.Err != nil {
				return fmt.Errorf("load products: %w", state.Err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput(v) {
				return outputJSON(out, state.Categories)
			}
			for _, category := range state.Categories {
				if _, err := fmt.Fprintln(out, category); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
