package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProductsCommand creates the products command.
func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := rootOpts.client().Products(cmd.Context())
			if err != nil {
				return err
			}

			for _, p := range products {
				stock := fmt.Sprintf("estoque: %d", p.Stock)
				if p.Stock == 0 {
					stock = "fora de estoque"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-30s  R$ %9.2f  %s\n", p.ID, p.Name, p.Price, stock)
			}
			return nil
		},
	}
}
