package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DarlanCavalcante/tech10/internal/checkout"
)

// CheckoutOptions holds flags for the checkout command.
type CheckoutOptions struct {
	Name  string
	Email string
}

// NewCheckoutCommand creates the checkout command.
func NewCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckoutOptions{}

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		Long: `Submit the cart as an order.

The server validates every line against current stock; on any failure
the cart is kept as is and the server's message is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.loadCart()
			if err != nil {
				return err
			}

			flow := checkout.NewFlow(rootOpts.client(), c)
			order, err := flow.Submit(cmd.Context(), opts.Name, opts.Email)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pedido #%d confirmado! Total: R$ %.2f\n", order.ID, order.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "customer email")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
