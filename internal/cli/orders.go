package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// OrdersOptions holds flags for the orders command.
type OrdersOptions struct {
	SetStatus string
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrdersOptions{}

	cmd := &cobra.Command{
		Use:   "orders [order-id]",
		Short: "List orders, show one, or update its status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := rootOpts.client()

			if len(args) == 0 {
				if opts.SetStatus != "" {
					return fmt.Errorf("--set-status requires an order id")
				}
				orders, err := api.Orders(cmd.Context())
				if err != nil {
					return err
				}
				for _, o := range orders {
					fmt.Fprintf(cmd.OutOrStdout(), "#%d  %-20s  R$ %9.2f  %s\n",
						o.ID, o.CustomerName, o.Total, o.Status)
				}
				return nil
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}

			if opts.SetStatus != "" {
				o, err := api.UpdateOrderStatus(cmd.Context(), id, opts.SetStatus)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pedido #%d agora está %s\n", o.ID, o.Status)
				return nil
			}

			o, err := api.Order(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pedido #%d  %s <%s>  %s\n",
				o.ID, o.CustomerName, o.CustomerEmail, o.Status)
			for _, item := range o.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-30s  R$ %9.2f x %d = R$ %9.2f\n",
					item.ProductName, item.Price, item.Quantity, item.Subtotal)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: R$ %.2f\n", o.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SetStatus, "set-status", "", "update the order's status")
	return cmd
}
