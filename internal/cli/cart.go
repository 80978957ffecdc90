package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DarlanCavalcante/tech10/internal/cart"
)

// NewCartCommand creates the cart command and its subcommands.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local shopping cart",
	}

	cmd.AddCommand(newCartAddCommand(rootOpts))
	cmd.AddCommand(newCartShowCommand(rootOpts))
	cmd.AddCommand(newCartIncCommand(rootOpts))
	cmd.AddCommand(newCartDecCommand(rootOpts))
	cmd.AddCommand(newCartRemoveCommand(rootOpts))
	cmd.AddCommand(newCartClearCommand(rootOpts))

	return cmd
}

func newCartAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			// fetch the product so the line's ceiling reflects current stock
			p, err := rootOpts.client().Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			c, err := rootOpts.loadCart()
			if err != nil {
				return err
			}
			if err := c.AddItem(p.ID, p.Name, p.Price, p.Stock); err != nil {
				if errors.Is(err, cart.ErrStockLimit) {
					fmt.Fprintln(cmd.OutOrStdout(), "Quantidade máxima em estoque atingida!")
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s adicionado ao carrinho\n", p.Name)
			return nil
		},
	}
}

func newCartShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart lines and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.loadCart()
			if err != nil {
				return err
			}
			if c.IsEmpty() {
				fmt.Fprintln(cmd.OutOrStdout(), "Seu carrinho está vazio")
				return nil
			}

			for _, l := range c.Lines() {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-30s  R$ %9.2f x %d = R$ %9.2f\n",
					l.ProductID, l.Name, l.UnitPrice, l.Quantity, l.UnitPrice*float64(l.Quantity))
			}
			totals := c.Totals()
			fmt.Fprintf(cmd.OutOrStdout(), "%d itens, total R$ %.2f\n", totals.ItemCount, totals.Total)
			return nil
		},
	}
}

func newCartIncCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inc <product-id>",
		Short: "Increase a line's quantity by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateLine(cmd, rootOpts, args[0], (*cart.Cart).Increment)
		},
	}
}

func newCartDecCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dec <product-id>",
		Short: "Decrease a line's quantity by one, removing it at zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateLine(cmd, rootOpts, args[0], (*cart.Cart).Decrement)
		},
	}
}

func newCartRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateLine(cmd, rootOpts, args[0], (*cart.Cart).Remove)
		},
	}
}

func newCartClearCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Tem certeza que deseja limpar o carrinho? [s/N] ") {
				return nil
			}
			c, err := rootOpts.loadCart()
			if err != nil {
				return err
			}
			if err := c.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Carrinho limpo")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func mutateLine(cmd *cobra.Command, rootOpts *RootOptions, arg string, op func(*cart.Cart, int64) error) error {
	id, err := parseProductID(arg)
	if err != nil {
		return err
	}
	c, err := rootOpts.loadCart()
	if err != nil {
		return err
	}
	if err := op(c, id); err != nil {
		if errors.Is(err, cart.ErrStockLimit) {
			fmt.Fprintln(cmd.OutOrStdout(), "Quantidade máxima em estoque atingida!")
			return nil
		}
		return err
	}
	totals := c.Totals()
	fmt.Fprintf(cmd.OutOrStdout(), "%d itens, total R$ %.2f\n", totals.ItemCount, totals.Total)
	return nil
}

func parseProductID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "sim" || answer == "y" || answer == "yes"
}
