// Package cli implements the storefront client commands: browsing the
// catalog, working the local cart and checking out.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DarlanCavalcante/tech10/internal/cart"
	"github.com/DarlanCavalcante/tech10/internal/client"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIURL   string
	CartPath string
}

// NewRootCommand creates the root command for the shop CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "shop",
		Short:         "Storefront client",
		Long:          "Browse the storefront catalog, manage a local cart and place orders.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", defaultAPIURL(), "storefront API base URL")
	cmd.PersistentFlags().StringVar(&opts.CartPath, "cart", defaultCartPath(), "cart state file")

	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))

	return cmd
}

func defaultAPIURL() string {
	if v := os.Getenv("STOREFRONT_API"); v != "" {
		return v
	}
	return "http://localhost:3000"
}

func defaultCartPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cart.json"
	}
	return filepath.Join(dir, "storefront", "cart.json")
}

func (o *RootOptions) client() *client.Client {
	return client.New(o.APIURL)
}

func (o *RootOptions) loadCart() (*cart.Cart, error) {
	return cart.Load(cart.NewFileStorage(o.CartPath))
}
