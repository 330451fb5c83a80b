package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Camera rental storefront in the terminal",
		Long: `storefront browses the camera rental catalog and places bookings from a terminal.

It runs the same booking workflow as the Telegram mini app: pick a camera, choose
dates and accessories, leave contact details and submit.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newCatalogCmd())

	return cmd
}
