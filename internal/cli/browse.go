package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Domenick1991/camrent/config"
	"github.com/Domenick1991/camrent/internal/catalog"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/kafka"
	"github.com/Domenick1991/camrent/internal/pricing"
	"github.com/Domenick1991/camrent/internal/repository"
	"github.com/Domenick1991/camrent/internal/service/cameras"
	"github.com/Domenick1991/camrent/internal/storefront"
	"github.com/spf13/cobra"
)

type catalogOptions struct {
	configPath string
	apiURL     string
}

func (o *catalogOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", envOr("CONFIG_PATH", "config.yaml"), "Path to the YAML config file")
	cmd.Flags().StringVar(&o.apiURL, "api", os.Getenv("STOREFRONT_API"), "Storefront API base URL; empty reads the local catalog file")
}

// loader returns the remote catalog client when an API URL is set, otherwise a
// service over the configured local catalog file.
func (o *catalogOptions) loader(cfg *config.Config) storefront.CatalogLoader {
	if o.apiURL != "" {
		return catalog.NewClient(o.apiURL)
	}
	return cameras.NewCameraService(
		repository.NewFileCameraSource(cfg.Catalog.FilePath),
		catalog.NewEnricher(cfg.Catalog.ImagePrefix),
	)
}

func newBrowseCmd() *cobra.Command {
	var opts catalogOptions
	var user domain.TelegramUser

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog and book a camera interactively",
		Example: `  # Use the local catalog file
  storefront browse

  # Talk to a running storefront API as a Telegram user
  storefront browse --api http://localhost:3001 --tg-id 42 --tg-username ivan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(opts.configPath)
			if err != nil {
				return err
			}

			var bridge storefront.HostBridge = storefront.NoopBridge{}
			if len(cfg.Kafka.Brokers) > 0 {
				producer := kafka.NewProducer(cfg.Kafka.Brokers)
				defer producer.Close()
				bridge = storefront.NewRelayBridge(producer, cfg.Kafka.BookingTopic, cfg.Kafka.NotificationsTopic)
			}

			var identity *domain.TelegramUser
			if user.ID != 0 {
				identity = &user
			}

			workflow := storefront.NewWorkflow(bridge, catalog.DefaultAccessories())
			shell := NewShell(workflow, opts.loader(cfg), identity, cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "type help for commands")
			return shell.Run(cmd.Context(), cmd.InOrStdin())
		},
	}

	opts.bind(cmd)
	cmd.Flags().Int64Var(&user.ID, "tg-id", 0, "Telegram user id sent with bookings")
	cmd.Flags().StringVar(&user.FirstName, "tg-first-name", "", "Telegram first name")
	cmd.Flags().StringVar(&user.LastName, "tg-last-name", "", "Telegram last name")
	cmd.Flags().StringVar(&user.Username, "tg-username", "", "Telegram username")

	return cmd
}

func newCatalogCmd() *cobra.Command {
	var opts catalogOptions

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the enriched camera catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(opts.configPath)
			if err != nil {
				return err
			}
			list, err := opts.loader(cfg).List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range list {
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Specs, pricing.FormatRUB(c.Price), c.Image)
			}
			return nil
		},
	}

	opts.bind(cmd)
	return cmd
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
