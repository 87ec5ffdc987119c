package main

import (
	"fmt"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"marnthara/collections"
	"marnthara/config"
	"marnthara/handlers"
	"marnthara/services"
	"marnthara/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := cfg.Logger()
	handlers.SetLogger(log)

	app := pocketbase.New()
	app.RootCmd.AddCommand(quoteCommand(app, log))

	metrics := store.NewMetrics("marnthara", nil)
	orders := handlers.NewOrderStores(app, metrics)
	webhook := services.NewWebhookClient(cfg.WebhookURL, cfg.WebhookTimeout)
	shop := cfg.Shop()
	pdfOpts := services.PDFOptions{FontPath: cfg.FontPath}

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app, log); err != nil {
			return fmt.Errorf("setup collections: %w", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Orders ───────────────────────────────────────────────
		se.Router.POST("/api/orders", handlers.HandleOrderCreate(app))
		se.Router.GET("/api/orders/{id}/state", handlers.HandleOrderState(orders, shop.VATRate))
		se.Router.POST("/api/orders/{id}/dispatch", handlers.HandleDispatch(orders, shop.VATRate))
		se.Router.POST("/api/orders/{id}/undo", handlers.HandleUndo(orders, shop.VATRate))
		se.Router.POST("/api/orders/{id}/reset", handlers.HandleReset(orders, shop.VATRate))
		se.Router.POST("/api/orders/{id}/import", handlers.HandleImport(orders, shop.VATRate))
		se.Router.GET("/api/orders/{id}/state.json", handlers.HandleStateDownload(orders))
		se.Router.POST("/api/orders/{id}/submit", handlers.HandleSubmit(orders, webhook))

		// ── Summaries and documents ──────────────────────────────
		se.Router.GET("/api/orders/{id}/summary", handlers.HandleSummaryHTML(orders))
		se.Router.GET("/api/orders/{id}/summary.txt", handlers.HandleSummaryText(orders))
		se.Router.GET("/api/orders/{id}/overview", handlers.HandleOverview(orders))
		se.Router.GET("/api/orders/{id}/export/pdf", handlers.HandleExportPDF(app, orders, shop, pdfOpts))
		se.Router.GET("/api/orders/{id}/export/excel", handlers.HandleExportExcel(app, orders, shop))

		// ── Pricing ──────────────────────────────────────────────
		se.Router.POST("/api/price", handlers.HandlePrice())
		se.Router.GET("/api/pricing/options", handlers.HandlePricingOptions())

		// ── Favorites ────────────────────────────────────────────
		se.Router.GET("/api/favorites", handlers.HandleFavoritesList(app))
		se.Router.POST("/api/favorites", handlers.HandleFavoriteAdd(app))
		se.Router.PUT("/api/favorites", handlers.HandleFavoritesReplace(app))
		se.Router.POST("/api/favorites/merge", handlers.HandleFavoritesMerge(app))
		se.Router.DELETE("/api/favorites/{type}/{code}", handlers.HandleFavoriteDelete(app))
		se.Router.POST("/api/favorites/import", handlers.HandleFavoritesImport(app))
		se.Router.POST("/api/favorites/import/errors", handlers.HandleFavoritesErrorReport())
		se.Router.GET("/api/favorites/export", handlers.HandleFavoritesExport(app))

		se.Router.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal().Err(err).Msg("start")
	}
}

// bootstrap prepares the app for commands that run outside of serve.
func bootstrap(app core.App, log zerolog.Logger) error {
	if !app.IsBootstrapped() {
		if err := app.Bootstrap(); err != nil {
			return err
		}
	}
	return collections.Setup(app, log)
}

// quoteCommand groups the offline order tools.
func quoteCommand(app core.App, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Order and quotation tools",
	}
	cmd.AddCommand(seedCommand(app, log), summaryCommand(app, log))
	return cmd
}

func seedCommand(app core.App, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create a demo order and sample favorites",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bootstrap(app, log); err != nil {
				return err
			}
			if err := collections.Seed(app); err != nil {
				return err
			}
			log.Info().Msg("seed data created")
			return nil
		},
	}
}

func summaryCommand(app core.App, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <orderId>",
		Short: "Print the text summary of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootstrap(app, log); err != nil {
				return err
			}
			o, err := collections.NewOrderRepository(app, args[0]).LoadState(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), services.GenerateTextSummary(o))
			return nil
		},
	}
}
