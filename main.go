package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"dealcalc/collections"
	"dealcalc/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed pricing data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Form options ─────────────────────────────────────────
		se.Router.GET("/api/options", handlers.HandleOptions(app))

		// ── Quote engine ─────────────────────────────────────────
		se.Router.POST("/api/quote/metrics", handlers.HandleQuoteMetrics(app))
		se.Router.POST("/api/quote/data", handlers.HandleQuoteData(app))

		// ── Exports ──────────────────────────────────────────────
		se.Router.POST("/api/quote/export/pdf", handlers.HandleQuotePDF(app))
		se.Router.POST("/api/quote/export/usage", handlers.HandleUsagePDF(app))
		se.Router.POST("/api/quote/export/csv", handlers.HandleQuoteCSV(app))
		se.Router.POST("/api/quote/export/excel", handlers.HandleQuoteExcel(app))

		// ── CRM push ─────────────────────────────────────────────
		se.Router.POST("/api/quote/crm", handlers.HandleCRMPush(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
