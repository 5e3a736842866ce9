package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"dealcalc/services"
)

// HandleQuoteMetrics returns a handler that recomputes the live deal metrics
// from the posted input snapshot.
func HandleQuoteMetrics(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := decodeQuoteRequest(e)
		if err != nil {
			return jsonError(e, http.StatusBadRequest, err.Error())
		}

		cfg, err := loadPricingConfig(app)
		if err != nil {
			log.Printf("metrics: could not load pricing config: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Pricing configuration unavailable")
		}

		metrics, err := services.CalculateMetrics(in, cfg)
		if err != nil {
			log.Printf("metrics: %v", err)
			return jsonError(e, lookupErrorStatus(err), err.Error())
		}

		return e.JSON(http.StatusOK, metrics)
	}
}

// HandleQuoteData returns a handler that assembles and returns the full
// quote data record used by every exporter.
func HandleQuoteData(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := decodeQuoteRequest(e)
		if err != nil {
			return jsonError(e, http.StatusBadRequest, err.Error())
		}

		cfg, err := loadPricingConfig(app)
		if err != nil {
			log.Printf("quote_data: could not load pricing config: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Pricing configuration unavailable")
		}

		data, err := services.BuildQuoteData(in, cfg)
		if err != nil {
			log.Printf("quote_data: %v", err)
			return jsonError(e, lookupErrorStatus(err), err.Error())
		}

		return e.JSON(http.StatusOK, data)
	}
}
