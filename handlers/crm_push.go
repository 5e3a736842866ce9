package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"dealcalc/services"
)

// crmClient posts JSON to the configured CRM webhook.
var crmClient = &http.Client{Timeout: 10 * time.Second}

// crmWebhookURL reads the CRM endpoint from the environment; empty means
// the integration is not configured.
func crmWebhookURL() string {
	return os.Getenv("CRM_WEBHOOK_URL")
}

// HandleCRMPush returns a handler that assembles the quote, flattens it into
// the CRM deal payload and pushes it to the configured webhook.
func HandleCRMPush(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		url := crmWebhookURL()
		if url == "" {
			return jsonError(e, http.StatusServiceUnavailable, "CRM integration is not configured")
		}

		in, err := decodeQuoteRequest(e)
		if err != nil {
			return jsonError(e, http.StatusBadRequest, err.Error())
		}

		cfg, err := loadPricingConfig(app)
		if err != nil {
			log.Printf("crm_push: could not load pricing config: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Pricing configuration unavailable")
		}

		data, err := services.BuildQuoteData(in, cfg)
		if err != nil {
			log.Printf("crm_push: %v", err)
			return jsonError(e, lookupErrorStatus(err), err.Error())
		}
		metrics, err := services.CalculateMetrics(in, cfg)
		if err != nil {
			log.Printf("crm_push: %v", err)
			return jsonError(e, lookupErrorStatus(err), err.Error())
		}

		payload := services.BuildCRMPayload(data, metrics)
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("crm_push: marshal payload: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to build CRM payload")
		}

		req, err := http.NewRequestWithContext(e.Request.Context(), http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			log.Printf("crm_push: build request: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Failed to build CRM request")
		}
		req.Header.Set("Content-Type", "application/json")
		if key := os.Getenv("CRM_API_KEY"); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}

		resp, err := crmClient.Do(req)
		if err != nil {
			log.Printf("crm_push: request failed: %v", err)
			return jsonError(e, http.StatusBadGateway, "CRM push failed")
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			log.Printf("crm_push: CRM returned status %d", resp.StatusCode)
			return jsonError(e, http.StatusBadGateway, fmt.Sprintf("CRM rejected the push (status %d)", resp.StatusCode))
		}

		return e.JSON(http.StatusOK, map[string]string{
			"status":    "sent",
			"deal_name": payload.DealName,
		})
	}
}
