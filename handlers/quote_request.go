// Package handlers exposes the quote engine over a JSON API plus the
// PDF/CSV/Excel download and CRM push endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"dealcalc/services"
)

// productSelectionRequest mirrors services.ProductSelection on the wire.
type productSelectionRequest struct {
	Key            string  `json:"key"`
	Volume         float64 `json:"volume"`
	EffectivePrice float64 `json:"effective_price"`
}

// QuoteRequest is the full input snapshot posted by the hosting UI. The
// engine holds no state between calls, so every request carries everything.
type QuoteRequest struct {
	CustomerName       string  `json:"customer_name"`
	PreparedBy         string  `json:"prepared_by"`
	StartDate          string  `json:"start_date"`
	CustomerPlan       string  `json:"customer_plan"`
	PlatformFee        float64 `json:"platform_fee"`
	ImplementationFee  float64 `json:"implementation_fee"`
	MinimumCommitment  float64 `json:"minimum_commitment"`
	ChildAccounts      int     `json:"child_accounts"`
	ContractTermMonths int     `json:"contract_term_months"`
	PaymentFrequency   string  `json:"payment_frequency"`
	AutoRenew          string  `json:"auto_renew"`
	PartnerCommission  float64 `json:"partner_commission"`

	PortalSeats           int     `json:"portal_seats"`
	SupportLevel          float64 `json:"support_level"`
	ImplementationSupport float64 `json:"implementation_support"`
	HostedSDKFee          float64 `json:"hosted_sdk_fee"`

	Products        []productSelectionRequest `json:"products"`
	DisplayCurrency string                    `json:"display_currency"`

	OriginalPlatformFee       float64 `json:"original_platform_fee"`
	OriginalImplementationFee float64 `json:"original_implementation_fee"`
}

// toInputs converts the wire request into engine inputs, defaulting the
// display currency to the base currency and the discount baselines to the
// current fees when absent.
func (r QuoteRequest) toInputs() services.QuoteInputs {
	display := r.DisplayCurrency
	if display == "" {
		display = baseCurrency
	}

	originalPlatform := r.OriginalPlatformFee
	if originalPlatform == 0 {
		originalPlatform = r.PlatformFee
	}
	originalImplementation := r.OriginalImplementationFee
	if originalImplementation == 0 {
		originalImplementation = r.ImplementationFee
	}

	products := make([]services.ProductSelection, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, services.ProductSelection{
			Key:            p.Key,
			Volume:         p.Volume,
			EffectivePrice: p.EffectivePrice,
		})
	}

	return services.QuoteInputs{
		CustomerName:       r.CustomerName,
		PreparedBy:         r.PreparedBy,
		StartDate:          r.StartDate,
		CustomerPlan:       r.CustomerPlan,
		PlatformFee:        r.PlatformFee,
		ImplementationFee:  r.ImplementationFee,
		MinimumCommitment:  r.MinimumCommitment,
		ChildAccounts:      r.ChildAccounts,
		ContractTermMonths: r.ContractTermMonths,
		PaymentFrequency:   r.PaymentFrequency,
		AutoRenew:          r.AutoRenew,
		PartnerCommission:  r.PartnerCommission,

		PortalSeats:           r.PortalSeats,
		SupportLevel:          r.SupportLevel,
		ImplementationSupport: r.ImplementationSupport,
		HostedSDKFee:          r.HostedSDKFee,

		Products:        products,
		DisplayCurrency: display,

		OriginalPlatformFee:       originalPlatform,
		OriginalImplementationFee: originalImplementation,
	}
}

// decodeQuoteRequest parses the request body into engine inputs.
func decodeQuoteRequest(e *core.RequestEvent) (services.QuoteInputs, error) {
	var req QuoteRequest
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return services.QuoteInputs{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req.toInputs(), nil
}

// lookupErrorStatus maps engine errors onto HTTP statuses: configuration
// lookup failures are the caller's stale state (422), anything else is ours.
func lookupErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUnknownCurrency),
		errors.Is(err, services.ErrUnknownProduct),
		errors.Is(err, services.ErrUnknownPlan):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// jsonError writes a minimal error payload.
func jsonError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]string{"error": message})
}
