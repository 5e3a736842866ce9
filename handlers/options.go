package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"dealcalc/services"
)

// optionsResponse carries everything the hosting UI needs to render its
// form controls: the static dropdowns plus the configured catalog,
// currencies and plan pricing.
type optionsResponse struct {
	Plans              []string           `json:"plans"`
	PaymentFrequencies []string           `json:"payment_frequencies"`
	AutoRenew          []string           `json:"auto_renew"`
	ContractTerms      []int              `json:"contract_terms"`
	SupportLevels      []float64          `json:"support_levels"`
	Currencies         []string           `json:"currencies"`
	BaseCurrency       string             `json:"base_currency"`
	Products           []services.Product `json:"products"`
	PlanPricing        services.PlanTable `json:"plan_pricing"`
}

// HandleOptions returns a handler that serves the form option lists.
func HandleOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cfg, err := loadPricingConfig(app)
		if err != nil {
			log.Printf("options: could not load pricing config: %v", err)
			return jsonError(e, http.StatusInternalServerError, "Pricing configuration unavailable")
		}

		currencies := make([]string, 0, len(cfg.Rates))
		for code := range cfg.Rates {
			currencies = append(currencies, code)
		}
		sort.Strings(currencies)

		products := make([]services.Product, 0, len(cfg.Catalog))
		for _, p := range cfg.Catalog {
			products = append(products, p)
		}
		sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

		return e.JSON(http.StatusOK, optionsResponse{
			Plans:              services.PlanOptions,
			PaymentFrequencies: services.PaymentFrequencyOptions,
			AutoRenew:          services.AutoRenewOptions,
			ContractTerms:      services.ContractTermOptions,
			SupportLevels:      services.SupportLevelOptions,
			Currencies:         currencies,
			BaseCurrency:       cfg.BaseCurrency,
			Products:           products,
			PlanPricing:        cfg.Plans,
		})
	}
}
