package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"

	"dealcalc/services"
)

// baseCurrency is the currency all fee inputs are denominated in. The
// exchange-rate table is expressed as units of this currency per unit of
// each code.
const baseCurrency = "AUD"

// loadPricingConfig snapshots the pricing collections into an immutable
// config for one computation. The engine never reads the database itself.
func loadPricingConfig(app *pocketbase.PocketBase) (services.PricingConfig, error) {
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return services.PricingConfig{}, fmt.Errorf("products collection: %w", err)
	}
	ratesCol, err := app.FindCollectionByNameOrId("exchange_rates")
	if err != nil {
		return services.PricingConfig{}, fmt.Errorf("exchange_rates collection: %w", err)
	}
	plansCol, err := app.FindCollectionByNameOrId("plan_pricing")
	if err != nil {
		return services.PricingConfig{}, fmt.Errorf("plan_pricing collection: %w", err)
	}
	portalCol, err := app.FindCollectionByNameOrId("portal_pricing")
	if err != nil {
		return services.PricingConfig{}, fmt.Errorf("portal_pricing collection: %w", err)
	}

	products, err := app.FindAllRecords(productsCol)
	if err != nil {
		return services.PricingConfig{}, fmt.Errorf("query products: %w", err)
	}
	rates, err := app.FindAllRecords(ratesCol)
	if err != nil {
		return services.PricingConfig{}, fmt.Errorf("query exchange rates: %w", err)
	}
	plans, err := app.FindAllRecords(plansCol)
	if err != nil {
		return services.PricingConfig{}, fmt.Errorf("query plan pricing: %w", err)
	}
	tiers, err := app.FindAllRecords(portalCol)
	if err != nil {
		return services.PricingConfig{}, fmt.Errorf("query portal pricing: %w", err)
	}

	cfg := services.PricingConfig{
		Rates:        make(services.Rates, len(rates)),
		Catalog:      make(services.Catalog, len(products)),
		Plans:        make(services.PlanTable, len(plans)),
		PortalTiers:  make([]services.PortalTier, 0, len(tiers)),
		BaseCurrency: baseCurrency,
	}

	for _, r := range rates {
		cfg.Rates[r.GetString("code")] = r.GetFloat("rate")
	}
	for _, r := range products {
		key := r.GetString("key")
		cfg.Catalog[key] = services.Product{
			Key:       key,
			Name:      r.GetString("name"),
			Currency:  r.GetString("currency"),
			ListPrice: r.GetFloat("list_price"),
		}
	}
	for _, r := range plans {
		cfg.Plans[r.GetString("plan")] = services.PlanPricing{
			PlatformFee:       r.GetFloat("platform_fee"),
			ImplementationFee: r.GetFloat("implementation_fee"),
		}
	}
	for _, r := range tiers {
		cfg.PortalTiers = append(cfg.PortalTiers, services.PortalTier{
			UpToSeats: r.GetInt("up_to_seats"),
			PerSeat:   r.GetFloat("per_seat"),
		})
	}

	return cfg, nil
}
