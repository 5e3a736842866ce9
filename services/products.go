package services

import "fmt"

// ProductSelection is one usage-based product picked for the deal. Volume is
// the estimated annual transaction count. EffectivePrice is the (possibly
// discounted) unit price in the product's native currency; zero means no
// discount was entered and the catalog list price applies.
type ProductSelection struct {
	Key            string  `json:"key"`
	Volume         float64 `json:"volume"`
	EffectivePrice float64 `json:"effective_price"`
}

// ProductLine is a fully resolved product row: catalog data joined with the
// selection, priced in both the native and the display currency.
type ProductLine struct {
	Key                  string  `json:"key"`
	Name                 string  `json:"name"`
	Currency             string  `json:"currency"`
	ListPrice            float64 `json:"list_price"`
	EffectivePrice       float64 `json:"effective_price"`
	ConvertedPrice       float64 `json:"converted_price"`
	Volume               float64 `json:"volume"`
	MonthlyCost          float64 `json:"monthly_cost"`
	MonthlyCostConverted float64 `json:"monthly_cost_converted"`
	AnnualCostConverted  float64 `json:"annual_cost_converted"`
}

// ResolveProducts looks up every selection in the catalog and prices it in
// the display currency. A missing catalog key fails the whole resolution
// rather than silently dropping the product. Zero volume is valid and yields
// a zero-cost line that is still listed. Negative volumes clamp to zero.
func ResolveProducts(selections []ProductSelection, cfg PricingConfig, displayCurrency string) ([]ProductLine, error) {
	lines := make([]ProductLine, 0, len(selections))

	for _, sel := range selections {
		product, ok := cfg.Catalog[sel.Key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, sel.Key)
		}

		volume := sel.Volume
		if volume < 0 {
			volume = 0
		}

		effective := sel.EffectivePrice
		if effective <= 0 {
			effective = product.ListPrice
		}

		converted, err := Convert(effective, product.Currency, displayCurrency, cfg.Rates)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", sel.Key, err)
		}

		annualConverted := volume * converted

		lines = append(lines, ProductLine{
			Key:                  product.Key,
			Name:                 product.Name,
			Currency:             product.Currency,
			ListPrice:            product.ListPrice,
			EffectivePrice:       effective,
			ConvertedPrice:       converted,
			Volume:               volume,
			MonthlyCost:          volume * effective / 12,
			MonthlyCostConverted: annualConverted / 12,
			AnnualCostConverted:  annualConverted,
		})
	}

	return lines, nil
}
