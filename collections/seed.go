package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type productDef struct {
	key       string
	name      string
	currency  string
	listPrice float64
}

type rateDef struct {
	code string
	rate float64
}

type planDef struct {
	plan              string
	platformFee       float64
	implementationFee float64
}

type portalTierDef struct {
	upToSeats int
	perSeat   float64
}

// All monetary configuration is relative to the AUD base currency; exchange
// rates are AUD per one unit of the listed code.
var (
	seedProducts = []productDef{
		{key: "kyc_individual", name: "KYC Individual Verification", currency: "AUD", listPrice: 0.85},
		{key: "kyb_business", name: "KYB Business Verification", currency: "AUD", listPrice: 3.50},
		{key: "document_verification", name: "Document Verification", currency: "USD", listPrice: 1.20},
		{key: "biometrics", name: "Biometric Identity Check", currency: "USD", listPrice: 0.95},
		{key: "aml_screening", name: "AML Watchlist Screening", currency: "GBP", listPrice: 0.40},
		{key: "fraud_check", name: "Fraud Signal Check", currency: "AUD", listPrice: 0.25},
		{key: "transaction_monitoring", name: "Transaction Monitoring", currency: "EUR", listPrice: 0.10},
	}

	seedRates = []rateDef{
		{code: "AUD", rate: 1.0},
		{code: "USD", rate: 1.52},
		{code: "GBP", rate: 1.92},
		{code: "EUR", rate: 1.65},
		{code: "NZD", rate: 0.92},
		{code: "SGD", rate: 1.18},
	}

	seedPlans = []planDef{
		{plan: "Basic", platformFee: 3000, implementationFee: 2499},
		{plan: "Pro", platformFee: 12000, implementationFee: 7499},
		{plan: "Enterprise", platformFee: 30000, implementationFee: 14999},
	}

	seedPortalTiers = []portalTierDef{
		{upToSeats: 5, perSeat: 250},
		{upToSeats: 20, perSeat: 200},
		{upToSeats: 50, perSeat: 150},
	}
)

// Seed populates the pricing configuration collections. It is safe to call
// on every startup because it returns early if any product records already
// exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if products already exist ──────────────────
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	existing, err := app.FindAllRecords(productsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query products: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: products collection is empty – inserting pricing configuration …")

	ratesCol, err := app.FindCollectionByNameOrId("exchange_rates")
	if err != nil {
		return fmt.Errorf("seed: could not find exchange_rates collection: %w", err)
	}
	plansCol, err := app.FindCollectionByNameOrId("plan_pricing")
	if err != nil {
		return fmt.Errorf("seed: could not find plan_pricing collection: %w", err)
	}
	portalCol, err := app.FindCollectionByNameOrId("portal_pricing")
	if err != nil {
		return fmt.Errorf("seed: could not find portal_pricing collection: %w", err)
	}

	for _, d := range seedProducts {
		r := core.NewRecord(productsCol)
		r.Set("key", d.key)
		r.Set("name", d.name)
		r.Set("currency", d.currency)
		r.Set("list_price", d.listPrice)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save product %q: %w", d.key, err)
		}
	}

	for _, d := range seedRates {
		r := core.NewRecord(ratesCol)
		r.Set("code", d.code)
		r.Set("rate", d.rate)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save exchange rate %q: %w", d.code, err)
		}
	}

	for _, d := range seedPlans {
		r := core.NewRecord(plansCol)
		r.Set("plan", d.plan)
		r.Set("platform_fee", d.platformFee)
		r.Set("implementation_fee", d.implementationFee)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save plan %q: %w", d.plan, err)
		}
	}

	for _, d := range seedPortalTiers {
		r := core.NewRecord(portalCol)
		r.Set("up_to_seats", d.upToSeats)
		r.Set("per_seat", d.perSeat)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save portal tier %d: %w", d.upToSeats, err)
		}
	}

	log.Printf("seed: pricing configuration inserted (%d products, %d rates, %d plans, %d portal tiers)",
		len(seedProducts), len(seedRates), len(seedPlans), len(seedPortalTiers))
	return nil
}
