package services

import (
	"errors"
	"fmt"
	"sort"
)

// Product is a catalog entry for a usage-based product. ListPrice is the
// recommended per-transaction price in the product's native currency.
type Product struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Currency  string  `json:"currency"`
	ListPrice float64 `json:"list_price"`
}

// Catalog maps product keys to catalog entries.
type Catalog map[string]Product

// PlanPricing holds the default fees for a customer plan tier.
type PlanPricing struct {
	PlatformFee       float64 `json:"platform_fee"`
	ImplementationFee float64 `json:"implementation_fee"`
}

// PlanTable maps plan names (Basic, Pro, Enterprise) to their default fees.
type PlanTable map[string]PlanPricing

// PortalTier prices portal seats up to and including UpToSeats at PerSeat
// each. Tiers are evaluated cumulatively in ascending seat order.
type PortalTier struct {
	UpToSeats int     `json:"up_to_seats"`
	PerSeat   float64 `json:"per_seat"`
}

// PricingConfig is an immutable snapshot of all static pricing tables,
// loaded once per computation. BaseCurrency must be present in Rates with
// rate 1.
type PricingConfig struct {
	Rates        Rates
	Catalog      Catalog
	Plans        PlanTable
	PortalTiers  []PortalTier
	BaseCurrency string
}

// ChildAccountRate is the fixed annual fee per child account.
const ChildAccountRate = 2400

var (
	// ErrUnknownProduct is returned when a selected product key is absent
	// from the catalog. This indicates stale selection state upstream.
	ErrUnknownProduct = errors.New("unknown product key")

	// ErrUnknownPlan is returned when a plan tier is absent from the
	// plan-pricing table.
	ErrUnknownPlan = errors.New("unknown customer plan")
)

// PlanFor looks up the default fees for a plan tier.
func (c PricingConfig) PlanFor(plan string) (PlanPricing, error) {
	p, ok := c.Plans[plan]
	if !ok {
		return PlanPricing{}, fmt.Errorf("%w: %q", ErrUnknownPlan, plan)
	}
	return p, nil
}

// PortalPrice computes the annual portal charge for the given seat count by
// walking the cumulative seat tiers. Seats beyond the last tier are priced at
// that tier's rate.
func (c PricingConfig) PortalPrice(seats int) float64 {
	if seats <= 0 || len(c.PortalTiers) == 0 {
		return 0
	}

	tiers := make([]PortalTier, len(c.PortalTiers))
	copy(tiers, c.PortalTiers)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].UpToSeats < tiers[j].UpToSeats })

	var total float64
	remaining := seats
	prev := 0
	for _, tier := range tiers {
		span := tier.UpToSeats - prev
		if span <= 0 {
			continue
		}
		n := span
		if remaining < n {
			n = remaining
		}
		total += float64(n) * tier.PerSeat
		remaining -= n
		prev = tier.UpToSeats
		if remaining == 0 {
			return total
		}
	}

	// Overflow past the last tier keeps the last tier's rate.
	total += float64(remaining) * tiers[len(tiers)-1].PerSeat
	return total
}
