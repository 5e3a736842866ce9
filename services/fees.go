package services

import "fmt"

// feeSet holds every fixed fee of a deal converted into the display
// currency. Both the metrics calculator and the quote assembler work from
// the same resolved set so their totals can never diverge.
type feeSet struct {
	PlatformFee               float64
	OriginalPlatformFee       float64
	ImplementationFee         float64
	OriginalImplementationFee float64
	ImplementationSupport     float64
	SupportLevel              float64
	HostedSDK                 float64
	PortalPrice               float64
	ChildAccountRate          float64
	ChildAccountsFee          float64
	MinimumCommitment         float64
}

// resolveFees validates the plan tier and converts all fixed fees from the
// base currency into the display currency. Inputs are assumed to be clamped
// already.
func resolveFees(in QuoteInputs, cfg PricingConfig) (feeSet, error) {
	if _, err := cfg.PlanFor(in.CustomerPlan); err != nil {
		return feeSet{}, err
	}

	var fees feeSet

	fields := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"platform fee", in.PlatformFee, &fees.PlatformFee},
		{"original platform fee", in.OriginalPlatformFee, &fees.OriginalPlatformFee},
		{"implementation fee", in.ImplementationFee, &fees.ImplementationFee},
		{"original implementation fee", in.OriginalImplementationFee, &fees.OriginalImplementationFee},
		{"implementation support", in.ImplementationSupport, &fees.ImplementationSupport},
		{"support level", in.SupportLevel, &fees.SupportLevel},
		{"hosted SDK fee", in.HostedSDKFee, &fees.HostedSDK},
		{"portal price", cfg.PortalPrice(in.PortalSeats), &fees.PortalPrice},
		{"child account rate", ChildAccountRate, &fees.ChildAccountRate},
		{"child accounts fee", float64(in.ChildAccounts) * ChildAccountRate, &fees.ChildAccountsFee},
		{"minimum commitment", in.MinimumCommitment, &fees.MinimumCommitment},
	}

	for _, f := range fields {
		converted, err := Convert(f.src, cfg.BaseCurrency, in.DisplayCurrency, cfg.Rates)
		if err != nil {
			return feeSet{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = converted
	}

	return fees, nil
}
