package services

// QuoteInputs is the complete immutable snapshot of deal, license and product
// state supplied by the caller. All fee fields are amounts in the base
// currency; the engine converts them to DisplayCurrency before aggregating.
// OriginalPlatformFee and OriginalImplementationFee are the plan-derived
// baselines used only for discount display; they are never discounted
// themselves.
type QuoteInputs struct {
	CustomerName       string
	PreparedBy         string
	StartDate          string
	CustomerPlan       string
	PlatformFee        float64
	ImplementationFee  float64
	MinimumCommitment  float64
	ChildAccounts      int
	ContractTermMonths int
	PaymentFrequency   string
	AutoRenew          string
	PartnerCommission  float64 // percent of TCV paid to the referring partner

	PortalSeats           int
	SupportLevel          float64 // annual add-on amount, 0 = Basic tier
	ImplementationSupport float64
	HostedSDKFee          float64 // 0 = not purchased

	Products        []ProductSelection
	DisplayCurrency string

	OriginalPlatformFee       float64
	OriginalImplementationFee float64
}

// Metrics is the computed financial summary of a deal. All monetary fields
// are in the display currency.
type Metrics struct {
	MRR           float64 `json:"mrr"`
	ARR           float64 `json:"arr"`
	CommittedARR  float64 `json:"committed_arr"`
	TotalRevenue  float64 `json:"total_revenue"`
	TCV           float64 `json:"tcv"`
	GrossProfit   float64 `json:"gross_profit"`
	GrossMargin   float64 `json:"gross_margin"`
	LTVCAC        float64 `json:"ltv_cac"`
	PaybackMonths float64 `json:"payback_months"`
	PC3           float64 `json:"pc3"`
	Assessment    string  `json:"assessment"`
}

// Deal-health configuration. Boundary values are business configuration;
// the engine only guarantees the ordering.
const (
	// usageCostRate estimates cost-to-serve as a share of usage revenue.
	usageCostRate = 0.30

	// PaybackUnbounded is the sentinel payback period reported when the
	// deal never recovers its acquisition cost. Kept finite so Metrics
	// stays JSON-encodable; renderers display it as unbounded.
	PaybackUnbounded = 999

	// LTVCACCap bounds the reported LTV:CAC ratio for near-zero
	// acquisition costs.
	LTVCACCap = 99

	ltvCACTarget        = 3.0
	paybackTargetMonths = 12.0

	pc3MarginWeight  = 0.3
	pc3LTVCACWeight  = 0.4
	pc3PaybackWeight = 0.3
)

// Assessment labels, ordered worst to best.
const (
	AssessmentPoor      = "Poor"
	AssessmentFair      = "Fair"
	AssessmentGood      = "Good"
	AssessmentExcellent = "Excellent"
)

// CalculateMetrics derives the full metrics record from a deal snapshot.
// It is pure: the same inputs and config always produce the same result.
// Unknown currency codes, product keys or plan tiers fail the whole
// computation so the caller never renders a partially-wrong quote.
func CalculateMetrics(in QuoteInputs, cfg PricingConfig) (Metrics, error) {
	in = clampInputs(in)

	lines, err := ResolveProducts(in.Products, cfg, in.DisplayCurrency)
	if err != nil {
		return Metrics{}, err
	}

	var monthlyProducts float64
	for _, line := range lines {
		monthlyProducts += line.MonthlyCostConverted
	}

	fees, err := resolveFees(in, cfg)
	if err != nil {
		return Metrics{}, err
	}

	term := float64(in.ContractTermMonths)

	// Recurring charges amortize into MRR; one-off fees feed TCV only.
	mrr := fees.PlatformFee/12 + fees.PortalPrice/12 + fees.SupportLevel/12 + monthlyProducts
	arr := mrr * 12

	committedARR := arr
	if fees.MinimumCommitment > committedARR {
		committedARR = fees.MinimumCommitment
	}

	oneOff := fees.ImplementationFee + fees.ImplementationSupport + fees.HostedSDK + fees.ChildAccountsFee
	totalRevenue := mrr*term + oneOff
	tcv := totalRevenue

	costToServe := usageCostRate * monthlyProducts * term
	grossProfit := tcv - costToServe

	var grossMargin float64
	if tcv != 0 {
		grossMargin = grossProfit / tcv * 100
	}

	acquisitionCost := tcv*in.PartnerCommission/100 + fees.ImplementationFee

	var ltvCAC float64
	if acquisitionCost > 0 {
		ltvCAC = grossProfit / acquisitionCost
		if ltvCAC > LTVCACCap {
			ltvCAC = LTVCACCap
		}
	}

	monthlyGrossProfit := grossProfit / term
	payback := float64(PaybackUnbounded)
	if monthlyGrossProfit > 0 {
		payback = acquisitionCost / monthlyGrossProfit
		if payback > PaybackUnbounded {
			payback = PaybackUnbounded
		}
	}

	pc3 := calcPC3(grossMargin, ltvCAC, payback)

	return Metrics{
		MRR:           mrr,
		ARR:           arr,
		CommittedARR:  committedARR,
		TotalRevenue:  totalRevenue,
		TCV:           tcv,
		GrossProfit:   grossProfit,
		GrossMargin:   grossMargin,
		LTVCAC:        ltvCAC,
		PaybackMonths: payback,
		PC3:           pc3,
		Assessment:    assess(pc3),
	}, nil
}

// calcPC3 combines margin, LTV:CAC and payback into a single 0-100 score.
// Each constituent is normalized against its target before weighting, so a
// better ratio can never lower the score.
func calcPC3(grossMargin, ltvCAC, paybackMonths float64) float64 {
	marginNorm := clamp01(grossMargin / 100)
	ltvNorm := clamp01(ltvCAC / ltvCACTarget)

	paybackNorm := 1.0
	if paybackMonths > 0 {
		paybackNorm = clamp01(paybackTargetMonths / paybackMonths)
	}

	return 100 * (pc3MarginWeight*marginNorm + pc3LTVCACWeight*ltvNorm + pc3PaybackWeight*paybackNorm)
}

// assess maps a PC3 score onto the ordered assessment scale.
func assess(pc3 float64) string {
	switch {
	case pc3 >= 80:
		return AssessmentExcellent
	case pc3 >= 60:
		return AssessmentGood
	case pc3 >= 40:
		return AssessmentFair
	default:
		return AssessmentPoor
	}
}

// clampInputs applies the uniform input policy: negative monetary amounts,
// counts and volumes clamp to zero, and the contract term is at least one
// month so per-month amortization is always defined.
func clampInputs(in QuoteInputs) QuoteInputs {
	if in.PlatformFee < 0 {
		in.PlatformFee = 0
	}
	if in.ImplementationFee < 0 {
		in.ImplementationFee = 0
	}
	if in.MinimumCommitment < 0 {
		in.MinimumCommitment = 0
	}
	if in.ChildAccounts < 0 {
		in.ChildAccounts = 0
	}
	if in.ContractTermMonths < 1 {
		in.ContractTermMonths = 1
	}
	if in.PartnerCommission < 0 {
		in.PartnerCommission = 0
	}
	if in.PortalSeats < 0 {
		in.PortalSeats = 0
	}
	if in.SupportLevel < 0 {
		in.SupportLevel = 0
	}
	if in.ImplementationSupport < 0 {
		in.ImplementationSupport = 0
	}
	if in.HostedSDKFee < 0 {
		in.HostedSDKFee = 0
	}
	if in.OriginalPlatformFee < 0 {
		in.OriginalPlatformFee = 0
	}
	if in.OriginalImplementationFee < 0 {
		in.OriginalImplementationFee = 0
	}
	return in
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
