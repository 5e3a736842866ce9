package services

// QuoteDataVersion identifies the QuoteData shape. Every renderer (PDF, CSV,
// Excel, CRM) consumes this one structure; bump the version when its fields
// change.
const QuoteDataVersion = 1

// UpfrontItem is one line of the upfront payment table. ListPrice is the
// pre-discount price, Discount the positive discount amount (0 when none),
// Total the charged amount. Qty is 0 for lines without a meaningful quantity.
type UpfrontItem struct {
	Label     string  `json:"label"`
	ListPrice float64 `json:"list_price"`
	Qty       float64 `json:"qty"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
}

// QuoteData is the denormalized quote record handed to every exporter.
// All monetary fields are in the display currency. It is rebuilt from
// scratch on every call and never mutated in place.
type QuoteData struct {
	SchemaVersion int `json:"schema_version"`

	CustomerName       string `json:"customer_name"`
	PreparedBy         string `json:"prepared_by"`
	StartDate          string `json:"start_date"`
	CustomerPlan       string `json:"customer_plan"`
	ContractTermMonths int    `json:"contract_term_months"`
	PaymentFrequency   string `json:"payment_frequency"`
	AutoRenew          string `json:"auto_renew"`
	DisplayCurrency    string `json:"display_currency"`

	PlatformFee               float64 `json:"platform_fee"`
	OriginalPlatformFee       float64 `json:"original_platform_fee"`
	ImplementationFee         float64 `json:"implementation_fee"`
	OriginalImplementationFee float64 `json:"original_implementation_fee"`
	ImplementationSupport     float64 `json:"implementation_support"`
	SupportLevel              float64 `json:"support_level"`
	SupportLevelLabel         string  `json:"support_level_label"`
	HostedSDKFee              float64 `json:"hosted_sdk_fee"`
	MinimumCommitment         float64 `json:"minimum_commitment"`

	PortalSeats      int     `json:"portal_seats"`
	PortalPrice      float64 `json:"portal_price"`
	ChildAccounts    int     `json:"child_accounts"`
	ChildAccountsFee float64 `json:"child_accounts_fee"`

	PlatformDiscount       float64 `json:"platform_discount"`
	ImplementationDiscount float64 `json:"implementation_discount"`
	TotalDiscount          float64 `json:"total_discount"`

	UpfrontItems   []UpfrontItem `json:"upfront_items"`
	UpfrontPayment float64       `json:"upfront_payment"`

	Products                []ProductLine `json:"products"`
	TotalMonthlyProductCost float64       `json:"total_monthly_product_cost"`
	TotalAnnualProductCost  float64       `json:"total_annual_product_cost"`
}

// SupportLevelLabel describes a support tier amount. Zero is the included
// Basic tier; anything above is the paid Enhanced tier.
func SupportLevelLabel(amount float64) string {
	if amount <= 0 {
		return "Basic (Access + Ticketing)"
	}
	return "Enhanced (Allocated CSM + TechOps)"
}

// BuildQuoteData assembles the complete quote record from a deal snapshot.
// The upfront payment total is computed as the exact sum of the itemized
// lines so the table and its total can never drift apart.
func BuildQuoteData(in QuoteInputs, cfg PricingConfig) (QuoteData, error) {
	in = clampInputs(in)

	fees, err := resolveFees(in, cfg)
	if err != nil {
		return QuoteData{}, err
	}

	lines, err := ResolveProducts(in.Products, cfg, in.DisplayCurrency)
	if err != nil {
		return QuoteData{}, err
	}

	var monthlyProducts float64
	for _, line := range lines {
		monthlyProducts += line.MonthlyCostConverted
	}

	// Only positive differences surface as discounts; an increased fee is
	// not a negative discount.
	platformDiscount := fees.OriginalPlatformFee - fees.PlatformFee
	if platformDiscount < 0 {
		platformDiscount = 0
	}
	implementationDiscount := fees.OriginalImplementationFee - fees.ImplementationFee
	if implementationDiscount < 0 {
		implementationDiscount = 0
	}

	items := []UpfrontItem{
		{
			Label:     "Annual " + in.CustomerPlan + " package",
			ListPrice: fees.OriginalPlatformFee,
			Discount:  platformDiscount,
			Total:     fees.PlatformFee,
		},
		{
			Label:     "Case Manager Portal (seats)",
			ListPrice: fees.PortalPrice,
			Qty:       float64(in.PortalSeats),
			Total:     fees.PortalPrice,
		},
		{
			Label:     "Child accounts",
			ListPrice: fees.ChildAccountRate,
			Qty:       float64(in.ChildAccounts),
			Total:     fees.ChildAccountsFee,
		},
		{
			Label:     "Support level: " + SupportLevelLabel(fees.SupportLevel),
			ListPrice: fees.SupportLevel,
			Total:     fees.SupportLevel,
		},
		{
			Label:     "Additional implementation support",
			ListPrice: fees.ImplementationSupport,
			Total:     fees.ImplementationSupport,
		},
		{
			Label:     "Hosted SDK",
			ListPrice: fees.HostedSDK,
			Total:     fees.HostedSDK,
		},
		{
			Label:     "Implementation fee (one-off upfront standard package)",
			ListPrice: fees.OriginalImplementationFee,
			Discount:  implementationDiscount,
			Total:     fees.ImplementationFee,
		},
		{
			Label:     "Minimum commitment fees",
			ListPrice: fees.MinimumCommitment,
			Qty:       1,
			Total:     fees.MinimumCommitment,
		},
	}

	var upfront float64
	for _, item := range items {
		upfront += item.Total
	}

	return QuoteData{
		SchemaVersion: QuoteDataVersion,

		CustomerName:       in.CustomerName,
		PreparedBy:         in.PreparedBy,
		StartDate:          in.StartDate,
		CustomerPlan:       in.CustomerPlan,
		ContractTermMonths: in.ContractTermMonths,
		PaymentFrequency:   in.PaymentFrequency,
		AutoRenew:          in.AutoRenew,
		DisplayCurrency:    in.DisplayCurrency,

		PlatformFee:               fees.PlatformFee,
		OriginalPlatformFee:       fees.OriginalPlatformFee,
		ImplementationFee:         fees.ImplementationFee,
		OriginalImplementationFee: fees.OriginalImplementationFee,
		ImplementationSupport:     fees.ImplementationSupport,
		SupportLevel:              fees.SupportLevel,
		SupportLevelLabel:         SupportLevelLabel(fees.SupportLevel),
		HostedSDKFee:              fees.HostedSDK,
		MinimumCommitment:         fees.MinimumCommitment,

		PortalSeats:      in.PortalSeats,
		PortalPrice:      fees.PortalPrice,
		ChildAccounts:    in.ChildAccounts,
		ChildAccountsFee: fees.ChildAccountsFee,

		PlatformDiscount:       platformDiscount,
		ImplementationDiscount: implementationDiscount,
		TotalDiscount:          platformDiscount + implementationDiscount,

		UpfrontItems:   items,
		UpfrontPayment: upfront,

		Products:                lines,
		TotalMonthlyProductCost: monthlyProducts,
		TotalAnnualProductCost:  monthlyProducts * 12,
	}, nil
}
