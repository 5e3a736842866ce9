package services

import (
	"bytes"
	"math"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

// testConfig returns a pricing config mirroring the seeded defaults, for use
// by the pure engine tests.
func testConfig() PricingConfig {
	return PricingConfig{
		Rates: Rates{
			"AUD": 1.0,
			"USD": 1.52,
			"GBP": 1.92,
			"EUR": 1.65,
		},
		Catalog: Catalog{
			"kyc_individual":        {Key: "kyc_individual", Name: "KYC Individual Verification", Currency: "AUD", ListPrice: 0.85},
			"document_verification": {Key: "document_verification", Name: "Document Verification", Currency: "USD", ListPrice: 1.20},
			"aml_screening":         {Key: "aml_screening", Name: "AML Watchlist Screening", Currency: "GBP", ListPrice: 0.40},
		},
		Plans: PlanTable{
			"Basic":      {PlatformFee: 3000, ImplementationFee: 2499},
			"Pro":        {PlatformFee: 12000, ImplementationFee: 7499},
			"Enterprise": {PlatformFee: 30000, ImplementationFee: 14999},
		},
		PortalTiers: []PortalTier{
			{UpToSeats: 5, PerSeat: 250},
			{UpToSeats: 20, PerSeat: 200},
			{UpToSeats: 50, PerSeat: 150},
		},
		BaseCurrency: "AUD",
	}
}
