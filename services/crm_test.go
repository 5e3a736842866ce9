package services

import "testing"

func TestBuildCRMPayload(t *testing.T) {
	data, err := BuildQuoteData(fullDeal(), testConfig())
	if err != nil {
		t.Fatalf("BuildQuoteData() error = %v", err)
	}
	metrics, err := CalculateMetrics(fullDeal(), testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() error = %v", err)
	}

	got := BuildCRMPayload(data, metrics)

	if got.DealName != "Acme Corp" {
		t.Errorf("DealName = %q, want Acme Corp", got.DealName)
	}
	if got.Properties["customer_plan"] != "Basic" {
		t.Errorf("customer_plan = %q, want Basic", got.Properties["customer_plan"])
	}
	if got.Properties["contract_term_months"] != "24" {
		t.Errorf("contract_term_months = %q, want 24", got.Properties["contract_term_months"])
	}
	if got.Properties["upfront_payment"] != "44549.00" {
		t.Errorf("upfront_payment = %q, want 44549.00", got.Properties["upfront_payment"])
	}
	if got.Properties["assessment"] == "" {
		t.Error("assessment property missing")
	}
	// No products selected, so no usage properties.
	if _, ok := got.Properties["product_count"]; ok {
		t.Error("product_count set for a deal without products")
	}
}

func TestBuildCRMPayload_WithProducts(t *testing.T) {
	in := fullDeal()
	in.Products = []ProductSelection{{Key: "kyc_individual", Volume: 12000}}

	data, err := BuildQuoteData(in, testConfig())
	if err != nil {
		t.Fatalf("BuildQuoteData() error = %v", err)
	}
	metrics, err := CalculateMetrics(in, testConfig())
	if err != nil {
		t.Fatalf("CalculateMetrics() error = %v", err)
	}

	got := BuildCRMPayload(data, metrics)
	if got.Properties["product_count"] != "1" {
		t.Errorf("product_count = %q, want 1", got.Properties["product_count"])
	}
	if got.Properties["annual_usage_spend"] != "10200.00" {
		t.Errorf("annual_usage_spend = %q, want 10200.00", got.Properties["annual_usage_spend"])
	}
}

func TestBuildCRMPayload_UnnamedDeal(t *testing.T) {
	got := BuildCRMPayload(QuoteData{}, Metrics{})
	if got.DealName != "Unnamed Deal" {
		t.Errorf("DealName = %q, want Unnamed Deal", got.DealName)
	}
}
