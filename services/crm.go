package services

import "fmt"

// CRMPayload is the integration payload pushed to the CRM when a quote is
// sent. Properties follow the flat string-map convention of CRM deal APIs.
type CRMPayload struct {
	DealName   string            `json:"deal_name"`
	Properties map[string]string `json:"properties"`
}

// BuildCRMPayload flattens a quote and its metrics into the CRM deal
// property map. Monetary values are emitted as plain decimal strings in the
// display currency; formatting is the CRM's concern.
func BuildCRMPayload(data QuoteData, metrics Metrics) CRMPayload {
	dealName := data.CustomerName
	if dealName == "" {
		dealName = "Unnamed Deal"
	}

	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	props := map[string]string{
		"customer_name":        data.CustomerName,
		"prepared_by":          data.PreparedBy,
		"start_date":           data.StartDate,
		"customer_plan":        data.CustomerPlan,
		"contract_term_months": fmt.Sprintf("%d", data.ContractTermMonths),
		"payment_frequency":    data.PaymentFrequency,
		"auto_renew":           data.AutoRenew,
		"display_currency":     data.DisplayCurrency,
		"platform_fee":         money(data.PlatformFee),
		"implementation_fee":   money(data.ImplementationFee),
		"minimum_commitment":   money(data.MinimumCommitment),
		"upfront_payment":      money(data.UpfrontPayment),
		"total_discount":       money(data.TotalDiscount),
		"mrr":                  money(metrics.MRR),
		"arr":                  money(metrics.ARR),
		"committed_arr":        money(metrics.CommittedARR),
		"tcv":                  money(metrics.TCV),
		"gross_margin":         fmt.Sprintf("%.1f", metrics.GrossMargin),
		"ltv_cac":              fmt.Sprintf("%.2f", metrics.LTVCAC),
		"payback_months":       fmt.Sprintf("%.1f", metrics.PaybackMonths),
		"assessment":           metrics.Assessment,
	}

	if len(data.Products) > 0 {
		props["product_count"] = fmt.Sprintf("%d", len(data.Products))
		props["annual_usage_spend"] = money(data.TotalAnnualProductCost)
	}

	return CRMPayload{DealName: dealName, Properties: props}
}
