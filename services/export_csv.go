package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// GenerateCSV creates the flat CSV export of a quote: proposal details,
// the itemized upfront payment table with its total, and the per-product
// usage breakdown. Returns the file contents as a byte slice.
func GenerateCSV(data QuoteData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	display := data.DisplayCurrency

	records := [][]string{
		{"Deal Return Calculator Export"},
		{},
		{"PROPOSAL DETAILS"},
		{"Customer Name", data.CustomerName},
		{"Prepared By", data.PreparedBy},
		{"Start Date", data.StartDate},
		{"Customer Plan", data.CustomerPlan},
		{"Contract Term", fmt.Sprintf("%d months", data.ContractTermMonths)},
		{"Payment Frequency", data.PaymentFrequency},
		{"Auto-Renew", data.AutoRenew},
		{"Display Currency", display},
		{},
		{"UPFRONT PAYMENT"},
		{"Item", "Price", "Qty", "Discount", "Total Cost"},
	}

	for _, item := range data.UpfrontItems {
		records = append(records, []string{
			item.Label,
			moneyOrDash(item.ListPrice, display),
			qtyOrDash(item.Qty),
			moneyOrDash(item.Discount, display),
			moneyOrDash(item.Total, display),
		})
	}

	if data.TotalDiscount > 0 {
		records = append(records,
			[]string{},
			[]string{"Total Discount", "", "", "", FormatMoney(data.TotalDiscount, display)},
		)
	}

	records = append(records,
		[]string{},
		[]string{"UPFRONT PAYMENT TOTAL", FormatMoney(data.UpfrontPayment, display)},
	)

	if len(data.Products) > 0 {
		records = append(records,
			[]string{},
			[]string{"USAGE REPORT"},
			[]string{
				"Product Name", "Currency", "Recommended Price", "Discounted Price",
				fmt.Sprintf("Converted Price (%s)", display), "Est. Annual Volume",
				fmt.Sprintf("Est. Monthly Cost (%s)", display),
			},
		)
		for _, p := range data.Products {
			records = append(records, []string{
				p.Name,
				p.Currency,
				FormatMoney(p.ListPrice, p.Currency),
				FormatMoney(p.EffectivePrice, p.Currency),
				FormatMoney(p.ConvertedPrice, display),
				fmt.Sprintf("%.0f", p.Volume),
				FormatMoney(p.MonthlyCostConverted, display),
			})
		}
		records = append(records,
			[]string{"TOTAL ESTIMATED ANNUAL USAGE SPEND", FormatMoney(data.TotalAnnualProductCost, display)},
		)
	}

	records = append(records,
		[]string{},
		[]string{quoteValidityNote},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
