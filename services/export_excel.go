package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel workbook for a quote: a "Quote" sheet with
// the proposal details and the itemized upfront payment table, and a "Usage"
// sheet with the per-product breakdown when products are selected. Returns
// the file contents as a byte slice.
func GenerateExcel(data QuoteData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const quoteSheet = "Quote"
	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#2F5597"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Quote sheet ─────────────────────────────────────────────────────

	widths := []float64{50, 16, 8, 14, 16}
	cols := []string{"A", "B", "C", "D", "E"}
	for i, c := range cols {
		if err := f.SetColWidth(quoteSheet, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	display := data.DisplayCurrency

	if err := f.MergeCell(quoteSheet, "A1", "E1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	customer := data.CustomerName
	if customer == "" {
		customer = "Customer Name"
	}
	f.SetCellValue(quoteSheet, "A1", sanitizeExcelCell("Quote for "+customer))
	f.SetCellStyle(quoteSheet, "A1", "E1", titleStyle)

	details := [][2]string{
		{"Prepared By", data.PreparedBy},
		{"Start Date", data.StartDate},
		{"Customer Plan", data.CustomerPlan},
		{"Contract Term", fmt.Sprintf("%d months", data.ContractTermMonths)},
		{"Payment Frequency", data.PaymentFrequency},
		{"Auto-Renew", data.AutoRenew},
		{"Display Currency", display},
	}
	rowNum := 3
	for _, d := range details {
		f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", rowNum), d[0])
		f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), labelStyle)
		f.SetCellValue(quoteSheet, fmt.Sprintf("B%d", rowNum), sanitizeExcelCell(d[1]))
		rowNum++
	}

	rowNum++
	headers := []string{"Item", "Price", "Qty", "Discount", "Total Cost"}
	for i, h := range headers {
		f.SetCellValue(quoteSheet, fmt.Sprintf("%s%d", cols[i], rowNum), h)
	}
	f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("E%d", rowNum), headerStyle)
	rowNum++

	for _, item := range data.UpfrontItems {
		f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", rowNum), sanitizeExcelCell(item.Label))
		f.SetCellValue(quoteSheet, fmt.Sprintf("B%d", rowNum), moneyOrDash(item.ListPrice, display))
		f.SetCellValue(quoteSheet, fmt.Sprintf("C%d", rowNum), qtyOrDash(item.Qty))
		f.SetCellValue(quoteSheet, fmt.Sprintf("D%d", rowNum), moneyOrDash(item.Discount, display))
		f.SetCellValue(quoteSheet, fmt.Sprintf("E%d", rowNum), moneyOrDash(item.Total, display))
		f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("E%d", rowNum), cellStyle)
		rowNum++
	}

	rowNum++
	if data.TotalDiscount > 0 {
		f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", rowNum), "Total Discount")
		f.SetCellValue(quoteSheet, fmt.Sprintf("E%d", rowNum), FormatMoney(data.TotalDiscount, display))
		f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("E%d", rowNum), totalStyle)
		rowNum++
	}
	f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", rowNum), "Upfront Payment Total")
	f.SetCellValue(quoteSheet, fmt.Sprintf("E%d", rowNum), FormatMoney(data.UpfrontPayment, display))
	f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("E%d", rowNum), totalStyle)
	rowNum += 2

	f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", rowNum), quoteValidityNote)

	// ── Usage sheet ─────────────────────────────────────────────────────

	if len(data.Products) > 0 {
		const usageSheet = "Usage"
		if _, err := f.NewSheet(usageSheet); err != nil {
			return nil, fmt.Errorf("create usage sheet: %w", err)
		}

		usageWidths := []float64{34, 10, 18, 18, 20, 18, 22}
		usageCols := []string{"A", "B", "C", "D", "E", "F", "G"}
		for i, c := range usageCols {
			if err := f.SetColWidth(usageSheet, c, c, usageWidths[i]); err != nil {
				return nil, fmt.Errorf("set col width %s: %w", c, err)
			}
		}

		if err := f.MergeCell(usageSheet, "A1", "G1"); err != nil {
			return nil, fmt.Errorf("merge usage title: %w", err)
		}
		f.SetCellValue(usageSheet, "A1", "Estimated Usage Report")
		f.SetCellStyle(usageSheet, "A1", "G1", titleStyle)

		usageHeaders := []string{
			"Product Name", "Currency", "Recommended Price", "Discounted Price",
			fmt.Sprintf("Converted Price (%s)", display), "Est. Annual Volume",
			fmt.Sprintf("Est. Monthly Cost (%s)", display),
		}
		for i, h := range usageHeaders {
			f.SetCellValue(usageSheet, fmt.Sprintf("%s3", usageCols[i]), h)
		}
		f.SetCellStyle(usageSheet, "A3", "G3", headerStyle)

		usageRow := 4
		for _, p := range data.Products {
			f.SetCellValue(usageSheet, fmt.Sprintf("A%d", usageRow), sanitizeExcelCell(p.Name))
			f.SetCellValue(usageSheet, fmt.Sprintf("B%d", usageRow), p.Currency)
			f.SetCellValue(usageSheet, fmt.Sprintf("C%d", usageRow), FormatMoney(p.ListPrice, p.Currency))
			f.SetCellValue(usageSheet, fmt.Sprintf("D%d", usageRow), FormatMoney(p.EffectivePrice, p.Currency))
			f.SetCellValue(usageSheet, fmt.Sprintf("E%d", usageRow), FormatMoney(p.ConvertedPrice, display))
			f.SetCellValue(usageSheet, fmt.Sprintf("F%d", usageRow), p.Volume)
			f.SetCellValue(usageSheet, fmt.Sprintf("G%d", usageRow), FormatMoney(p.MonthlyCostConverted, display))
			f.SetCellStyle(usageSheet, fmt.Sprintf("A%d", usageRow), fmt.Sprintf("G%d", usageRow), cellStyle)
			usageRow++
		}

		usageRow++
		f.SetCellValue(usageSheet, fmt.Sprintf("A%d", usageRow), "TOTAL ESTIMATED ANNUAL USAGE SPEND")
		f.SetCellValue(usageSheet, fmt.Sprintf("G%d", usageRow), FormatMoney(data.TotalAnnualProductCost, display))
		f.SetCellStyle(usageSheet, fmt.Sprintf("A%d", usageRow), fmt.Sprintf("G%d", usageRow), totalStyle)
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
