package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateUsagePDF creates the estimated usage report PDF: the per-product
// pricing breakdown plus the total estimated annual usage spend. Landscape,
// since the product table carries both native and converted prices.
func GenerateUsagePDF(data QuoteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addUsageHeader(m, data)
	addUsageTable(m, data)
	addUsageTotal(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addUsageHeader(m core.Maroto, data QuoteData) {
	customer := data.CustomerName
	if customer == "" {
		customer = "Customer Name"
	}

	headerBg := &props.Color{Red: 47, Green: 85, Blue: 151}
	headerCell := props.Cell{BackgroundColor: headerBg}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New("Estimated Usage Report", props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: white,
				}),
			).WithStyle(&headerCell),
		),
	)
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(customer, props.Text{
					Size:  11,
					Align: align.Left,
					Color: white,
				}),
			).WithStyle(&headerCell),
		),
	)
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New("PRODUCT SEARCHES (TRANSACTION PRODUCTS)", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

func addUsageTable(m core.Maroto, data QuoteData) {
	headerBg := &props.Color{Red: 47, Green: 85, Blue: 151}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	display := data.DisplayCurrency

	headers := []struct {
		label string
		width int
	}{
		{"Product Name", 2},
		{"Currency", 1},
		{"Recommended Price", 1},
		{"Discounted Price", 1},
		{fmt.Sprintf("Converted Price (%s)", display), 2},
		{"Est. Annual Volume", 2},
		{"Est. Monthly Cost", 1},
		{fmt.Sprintf("Est. Monthly Cost (%s)", display), 2},
	}

	headerCols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		headerCols = append(headerCols, col.New(h.width).Add(text.New(h.label, headerText)).WithStyle(&headerCell))
	}
	m.AddRows(row.New(8).Add(headerCols...))

	leftText := props.Text{Size: 7, Align: align.Left}
	centerText := props.Text{Size: 7, Align: align.Center}
	rightText := props.Text{Size: 7, Align: align.Right}

	for _, p := range data.Products {
		m.AddRows(
			row.New(6).Add(
				col.New(2).Add(text.New(p.Name, leftText)),
				col.New(1).Add(text.New(p.Currency, centerText)),
				col.New(1).Add(text.New(FormatMoney(p.ListPrice, p.Currency), rightText)),
				col.New(1).Add(text.New(FormatMoney(p.EffectivePrice, p.Currency), rightText)),
				col.New(2).Add(text.New(FormatMoney(p.ConvertedPrice, display), rightText)),
				col.New(2).Add(text.New(fmt.Sprintf("%.0f", p.Volume), rightText)),
				col.New(1).Add(text.New(FormatMoney(p.MonthlyCost, p.Currency), rightText)),
				col.New(2).Add(text.New(FormatMoney(p.MonthlyCostConverted, display), rightText)),
			),
		)
	}
}

func addUsageTotal(m core.Maroto, data QuoteData) {
	bold := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	boldRight := bold
	boldRight.Align = align.Right

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("TOTAL ESTIMATED ANNUAL USAGE SPEND", bold)),
			col.New(4).Add(text.New(FormatMoney(data.TotalAnnualProductCost, data.DisplayCurrency), boldRight)),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(quoteValidityNote, props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
				}),
			),
		),
	)
}
