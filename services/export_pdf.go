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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const quoteValidityNote = "Quote valid for 30 days upon receipt"

// GenerateQuotePDF creates the customer-facing quote PDF from the assembled
// quote data. preparedOn is the human-readable generation date shown in the
// subtitle. It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data QuoteData, preparedOn string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data, preparedOn)
	addProposalTable(m, data)
	addUpfrontTable(m, data)
	addQuoteTotals(m, data)
	addValidityFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title and prepared-by line.
func addQuoteHeader(m core.Maroto, data QuoteData, preparedOn string) {
	customer := data.CustomerName
	if customer == "" {
		customer = "Customer Name"
	}
	preparedBy := data.PreparedBy
	if preparedBy == "" {
		preparedBy = "Sales Representative"
	}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Quote for %s", customer), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Quote prepared by %s on %s", preparedBy, preparedOn), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

// addProposalTable adds the proposal summary table (start date, term,
// payment, invoicing, auto-renew).
func addProposalTable(m core.Maroto, data QuoteData) {
	headerBg := &props.Color{Red: 68, Green: 114, Blue: 196}
	bodyBg := &props.Color{Red: 180, Green: 199, Blue: 231}

	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	bodyText := props.Text{
		Size:  9,
		Align: align.Left,
	}
	headerCell := props.Cell{BackgroundColor: headerBg}
	bodyCell := props.Cell{BackgroundColor: bodyBg}

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("Start date", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Term", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Payment", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Invoicing", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Auto-renew", headerText)).WithStyle(&headerCell),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New(data.StartDate, bodyText)).WithStyle(&bodyCell),
			col.New(2).Add(text.New(fmt.Sprintf("%d months", data.ContractTermMonths), bodyText)).WithStyle(&bodyCell),
			col.New(2).Add(text.New(data.PaymentFrequency, bodyText)).WithStyle(&bodyCell),
			col.New(4).Add(text.New("In arrears, payment due within 14 days", bodyText)).WithStyle(&bodyCell),
			col.New(2).Add(text.New(data.AutoRenew, bodyText)).WithStyle(&bodyCell),
		),
	)
	m.AddRows(row.New(6))
}

// addUpfrontTable adds the itemized upfront payment table.
func addUpfrontTable(m core.Maroto, data QuoteData) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Upfront payment:", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	headerBg := &props.Color{Red: 47, Green: 85, Blue: 151}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(7).Add(
			col.New(5).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Price", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Discount", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total Cost", headerText)).WithStyle(&headerCell),
		),
	)

	leftText := props.Text{Size: 8, Align: align.Left}
	rightText := props.Text{Size: 8, Align: align.Right}

	for _, item := range data.UpfrontItems {
		m.AddRows(
			row.New(6).Add(
				col.New(5).Add(text.New(item.Label, leftText)),
				col.New(2).Add(text.New(moneyOrDash(item.ListPrice, data.DisplayCurrency), rightText)),
				col.New(1).Add(text.New(qtyOrDash(item.Qty), rightText)),
				col.New(2).Add(text.New(moneyOrDash(item.Discount, data.DisplayCurrency), rightText)),
				col.New(2).Add(text.New(moneyOrDash(item.Total, data.DisplayCurrency), rightText)),
			),
		)
	}
}

// addQuoteTotals adds the total-discount band (when any discount applies)
// and the upfront payment total.
func addQuoteTotals(m core.Maroto, data QuoteData) {
	boldRight := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	boldLeft := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}

	if data.TotalDiscount > 0 {
		discountBg := &props.Color{Red: 255, Green: 243, Blue: 205}
		discountCell := props.Cell{BackgroundColor: discountBg}
		m.AddRows(
			row.New(7).Add(
				col.New(10).Add(text.New("Total Discount", boldRight)).WithStyle(&discountCell),
				col.New(2).Add(text.New(FormatMoney(data.TotalDiscount, data.DisplayCurrency), boldRight)).WithStyle(&discountCell),
			),
		)
	}

	m.AddRows(row.New(3))
	m.AddRows(
		row.New(7).Add(
			col.New(5).Add(text.New("Upfront payment", boldLeft)),
			col.New(5).Add(text.New("Total Price", boldRight)),
			col.New(2).Add(text.New(FormatMoney(data.UpfrontPayment, data.DisplayCurrency), boldRight)),
		),
	)
}

// addValidityFooter adds the quote validity note.
func addValidityFooter(m core.Maroto) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(quoteValidityNote, props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
		),
	)
}

// moneyOrDash formats a monetary cell, rendering zero as a dash.
func moneyOrDash(amount float64, currency string) string {
	if amount == 0 {
		return "-"
	}
	return FormatMoney(amount, currency)
}

// qtyOrDash formats a quantity cell, rendering zero as a dash.
func qtyOrDash(qty float64) string {
	if qty == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", qty)
}
