// Package quotepdf renders the customer-facing quote document.
package quotepdf

import (
	"fmt"
	"strconv"
	"time"

	"painterflow/internal/models"
	"painterflow/internal/pricing"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Data is everything printed on a quote.
type Data struct {
	Quote        *models.Quote
	Items        []models.EstimateItem
	CustomerName string
	Business     string
}

var (
	headerBg = &props.Color{Red: 235, Green: 235, Blue: 235}
	right    = props.Text{Align: align.Right, Top: 1.5}
	left     = props.Text{Align: align.Left, Top: 1.5}
	bold     = props.Text{Align: align.Left, Top: 1.5, Style: fontstyle.Bold}
	boldR    = props.Text{Align: align.Right, Top: 1.5, Style: fontstyle.Bold}
)

// Filename is the download name of a quote PDF.
func Filename(q *models.Quote) string {
	return "quote-" + strconv.Itoa(q.QuoteNumber) + ".pdf"
}

// Render builds the PDF bytes of a quote.
func Render(d Data) ([]byte, error) {
	if d.Quote == nil {
		return nil, fmt.Errorf("quotepdf: nil quote")
	}
	q := d.Quote

	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	m := maroto.New(cfg)

	business := d.Business
	if business == "" {
		business = "Painterflow"
	}
	m.AddRows(
		text.NewRow(12, business, props.Text{Size: 18, Style: fontstyle.Bold}),
		row.New(8).Add(
			text.NewCol(6, "Quote #"+strconv.Itoa(q.QuoteNumber), props.Text{Size: 12, Style: fontstyle.Bold}),
			text.NewCol(6, "Status: "+q.Status.Label(), props.Text{Size: 10, Align: align.Right}),
		),
		row.New(6).Add(
			text.NewCol(6, "Date: "+q.CreatedAt.Format("January 2, 2006"), left),
			text.NewCol(6, "Valid until: "+validUntil(q), right),
		),
		row.New(6).Add(text.NewCol(12, "Prepared for: "+customer(d.CustomerName), left)),
		line.NewRow(6),
	)

	m.AddRows(itemRows(d.Items)...)
	m.AddRows(line.NewRow(6))
	m.AddRows(
		totalRow("Subtotal", pricing.FormatMoney(q.Subtotal), false),
		totalRow("Tax ("+strconv.FormatFloat(q.TaxRate, 'f', -1, 64)+"%)", pricing.FormatMoney(q.TaxAmount), false),
		totalRow("Total", pricing.FormatMoney(q.Total), true),
	)

	if s := models.Deref(q.Notes); s != "" {
		m.AddRows(section("Notes", s)...)
	}
	if s := models.Deref(q.Terms); s != "" {
		m.AddRows(section("Terms", s)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func itemRows(items []models.EstimateItem) []core.Row {
	rows := []core.Row{
		row.New(8).WithStyle(&props.Cell{BackgroundColor: headerBg}).Add(
			text.NewCol(6, "Description", bold),
			text.NewCol(2, "Qty", boldR),
			text.NewCol(2, "Rate", boldR),
			text.NewCol(2, "Amount", boldR),
		),
	}
	if len(items) == 0 {
		return append(rows, text.NewRow(8, "No line items", props.Text{Top: 1.5, Style: fontstyle.Italic}))
	}
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			text.NewCol(6, it.Label, left),
			text.NewCol(2, strconv.FormatFloat(it.Quantity, 'f', -1, 64), right),
			text.NewCol(2, pricing.FormatMoney(it.Rate), right),
			text.NewCol(2, pricing.FormatMoney(it.Amount), right),
		))
	}
	return rows
}

func totalRow(label, value string, strong bool) core.Row {
	l, v := right, right
	if strong {
		l, v = boldR, boldR
	}
	return row.New(7).Add(
		col.New(6),
		text.NewCol(4, label, l),
		text.NewCol(2, value, v),
	)
}

func section(title, body string) []core.Row {
	return []core.Row{
		text.NewRow(10, title, props.Text{Top: 4, Style: fontstyle.Bold}),
		text.NewRow(12, body, props.Text{Top: 1, Size: 9}),
	}
}

func validUntil(q *models.Quote) string {
	if q.ValidUntil == nil {
		return "-"
	}
	return time.Time(*q.ValidUntil).Format("January 2, 2006")
}

func customer(name string) string {
	if name == "" {
		return "No customer"
	}
	return name
}
