package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one billable row of an estimate.
type LineItem struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
}

// Amount returns quantity × rate.
func (li LineItem) Amount() float64 {
	return li.amount().InexactFloat64()
}

func (li LineItem) amount() decimal.Decimal {
	return decimal.NewFromFloat(li.Quantity).Mul(decimal.NewFromFloat(li.Rate))
}

// Total sums the amounts of items. An empty list totals 0.
func Total(items []LineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.amount())
	}
	return sum.InexactFloat64()
}

// ItemsFromForm zips the parallel label/quantity/rate arrays posted by the
// estimate form. Missing quantity or rate cells read as 0.
func ItemsFromForm(labels, quantities, rates []string) []LineItem {
	n := len(labels)
	if len(quantities) > n {
		n = len(quantities)
	}
	if len(rates) > n {
		n = len(rates)
	}

	items := make([]LineItem, 0, n)
	for i := 0; i < n; i++ {
		var it LineItem
		if i < len(labels) {
			it.Label = strings.TrimSpace(labels[i])
		}
		if i < len(quantities) {
			it.Quantity = ParseAmount(quantities[i])
		}
		if i < len(rates) {
			it.Rate = ParseAmount(rates[i])
		}
		items = append(items, it)
	}
	return items
}
