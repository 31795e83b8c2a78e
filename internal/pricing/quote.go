package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultValidDays = 30
	MaxValidDays     = 3650
	DefaultTaxRate   = 0
	DefaultTerms     = "Payment due within 30 days of project completion. 50% deposit required to begin work."
)

// QuoteTerms are the numbers frozen onto a quote when it is created. They are
// never recomputed from the source estimate afterwards.
type QuoteTerms struct {
	Subtotal   float64
	TaxRate    float64
	TaxAmount  float64
	Total      float64
	ValidUntil time.Time
}

// ValidDaysInRange reports whether n is a whole number of days between 1 and
// MaxValidDays.
func ValidDaysInRange(n float64) bool {
	return n >= 1 && n <= MaxValidDays && n == math.Trunc(n)
}

// DeriveQuote applies a tax rate (percent) to subtotal and sets the validity
// date validDays calendar days after now. Callers check validDays with
// ValidDaysInRange first.
func DeriveQuote(subtotal, taxRate float64, validDays int, now time.Time) QuoteTerms {
	sub := decimal.NewFromFloat(subtotal)
	tax := sub.Mul(decimal.NewFromFloat(taxRate)).Div(decimal.NewFromInt(100))

	y, m, d := now.AddDate(0, 0, validDays).Date()
	return QuoteTerms{
		Subtotal:   subtotal,
		TaxRate:    taxRate,
		TaxAmount:  tax.InexactFloat64(),
		Total:      sub.Add(tax).InexactFloat64(),
		ValidUntil: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}
