package quotepdf

import (
	"bytes"
	"testing"
	"time"

	"painterflow/internal/models"
	"painterflow/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestRender(t *testing.T) {
	valid := datatypes.Date(time.Date(2026, 11, 18, 0, 0, 0, 0, time.UTC))
	q := &models.Quote{
		Base:        models.Base{CreatedAt: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		QuoteNumber: 7,
		ValidUntil:  &valid,
		TaxRate:     8,
		Subtotal:    110,
		TaxAmount:   8.8,
		Total:       118.8,
		Terms:       models.NullString(pricing.DefaultTerms),
		Status:      models.QuoteDraft,
	}
	items := []models.EstimateItem{
		{Label: "Paint", Quantity: 2, Rate: 45, Amount: 90},
		{Label: "Primer", Quantity: 1, Rate: 20, Amount: 20},
	}

	b, err := Render(Data{Quote: q, Items: items, CustomerName: "Alice"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	empty, err := Render(Data{Quote: q})
	require.NoError(t, err)
	assert.NotEmpty(t, empty)

	assert.Equal(t, "quote-7.pdf", Filename(q))
}

func TestRenderNilQuote(t *testing.T) {
	_, err := Render(Data{})
	assert.Error(t, err)
}
