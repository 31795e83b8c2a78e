package models

import "gorm.io/datatypes"

type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
)

var QuoteStatuses = []QuoteStatus{QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected:
		return true
	}
	return false
}

func (s QuoteStatus) Label() string {
	switch s {
	case QuoteDraft:
		return "Draft"
	case QuoteSent:
		return "Sent"
	case QuoteAccepted:
		return "Accepted"
	case QuoteRejected:
		return "Rejected"
	}
	return string(s)
}

// Quote is a customer-facing snapshot of an estimate. Subtotal, TaxAmount and
// Total are written once at creation.
type Quote struct {
	Base
	QuoteNumber int             `gorm:"not null;index" json:"quote_number"`
	EstimateID  *string         `gorm:"type:varchar(36);index" json:"estimate_id"`
	CustomerID  *string         `gorm:"type:varchar(36);index" json:"customer_id"`
	ValidUntil  *datatypes.Date `json:"valid_until"`
	TaxRate     float64         `gorm:"not null;default:0" json:"tax_rate"`
	Subtotal    float64         `gorm:"not null;default:0" json:"subtotal"`
	TaxAmount   float64         `gorm:"not null;default:0" json:"tax_amount"`
	Total       float64         `gorm:"not null;default:0" json:"total"`
	Notes       *string         `gorm:"type:text" json:"notes"`
	Terms       *string         `gorm:"type:text" json:"terms"`
	Status      QuoteStatus     `gorm:"type:varchar(20);not null" json:"status"`

	Customer *CustomerRef `gorm:"-" json:"customer"`
}

func (q *Quote) CustomerKey() *string { return q.CustomerID }
func (q *Quote) SetCustomer(ref *CustomerRef) { q.Customer = ref }
