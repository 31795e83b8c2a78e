package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"painterflow/internal/models"
	"painterflow/internal/pricing"

	"gorm.io/gorm"
)

// QuoteInput is what the quote form submits.
type QuoteInput struct {
	EstimateID string
	ValidDays  int
	TaxRate    float64
	Notes      string
	Terms      string
}

const quoteNumberAttempts = 3

func (s *Store) ListQuotes(ctx context.Context, userID string) ([]models.Quote, error) {
	db := s.conn(ctx)
	var quotes []models.Quote
	if err := owned(db, userID).
		Order("created_at desc").Order("quote_number desc").
		Find(&quotes).Error; err != nil {
		return nil, mapError(err)
	}

	linked := make([]models.CustomerLinked, len(quotes))
	for i := range quotes {
		linked[i] = &quotes[i]
	}
	return quotes, attachCustomers(db, userID, linked)
}

func (s *Store) GetQuote(ctx context.Context, userID, id string) (*models.Quote, error) {
	db := s.conn(ctx)
	var q models.Quote
	if err := owned(db, userID).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, mapError(err)
	}
	if err := attachCustomers(db, userID, []models.CustomerLinked{&q}); err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuote freezes the chosen estimate's total into a new draft quote
// with the next quote number of the account.
func (s *Store) CreateQuote(ctx context.Context, userID string, in QuoteInput, now time.Time) (*models.Quote, error) {
	if !pricing.ValidDaysInRange(float64(in.ValidDays)) {
		return nil, ErrInvalidValidity
	}

	var (
		q   *models.Quote
		err error
	)
	for attempt := 0; attempt < quoteNumberAttempts; attempt++ {
		q, err = s.createQuote(ctx, userID, in, now)
		if !errors.Is(err, ErrDuplicate) {
			break
		}
	}
	return q, err
}

func (s *Store) createQuote(ctx context.Context, userID string, in QuoteInput, now time.Time) (*models.Quote, error) {
	var q *models.Quote
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var est models.Estimate
		if err := owned(tx, userID).Where("id = ?", in.EstimateID).First(&est).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidEstimate
			}
			return err
		}

		var last int
		if err := owned(tx.Model(&models.Quote{}), userID).
			Select("COALESCE(MAX(quote_number), 0)").
			Scan(&last).Error; err != nil {
			return fmt.Errorf("next quote number: %w", err)
		}

		terms := pricing.DeriveQuote(est.Total, in.TaxRate, in.ValidDays, now)
		validUntil := DateOnly(terms.ValidUntil)
		q = &models.Quote{
			Base:        models.Base{UserID: userID},
			QuoteNumber: last + 1,
			EstimateID:  &est.ID,
			CustomerID:  est.CustomerID,
			ValidUntil:  &validUntil,
			TaxRate:     terms.TaxRate,
			Subtotal:    terms.Subtotal,
			TaxAmount:   terms.TaxAmount,
			Total:       terms.Total,
			Notes:       models.NullString(in.Notes),
			Terms:       models.NullString(in.Terms),
			Status:      models.QuoteDraft,
		}
		return mapError(tx.Create(q).Error)
	})
	if err != nil {
		return nil, err
	}
	if err := attachCustomers(s.conn(ctx), userID, []models.CustomerLinked{q}); err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateQuoteStatus sets any of the four statuses regardless of the current one.
func (s *Store) UpdateQuoteStatus(ctx context.Context, userID, id string, status models.QuoteStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	res := owned(s.conn(ctx).Model(&models.Quote{}), userID).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteQuote(ctx context.Context, userID, id string) error {
	res := owned(s.conn(ctx), userID).Where("id = ?", id).Delete(&models.Quote{})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// QuoteItems re-reads the line items of the estimate a quote came from. A
// quote whose estimate is gone simply has no items to show.
func (s *Store) QuoteItems(ctx context.Context, userID string, q *models.Quote) ([]models.EstimateItem, error) {
	items := []models.EstimateItem{}
	if q.EstimateID == nil {
		return items, nil
	}
	err := s.conn(ctx).
		Where("estimate_id = ?", *q.EstimateID).
		Where("estimate_id IN (?)", owned(s.conn(ctx).Model(&models.Estimate{}), userID).Select("id")).
		Order("position asc").
		Find(&items).Error
	return items, mapError(err)
}
