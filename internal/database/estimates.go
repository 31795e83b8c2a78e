package database

import (
	"context"
	"fmt"

	"painterflow/internal/models"
	"painterflow/internal/pricing"

	"gorm.io/gorm"
)

// ListEstimates returns the account's estimates, newest first, without items.
func (s *Store) ListEstimates(ctx context.Context, userID string) ([]models.Estimate, error) {
	db := s.conn(ctx)
	var estimates []models.Estimate
	if err := owned(db, userID).
		Order("created_at desc").Order("id desc").
		Find(&estimates).Error; err != nil {
		return nil, mapError(err)
	}

	linked := make([]models.CustomerLinked, len(estimates))
	for i := range estimates {
		linked[i] = &estimates[i]
	}
	return estimates, attachCustomers(db, userID, linked)
}

// GetEstimate loads an estimate with its items in entry order.
func (s *Store) GetEstimate(ctx context.Context, userID, id string) (*models.Estimate, error) {
	db := s.conn(ctx)
	var e models.Estimate
	if err := owned(db, userID).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc")
		}).
		Where("id = ?", id).
		First(&e).Error; err != nil {
		return nil, mapError(err)
	}
	if err := attachCustomers(db, userID, []models.CustomerLinked{&e}); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEstimate stores an estimate and its items in one transaction. The
// total and every item amount are computed here from quantity and rate.
func (s *Store) CreateEstimate(ctx context.Context, userID, customerID string, items []pricing.LineItem) (*models.Estimate, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomer
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	est := &models.Estimate{
		Base:       models.Base{UserID: userID},
		CustomerID: &customerID,
		Total:      pricing.Total(items),
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCustomer(tx, userID, est.CustomerID); err != nil {
			return err
		}
		if err := tx.Create(est).Error; err != nil {
			return fmt.Errorf("insert estimate: %w", mapError(err))
		}

		rows := make([]models.EstimateItem, len(items))
		for i, it := range items {
			rows[i] = models.EstimateItem{
				EstimateID: est.ID,
				Label:      it.Label,
				Quantity:   it.Quantity,
				Rate:       it.Rate,
				Amount:     it.Amount(),
				Position:   i,
			}
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert estimate items: %w", mapError(err))
		}
		est.Items = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return est, nil
}

// DeleteEstimate removes an estimate together with its items.
func (s *Store) DeleteEstimate(ctx context.Context, userID, id string) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := owned(tx.Model(&models.Estimate{}), userID).Where("id = ?", id).Count(&n).Error; err != nil {
			return mapError(err)
		}
		if n == 0 {
			return ErrNotFound
		}
		if err := tx.Where("estimate_id = ?", id).Delete(&models.EstimateItem{}).Error; err != nil {
			return fmt.Errorf("delete estimate items: %w", err)
		}
		if err := owned(tx, userID).Where("id = ?", id).Delete(&models.Estimate{}).Error; err != nil {
			return fmt.Errorf("delete estimate: %w", err)
		}
		return nil
	})
}
