package database

import (
	"context"
	"time"

	"painterflow/internal/models"

	"gorm.io/gorm"
)

// ListEvents returns appointments starting within [from, to], earliest first.
func (s *Store) ListEvents(ctx context.Context, userID string, from, to time.Time) ([]models.CalendarEvent, error) {
	db := s.conn(ctx)
	var events []models.CalendarEvent
	if err := owned(db, userID).
		Where("start_at >= ? AND start_at <= ?", from.UTC(), to.UTC()).
		Order("start_at asc").Order("id asc").
		Find(&events).Error; err != nil {
		return nil, mapError(err)
	}

	linked := make([]models.CustomerLinked, len(events))
	for i := range events {
		linked[i] = &events[i]
	}
	return events, attachCustomers(db, userID, linked)
}

func (s *Store) GetEvent(ctx context.Context, userID, id string) (*models.CalendarEvent, error) {
	db := s.conn(ctx)
	var e models.CalendarEvent
	if err := owned(db, userID).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, mapError(err)
	}
	if err := attachCustomers(db, userID, []models.CustomerLinked{&e}); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateEvent(ctx context.Context, userID string, e *models.CalendarEvent) error {
	if e.EndAt.Before(e.StartAt) {
		return ErrInvalidTimeRange
	}
	e.UserID = userID
	e.StartAt = e.StartAt.UTC()
	e.EndAt = e.EndAt.UTC()

	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCustomer(tx, userID, e.CustomerID); err != nil {
			return err
		}
		return mapError(tx.Create(e).Error)
	})
}

func (s *Store) DeleteEvent(ctx context.Context, userID, id string) error {
	res := owned(s.conn(ctx), userID).Where("id = ?", id).Delete(&models.CalendarEvent{})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
