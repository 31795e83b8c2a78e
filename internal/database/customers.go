package database

import (
	"context"
	"fmt"

	"painterflow/internal/models"

	"gorm.io/gorm"
)

// ListCustomers returns the account's customers, newest first.
func (s *Store) ListCustomers(ctx context.Context, userID string) ([]models.Customer, error) {
	var customers []models.Customer
	err := owned(s.conn(ctx), userID).
		Order("created_at desc").Order("id desc").
		Find(&customers).Error
	return customers, mapError(err)
}

// CustomerRefs is the id/name list behind every customer picker.
func (s *Store) CustomerRefs(ctx context.Context, userID string) ([]models.CustomerRef, error) {
	var refs []models.CustomerRef
	err := owned(s.conn(ctx).Model(&models.Customer{}), userID).
		Select("id", "name").
		Order("name asc").
		Scan(&refs).Error
	return refs, mapError(err)
}

func (s *Store) GetCustomer(ctx context.Context, userID, id string) (*models.Customer, error) {
	var c models.Customer
	if err := owned(s.conn(ctx), userID).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, userID string, c *models.Customer) error {
	c.UserID = userID
	return mapError(s.conn(ctx).Create(c).Error)
}

// customerLinkedTables hold an optional customer reference that is cleared
// when the customer goes away.
var customerLinkedTables = []any{
	&models.Job{},
	&models.CalendarEvent{},
	&models.Estimate{},
	&models.Quote{},
}

// DeleteCustomer removes a customer and unassigns it everywhere, atomically.
func (s *Store) DeleteCustomer(ctx context.Context, userID, id string) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range customerLinkedTables {
			if err := owned(tx.Model(m), userID).
				Where("customer_id = ?", id).
				Update("customer_id", nil).Error; err != nil {
				return fmt.Errorf("unassign customer from %T: %w", m, err)
			}
		}

		res := owned(tx, userID).Where("id = ?", id).Delete(&models.Customer{})
		if res.Error != nil {
			return mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
