package database

import (
	"context"
	"errors"
	"fmt"

	"painterflow/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("record already exists")
	ErrInvalidCustomer  = errors.New("customer not found")
	ErrInvalidEstimate  = errors.New("estimate not found")
	ErrNoItems          = errors.New("at least one line item is required")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidTimeRange = errors.New("end must not be before start")
	ErrInvalidValidity  = errors.New("validity must be between 1 and 3650 days")
)

// Store is the data gateway every page goes through. All rows are scoped to
// the account that owns them.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func owned(tx *gorm.DB, userID string) *gorm.DB {
	return tx.Where("user_id = ?", userID)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

// checkCustomer verifies that a customer reference, when set, names a
// customer of the same account.
func checkCustomer(tx *gorm.DB, userID string, customerID *string) error {
	if customerID == nil {
		return nil
	}
	var n int64
	if err := owned(tx.Model(&models.Customer{}), userID).
		Where("id = ?", *customerID).
		Count(&n).Error; err != nil {
		return fmt.Errorf("check customer: %w", err)
	}
	if n == 0 {
		return ErrInvalidCustomer
	}
	return nil
}

// attachCustomers resolves the customer reference of every row into a single
// optional CustomerRef.
func attachCustomers(tx *gorm.DB, userID string, rows []models.CustomerLinked) error {
	ids := make([]string, 0, len(rows))
	seen := map[string]struct{}{}
	for _, r := range rows {
		if k := r.CustomerKey(); k != nil {
			if _, ok := seen[*k]; !ok {
				seen[*k] = struct{}{}
				ids = append(ids, *k)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var refs []models.CustomerRef
	if err := owned(tx.Model(&models.Customer{}), userID).
		Select("id", "name").
		Where("id IN ?", ids).
		Scan(&refs).Error; err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	byID := make(map[string]models.CustomerRef, len(refs))
	for _, r := range refs {
		byID[r.ID] = r
	}

	for _, r := range rows {
		k := r.CustomerKey()
		if k == nil {
			r.SetCustomer(nil)
			continue
		}
		if ref, ok := byID[*k]; ok {
			ref := ref
			r.SetCustomer(&ref)
		} else {
			r.SetCustomer(nil)
		}
	}
	return nil
}
