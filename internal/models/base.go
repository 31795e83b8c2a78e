package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every row owned by an account.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// CustomerRef is the normalised "assigned customer" of a job, event, estimate
// or quote. Nil means no customer.
type CustomerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerLinked rows carry an optional customer reference that the data
// layer resolves into a CustomerRef.
type CustomerLinked interface {
	CustomerKey() *string
	SetCustomer(ref *CustomerRef)
}

// NullString maps an empty form value to NULL.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" for a NULL column.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
