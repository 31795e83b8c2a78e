package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Estimate struct {
	Base
	Total      float64        `gorm:"not null;default:0" json:"total"`
	CustomerID *string        `gorm:"type:varchar(36);index" json:"customer_id"`
	Items      []EstimateItem `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	Customer *CustomerRef `gorm:"-" json:"customer"`
}

func (e *Estimate) CustomerKey() *string { return e.CustomerID }
func (e *Estimate) SetCustomer(ref *CustomerRef) { e.Customer = ref }

type EstimateItem struct {
	ID         string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	EstimateID string  `gorm:"type:varchar(36);not null;index" json:"estimate_id"`
	Label      string  `gorm:"size:255" json:"label"`
	Quantity   float64 `gorm:"not null;default:0" json:"quantity"`
	Rate       float64 `gorm:"not null;default:0" json:"rate"`
	Amount     float64 `gorm:"not null;default:0" json:"amount"`
	Position   int     `gorm:"not null;default:0" json:"-"`
}

func (i *EstimateItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
