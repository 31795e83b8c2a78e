package models

import "time"

// CalendarEvent is an appointment with a start and end time. It is unrelated
// to Job rows.
type CalendarEvent struct {
	Base
	Title      string    `gorm:"size:255;not null" json:"title"`
	StartAt    time.Time `gorm:"not null;index" json:"start_at"`
	EndAt      time.Time `gorm:"not null" json:"end_at"`
	Notes      *string   `gorm:"type:text" json:"notes"`
	CustomerID *string   `gorm:"type:varchar(36);index" json:"customer_id"`

	Customer *CustomerRef `gorm:"-" json:"customer"`
}

func (CalendarEvent) TableName() string { return "events" }

func (e *CalendarEvent) CustomerKey() *string { return e.CustomerID }
func (e *CalendarEvent) SetCustomer(ref *CustomerRef) { e.Customer = ref }
