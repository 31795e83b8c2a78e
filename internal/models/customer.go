package models

type Customer struct {
	Base
	Name    string  `gorm:"size:255;not null" json:"name"`
	Phone   *string `gorm:"size:50" json:"phone"`
	Email   *string `gorm:"size:255" json:"email"`
	Address *string `gorm:"type:text" json:"address"`
	Notes   *string `gorm:"type:text" json:"notes"`
}

func (c Customer) Ref() *CustomerRef {
	return &CustomerRef{ID: c.ID, Name: c.Name}
}
