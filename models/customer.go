package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the service address book entry a booking belongs to. Guests
// book without an account, so UserID is optional; email is the upsert key.
type Customer struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`

	Name    string `gorm:"not null"`
	Email   string `gorm:"uniqueIndex;not null"`
	Phone   string `gorm:"not null"`
	Address string `gorm:"not null"`
	City    string `gorm:"not null"`
	State   string `gorm:"not null"`
	Zip     string `gorm:"not null"`

	Bookings []Booking `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// FullAddress renders the one-line address used in emails and route lists.
func (c *Customer) FullAddress() string {
	return c.Address + ", " + c.City + ", " + c.State + " " + c.Zip
}
