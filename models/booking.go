package models

import (
	"time"

	"scoopdoo-backend/booking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceType booking.ServiceType `gorm:"type:varchar(20);not null"`
	Frequency   *booking.Frequency  `gorm:"type:varchar(20)"` // nil for one-time service
	Dogs        int                 `gorm:"not null"`
	Price       int                 `gorm:"not null"` // whole dollars, from the price table

	Status        booking.Status        `gorm:"type:varchar(20);not null;default:'active'"`
	PaymentID     string                `gorm:"type:varchar(100)"`
	PaymentStatus booking.PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"`

	SpecialInstructions string `gorm:"type:text"`

	Customer    Customer     `gorm:"foreignKey:CustomerID"`
	ServiceDays []ServiceDay `gorm:"foreignKey:BookingID"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// Service, CreatedOn and Weekdays satisfy booking.Schedulable so schedule
// queries can run straight off the model.
func (b *Booking) Service() booking.ServiceType { return b.ServiceType }

func (b *Booking) CreatedOn() time.Time { return b.CreatedAt }

func (b *Booking) Weekdays() []booking.Weekday {
	days := make([]booking.Weekday, 0, len(b.ServiceDays))
	for _, d := range b.ServiceDays {
		days = append(days, booking.Weekday(d.DayOfWeek))
	}
	return days
}

// Summary is the display label for this booking, e.g.
// "Twice Weekly Service (2 Dogs)".
func (b *Booking) Summary() string {
	var freq booking.Frequency
	if b.Frequency != nil {
		freq = *b.Frequency
	}
	return booking.Summary(b.ServiceType, freq, b.Dogs)
}

// ServiceDay stores one recurring weekday for a regular booking.
// DayOfWeek is the ISO code, Monday=1 through Friday=5.
type ServiceDay struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null"`
	DayOfWeek int       `gorm:"not null;check:day_of_week BETWEEN 1 AND 5"`

	gorm.Model
}

func (s *ServiceDay) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
