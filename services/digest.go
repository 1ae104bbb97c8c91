// services/digest.go
package services

import (
	"fmt"
	"strings"
	"time"

	"scoopdoo-backend/booking"
	"scoopdoo-backend/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DigestService emails the admin the day's service route every morning.
type DigestService struct {
	db     *gorm.DB
	email  *EmailService
	logger *zap.Logger
}

func NewDigestService(db *gorm.DB, email *EmailService, logger *zap.Logger) *DigestService {
	return &DigestService{db: db, email: email, logger: logger}
}

// StartScheduler runs the digest daily at 7 AM.
func (s *DigestService) StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 7 * * *", func() {
		s.SendDailyDigest(time.Now())
	})

	c.Start()
	s.logger.Info("digest scheduler started")
	return c
}

// SendDailyDigest computes today's stops and mails them to the admin.
func (s *DigestService) SendDailyDigest(date time.Time) {
	stops, err := s.StopsFor(date)
	if err != nil {
		s.logger.Error("failed to compute daily route", zap.Error(err))
		return
	}

	var rows strings.Builder
	for _, b := range stops {
		fmt.Fprintf(&rows, `<p><strong>%s</strong> — %s<br/>%s — %s</p>`,
			b.Customer.Name, b.Summary(), b.Customer.FullAddress(), b.Customer.Phone)
	}
	if len(stops) == 0 {
		rows.WriteString("<p>No service stops today.</p>")
	}

	s.email.SendDailyDigest(date, rows.String(), len(stops))
	s.logger.Info("daily digest sent", zap.Int("stops", len(stops)))
}

// StopsFor returns the active bookings scheduled on the given date.
func (s *DigestService) StopsFor(date time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("ServiceDays").Preload("Customer").
		Where("status = ?", booking.StatusActive).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	var stops []models.Booking
	for i := range bookings {
		if booking.ScheduledOn(&bookings[i], date) {
			stops = append(stops, bookings[i])
		}
	}
	return stops, nil
}
