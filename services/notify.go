// services/notify.go
package services

import (
	"fmt"
	"time"

	"scoopdoo-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NotifyService sends the admin an SMS heads-up when a new booking lands.
// Like email, failures are logged and recorded, never surfaced to the
// customer.
type NotifyService struct {
	db         *gorm.DB
	client     *twilio.RestClient
	logger     *zap.Logger
	from       string
	adminPhone string
}

func NewNotifyService(db *gorm.DB, logger *zap.Logger, accountSid, authToken, from, adminPhone string) *NotifyService {
	return &NotifyService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		logger:     logger,
		from:       from,
		adminPhone: adminPhone,
	}
}

// Enabled reports whether SMS alerts are configured.
func (s *NotifyService) Enabled() bool {
	return s.from != "" && s.adminPhone != ""
}

// SendAdminBookingAlert texts the admin about a new booking.
func (s *NotifyService) SendAdminBookingAlert(summary BookingSummary) {
	if !s.Enabled() {
		return
	}

	body := fmt.Sprintf("New ScoopDoo booking: %s for %s, %s. %s",
		summary.Service, summary.CustomerName, summary.PriceLabel, summary.Address)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.adminPhone)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)

	status := "sent"
	errorMsg := ""
	if err != nil {
		s.logger.Error("sms send failed", zap.String("to", s.adminPhone), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		s.logger.Info("sms sent", zap.String("to", s.adminPhone), zap.String("sid", *resp.Sid))
	} else {
		s.logger.Info("sms sent, no SID returned", zap.String("to", s.adminPhone))
	}

	entry := models.NotificationLog{
		BookingID:    &summary.BookingID,
		Type:         "admin_alert",
		Channel:      "sms",
		Recipient:    s.adminPhone,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		s.logger.Error("failed to log notification", zap.Error(err))
	}
}
