package services

import (
	"fmt"
	"time"

	"scoopdoo-backend/models"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BookingSummary carries everything the notification templates need about a
// freshly created booking.
type BookingSummary struct {
	BookingID     uuid.UUID
	CustomerName  string
	CustomerEmail string
	Service       string // display label, e.g. "Twice Weekly Service (2 Dogs)"
	ServiceDays   string // "Tuesday, Thursday", empty for one-time
	Address       string
	PriceLabel    string // "$150" or "$120/month"
}

// EmailService sends transactional mail through Resend. Send failures are
// logged and recorded, never returned to the booking flow.
type EmailService struct {
	db         *gorm.DB
	client     *resend.Client
	logger     *zap.Logger
	from       string
	adminEmail string
	siteURL    string
}

func NewEmailService(db *gorm.DB, logger *zap.Logger, apiKey, from, adminEmail, siteURL string) *EmailService {
	return &EmailService{
		db:         db,
		client:     resend.NewClient(apiKey),
		logger:     logger,
		from:       from,
		adminEmail: adminEmail,
		siteURL:    siteURL,
	}
}

// SendBookingConfirmation emails the customer their booking details.
func (s *EmailService) SendBookingConfirmation(summary BookingSummary) {
	daysLine := ""
	if summary.ServiceDays != "" {
		daysLine = fmt.Sprintf("<p>Service Days: %s</p>", summary.ServiceDays)
	}

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h1 style="color: #10b981;">Booking Confirmation</h1>
		  <p>Hello %s,</p>
		  <p>Thank you for choosing ScoopDoo! Your booking has been confirmed.</p>
		  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
		    <h2 style="margin-top: 0;">Booking Details</h2>
		    <p>Service: %s</p>
		    %s
		    <p>Address: %s</p>
		    <p>Price: %s</p>
		  </div>
		  <p>If you have any questions or need to make changes to your booking, please reply to this email.</p>
		  <p>Thank you for your business!</p>
		  <p>The ScoopDoo Team</p>
		</div>`,
		summary.CustomerName, summary.Service, daysLine, summary.Address, summary.PriceLabel)

	s.send("confirmation", &summary.BookingID, summary.CustomerEmail,
		"Your ScoopDoo Booking Confirmation", html)
}

// SendAdminAlert emails the admin inbox about a new booking.
func (s *EmailService) SendAdminAlert(summary BookingSummary) {
	daysLine := ""
	if summary.ServiceDays != "" {
		daysLine = fmt.Sprintf("<p>Service Days: %s</p>", summary.ServiceDays)
	}

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h1 style="color: #10b981;">New Booking Alert</h1>
		  <p>A new booking has been received:</p>
		  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
		    <h2 style="margin-top: 0;">Customer Information</h2>
		    <p>Name: %s</p>
		    <p>Email: %s</p>
		    <p>Address: %s</p>
		    <h2>Booking Details</h2>
		    <p>Service: %s</p>
		    %s
		    <p>Price: %s</p>
		  </div>
		  <p>Log in to the admin dashboard to view full details.</p>
		</div>`,
		summary.CustomerName, summary.CustomerEmail, summary.Address,
		summary.Service, daysLine, summary.PriceLabel)

	s.send("admin_alert", &summary.BookingID, s.adminEmail, "New Booking Received", html)
}

// SendPasswordReset emails the reset link for a requested password reset.
func (s *EmailService) SendPasswordReset(to, token string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.siteURL, token)
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h1 style="color: #10b981;">Reset Your Password</h1>
		  <p>We received a request to reset your ScoopDoo password.</p>
		  <p><a href="%s">Click here to choose a new password.</a></p>
		  <p>The link expires in one hour. If you didn't request this, you can ignore this email.</p>
		</div>`, link)

	s.send("password_reset", nil, to, "Reset your ScoopDoo password", html)
}

// SendDailyDigest emails the admin today's service route.
func (s *EmailService) SendDailyDigest(date time.Time, rows string, stops int) {
	subject := fmt.Sprintf("ScoopDoo Route for %s", date.Format("Monday, January 2"))
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		  <h1 style="color: #10b981;">Today's Route</h1>
		  <p>%d stop(s) scheduled for %s.</p>
		  %s
		</div>`, stops, date.Format("Monday, January 2"), rows)

	s.send("daily_digest", nil, s.adminEmail, subject, html)
}

func (s *EmailService) send(kind string, bookingID *uuid.UUID, to, subject, html string) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)

	status := "sent"
	errorMsg := ""
	if err != nil {
		s.logger.Error("email send failed",
			zap.String("type", kind),
			zap.String("to", to),
			zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else {
		s.logger.Info("email sent", zap.String("type", kind), zap.String("to", to))
	}

	entry := models.NotificationLog{
		BookingID:    bookingID,
		Type:         kind,
		Channel:      "email",
		Recipient:    to,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		s.logger.Error("failed to log notification", zap.Error(err))
	}
}
