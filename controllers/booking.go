package controllers

import (
	"errors"
	"net/http"
	"time"

	"scoopdoo-backend/booking"
	"scoopdoo-backend/models"
	"scoopdoo-backend/services"
	"scoopdoo-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BookingController struct {
	DB       *gorm.DB
	Payments services.PaymentCollector
	Email    *services.EmailService
	Notify   *services.NotifyService
	Logger   *zap.Logger
}

// QuoteInput asks for the price of an offering before checkout.
type QuoteInput struct {
	Service   booking.ServiceType `json:"service" binding:"required"`
	Dogs      int                 `json:"dogs" binding:"required"`
	Frequency booking.Frequency   `json:"frequency"`
}

// CreateBookingInput is the completed booking form. selectedDays carries the
// calendar dates picked in the UI; the backend reduces them to weekdays.
type CreateBookingInput struct {
	Service      booking.ServiceType `json:"service" binding:"required"`
	Dogs         int                 `json:"dogs" binding:"required"`
	Frequency    booking.Frequency   `json:"frequency"`
	SelectedDays []time.Time         `json:"selectedDays"`

	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Zip     string `json:"zip" binding:"required"`

	SpecialInstructions string `json:"specialInstructions"`
	PaymentID           string `json:"paymentId"`
}

type UpdateStatusInput struct {
	Status booking.Status `json:"status" binding:"required"`
}

type ConfirmPaymentInput struct {
	PaymentID string `json:"paymentId" binding:"required"`
}

// Quote prices an offering. The client never sends a price; this is the
// only way it learns one.
func (bc *BookingController) Quote(c *gin.Context) {
	var input QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	price, err := booking.Price(input.Service, input.Dogs, input.Frequency)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	billing := "monthly"
	if input.Service == booking.ServiceOneTime {
		billing = "once"
	}

	c.JSON(http.StatusOK, gin.H{
		"price":   price,
		"billing": billing,
		"label":   booking.PriceLabel(input.Service, price),
		"summary": booking.Summary(input.Service, input.Frequency, input.Dogs),
	})
}

// CreateBooking runs the whole submission: price from the table, service-day
// validation, customer upsert, booking + service-day insert, payment
// verification, then notifications. Guests may book; a signed-in customer
// gets the booking attached to their account.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !utils.ValidateZip(input.Zip) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ZIP code")
		return
	}

	// Price comes from the table, never from the client.
	price, err := booking.Price(input.Service, input.Dogs, input.Frequency)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var days []booking.Weekday
	if input.Service == booking.ServiceRegular {
		days, err = booking.ValidateSelection(input.Frequency, input.SelectedDays)
		if err != nil {
			if errors.Is(err, booking.ErrInvalidServiceDay) {
				// The calendar UI should have blocked weekends.
				bc.Logger.Warn("weekend date reached service-day validation", zap.Error(err))
			}
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	customer, err := bc.upsertCustomer(c, input)
	if err != nil {
		status, msg := upsertErrorResponse(err)
		utils.RespondWithError(c, status, msg)
		return
	}

	var freq *booking.Frequency
	if input.Service == booking.ServiceRegular {
		f := input.Frequency
		freq = &f
	}

	record := models.Booking{
		CustomerID:          customer.ID,
		ServiceType:         input.Service,
		Frequency:           freq,
		Dogs:                input.Dogs,
		Price:               price,
		Status:              booking.StatusActive,
		PaymentStatus:       booking.PaymentPending,
		SpecialInstructions: input.SpecialInstructions,
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		for _, d := range days {
			day := models.ServiceDay{BookingID: record.ID, DayOfWeek: int(d)}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		bc.Logger.Error("failed to create booking", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking record")
		return
	}

	// Verify payment after the insert; a failed verification cancels the
	// booking rather than leaving it half-confirmed.
	if input.PaymentID != "" {
		if err := bc.settlePayment(c, &record, input.PaymentID); err != nil {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":     "Payment could not be verified",
				"bookingId": record.ID,
			})
			return
		}
	}

	summary := services.BookingSummary{
		BookingID:     record.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		Service:       record.Summary(),
		ServiceDays:   booking.DayNames(days),
		Address:       customer.FullAddress(),
		PriceLabel:    booking.PriceLabel(record.ServiceType, record.Price),
	}

	// Notifications must not block or fail the booking response.
	go bc.Email.SendBookingConfirmation(summary)
	go bc.Email.SendAdminAlert(summary)
	go bc.Notify.SendAdminBookingAlert(summary)

	c.JSON(http.StatusCreated, gin.H{
		"bookingId":     record.ID,
		"customerId":    customer.ID,
		"price":         price,
		"summary":       summary.Service,
		"serviceDays":   summary.ServiceDays,
		"paymentStatus": record.PaymentStatus,
	})
}

// GetBookings lists the caller's bookings; admins see everything and may
// filter by status.
func (bc *BookingController) GetBookings(c *gin.Context) {
	query := bc.DB.Preload("ServiceDays").Preload("Customer").Order("created_at DESC")

	if role, _ := c.Get("role"); role == models.RoleAdmin {
		if status := c.Query("status"); status != "" {
			if !booking.Status(status).Valid() {
				utils.RespondWithError(c, http.StatusBadRequest, "Unknown status filter")
				return
			}
			query = query.Where("status = ?", status)
		}
	} else {
		customer, err := bc.customerForUser(c)
		if err != nil {
			c.JSON(http.StatusOK, []bookingResponse{})
			return
		}
		query = query.Where("customer_id = ?", customer.ID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetBooking returns one booking; owners and admins only.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var record models.Booking
	if err := bc.DB.Preload("ServiceDays").Preload("Customer").
		First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !bc.mayAccess(c, &record) {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(&record))
}

// UpdateStatus applies an admin status change through the state machine.
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var record models.Booking
	if err := bc.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := booking.Transition(record.Status, input.Status); err != nil {
		utils.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	if err := bc.DB.Model(&record).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	record.Status = input.Status
	c.JSON(http.StatusOK, gin.H{"id": record.ID, "status": record.Status})
}

// ConfirmPayment re-verifies payment for a booking still pending, e.g.
// after the customer retried checkout.
func (bc *BookingController) ConfirmPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input ConfirmPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var record models.Booking
	if err := bc.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Settling can cancel the booking on failure, so only the owner or an
	// admin may trigger it.
	if !bc.mayAccess(c, &record) {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	if record.PaymentStatus == booking.PaymentCompleted {
		c.JSON(http.StatusOK, gin.H{"id": record.ID, "paymentStatus": record.PaymentStatus})
		return
	}

	if err := bc.settlePayment(c, &record, input.PaymentID); err != nil {
		utils.RespondWithError(c, http.StatusPaymentRequired, "Payment could not be verified")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": record.ID, "paymentStatus": record.PaymentStatus})
}

// settlePayment verifies the transaction with the provider and records the
// outcome. On failure the booking gets a compensating cancellation so no
// unpaid work stays on the schedule.
func (bc *BookingController) settlePayment(c *gin.Context, record *models.Booking, paymentID string) error {
	var txnID string
	var err error
	if record.ServiceType == booking.ServiceOneTime {
		txnID, err = bc.Payments.VerifyOneTime(c.Request.Context(), paymentID)
	} else {
		txnID, err = bc.Payments.VerifySubscription(c.Request.Context(), paymentID)
	}

	if err != nil {
		bc.Logger.Warn("payment verification failed",
			zap.String("booking", record.ID.String()),
			zap.String("payment", paymentID),
			zap.Error(err))

		updates := map[string]interface{}{"payment_status": booking.PaymentFailed}
		if record.Status.CanTransitionTo(booking.StatusCancelled) {
			updates["status"] = booking.StatusCancelled
		}
		if dbErr := bc.DB.Model(record).Updates(updates).Error; dbErr != nil {
			bc.Logger.Error("failed to record payment failure", zap.Error(dbErr))
		}
		record.PaymentStatus = booking.PaymentFailed
		return err
	}

	updates := map[string]interface{}{
		"payment_id":     txnID,
		"payment_status": booking.PaymentCompleted,
	}
	if dbErr := bc.DB.Model(record).Updates(updates).Error; dbErr != nil {
		bc.Logger.Error("failed to record payment", zap.Error(dbErr))
		return dbErr
	}
	record.PaymentID = txnID
	record.PaymentStatus = booking.PaymentCompleted
	return nil
}

// upsertCustomer attaches the booking to the signed-in user's customer
// record, or upserts a guest customer keyed by email.
func (bc *BookingController) upsertCustomer(c *gin.Context, input CreateBookingInput) (*models.Customer, error) {
	fields := models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Zip:     input.Zip,
	}

	var existing models.Customer
	var err error
	if userID, ok := c.Get("userId"); ok {
		uid, parseErr := uuid.Parse(userID.(string))
		if parseErr != nil {
			return nil, parseErr
		}
		err = bc.DB.Where("user_id = ?", uid).First(&existing).Error
		fields.UserID = &uid
	} else {
		err = bc.DB.Where("email = ?", input.Email).First(&existing).Error
	}

	if err == nil {
		if fields.UserID == nil {
			fields.UserID = existing.UserID
		}
		if err := bc.DB.Model(&existing).Updates(map[string]interface{}{
			"name": fields.Name, "email": fields.Email, "phone": fields.Phone,
			"address": fields.Address, "city": fields.City,
			"state": fields.State, "zip": fields.Zip, "user_id": fields.UserID,
		}).Error; err != nil {
			return nil, err
		}
		existing.Name, existing.Email, existing.Phone = fields.Name, fields.Email, fields.Phone
		existing.Address, existing.City, existing.State, existing.Zip = fields.Address, fields.City, fields.State, fields.Zip
		existing.UserID = fields.UserID
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := bc.DB.Create(&fields).Error; err != nil {
		return nil, err
	}
	return &fields, nil
}

// upsertErrorResponse maps a customer-upsert failure to an HTTP response.
// A unique-email collision means the address belongs to another account,
// which the caller can fix; anything else is ours.
func upsertErrorResponse(err error) (int, string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return http.StatusConflict, "A customer account with this email already exists. Please log in to book with it."
	}
	return http.StatusInternalServerError, "Failed to save customer record"
}

// mayAccess reports whether the caller may act on the booking: admins
// always, customers only on their own records.
func (bc *BookingController) mayAccess(c *gin.Context, record *models.Booking) bool {
	if role, _ := c.Get("role"); role == models.RoleAdmin {
		return true
	}
	customer, err := bc.customerForUser(c)
	return err == nil && customer.ID == record.CustomerID
}

func (bc *BookingController) customerForUser(c *gin.Context) (*models.Customer, error) {
	userID, exists := c.Get("userId")
	if !exists {
		return nil, errors.New("no user in context")
	}

	var customer models.Customer
	if err := bc.DB.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

type bookingResponse struct {
	ID                  uuid.UUID             `json:"id"`
	CustomerID          uuid.UUID             `json:"customerId"`
	CustomerName        string                `json:"customerName,omitempty"`
	Service             booking.ServiceType   `json:"service"`
	Frequency           *booking.Frequency    `json:"frequency,omitempty"`
	Dogs                int                   `json:"dogs"`
	Price               int                   `json:"price"`
	PriceLabel          string                `json:"priceLabel"`
	Summary             string                `json:"summary"`
	Status              booking.Status        `json:"status"`
	PaymentStatus       booking.PaymentStatus `json:"paymentStatus"`
	ServiceDays         string                `json:"serviceDays,omitempty"`
	SpecialInstructions string                `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time             `json:"createdAt"`
}

func toBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		ID:                  b.ID,
		CustomerID:          b.CustomerID,
		CustomerName:        b.Customer.Name,
		Service:             b.ServiceType,
		Frequency:           b.Frequency,
		Dogs:                b.Dogs,
		Price:               b.Price,
		PriceLabel:          booking.PriceLabel(b.ServiceType, b.Price),
		Summary:             b.Summary(),
		Status:              b.Status,
		PaymentStatus:       b.PaymentStatus,
		ServiceDays:         booking.DayNames(b.Weekdays()),
		SpecialInstructions: b.SpecialInstructions,
		CreatedAt:           b.CreatedAt,
	}
}
