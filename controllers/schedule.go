package controllers

import (
	"net/http"
	"time"

	"scoopdoo-backend/booking"
	"scoopdoo-backend/models"
	"scoopdoo-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB *gorm.DB
}

type scheduleStop struct {
	BookingID    uuid.UUID `json:"bookingId"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Service      string    `json:"service"`
	Instructions string    `json:"instructions,omitempty"`
}

type scheduleDay struct {
	Date    string         `json:"date"`
	DayName string         `json:"dayName"`
	Stops   []scheduleStop `json:"stops"`
}

// GetToday returns the admin's route for today.
func (sc *ScheduleController) GetToday(c *gin.Context) {
	bookings, err := sc.activeBookings(nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedule")
		return
	}

	today := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"date":  today.Format("2006-01-02"),
		"stops": stopsOn(bookings, today),
	})
}

// GetWeek returns the admin's routes for today plus the next six days.
func (sc *ScheduleController) GetWeek(c *gin.Context) {
	bookings, err := sc.activeBookings(nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedule")
		return
	}

	c.JSON(http.StatusOK, weekOf(bookings, time.Now()))
}

// GetMySchedule returns the signed-in customer's upcoming service days for
// the next week.
func (sc *ScheduleController) GetMySchedule(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var customer models.Customer
	if err := sc.DB.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		c.JSON(http.StatusOK, []scheduleDay{})
		return
	}

	bookings, err := sc.activeBookings(&customer.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedule")
		return
	}

	c.JSON(http.StatusOK, weekOf(bookings, time.Now()))
}

// activeBookings loads active bookings with their weekdays and customers,
// optionally restricted to one customer. Paused and cancelled bookings never
// appear in schedule views.
func (sc *ScheduleController) activeBookings(customerID *uuid.UUID) ([]models.Booking, error) {
	query := sc.DB.Preload("ServiceDays").Preload("Customer").
		Where("status = ?", booking.StatusActive)
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func stopsOn(bookings []models.Booking, date time.Time) []scheduleStop {
	stops := make([]scheduleStop, 0)
	for i := range bookings {
		if !booking.ScheduledOn(&bookings[i], date) {
			continue
		}
		b := &bookings[i]
		stops = append(stops, scheduleStop{
			BookingID:    b.ID,
			CustomerName: b.Customer.Name,
			Phone:        b.Customer.Phone,
			Address:      b.Customer.FullAddress(),
			Service:      b.Summary(),
			Instructions: b.SpecialInstructions,
		})
	}
	return stops
}

func weekOf(bookings []models.Booking, start time.Time) []scheduleDay {
	week := make([]scheduleDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		week = append(week, scheduleDay{
			Date:    date.Format("2006-01-02"),
			DayName: date.Format("Monday"),
			Stops:   stopsOn(bookings, date),
		})
	}
	return week
}
