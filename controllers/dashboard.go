package controllers

import (
	"fmt"
	"net/http"
	"time"

	"scoopdoo-backend/booking"
	"scoopdoo-backend/models"
	"scoopdoo-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

type recentBooking struct {
	CustomerName string `json:"customerName"`
	Summary      string `json:"summary"`
	Price        string `json:"price"`
	Booked       string `json:"booked"` // "Today", "Yesterday", "3 days ago"
}

// GetOverview returns the admin dashboard numbers: customer and booking
// counts, recurring revenue, and the latest bookings.
func (dc *DashboardController) GetOverview(c *gin.Context) {
	// Total customers
	var totalCustomers int64
	dc.DB.Model(&models.Customer{}).Count(&totalCustomers)

	// Booking counts by status
	statusCounts := map[string]int64{}
	for _, status := range []booking.Status{booking.StatusActive, booking.StatusPaused, booking.StatusCancelled} {
		var count int64
		dc.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&count)
		statusCounts[string(status)] = count
	}

	// Monthly recurring revenue: sum of active regular plan prices
	var recurringRevenue int64
	dc.DB.Model(&models.Booking{}).
		Where("status = ? AND service_type = ?", booking.StatusActive, booking.ServiceRegular).
		Select("COALESCE(SUM(price), 0)").Scan(&recurringRevenue)

	// One-time revenue this month (completed payments only)
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var oneTimeRevenue int64
	dc.DB.Model(&models.Booking{}).
		Where("service_type = ? AND payment_status = ? AND created_at >= ?",
			booking.ServiceOneTime, booking.PaymentCompleted, firstOfMonth).
		Select("COALESCE(SUM(price), 0)").Scan(&oneTimeRevenue)

	// Recent bookings (last 5)
	var latest []models.Booking
	if err := dc.DB.Preload("Customer").Order("created_at DESC").Limit(5).Find(&latest).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve recent bookings")
		return
	}

	recent := make([]recentBooking, 0, len(latest))
	for i := range latest {
		b := &latest[i]
		recent = append(recent, recentBooking{
			CustomerName: b.Customer.Name,
			Summary:      b.Summary(),
			Price:        booking.PriceLabel(b.ServiceType, b.Price),
			Booked:       relativeDay(b.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":   totalCustomers,
		"bookings":         statusCounts,
		"recurringRevenue": recurringRevenue,
		"oneTimeRevenue":   oneTimeRevenue,
		"recentBookings":   recent,
	})
}

func relativeDay(t time.Time) string {
	switch days := utils.DaysBetween(t, time.Now()); days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
