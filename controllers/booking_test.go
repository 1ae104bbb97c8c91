package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scoopdoo-backend/booking"
	"scoopdoo-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newBookingTestRouter() (*gin.Engine, *BookingController) {
	gin.SetMode(gin.TestMode)
	bc := &BookingController{Logger: zap.NewNop()}
	r := gin.New()
	r.POST("/api/bookings/quote", bc.Quote)
	r.POST("/api/bookings", bc.CreateBooking)
	return r, bc
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuote(t *testing.T) {
	r, _ := newBookingTestRouter()

	tests := []struct {
		name        string
		body        gin.H
		wantStatus  int
		wantPrice   float64
		wantBilling string
		wantSummary string
	}{
		{
			name:        "twice-weekly two dogs",
			body:        gin.H{"service": "regular", "dogs": 2, "frequency": "twice-weekly"},
			wantStatus:  200,
			wantPrice:   120,
			wantBilling: "monthly",
			wantSummary: "Twice Weekly Service (2 Dogs)",
		},
		{
			name:        "one-time three dogs",
			body:        gin.H{"service": "one-time", "dogs": 3},
			wantStatus:  200,
			wantPrice:   150,
			wantBilling: "once",
			wantSummary: "One-Time Yard Clean-Up (3 Dogs)",
		},
		{
			name:       "four dogs rejected",
			body:       gin.H{"service": "regular", "dogs": 4, "frequency": "weekly"},
			wantStatus: 400,
		},
		{
			name:       "regular without frequency rejected",
			body:       gin.H{"service": "regular", "dogs": 2},
			wantStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/bookings/quote", tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != 200 {
				return
			}

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantPrice, resp["price"])
			assert.Equal(t, tt.wantBilling, resp["billing"])
			assert.Equal(t, tt.wantSummary, resp["summary"])
		})
	}
}

// validBookingForm returns a complete form; the contact fields pass
// validation so tests can poke at one field at a time.
func validBookingForm() gin.H {
	return gin.H{
		"service":      "regular",
		"dogs":         2,
		"frequency":    "twice-weekly",
		"selectedDays": []string{"2024-03-05T00:00:00Z", "2024-03-07T00:00:00Z"}, // Tue, Thu
		"name":         "Pat Doe",
		"email":        "pat@example.com",
		"phone":        "+15551234567",
		"address":      "1 Main St",
		"city":         "Springfield",
		"state":        "IL",
		"zip":          "62701",
	}
}

func TestCreateBookingRejectsBeforePersistence(t *testing.T) {
	r, _ := newBookingTestRouter()

	tests := []struct {
		name   string
		mutate func(gin.H)
	}{
		{"missing email", func(f gin.H) { delete(f, "email") }},
		{"bad phone", func(f gin.H) { f["phone"] = "abc" }},
		{"bad zip", func(f gin.H) { f["zip"] = "123" }},
		{"bad dog count", func(f gin.H) { f["dogs"] = 5 }},
		{"one day for twice-weekly", func(f gin.H) {
			f["selectedDays"] = []string{"2024-03-05T00:00:00Z"}
		}},
		{"weekend day", func(f gin.H) {
			f["selectedDays"] = []string{"2024-03-05T00:00:00Z", "2024-03-09T00:00:00Z"} // Sat
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validBookingForm()
			tt.mutate(form)
			w := postJSON(r, "/api/bookings", form)
			assert.Equal(t, 400, w.Code, w.Body.String())
		})
	}
}

func TestUpsertErrorResponse(t *testing.T) {
	status, msg := upsertErrorResponse(gorm.ErrDuplicatedKey)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, msg, "already exists")

	status, _ = upsertErrorResponse(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestMayAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bc := &BookingController{Logger: zap.NewNop()}
	record := &models.Booking{CustomerID: uuid.New()}

	t.Run("admin may act on any booking", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("role", models.RoleAdmin)
		assert.True(t, bc.mayAccess(c, record))
	})

	t.Run("caller without a user is refused", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("role", models.RoleCustomer)
		assert.False(t, bc.mayAccess(c, record))
	})
}

func TestToBookingResponse(t *testing.T) {
	freq := booking.FrequencyTwiceWeekly
	b := &models.Booking{
		ServiceType:   booking.ServiceRegular,
		Frequency:     &freq,
		Dogs:          2,
		Price:         120,
		Status:        booking.StatusActive,
		PaymentStatus: booking.PaymentCompleted,
		ServiceDays: []models.ServiceDay{
			{DayOfWeek: 2},
			{DayOfWeek: 4},
		},
	}
	b.CreatedAt = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	resp := toBookingResponse(b)
	assert.Equal(t, "Twice Weekly Service (2 Dogs)", resp.Summary)
	assert.Equal(t, "Tuesday, Thursday", resp.ServiceDays)
	assert.Equal(t, "$120/month", resp.PriceLabel)
	assert.Equal(t, booking.StatusActive, resp.Status)
}
