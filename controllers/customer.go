package controllers

import (
	"errors"
	"net/http"

	"scoopdoo-backend/models"
	"scoopdoo-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

// UpdateProfileInput defines the expected JSON structure for updating a profile
type UpdateProfileInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
}

// GetProfile returns the signed-in customer's contact and address details.
func (cc *CustomerController) GetProfile(c *gin.Context) {
	customer, err := cc.requireCustomer(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateProfile applies a partial update to the customer's details.
func (cc *CustomerController) UpdateProfile(c *gin.Context) {
	customer, err := cc.requireCustomer(c)
	if err != nil {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Update fields if provided
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.City != nil {
		customer.City = *input.City
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.Zip != nil {
		if !utils.ValidateZip(*input.Zip) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid ZIP code")
			return
		}
		customer.Zip = *input.Zip
	}

	if err := cc.DB.Save(customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetCustomers lists all customers with their booking counts. Admin only.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	type customerRow struct {
		models.Customer
		BookingCount int64 `json:"bookingCount"`
	}

	var customers []models.Customer
	if err := cc.DB.Order("created_at DESC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	rows := make([]customerRow, 0, len(customers))
	for _, customer := range customers {
		var count int64
		cc.DB.Model(&models.Booking{}).Where("customer_id = ?", customer.ID).Count(&count)
		rows = append(rows, customerRow{Customer: customer, BookingCount: count})
	}

	c.JSON(http.StatusOK, rows)
}

func (cc *CustomerController) requireCustomer(c *gin.Context) (*models.Customer, error) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, errors.New("no user in context")
	}

	uid, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return nil, err
	}

	var customer models.Customer
	if err := cc.DB.Where("user_id = ?", uid).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No customer profile yet; complete a booking first")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, err
	}
	return &customer, nil
}
