package main

import (
	"errors"
	"fmt"

	"scoopdoo-backend/config"
	"scoopdoo-backend/controllers"
	"scoopdoo-backend/models"
	"scoopdoo-backend/routes"
	"scoopdoo-backend/services"
	"scoopdoo-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		logger.Fatal("database initialization error", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Booking{},
		&models.ServiceDay{},
		&models.PasswordResetToken{},
		&models.NotificationLog{},
	); err != nil {
		logger.Fatal("migration error", zap.Error(err))
	}

	if err := ensureAdmin(db, cfg); err != nil {
		logger.Fatal("admin seed error", zap.Error(err))
	}

	emailSvc := services.NewEmailService(db, logger, cfg.ResendAPIKey, cfg.EmailFrom, cfg.AdminEmail, cfg.SiteURL)
	notifySvc := services.NewNotifyService(db, logger, cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.AdminPhone)

	var payments services.PaymentCollector = services.DisabledCollector{}
	if cfg.PayPalClientID != "" {
		payments, err = services.NewPayPalCollector(logger, cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalLive)
		if err != nil {
			logger.Fatal("payment collector error", zap.Error(err))
		}
	} else {
		logger.Warn("PayPal credentials not set, payment verification disabled")
	}

	digest := services.NewDigestService(db, emailSvc, logger)
	scheduler := digest.StartScheduler()
	defer scheduler.Stop()

	r := routes.SetupRouter(cfg, logger, routes.Controllers{
		Auth:      &controllers.AuthController{DB: db, Cfg: cfg, Email: emailSvc, Logger: logger},
		Booking:   &controllers.BookingController{DB: db, Payments: payments, Email: emailSvc, Notify: notifySvc, Logger: logger},
		Customer:  &controllers.CustomerController{DB: db},
		Schedule:  &controllers.ScheduleController{DB: db},
		Dashboard: &controllers.DashboardController{DB: db},
		Health:    &controllers.HealthController{DB: db},
	})
	printRoutes(r)

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// ensureAdmin creates the admin account on first boot when ADMIN_PASSWORD
// is configured. An existing user with the admin email is promoted.
func ensureAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var user models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&user).Error
	if err == nil {
		if user.Role != models.RoleAdmin {
			return db.Model(&user).Update("role", models.RoleAdmin).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{
		Email:    cfg.AdminEmail,
		Name:     "Admin",
		Password: cfg.AdminPassword, // Hashed in BeforeCreate hook
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	return db.Create(&admin).Error
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
