package routes

import (
	"scoopdoo-backend/config"
	"scoopdoo-backend/controllers"
	"scoopdoo-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Booking   *controllers.BookingController
	Customer  *controllers.CustomerController
	Schedule  *controllers.ScheduleController
	Dashboard *controllers.DashboardController
	Health    *controllers.HealthController
}

func SetupRouter(cfg *config.Config, logger *zap.Logger, ctrl Controllers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(logger))

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/forgot-password", ctrl.Auth.ForgotPassword)
		auth.POST("/reset-password", ctrl.Auth.ResetPassword)

		auth.GET("/me", utils.AuthMiddleware(cfg.JWTSecret), ctrl.Auth.Me)
	}

	api := r.Group("/api")
	{
		api.GET("/health/db", ctrl.Health.CheckDB)

		// Booking flow: quote and create allow guest checkout, a valid
		// token attaches the booking to the account.
		bookings := api.Group("/bookings")
		{
			bookings.POST("/quote", ctrl.Booking.Quote)
			bookings.POST("", utils.OptionalAuthMiddleware(cfg.JWTSecret), ctrl.Booking.CreateBooking)

			authed := bookings.Group("", utils.AuthMiddleware(cfg.JWTSecret))
			{
				authed.GET("", ctrl.Booking.GetBookings)
				authed.GET("/:id", ctrl.Booking.GetBooking)
				authed.PUT("/:id/status", utils.AdminMiddleware(), ctrl.Booking.UpdateStatus)
				authed.POST("/:id/payment", ctrl.Booking.ConfirmPayment)
			}
		}

		// Customer dashboard
		me := api.Group("", utils.AuthMiddleware(cfg.JWTSecret))
		{
			me.GET("/profile", ctrl.Customer.GetProfile)
			me.PUT("/profile", ctrl.Customer.UpdateProfile)
			me.GET("/my-schedule", ctrl.Schedule.GetMySchedule)
		}

		// Admin surface
		admin := api.Group("", utils.AuthMiddleware(cfg.JWTSecret), utils.AdminMiddleware())
		{
			admin.GET("/customers", ctrl.Customer.GetCustomers)
			admin.GET("/schedule/today", ctrl.Schedule.GetToday)
			admin.GET("/schedule/week", ctrl.Schedule.GetWeek)
			admin.GET("/dashboard", ctrl.Dashboard.GetOverview)
		}
	}

	return r
}
