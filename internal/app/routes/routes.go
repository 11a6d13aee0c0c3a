package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/amit20042003/Liberary/internal/app/controllers"
	"github.com/amit20042003/Liberary/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	seatController *controllers.SeatController,
	billingController *controllers.BillingController,
	lifecycleController *controllers.LifecycleController,
	settingsController *controllers.SettingsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.GET("/dashboard", studentController.Dashboard)

		// Seat map, derived from active students on every request
		seats := authenticated.Group("/seats")
		{
			seats.GET("", seatController.SeatMap)
			seats.GET("/available", seatController.Available)
		}

		// Student records and their ledger operations
		students := authenticated.Group("/students")
		{
			students.POST("", studentController.Admit)
			students.GET("", studentController.List)
			students.GET("/due", billingController.DueList)
			students.GET("/:studentId", studentController.Get)
			students.PUT("/:studentId", studentController.Update)
			students.DELETE("/:studentId", studentController.Delete)
			students.PUT("/:studentId/photo", studentController.UploadPhoto)

			// Billing
			students.POST("/:studentId/payments", billingController.Pay)
			students.POST("/:studentId/mark-due", billingController.MarkDue)

			// Lifecycle
			students.POST("/:studentId/depart", lifecycleController.Depart)
			students.POST("/:studentId/reactivate", lifecycleController.Reactivate)
		}

		// Settings
		settings := authenticated.Group("/settings")
		{
			settings.GET("/fees", settingsController.GetFees)
			settings.PUT("/fees", settingsController.UpdateFees)
		}

		// Notifications
		authenticated.POST("/notifications/fee-reminders", billingController.SendReminders)
	}
}
