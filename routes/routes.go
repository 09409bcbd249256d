package routes

import (
	"net/http"
	"time"

	"mediconnect/handlers"
	"mediconnect/middleware"
	"mediconnect/models"
	"mediconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and account management
// endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/profile", hb.Auth.ProfileHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.GET("/users", hb.Auth.ListUsersHandler)
		admin.DELETE("/users/:id", hb.Auth.DeleteUserHandler)
	}
}

// RegisterDoctorRoutes registers the public doctor directory and slot query,
// admin record management and the doctor's own profile update.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		// Public: anyone can browse doctors and check availability.
		api.GET("", hb.Doctor.ListDoctorsHandler)
		api.GET("/id/:id", hb.Doctor.GetDoctorHandler)
		api.GET("/id/:id/slots", hb.Doctor.GetDoctorSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))

		protected.PUT("/profile", middleware.RequireRole(models.RoleDoctor), hb.Doctor.UpdateProfileHandler)

		admin := protected.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Doctor.CreateDoctorHandler)
		admin.PUT("/update/:id", hb.Doctor.UpdateDoctorHandler)
		admin.DELETE("/delete/:id", hb.Doctor.DeleteDoctorHandler)
	}
}

// RegisterAppointmentRoutes registers booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))

		api.POST("", middleware.RequireRole(models.RoleUser, models.RoleAdmin), hb.Appointment.BookHandler)
		api.GET("/my", hb.Appointment.MyAppointmentsHandler)
		api.GET("/doctor", middleware.RequireRole(models.RoleDoctor), hb.Appointment.DoctorAppointmentsHandler)
		api.GET("", middleware.RequireRole(models.RoleAdmin), hb.Appointment.AllAppointmentsHandler)

		api.PATCH("/:id/reschedule", hb.Appointment.RescheduleHandler)
		api.PATCH("/:id/complete", hb.Appointment.CompleteHandler)
		api.PATCH("/:id/cancel", hb.Appointment.CancelHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes applies shared middleware and registers all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
}
