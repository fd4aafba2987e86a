package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/controllers"
	"clinic-booking-api/middleware"
	"clinic-booking-api/services"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ctl *controllers.AuthController, limiter *middleware.RateLimiter, denylist services.Denylist) {
	auth := app.Group("/auth")

	// Public routes, rate limited
	auth.Post("/admin/login", limiter.Limit(), ctl.AdminLogin)
	auth.Post("/doctor/login", limiter.Limit(), ctl.DoctorLogin)
	auth.Post("/patient/login", limiter.Limit(), ctl.PatientLogin)
	auth.Post("/patient/register", limiter.Limit(), ctl.RegisterPatient)

	// Protected routes
	auth.Post("/logout", middleware.Protected(denylist), ctl.Logout)
}
