package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/controllers"
)

// SetupDashboardRoutes configures the role-gated dashboard entry points
func SetupDashboardRoutes(app *fiber.App, ctl *controllers.DashboardController) {
	dashboard := app.Group("/dashboard")
	dashboard.Get("/admin", ctl.AdminDashboard)
	dashboard.Get("/doctor", ctl.DoctorDashboard)
	dashboard.Get("/patient", ctl.PatientDashboard)
}
