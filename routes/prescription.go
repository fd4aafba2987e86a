package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/controllers"
	"clinic-booking-api/middleware"
	"clinic-booking-api/services"
)

// SetupPrescriptionRoutes configures all prescription related routes
func SetupPrescriptionRoutes(app *fiber.App, ctl *controllers.PrescriptionController, denylist services.Denylist) {
	prescription := app.Group("/prescriptions", middleware.Protected(denylist))
	prescription.Post("/", middleware.RequireRole(services.RoleDoctor), ctl.CreatePrescription)
	prescription.Get("/appointment/:id", middleware.RequireRole(services.RoleDoctor, services.RoleAdmin), ctl.GetPrescriptionsByAppointment)
}
