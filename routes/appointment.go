package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/controllers"
	"clinic-booking-api/middleware"
	"clinic-booking-api/services"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ctl *controllers.AppointmentController, denylist services.Denylist) {
	appointment := app.Group("/appointments", middleware.Protected(denylist))
	appointment.Post("/", middleware.RequireRole(services.RolePatient), ctl.BookAppointment)
	appointment.Get("/", middleware.RequireRole(services.RolePatient), ctl.GetMyAppointments)
	appointment.Get("/:id", middleware.RequireRole(services.RoleDoctor, services.RoleAdmin), ctl.GetAppointment)
	appointment.Patch("/:id/complete", middleware.RequireRole(services.RoleDoctor, services.RoleAdmin), ctl.CompleteAppointment)
}
