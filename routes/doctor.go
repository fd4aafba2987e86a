package routes

import (
	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/controllers"
	"clinic-booking-api/middleware"
	"clinic-booking-api/services"
)

// SetupDoctorRoutes configures all doctor related routes
func SetupDoctorRoutes(app *fiber.App, ctl *controllers.DoctorController, denylist services.Denylist) {
	doctor := app.Group("/doctors")
	doctor.Get("/", ctl.GetDoctors)
	doctor.Get("/:id", ctl.GetDoctor)
	doctor.Post("/", middleware.Protected(denylist), middleware.RequireRole(services.RoleAdmin), ctl.CreateDoctor)
}
