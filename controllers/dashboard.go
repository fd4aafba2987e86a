package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/services"
)

// DashboardController gates role-scoped dashboard entry points with the
// token service; rendering happens client-side.
type DashboardController struct {
	Tokens *services.TokenService
}

func (ctl *DashboardController) AdminDashboard(c *fiber.Ctx) error {
	return ctl.dashboard(c, services.RoleAdmin)
}

func (ctl *DashboardController) DoctorDashboard(c *fiber.Ctx) error {
	return ctl.dashboard(c, services.RoleDoctor)
}

func (ctl *DashboardController) PatientDashboard(c *fiber.Ctx) error {
	return ctl.dashboard(c, services.RolePatient)
}

func (ctl *DashboardController) dashboard(c *fiber.Ctx, role string) error {
	token := bearerToken(c)
	if !ctl.Tokens.ValidateForRole(c.Context(), token, role) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}
	subject, err := ctl.Tokens.Subject(c.Context(), token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}
	return c.JSON(fiber.Map{
		"role":    role,
		"subject": subject,
	})
}
