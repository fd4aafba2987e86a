package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/models"
	"clinic-booking-api/services"
	"clinic-booking-api/utils"
)

type AuthController struct {
	Auth     *services.AuthService
	Patients *services.PatientService
	Tokens   *services.TokenService
}

// AdminLogin handles the admin credential flow
func (ctl *AuthController) AdminLogin(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	result, err := ctl.Auth.ValidateAdmin(c.Context(), input.Username, input.Password)
	if err != nil {
		return loginFailure(c, err)
	}
	return c.JSON(result)
}

// DoctorLogin handles the doctor credential flow
func (ctl *AuthController) DoctorLogin(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	result, err := ctl.Auth.ValidateDoctorLogin(c.Context(), input.Email, input.Password)
	if err != nil {
		return loginFailure(c, err)
	}
	return c.JSON(result)
}

// PatientLogin handles the patient credential flow
func (ctl *AuthController) PatientLogin(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	result, err := ctl.Auth.ValidatePatientLogin(c.Context(), input.Email, input.Password)
	if err != nil {
		return loginFailure(c, err)
	}
	return c.JSON(result)
}

// RegisterPatient creates a patient account
func (ctl *AuthController) RegisterPatient(c *fiber.Ctx) error {
	patient := new(models.Patient)
	if err := c.BodyParser(patient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if patient.Email == "" || patient.Password == "" || patient.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	if err := ctl.Patients.Register(c.Context(), patient); err != nil {
		if errors.Is(err, services.ErrIdentityTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to register patient",
			Error:   err.Error(),
		})
	}

	// Remove password from response
	patient.Password = ""
	return c.Status(fiber.StatusCreated).JSON(patient)
}

// Logout revokes the presented token so it can no longer be used
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No authentication token",
		})
	}
	if err := ctl.Tokens.Revoke(c.Context(), token); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// loginFailure maps a login error to a response: any LoginError is
// unauthorized with its message, everything else is an internal error.
func loginFailure(c *fiber.Ctx, err error) error {
	var le *services.LoginError
	if errors.As(err, &le) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": le.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Login failed",
		Error:   err.Error(),
	})
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
