package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"clinic-booking-api/db"
	"clinic-booking-api/models"
	"clinic-booking-api/services"
	"clinic-booking-api/utils"
)

type DoctorController struct {
	Scheduler *services.SchedulingService
	Store     *db.Store
}

// GetDoctors lists doctors, optionally filtered by name, specialty and a
// desired availability range (available_from / available_until, "HH:MM").
func (ctl *DoctorController) GetDoctors(c *fiber.Ctx) error {
	filter := services.DoctorFilter{
		Name:         c.Query("name"),
		Specialty:    c.Query("specialty"),
		DesiredStart: c.Query("available_from"),
		DesiredEnd:   c.Query("available_until"),
	}
	for _, clock := range []string{filter.DesiredStart, filter.DesiredEnd} {
		if clock == "" {
			continue
		}
		if _, err := utils.ParseClock(clock); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	doctors, err := ctl.Scheduler.FilterDoctors(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// GetDoctor returns a doctor with availability windows by ID
func (ctl *DoctorController) GetDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid doctor ID",
		})
	}
	doctor, err := ctl.Store.DoctorByID(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctor",
			Error:   err.Error(),
		})
	}
	if doctor == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
	}
	return c.JSON(doctor)
}

// CreateDoctor registers a doctor together with availability windows and the
// login credential
func (ctl *DoctorController) CreateDoctor(c *fiber.Ctx) error {
	doctor := new(models.Doctor)
	if err := c.BodyParser(doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if doctor.Name == "" || doctor.Specialty == "" || doctor.Email == "" || doctor.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, specialty, email and password are required",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(doctor.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}
	doctor.Password = string(hashedPassword)

	if err := ctl.Store.CreateDoctor(c.Context(), doctor); err != nil {
		// window validation hooks surface here
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor",
			Error:   err.Error(),
		})
	}

	// Remove password from response
	doctor.Password = ""
	return c.Status(fiber.StatusCreated).JSON(doctor)
}
