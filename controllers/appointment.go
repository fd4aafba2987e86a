package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/db"
	"clinic-booking-api/models"
	"clinic-booking-api/services"
	"clinic-booking-api/utils"
)

type AppointmentController struct {
	Scheduler *services.SchedulingService
	Patients  *services.PatientService
	Store     *db.Store
}

// BookAppointment validates the requested slot and persists the booking for
// the authenticated patient.
func (ctl *AppointmentController) BookAppointment(c *fiber.Ctx) error {
	type BookingInput struct {
		DoctorID        uint      `json:"doctor_id"`
		AppointmentTime time.Time `json:"appointment_time"`
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.DoctorID == 0 || input.AppointmentTime.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "doctor_id and appointment_time are required",
		})
	}

	decision, err := ctl.Scheduler.ValidateAppointment(c.Context(), input.DoctorID, input.AppointmentTime)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to validate appointment",
			Error:   err.Error(),
		})
	}
	switch decision {
	case services.BookingDoctorNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
	case services.BookingTimeInvalid:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Requested time is not available",
		})
	}

	subject, _ := c.Locals("subject").(string)
	patient, err := ctl.Store.PatientByEmail(c.Context(), subject)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve patient",
			Error:   err.Error(),
		})
	}
	if patient == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Patient not found",
		})
	}

	appointment := models.Appointment{
		DoctorID:        input.DoctorID,
		PatientID:       patient.ID,
		AppointmentTime: input.AppointmentTime,
	}
	if err := ctl.Store.CreateAppointment(c.Context(), &appointment); err != nil {
		if errors.Is(err, db.ErrSlotTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Requested time is not available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetMyAppointments returns the caller's appointment history, filtered by the
// optional condition (past/future) and doctor name query parameters.
func (ctl *AppointmentController) GetMyAppointments(c *fiber.Ctx) error {
	token := bearerToken(c)
	appointments, err := ctl.Patients.FilterAppointments(c.Context(), token, c.Query("condition"), c.Query("doctor"))
	if err != nil {
		var le *services.LoginError
		if errors.Is(err, services.ErrInvalidToken) || errors.As(err, &le) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// GetAppointment returns a single appointment by ID
func (ctl *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}
	appointment, err := ctl.Store.AppointmentByID(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}
	if appointment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	return c.JSON(appointment)
}

// CompleteAppointment marks a scheduled appointment as completed
func (ctl *AppointmentController) CompleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}
	appointment, err := ctl.Store.CompleteAppointment(c.Context(), uint(id))
	if err != nil {
		if appointment != nil {
			// transition rejected
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to complete appointment",
			Error:   err.Error(),
		})
	}
	if appointment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	return c.JSON(appointment)
}
