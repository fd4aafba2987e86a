package controllers

import (
	"github.com/gofiber/fiber/v2"

	"clinic-booking-api/db"
	"clinic-booking-api/models"
	"clinic-booking-api/utils"
)

type PrescriptionController struct {
	Prescriptions *db.PrescriptionStore
	Store         *db.Store
}

// CreatePrescription records a prescription against an existing appointment
func (ctl *PrescriptionController) CreatePrescription(c *fiber.Ctx) error {
	prescription := new(models.Prescription)
	if err := c.BodyParser(prescription); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if prescription.PatientName == "" || prescription.Medication == "" ||
		prescription.Dosage == "" || prescription.AppointmentID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "patient_name, medication, dosage and appointment_id are required",
		})
	}

	appointment, err := ctl.Store.AppointmentByID(c.Context(), prescription.AppointmentID)
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

	if subject, ok := c.Locals("subject").(string); ok {
		prescription.CreatedBy = subject
	}
	if err := ctl.Prescriptions.Create(c.Context(), prescription); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create prescription",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(prescription)
}

// GetPrescriptionsByAppointment lists prescriptions for an appointment
func (ctl *PrescriptionController) GetPrescriptionsByAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}
	prescriptions, err := ctl.Prescriptions.ByAppointment(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch prescriptions",
			Error:   err.Error(),
		})
	}
	return c.JSON(prescriptions)
}
