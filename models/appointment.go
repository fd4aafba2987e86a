package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	gorm.Model
	BookingRef      string            `json:"booking_ref" gorm:"uniqueIndex"`
	DoctorID        uint              `json:"doctor_id" gorm:"uniqueIndex:idx_doctor_slot"`
	Doctor          Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	PatientID       uint              `json:"patient_id"`
	Patient         Patient           `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	AppointmentTime time.Time         `json:"appointment_time" gorm:"uniqueIndex:idx_doctor_slot"`
	Status          AppointmentStatus `json:"status"`
}

// EndTime is derived: every appointment occupies a fixed one-hour slot.
func (a *Appointment) EndTime() time.Time {
	return a.AppointmentTime.Add(time.Hour)
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if a.BookingRef == "" {
		a.BookingRef = uuid.NewString()
	}
	if !a.AppointmentTime.After(time.Now()) {
		return fmt.Errorf("appointment time must be in the future")
	}
	return nil
}

// Complete marks a scheduled appointment as completed. Completed is a
// terminal state.
func (a *Appointment) Complete() error {
	if a.Status != StatusScheduled {
		return fmt.Errorf("cannot complete appointment in status %q", a.Status)
	}
	a.Status = StatusCompleted
	return nil
}
