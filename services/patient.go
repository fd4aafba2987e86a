package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clinic-booking-api/models"
)

type PatientAppointments interface {
	ByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
}

// PatientRegistry extends the read-side directory with account creation.
type PatientRegistry interface {
	PatientDirectory
	CreatePatient(ctx context.Context, patient *models.Patient) error
}

// ErrIdentityTaken reports a registration whose email or phone is already in
// use.
var ErrIdentityTaken = errors.New("patient with this email or phone already exists")

// PatientService covers patient registration and the token-gated appointment
// history.
type PatientService struct {
	patients     PatientRegistry
	appointments PatientAppointments
	tokens       *TokenService
}

func NewPatientService(patients PatientRegistry, appointments PatientAppointments, tokens *TokenService) *PatientService {
	return &PatientService{patients: patients, appointments: appointments, tokens: tokens}
}

// Register runs the uniqueness gate, hashes the credential and persists the
// account. The caller is expected to blank the password before echoing the
// record back.
func (s *PatientService) Register(ctx context.Context, patient *models.Patient) error {
	unique, err := s.IsIdentityUnique(ctx, patient.Email, patient.Phone)
	if err != nil {
		return err
	}
	if !unique {
		return ErrIdentityTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(patient.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	patient.Password = string(hashed)

	return s.patients.CreatePatient(ctx, patient)
}

// IsIdentityUnique reports whether neither the email nor the phone is already
// registered. A blank field imposes no constraint.
func (s *PatientService) IsIdentityUnique(ctx context.Context, email, phone string) (bool, error) {
	if strings.TrimSpace(email) != "" {
		taken, err := s.patients.PatientExistsByEmail(ctx, email)
		if err != nil {
			return false, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return false, nil
		}
	}
	if strings.TrimSpace(phone) != "" {
		taken, err := s.patients.PatientExistsByPhone(ctx, phone)
		if err != nil {
			return false, fmt.Errorf("check phone: %w", err)
		}
		if taken {
			return false, nil
		}
	}
	return true, nil
}

// FilterAppointments returns the token holder's appointment history,
// optionally narrowed by condition ("past" or "future") and a
// case-insensitive doctor-name substring. Both filters are optional and
// combine with AND. The condition compares now against the derived end
// time, so an appointment in progress still counts as future.
func (s *PatientService) FilterAppointments(ctx context.Context, token, condition, doctorName string) ([]models.Appointment, error) {
	id, err := s.tokens.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	patient, err := s.patients.PatientByEmail(ctx, id.Subject)
	if err != nil {
		return nil, fmt.Errorf("look up patient: %w", err)
	}
	if patient == nil {
		return nil, &LoginError{Message: "Patient not found"}
	}

	all, err := s.appointments.ByPatient(ctx, patient.ID)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	now := time.Now()
	out := make([]models.Appointment, 0, len(all))
	for _, appointment := range all {
		switch strings.ToLower(condition) {
		case "":
		case "past":
			if !appointment.EndTime().Before(now) {
				continue
			}
		case "future":
			if !appointment.EndTime().After(now) {
				continue
			}
		default:
			return nil, fmt.Errorf("unknown condition %q, expected past or future", condition)
		}
		if doctorName != "" && !strings.Contains(strings.ToLower(appointment.Doctor.Name), strings.ToLower(doctorName)) {
			continue
		}
		out = append(out, appointment)
	}
	return out, nil
}
