package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"clinic-booking-api/models"
)

type AdminDirectory interface {
	AdminByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type DoctorAccounts interface {
	DoctorByEmail(ctx context.Context, email string) (*models.Doctor, error)
}

type PatientDirectory interface {
	PatientExistsByEmail(ctx context.Context, email string) (bool, error)
	PatientExistsByPhone(ctx context.Context, phone string) (bool, error)
	PatientByEmail(ctx context.Context, email string) (*models.Patient, error)
}

// LoginError is a rejected credential check. Controllers map every LoginError
// to the same unauthorized status; only the message differs.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string { return e.Message }

// AuthResult is a successful login: a signed token plus a human-readable
// message.
type AuthResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// AuthService runs the admin, doctor and patient login flows.
type AuthService struct {
	admins   AdminDirectory
	doctors  DoctorAccounts
	patients PatientDirectory
	tokens   *TokenService
}

func NewAuthService(admins AdminDirectory, doctors DoctorAccounts, patients PatientDirectory, tokens *TokenService) *AuthService {
	return &AuthService{admins: admins, doctors: doctors, patients: patients, tokens: tokens}
}

// ValidateAdmin checks admin credentials and issues an ADMIN token with the
// username as subject.
func (s *AuthService) ValidateAdmin(ctx context.Context, username, password string) (*AuthResult, error) {
	admin, err := s.admins.AdminByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}
	if admin == nil {
		return nil, &LoginError{Message: "Admin not found"}
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, &LoginError{Message: "Invalid password"}
	}

	token, err := s.tokens.Issue(admin.Username, RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}
	return &AuthResult{Token: token, Message: "Login successful"}, nil
}

// ValidateDoctorLogin checks doctor credentials and issues a DOCTOR token
// with the email as subject.
func (s *AuthService) ValidateDoctorLogin(ctx context.Context, email, password string) (*AuthResult, error) {
	doctor, err := s.doctors.DoctorByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("doctor login: %w", err)
	}
	if doctor == nil {
		return nil, &LoginError{Message: "Doctor not found"}
	}
	if bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(password)) != nil {
		return nil, &LoginError{Message: "Invalid password"}
	}

	token, err := s.tokens.Issue(doctor.Email, RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("doctor login: %w", err)
	}
	return &AuthResult{Token: token, Message: "Login successful"}, nil
}

// ValidatePatientLogin checks patient credentials and issues a PATIENT token
// with the email as subject.
func (s *AuthService) ValidatePatientLogin(ctx context.Context, email, password string) (*AuthResult, error) {
	patient, err := s.patients.PatientByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("patient login: %w", err)
	}
	if patient == nil {
		return nil, &LoginError{Message: "Patient not found"}
	}
	if bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(password)) != nil {
		return nil, &LoginError{Message: "Invalid password"}
	}

	token, err := s.tokens.Issue(patient.Email, RolePatient)
	if err != nil {
		return nil, fmt.Errorf("patient login: %w", err)
	}
	return &AuthResult{Token: token, Message: "Login successful"}, nil
}
