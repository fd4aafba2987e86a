package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinic-booking-api/models"
)

type fakeAdmins struct {
	admins map[string]*models.Admin
	err    error
}

func (f *fakeAdmins) AdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.admins[username], nil
}

type fakePatients struct {
	patients map[string]*models.Patient // keyed by email
	phones   map[string]bool
	err      error
}

func (f *fakePatients) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if f.err != nil {
		return f.err
	}
	if f.patients == nil {
		f.patients = make(map[string]*models.Patient)
	}
	f.patients[patient.Email] = patient
	return nil
}

func (f *fakePatients) PatientExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.patients[email]
	return ok, nil
}

func (f *fakePatients) PatientExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.phones[phone], nil
}

func (f *fakePatients) PatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.patients[email], nil
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func testTokens() *TokenService {
	return NewTokenService("test-secret", time.Hour, nil)
}

func TestValidateAdmin(t *testing.T) {
	admins := &fakeAdmins{admins: map[string]*models.Admin{
		"root": {Model: gorm.Model{ID: 1}, Username: "root", Password: hash(t, "s3cret")},
	}}
	tokens := testTokens()
	svc := NewAuthService(admins, &fakeDoctors{}, &fakePatients{}, tokens)

	t.Run("success issues an admin token", func(t *testing.T) {
		result, err := svc.ValidateAdmin(context.Background(), "root", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "Login successful", result.Message)

		id, err := tokens.Verify(context.Background(), result.Token)
		require.NoError(t, err)
		assert.Equal(t, "root", id.Subject)
		assert.Equal(t, RoleAdmin, id.Role)
	})

	t.Run("unknown admin", func(t *testing.T) {
		_, err := svc.ValidateAdmin(context.Background(), "nobody", "s3cret")
		var le *LoginError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "Admin not found", le.Message)
	})

	t.Run("wrong password never issues a token", func(t *testing.T) {
		result, err := svc.ValidateAdmin(context.Background(), "root", "wrong")
		var le *LoginError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "Invalid password", le.Message)
		assert.Nil(t, result)
	})

	t.Run("collaborator fault is not a login error", func(t *testing.T) {
		broken := NewAuthService(&fakeAdmins{err: errors.New("connection refused")}, &fakeDoctors{}, &fakePatients{}, tokens)
		_, err := broken.ValidateAdmin(context.Background(), "root", "s3cret")
		require.Error(t, err)
		var le *LoginError
		assert.False(t, errors.As(err, &le))
	})
}

func TestValidateDoctorLogin(t *testing.T) {
	doctors := &fakeDoctors{doctors: []models.Doctor{
		{
			Model:     gorm.Model{ID: 3},
			Name:      "Alice Carter",
			Specialty: "Cardiology",
			Email:     "carter@clinic.example",
			Password:  hash(t, "stetho5cope"),
		},
	}}
	tokens := testTokens()
	svc := NewAuthService(&fakeAdmins{}, doctors, &fakePatients{}, tokens)

	t.Run("success issues a doctor token with email subject", func(t *testing.T) {
		result, err := svc.ValidateDoctorLogin(context.Background(), "carter@clinic.example", "stetho5cope")
		require.NoError(t, err)
		assert.Equal(t, "Login successful", result.Message)

		id, err := tokens.Verify(context.Background(), result.Token)
		require.NoError(t, err)
		assert.Equal(t, "carter@clinic.example", id.Subject)
		assert.Equal(t, RoleDoctor, id.Role)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		_, err := svc.ValidateDoctorLogin(context.Background(), "ghost@clinic.example", "stetho5cope")
		var le *LoginError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "Doctor not found", le.Message)
	})

	t.Run("wrong password never issues a token", func(t *testing.T) {
		result, err := svc.ValidateDoctorLogin(context.Background(), "carter@clinic.example", "wrong")
		var le *LoginError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "Invalid password", le.Message)
		assert.Nil(t, result)
	})
}

func TestValidatePatientLogin(t *testing.T) {
	patients := &fakePatients{patients: map[string]*models.Patient{
		"alice@example.com": {
			Model:    gorm.Model{ID: 7},
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: hash(t, "pa55word"),
		},
	}}
	tokens := testTokens()
	svc := NewAuthService(&fakeAdmins{}, &fakeDoctors{}, patients, tokens)

	t.Run("success issues a patient token with email subject", func(t *testing.T) {
		result, err := svc.ValidatePatientLogin(context.Background(), "alice@example.com", "pa55word")
		require.NoError(t, err)

		id, err := tokens.Verify(context.Background(), result.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", id.Subject)
		assert.Equal(t, RolePatient, id.Role)
	})

	t.Run("unknown patient", func(t *testing.T) {
		_, err := svc.ValidatePatientLogin(context.Background(), "ghost@example.com", "pa55word")
		var le *LoginError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "Patient not found", le.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.ValidatePatientLogin(context.Background(), "alice@example.com", "wrong")
		var le *LoginError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "Invalid password", le.Message)
	})
}
