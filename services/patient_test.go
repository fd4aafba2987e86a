package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clinic-booking-api/models"
)

func TestIsIdentityUnique(t *testing.T) {
	patients := &fakePatients{
		patients: map[string]*models.Patient{
			"taken@example.com": {Email: "taken@example.com"},
		},
		phones: map[string]bool{"555-0100": true},
	}
	svc := NewPatientService(patients, &fakeAppointments{}, testTokens())

	tests := []struct {
		name  string
		email string
		phone string
		want  bool
	}{
		{"fresh email and phone", "new@example.com", "555-0199", true},
		{"taken email", "taken@example.com", "555-0199", false},
		{"taken phone", "new@example.com", "555-0100", false},
		{"both taken", "taken@example.com", "555-0100", false},
		{"blank email ignores email check", "", "555-0199", true},
		{"blank phone ignores phone check", "new@example.com", "", true},
		{"both blank is unconstrained", "", "", true},
		{"blank email does not hide taken phone", "", "555-0100", false},
		{"whitespace-only email is blank", "   ", "555-0199", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsIdentityUnique(context.Background(), tt.email, tt.phone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("success hashes the password and persists", func(t *testing.T) {
		patients := &fakePatients{}
		svc := NewPatientService(patients, &fakeAppointments{}, testTokens())

		patient := &models.Patient{Name: "Alice", Email: "alice@example.com", Password: "pa55word"}
		require.NoError(t, svc.Register(context.Background(), patient))

		stored := patients.patients["alice@example.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "pa55word", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pa55word")))
	})

	t.Run("taken identity is rejected before persisting", func(t *testing.T) {
		patients := &fakePatients{patients: map[string]*models.Patient{
			"taken@example.com": {Email: "taken@example.com"},
		}}
		svc := NewPatientService(patients, &fakeAppointments{}, testTokens())

		patient := &models.Patient{Name: "Bob", Email: "taken@example.com", Password: "pa55word"}
		err := svc.Register(context.Background(), patient)
		assert.ErrorIs(t, err, ErrIdentityTaken)
		// the input is untouched on rejection
		assert.Equal(t, "pa55word", patient.Password)
	})

	t.Run("taken phone is rejected", func(t *testing.T) {
		patients := &fakePatients{phones: map[string]bool{"555-0100": true}}
		svc := NewPatientService(patients, &fakeAppointments{}, testTokens())

		patient := &models.Patient{Name: "Carol", Email: "carol@example.com", Phone: "555-0100", Password: "pa55word"}
		err := svc.Register(context.Background(), patient)
		assert.ErrorIs(t, err, ErrIdentityTaken)
	})
}

func TestFilterAppointments(t *testing.T) {
	now := time.Now()
	past := models.Appointment{
		Model:           gorm.Model{ID: 1},
		Doctor:          models.Doctor{Name: "Alice Carter"},
		AppointmentTime: now.Add(-48 * time.Hour),
	}
	upcoming := models.Appointment{
		Model:           gorm.Model{ID: 2},
		Doctor:          models.Doctor{Name: "Bob Alison"},
		AppointmentTime: now.Add(48 * time.Hour),
	}

	patients := &fakePatients{patients: map[string]*models.Patient{
		"alice@example.com": {Model: gorm.Model{ID: 7}, Email: "alice@example.com"},
	}}
	appointments := &fakeAppointments{byPatient: map[uint][]models.Appointment{
		7: {past, upcoming},
	}}
	tokens := testTokens()
	svc := NewPatientService(patients, appointments, tokens)

	token, err := tokens.Issue("alice@example.com", RolePatient)
	require.NoError(t, err)

	t.Run("no filters returns everything", func(t *testing.T) {
		got, err := svc.FilterAppointments(context.Background(), token, "", "")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("past condition", func(t *testing.T) {
		got, err := svc.FilterAppointments(context.Background(), token, "past", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].ID)
	})

	t.Run("future condition is case-insensitive", func(t *testing.T) {
		got, err := svc.FilterAppointments(context.Background(), token, "Future", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].ID)
	})

	t.Run("doctor name substring", func(t *testing.T) {
		got, err := svc.FilterAppointments(context.Background(), token, "", "carter")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].ID)
	})

	t.Run("condition and doctor combine", func(t *testing.T) {
		got, err := svc.FilterAppointments(context.Background(), token, "future", "carter")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown condition is rejected", func(t *testing.T) {
		_, err := svc.FilterAppointments(context.Background(), token, "yesterday", "")
		assert.Error(t, err)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := svc.FilterAppointments(context.Background(), "junk", "", "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token subject without a patient record", func(t *testing.T) {
		stray, err := tokens.Issue("ghost@example.com", RolePatient)
		require.NoError(t, err)
		_, err = svc.FilterAppointments(context.Background(), stray, "", "")
		var le *LoginError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, "Patient not found", le.Message)
	})
}

func TestFilterAppointmentsConditionUsesEndTime(t *testing.T) {
	now := time.Now()
	// started half an hour ago, so the derived end is still ahead of now
	inProgress := models.Appointment{
		Model:           gorm.Model{ID: 1},
		Doctor:          models.Doctor{Name: "Alice Carter"},
		AppointmentTime: now.Add(-30 * time.Minute),
	}
	finished := models.Appointment{
		Model:           gorm.Model{ID: 2},
		Doctor:          models.Doctor{Name: "Alice Carter"},
		AppointmentTime: now.Add(-2 * time.Hour),
	}

	patients := &fakePatients{patients: map[string]*models.Patient{
		"alice@example.com": {Model: gorm.Model{ID: 7}, Email: "alice@example.com"},
	}}
	appointments := &fakeAppointments{byPatient: map[uint][]models.Appointment{
		7: {inProgress, finished},
	}}
	tokens := testTokens()
	svc := NewPatientService(patients, appointments, tokens)

	token, err := tokens.Issue("alice@example.com", RolePatient)
	require.NoError(t, err)

	t.Run("an appointment in progress is still future", func(t *testing.T) {
		got, err := svc.FilterAppointments(context.Background(), token, "future", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].ID)
	})

	t.Run("past only after the derived end has elapsed", func(t *testing.T) {
		got, err := svc.FilterAppointments(context.Background(), token, "past", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].ID)
	})
}
