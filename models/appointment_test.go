package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndTimeIsOneHourAfterStart(t *testing.T) {
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local)
	a := Appointment{AppointmentTime: start}

	assert.Equal(t, start.Add(time.Hour), a.EndTime())
}

func TestBeforeCreateDefaults(t *testing.T) {
	a := Appointment{AppointmentTime: time.Now().Add(24 * time.Hour)}
	require.NoError(t, a.BeforeCreate(nil))

	assert.Equal(t, StatusScheduled, a.Status)
	_, err := uuid.Parse(a.BookingRef)
	assert.NoError(t, err)
}

func TestBeforeCreateRejectsPastTime(t *testing.T) {
	a := Appointment{AppointmentTime: time.Now().Add(-time.Minute)}
	assert.Error(t, a.BeforeCreate(nil))
}

func TestComplete(t *testing.T) {
	a := Appointment{Status: StatusScheduled}
	require.NoError(t, a.Complete())
	assert.Equal(t, StatusCompleted, a.Status)

	// completed is terminal
	assert.Error(t, a.Complete())
}
