package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityWindowBeforeSave(t *testing.T) {
	tests := []struct {
		name    string
		window  AvailabilityWindow
		wantErr bool
	}{
		{"valid window", AvailabilityWindow{DayOfWeek: Monday, StartTime: "09:00", EndTime: "17:00"}, false},
		{"end equals start", AvailabilityWindow{DayOfWeek: Monday, StartTime: "09:00", EndTime: "09:00"}, true},
		{"end before start", AvailabilityWindow{DayOfWeek: Monday, StartTime: "17:00", EndTime: "09:00"}, true},
		{"malformed start", AvailabilityWindow{DayOfWeek: Monday, StartTime: "9am", EndTime: "17:00"}, true},
		{"malformed end", AvailabilityWindow{DayOfWeek: Monday, StartTime: "09:00", EndTime: "25:00"}, true},
		{"day out of range", AvailabilityWindow{DayOfWeek: DayOfWeek(7), StartTime: "09:00", EndTime: "17:00"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.BeforeSave(nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
