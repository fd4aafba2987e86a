package models

import (
	"fmt"

	"gorm.io/gorm"

	"clinic-booking-api/utils"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

type Doctor struct {
	gorm.Model
	Name                string               `json:"name"`
	Specialty           string               `json:"specialty"`
	Email               string               `json:"email" gorm:"unique"`
	Phone               string               `json:"phone"`
	Password            string               `json:"password,omitempty"`
	AvailabilityWindows []AvailabilityWindow `json:"availability_windows,omitempty" gorm:"foreignKey:DoctorID"`
}

// AvailabilityWindow declares when a doctor accepts appointments on a given
// weekday. A doctor may have any number of windows, including overlapping
// ones on the same day.
type AvailabilityWindow struct {
	gorm.Model
	DoctorID  uint      `json:"doctor_id"`
	DayOfWeek DayOfWeek `json:"day_of_week"`
	StartTime string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime   string    `json:"end_time"`   // Format "HH:MM" in 24h
}

// BeforeSave rejects windows that do not span a positive range.
func (w *AvailabilityWindow) BeforeSave(tx *gorm.DB) error {
	start, err := utils.ParseClock(w.StartTime)
	if err != nil {
		return err
	}
	end, err := utils.ParseClock(w.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("availability window end %s must be after start %s", w.EndTime, w.StartTime)
	}
	if w.DayOfWeek < Sunday || w.DayOfWeek > Saturday {
		return fmt.Errorf("invalid day of week: %d", w.DayOfWeek)
	}
	return nil
}
