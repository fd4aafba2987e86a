package models

import (
	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"unique"`
	Phone        string        `json:"phone" gorm:"unique"`
	Password     string        `json:"password,omitempty"`
	Address      string        `json:"address"`
	DateOfBirth  string        `json:"date_of_birth"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:PatientID"`
}
