package db

import (
	"log"

	"clinic-booking-api/models"
)

// Migrate applies the relational schema. The composite unique index on
// (doctor_id, appointment_time) is the serialization point for concurrent
// bookings of the same slot.
func Migrate() {
	err := DB.AutoMigrate(
		&models.Admin{},
		&models.Doctor{},
		&models.AvailabilityWindow{},
		&models.Patient{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("✅ Migrations applied successfully!")
}
