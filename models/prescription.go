package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prescription lives in MongoDB; AppointmentID links back to the relational
// appointment record.
type Prescription struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientName   string             `json:"patient_name" bson:"patientName"`
	AppointmentID uint               `json:"appointment_id" bson:"appointmentId"`
	Medication    string             `json:"medication" bson:"medication"`
	Dosage        string             `json:"dosage" bson:"dosage"`
	DoctorNotes   string             `json:"doctor_notes,omitempty" bson:"doctorNotes,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	CreatedBy     string             `json:"created_by" bson:"createdBy"`
}
