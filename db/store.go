package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"clinic-booking-api/models"
	"clinic-booking-api/utils"
)

// ErrSlotTaken reports a storage-level collision on (doctor, appointment time).
var ErrSlotTaken = errors.New("time slot already booked")

// Store wraps the gorm handle and implements the directory interfaces
// consumed by the service layer. Absent rows come back as nil, nil.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.db.WithContext(ctx).Preload("AvailabilityWindows").First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *Store) DoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *Store) Doctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.db.WithContext(ctx).Preload("AvailabilityWindows").Find(&doctors).Error
	return doctors, err
}

func (s *Store) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return s.db.WithContext(ctx).Create(doctor).Error
}

// ByDoctorAndDate returns the doctor's appointments on the calendar day of
// the given time.
func (s *Store) ByDoctorAndDate(ctx context.Context, doctorID uint, day time.Time) ([]models.Appointment, error) {
	dayStart, dayEnd := utils.DayBounds(day)
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Where("doctor_id = ? AND appointment_time >= ? AND appointment_time < ?", doctorID, dayStart, dayEnd).
		Order("appointment_time asc").
		Find(&appointments).Error
	return appointments, err
}

func (s *Store) ByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("appointment_time asc").
		Find(&appointments).Error
	return appointments, err
}

func (s *Store) AppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.WithContext(ctx).Preload("Doctor").Preload("Patient").First(&appointment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// CreateAppointment persists a booking. The transaction re-checks the slot,
// and the unique index on (doctor_id, appointment_time) backstops concurrent
// writers; either failure surfaces as ErrSlotTaken.
func (s *Store) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&models.Appointment{}).
			Where("doctor_id = ? AND appointment_time = ?", appointment.DoctorID, appointment.AppointmentTime).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if err := tx.Create(appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

// CompleteAppointment transitions a scheduled appointment to completed.
func (s *Store) CompleteAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	appointment, err := s.AppointmentByID(ctx, id)
	if err != nil || appointment == nil {
		return nil, err
	}
	if err := appointment.Complete(); err != nil {
		return appointment, err
	}
	if err := s.db.WithContext(ctx).Model(appointment).Update("status", appointment.Status).Error; err != nil {
		return appointment, err
	}
	return appointment, nil
}

func (s *Store) PatientExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Patient{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (s *Store) PatientExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Patient{}).Where("phone = ?", phone).Count(&n).Error
	return n > 0, err
}

func (s *Store) PatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Store) CreatePatient(ctx context.Context, patient *models.Patient) error {
	return s.db.WithContext(ctx).Create(patient).Error
}

func (s *Store) AdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
