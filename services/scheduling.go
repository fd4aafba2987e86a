package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinic-booking-api/models"
	"clinic-booking-api/utils"
)

// Directories backing the scheduling decisions. Implementations report
// absent rows as nil results, not errors.
type DoctorDirectory interface {
	DoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	Doctors(ctx context.Context) ([]models.Doctor, error)
}

type AppointmentDirectory interface {
	ByDoctorAndDate(ctx context.Context, doctorID uint, day time.Time) ([]models.Appointment, error)
}

// BookingDecision is the three-way outcome of validating a booking request.
type BookingDecision int

const (
	BookingValid BookingDecision = iota
	BookingTimeInvalid
	BookingDoctorNotFound
)

func (d BookingDecision) String() string {
	switch d {
	case BookingValid:
		return "valid"
	case BookingTimeInvalid:
		return "time invalid"
	case BookingDoctorNotFound:
		return "doctor not found"
	default:
		return fmt.Sprintf("BookingDecision(%d)", int(d))
	}
}

// SchedulingService decides whether appointment requests are admissible. It
// performs no writes of its own; callers persist the booking separately.
type SchedulingService struct {
	doctors      DoctorDirectory
	appointments AppointmentDirectory
}

func NewSchedulingService(doctors DoctorDirectory, appointments AppointmentDirectory) *SchedulingService {
	return &SchedulingService{doctors: doctors, appointments: appointments}
}

// WithinAvailability reports whether the requested start falls inside one of
// the doctor's declared windows for that weekday. Bounds are inclusive at
// both ends, at minute granularity; a doctor with no windows never matches.
func (s *SchedulingService) WithinAvailability(doctor *models.Doctor, at time.Time) bool {
	day := models.DayOfWeek(at.Weekday())
	minute := utils.MinuteOfDay(at)

	for _, w := range doctor.AvailabilityWindows {
		if w.DayOfWeek != day {
			continue
		}
		start, err := utils.ParseClock(w.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseClock(w.EndTime)
		if err != nil {
			continue
		}
		if minute >= start && minute <= end {
			return true
		}
	}
	return false
}

// hasConflict reports whether any existing appointment starts at exactly the
// requested clock time. Only exact start matches count; one-hour spans that
// merely overlap are allowed.
func hasConflict(existing []models.Appointment, at time.Time) bool {
	minute := utils.MinuteOfDay(at)
	for _, appointment := range existing {
		if utils.MinuteOfDay(appointment.AppointmentTime) == minute {
			return true
		}
	}
	return false
}

// ValidateAppointment decides whether booking the doctor at the given time is
// admissible. Checks short-circuit in order: unknown doctor, availability,
// slot conflict. The error return carries collaborator faults only.
func (s *SchedulingService) ValidateAppointment(ctx context.Context, doctorID uint, at time.Time) (BookingDecision, error) {
	doctor, err := s.doctors.DoctorByID(ctx, doctorID)
	if err != nil {
		return BookingTimeInvalid, fmt.Errorf("look up doctor %d: %w", doctorID, err)
	}
	if doctor == nil {
		return BookingDoctorNotFound, nil
	}

	if !s.WithinAvailability(doctor, at) {
		return BookingTimeInvalid, nil
	}

	existing, err := s.appointments.ByDoctorAndDate(ctx, doctorID, at)
	if err != nil {
		return BookingTimeInvalid, fmt.Errorf("load appointments for doctor %d: %w", doctorID, err)
	}
	if hasConflict(existing, at) {
		return BookingTimeInvalid, nil
	}
	return BookingValid, nil
}

// DoctorFilter narrows the doctor listing. Zero values impose no constraint;
// set filters combine with AND.
type DoctorFilter struct {
	Name         string
	Specialty    string
	DesiredStart string // "HH:MM"
	DesiredEnd   string // "HH:MM"
}

// FilterDoctors returns the doctors matching the filter: case-insensitive
// name substring, case-insensitive exact specialty, and an availability
// window overlapping the desired clock range.
func (s *SchedulingService) FilterDoctors(ctx context.Context, filter DoctorFilter) ([]models.Doctor, error) {
	all, err := s.doctors.Doctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	var desiredStart, desiredEnd int
	byTime := filter.DesiredStart != "" && filter.DesiredEnd != ""
	if byTime {
		if desiredStart, err = utils.ParseClock(filter.DesiredStart); err != nil {
			return nil, err
		}
		if desiredEnd, err = utils.ParseClock(filter.DesiredEnd); err != nil {
			return nil, err
		}
	}

	out := make([]models.Doctor, 0, len(all))
	for _, d := range all {
		if filter.Name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Specialty != "" && !strings.EqualFold(filter.Specialty, d.Specialty) {
			continue
		}
		if byTime && !anyWindowOverlaps(d.AvailabilityWindows, desiredStart, desiredEnd) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// A window overlaps the desired range when it neither ends before the range
// starts nor starts after it ends.
func anyWindowOverlaps(windows []models.AvailabilityWindow, desiredStart, desiredEnd int) bool {
	for _, w := range windows {
		start, err := utils.ParseClock(w.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseClock(w.EndTime)
		if err != nil {
			continue
		}
		if end >= desiredStart && start <= desiredEnd {
			return true
		}
	}
	return false
}
