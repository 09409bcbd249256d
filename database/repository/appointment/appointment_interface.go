package appointmentRepo

import (
	"context"
	"errors"

	"mediconnect/models"
)

// ErrSlotTaken is returned when a write would violate the live-slot uniqueness
// guarantee on (doctorId, date, time).
var ErrSlotTaken = errors.New("appointment slot already taken")

// ErrNotFound is returned when the referenced appointment does not exist.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines the store contract for appointment records.
// Each call is atomic at the single-record level; cross-call atomicity for
// booking conflicts is provided by the store's partial unique index on
// (doctorId, date, time) over live statuses.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// UpdateFields applies a partial update to an appointment record.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// ListByDoctorDate retrieves all appointments for a doctor on a date.
	ListByDoctorDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	// ListByUser retrieves all appointments booked by a user.
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	// ListByDoctor retrieves all appointments for a doctor.
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// ListAll retrieves every appointment record.
	ListAll(ctx context.Context) ([]models.Appointment, error)
}
