package doctorRepo

import (
	"context"
	"errors"

	"mediconnect/models"
)

// ErrNotFound is returned when the referenced doctor does not exist.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	// GetByUserID retrieves the doctor profile linked to a login account.
	GetByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	// GetAll retrieves all doctors.
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(ctx context.Context, doctor *models.Doctor) error
	// Update modifies an existing doctor record.
	Update(ctx context.Context, doctor *models.Doctor) error
	// UpdateFields applies a partial update to a doctor record.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// Delete removes a doctor record by its ID.
	Delete(ctx context.Context, id string) error
}
