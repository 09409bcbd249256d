package doctor

import (
	"context"

	doctorRepo "mediconnect/database/repository/doctor"
	"mediconnect/models"
)

// ProfileUpdate carries the fields a doctor may change on their own profile.
// The availability rule is replaced wholesale, never patched per-field.
type ProfileUpdate struct {
	Experience   int                     `json:"experience"`
	Availability models.AvailabilityRule `json:"availability"`
}

// DoctorService defines doctor directory and profile operations.
type DoctorService interface {
	// ListDoctors returns all doctor profiles (public directory).
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	// GetDoctor returns a single doctor profile.
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	// CreateDoctor adds a doctor record (admin).
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	// UpdateDoctor replaces a doctor record's mutable fields (admin).
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	// DeleteDoctor removes a doctor record (admin).
	DeleteDoctor(ctx context.Context, id string) error
	// UpdateOwnProfile updates the experience and availability of the doctor
	// profile linked to the calling account.
	UpdateOwnProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.Doctor, error)
}

// DefaultDoctorService implements DoctorService over the doctor repository.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}
