package doctor

import (
	"context"
	"fmt"

	"mediconnect/models"
	"mediconnect/services/schedule"
	"mediconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListDoctors returns all doctor profiles.
func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// GetDoctor returns a single doctor profile.
func (s *DefaultDoctorService) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	doctor, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}
	return doctor, nil
}

// CreateDoctor adds a doctor record. The availability rule must be valid
// before the profile becomes bookable.
func (s *DefaultDoctorService) CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	if doctor.Name == "" {
		return nil, fmt.Errorf("doctor name is required")
	}
	if err := schedule.ValidateRule(doctor.Availability); err != nil {
		return nil, fmt.Errorf("invalid availability: %w", err)
	}

	doctor.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, doctor); err != nil {
		utils.GetLogger().Error("failed to create doctor", zap.Error(err))
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

// UpdateDoctor replaces the mutable fields of a doctor record.
func (s *DefaultDoctorService) UpdateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	if doctor.ID == "" {
		return nil, fmt.Errorf("doctor ID is required for update")
	}
	if err := schedule.ValidateRule(doctor.Availability); err != nil {
		return nil, fmt.Errorf("invalid availability: %w", err)
	}

	if err := s.Repo.Update(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return s.Repo.GetByID(ctx, doctor.ID)
}

// DeleteDoctor removes a doctor record.
func (s *DefaultDoctorService) DeleteDoctor(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}

// UpdateOwnProfile updates experience and availability on the doctor profile
// linked to the calling account. The availability rule is validated and then
// replaced wholesale.
func (s *DefaultDoctorService) UpdateOwnProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.Doctor, error) {
	if err := schedule.ValidateRule(update.Availability); err != nil {
		return nil, fmt.Errorf("invalid availability: %w", err)
	}

	doctor, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor profile: %w", err)
	}

	fields := map[string]any{
		"experience":   update.Experience,
		"availability": update.Availability,
	}
	if err := s.Repo.UpdateFields(ctx, doctor.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update doctor profile: %w", err)
	}

	doctor.Experience = update.Experience
	doctor.Availability = update.Availability
	return doctor, nil
}
