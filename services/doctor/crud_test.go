package doctor

import (
	"context"
	"testing"

	doctorRepo "mediconnect/database/repository/doctor"
	"mediconnect/models"
)

// memDoctorRepo is an in-memory DoctorRepository.
type memDoctorRepo struct {
	doctors map[string]models.Doctor
}

func newMemDoctorRepo() *memDoctorRepo {
	return &memDoctorRepo{doctors: make(map[string]models.Doctor)}
}

func (m *memDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	out := d
	return &out, nil
}

func (m *memDoctorRepo) GetByUserID(_ context.Context, userID string) (*models.Doctor, error) {
	for _, d := range m.doctors {
		if d.UserID == userID {
			out := d
			return &out, nil
		}
	}
	return nil, doctorRepo.ErrNotFound
}

func (m *memDoctorRepo) GetAll(_ context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range m.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (m *memDoctorRepo) Create(_ context.Context, doctor *models.Doctor) error {
	m.doctors[doctor.ID] = *doctor
	return nil
}

func (m *memDoctorRepo) Update(_ context.Context, doctor *models.Doctor) error {
	if _, ok := m.doctors[doctor.ID]; !ok {
		return doctorRepo.ErrNotFound
	}
	m.doctors[doctor.ID] = *doctor
	return nil
}

func (m *memDoctorRepo) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	d, ok := m.doctors[id]
	if !ok {
		return doctorRepo.ErrNotFound
	}
	if v, ok := fields["experience"].(int); ok {
		d.Experience = v
	}
	if v, ok := fields["availability"].(models.AvailabilityRule); ok {
		d.Availability = v
	}
	m.doctors[id] = d
	return nil
}

func (m *memDoctorRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.doctors[id]; !ok {
		return doctorRepo.ErrNotFound
	}
	delete(m.doctors, id)
	return nil
}

func validRule() models.AvailabilityRule {
	return models.AvailabilityRule{
		Days:      []string{"Monday", "Wednesday"},
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}

func TestCreateDoctorValidatesAvailability(t *testing.T) {
	svc := &DefaultDoctorService{Repo: newMemDoctorRepo()}
	ctx := context.Background()

	created, err := svc.CreateDoctor(ctx, &models.Doctor{Name: "Asha Verma", Availability: validRule()})
	if err != nil {
		t.Fatalf("CreateDoctor failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created doctor has no ID")
	}

	bad := &models.Doctor{
		Name:         "No Schedule",
		Availability: models.AvailabilityRule{Days: nil, StartTime: "09:00", EndTime: "17:00"},
	}
	if _, err := svc.CreateDoctor(ctx, bad); err == nil {
		t.Fatal("expected error for empty availability days")
	}

	if _, err := svc.CreateDoctor(ctx, &models.Doctor{Availability: validRule()}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestUpdateOwnProfileReplacesAvailabilityWholesale(t *testing.T) {
	repo := newMemDoctorRepo()
	repo.doctors["d1"] = models.Doctor{
		ID:           "d1",
		UserID:       "u1",
		Name:         "Asha Verma",
		Experience:   4,
		Availability: validRule(),
	}
	svc := &DefaultDoctorService{Repo: repo}

	update := ProfileUpdate{
		Experience: 5,
		Availability: models.AvailabilityRule{
			Days:      []string{"Friday"},
			StartTime: "10:00",
			EndTime:   "14:00",
		},
	}
	updated, err := svc.UpdateOwnProfile(context.Background(), "u1", update)
	if err != nil {
		t.Fatalf("UpdateOwnProfile failed: %v", err)
	}
	if updated.Experience != 5 {
		t.Fatalf("experience = %d, want 5", updated.Experience)
	}
	if len(updated.Availability.Days) != 1 || updated.Availability.Days[0] != "Friday" {
		t.Fatalf("availability not replaced wholesale: %+v", updated.Availability)
	}

	stored := repo.doctors["d1"]
	if stored.Availability.StartTime != "10:00" || stored.Availability.EndTime != "14:00" {
		t.Fatalf("stored availability = %+v", stored.Availability)
	}
}

func TestUpdateOwnProfileRejectsInvalidRule(t *testing.T) {
	repo := newMemDoctorRepo()
	repo.doctors["d1"] = models.Doctor{ID: "d1", UserID: "u1", Availability: validRule()}
	svc := &DefaultDoctorService{Repo: repo}

	update := ProfileUpdate{
		Availability: models.AvailabilityRule{
			Days:      []string{"Monday"},
			StartTime: "17:00",
			EndTime:   "09:00",
		},
	}
	if _, err := svc.UpdateOwnProfile(context.Background(), "u1", update); err == nil {
		t.Fatal("expected error for inverted window")
	}

	// The stored rule is untouched after a failed update.
	if repo.doctors["d1"].Availability.StartTime != "09:00" {
		t.Fatalf("stored rule changed after failed update: %+v", repo.doctors["d1"].Availability)
	}
}

func TestUpdateOwnProfileUnknownAccount(t *testing.T) {
	svc := &DefaultDoctorService{Repo: newMemDoctorRepo()}

	_, err := svc.UpdateOwnProfile(context.Background(), "ghost", ProfileUpdate{Availability: validRule()})
	if err == nil {
		t.Fatal("expected error for account without doctor profile")
	}
}
