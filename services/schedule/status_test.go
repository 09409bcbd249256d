package schedule

import (
	"testing"
	"time"

	"mediconnect/models"
)

func TestDisplayStatus(t *testing.T) {
	appt := models.Appointment{
		ID:     "a1",
		Date:   "2025-06-02",
		Time:   "09:00",
		Status: models.StatusPending,
	}

	tests := []struct {
		name string
		now  time.Time
		want models.AppointmentStatus
	}{
		{"before start", time.Date(2025, 6, 2, 8, 59, 0, 0, time.UTC), models.StatusPending},
		{"exactly at start", time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), models.StatusPending},
		{"after start", time.Date(2025, 6, 2, 9, 0, 1, 0, time.UTC), models.StatusCompleted},
		{"next day", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), models.StatusCompleted},
		{"previous day", time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC), models.StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayStatus(appt, tt.now); got != tt.want {
				t.Fatalf("DisplayStatus = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDisplayStatusLeavesStoredStatesAlone(t *testing.T) {
	longAgo := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, status := range []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled} {
		appt := models.Appointment{Date: "2025-06-02", Time: "09:00", Status: status}
		if got := DisplayStatus(appt, longAgo); got != status {
			t.Fatalf("DisplayStatus rewrote stored %s to %s", status, got)
		}
	}
}

func TestDisplayStatusUnparseableFieldsFallBack(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, appt := range []models.Appointment{
		{Date: "bad", Time: "09:00", Status: models.StatusPending},
		{Date: "2025-06-02", Time: "bad", Status: models.StatusPending},
	} {
		if got := DisplayStatus(appt, now); got != models.StatusPending {
			t.Fatalf("DisplayStatus = %s, want Pending for unparseable fields", got)
		}
	}
}
