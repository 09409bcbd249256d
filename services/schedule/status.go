package schedule

import (
	"time"

	"mediconnect/models"
)

// DisplayStatus derives the status to present for an appointment at a given
// instant. A Pending appointment whose start has already elapsed is shown as
// Completed without any stored transition; the persisted record only changes
// through an explicit Complete call. Passing now explicitly keeps the
// derivation deterministic under test.
func DisplayStatus(appt models.Appointment, now time.Time) models.AppointmentStatus {
	if appt.Status != models.StatusPending {
		return appt.Status
	}

	d, err := ParseDate(appt.Date)
	if err != nil {
		return appt.Status
	}
	min, err := ParseClock(appt.Time)
	if err != nil {
		return appt.Status
	}

	start := time.Date(d.Year(), d.Month(), d.Day(), min/60, min%60, 0, 0, now.Location())
	if now.After(start) {
		return models.StatusCompleted
	}
	return models.StatusPending
}
