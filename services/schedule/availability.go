package schedule

import (
	"mediconnect/models"
)

// BookedTimes collects the start times occupied by live appointments.
// Cancelled appointments are skipped so their slot is free again. When
// excludeID names an appointment (a reschedule in progress), its own slot is
// left out of the set so an appointment can be rescheduled onto itself.
func BookedTimes(appts []models.Appointment, excludeID string) map[string]struct{} {
	booked := make(map[string]struct{}, len(appts))
	for _, a := range appts {
		if !a.Status.IsLive() {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		booked[a.Time] = struct{}{}
	}
	return booked
}

// ResolveAvailability classifies each candidate slot as available or taken.
// A slot is taken iff its start time exactly matches a booked time; the fixed
// grid makes interval intersection unnecessary. Past slots are not filtered
// here; whether to hide elapsed slots on the current date is a presentation
// decision for the caller. Output order mirrors the input order.
func ResolveAvailability(slots []models.Slot, booked map[string]struct{}) []models.SlotStatus {
	if slots == nil {
		return nil
	}
	statuses := make([]models.SlotStatus, 0, len(slots))
	for _, s := range slots {
		_, taken := booked[s.Start]
		statuses = append(statuses, models.SlotStatus{Slot: s, Available: !taken})
	}
	return statuses
}
