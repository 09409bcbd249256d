package schedule

import (
	"reflect"
	"testing"

	"mediconnect/models"
)

func TestResolveAvailabilityMarksExactMatches(t *testing.T) {
	slots := GenerateSlots(weekdayRule("09:00", "10:00", "Monday"), monday)
	booked := map[string]struct{}{"09:00": {}}

	got := ResolveAvailability(slots, booked)
	want := []models.SlotStatus{
		{Slot: models.Slot{Start: "09:00", End: "09:30"}, Available: false},
		{Slot: models.Slot{Start: "09:30", End: "10:00"}, Available: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ResolveAvailability = %v, want %v", got, want)
	}
}

func TestResolveAvailabilityPreservesOrder(t *testing.T) {
	slots := GenerateSlots(weekdayRule("09:00", "13:00", "Monday"), monday)
	booked := map[string]struct{}{"10:30": {}, "12:00": {}}

	got := ResolveAvailability(slots, booked)
	if len(got) != len(slots) {
		t.Fatalf("resolver changed slot count: %d != %d", len(got), len(slots))
	}
	for i := range got {
		if got[i].Slot != slots[i] {
			t.Fatalf("slot %d reordered: %v != %v", i, got[i].Slot, slots[i])
		}
		_, taken := booked[slots[i].Start]
		if got[i].Available == taken {
			t.Fatalf("slot %s availability = %v, want %v", slots[i].Start, got[i].Available, !taken)
		}
	}
}

func TestResolveAvailabilityIdempotent(t *testing.T) {
	slots := GenerateSlots(weekdayRule("09:00", "11:00", "Monday"), monday)
	booked := map[string]struct{}{"09:30": {}}

	first := ResolveAvailability(slots, booked)
	second := ResolveAvailability(slots, booked)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated resolution differs: %v vs %v", first, second)
	}
}

func TestResolveAvailabilityEmptyInputs(t *testing.T) {
	if got := ResolveAvailability(nil, map[string]struct{}{"09:00": {}}); got != nil {
		t.Fatalf("expected nil for nil slots, got %v", got)
	}

	slots := []models.Slot{{Start: "09:00", End: "09:30"}}
	got := ResolveAvailability(slots, map[string]struct{}{})
	if len(got) != 1 || !got[0].Available {
		t.Fatalf("expected single available slot, got %v", got)
	}
}

func TestBookedTimes(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", Time: "09:00", Status: models.StatusPending},
		{ID: "a2", Time: "09:30", Status: models.StatusCompleted},
		{ID: "a3", Time: "10:00", Status: models.StatusCancelled},
	}

	booked := BookedTimes(appts, "")
	if _, ok := booked["09:00"]; !ok {
		t.Error("pending appointment should occupy its slot")
	}
	if _, ok := booked["09:30"]; !ok {
		t.Error("completed appointment should occupy its slot")
	}
	if _, ok := booked["10:00"]; ok {
		t.Error("cancelled appointment must not occupy its slot")
	}

	// Excluding an appointment frees its own slot only.
	booked = BookedTimes(appts, "a1")
	if _, ok := booked["09:00"]; ok {
		t.Error("excluded appointment must not occupy its slot")
	}
	if _, ok := booked["09:30"]; !ok {
		t.Error("other live appointments must stay booked")
	}
}
