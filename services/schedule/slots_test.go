package schedule

import (
	"reflect"
	"testing"

	"mediconnect/models"
)

// 2025-06-02 is a Monday, 2025-06-03 a Tuesday.
const (
	monday  = "2025-06-02"
	tuesday = "2025-06-03"
)

func weekdayRule(start, end string, days ...string) models.AvailabilityRule {
	return models.AvailabilityRule{Days: days, StartTime: start, EndTime: end}
}

func TestGenerateSlotsBasicGrid(t *testing.T) {
	rule := weekdayRule("09:00", "10:00", "Monday")

	got := GenerateSlots(rule, monday)
	want := []models.Slot{
		{Start: "09:00", End: "09:30"},
		{Start: "09:30", End: "10:00"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateSlots = %v, want %v", got, want)
	}
}

func TestGenerateSlotsOffDay(t *testing.T) {
	rule := weekdayRule("09:00", "10:00", "Monday")

	if got := GenerateSlots(rule, tuesday); len(got) != 0 {
		t.Fatalf("expected no slots on a Tuesday, got %v", got)
	}
}

func TestGenerateSlotsWindowEdges(t *testing.T) {
	tests := []struct {
		name  string
		rule  models.AvailabilityRule
		count int
	}{
		{"window shorter than one slot", weekdayRule("09:00", "09:15", "Monday"), 0},
		{"window exactly one slot", weekdayRule("09:00", "09:30", "Monday"), 1},
		{"trailing remainder dropped", weekdayRule("09:00", "10:45", "Monday"), 3},
		{"full working day", weekdayRule("09:00", "17:00", "Monday"), 16},
		{"inverted window", weekdayRule("17:00", "09:00", "Monday"), 0},
		{"empty window", weekdayRule("09:00", "09:00", "Monday"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.rule, monday)
			if len(got) != tt.count {
				t.Fatalf("got %d slots, want %d: %v", len(got), tt.count, got)
			}
		})
	}
}

func TestGenerateSlotsContiguousAndOrdered(t *testing.T) {
	rule := weekdayRule("08:00", "12:00", "Mon", "Wednesday")

	slots := GenerateSlots(rule, monday)
	if len(slots) == 0 {
		t.Fatal("expected slots for an abbreviated day name")
	}
	start, _ := ParseClock(rule.StartTime)
	end, _ := ParseClock(rule.EndTime)
	for i, s := range slots {
		sMin, err := ParseClock(s.Start)
		if err != nil {
			t.Fatalf("slot %d has unparseable start %q", i, s.Start)
		}
		eMin, err := ParseClock(s.End)
		if err != nil {
			t.Fatalf("slot %d has unparseable end %q", i, s.End)
		}
		if eMin-sMin != SlotDurationMinutes {
			t.Fatalf("slot %d duration %d, want %d", i, eMin-sMin, SlotDurationMinutes)
		}
		if sMin < start || eMin > end {
			t.Fatalf("slot %d [%s,%s) outside window", i, s.Start, s.End)
		}
		if i > 0 && slots[i-1].End != s.Start {
			t.Fatalf("gap between slot %d and %d: %s != %s", i-1, i, slots[i-1].End, s.Start)
		}
	}
	if want := (end - start) / SlotDurationMinutes; len(slots) != want {
		t.Fatalf("got %d slots, want %d", len(slots), want)
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	rule := weekdayRule("09:00", "11:00", "Monday")

	first := GenerateSlots(rule, monday)
	second := GenerateSlots(rule, monday)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ: %v vs %v", first, second)
	}
}

func TestGenerateSlotsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rule models.AvailabilityRule
		date string
	}{
		{"malformed date", weekdayRule("09:00", "10:00", "Monday"), "02-06-2025"},
		{"malformed start", weekdayRule("9am", "10:00", "Monday"), monday},
		{"malformed end", weekdayRule("09:00", "25:99", "Monday"), monday},
		{"no days", weekdayRule("09:00", "10:00"), monday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlots(tt.rule, tt.date); len(got) != 0 {
				t.Fatalf("expected no slots, got %v", got)
			}
		})
	}
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name    string
		rule    models.AvailabilityRule
		wantErr bool
	}{
		{"valid", weekdayRule("09:00", "17:00", "Monday", "Friday"), false},
		{"valid abbreviated", weekdayRule("09:00", "17:00", "mon", "tue"), false},
		{"no days", weekdayRule("09:00", "17:00"), true},
		{"unknown day", weekdayRule("09:00", "17:00", "Moonday"), true},
		{"bad start", weekdayRule("nine", "17:00", "Monday"), true},
		{"bad end", weekdayRule("09:00", "17:60", "Monday"), true},
		{"start after end", weekdayRule("17:00", "09:00", "Monday"), true},
		{"start equals end", weekdayRule("09:00", "09:00", "Monday"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRule(tt.rule)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRule = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:30", 0, true},
		{"09-30", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for min := 0; min < 24*60; min += SlotDurationMinutes {
		s := FormatClock(min)
		back, err := ParseClock(s)
		if err != nil || back != min {
			t.Fatalf("round trip failed for %d: %q, %v", min, s, err)
		}
	}
}
