package models

// Slot is a derived fixed-duration candidate appointment window on a given
// date. Start and End are "HH:MM" (24-hour). Slots are never persisted; they
// are recomputed from the doctor's availability rule on demand.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotStatus pairs a candidate slot with its availability against the
// doctor's live appointments for the date.
type SlotStatus struct {
	Slot      Slot `json:"slot"`
	Available bool `json:"available"`
}
