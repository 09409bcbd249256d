package models

import "time"

// AvailabilityRule is a doctor's recurring weekly schedule template: the
// weekdays on which appointments are accepted and the daily time window,
// expressed as "HH:MM" (24-hour). Replaced wholesale on profile update.
type AvailabilityRule struct {
	Days      []string `bson:"days" json:"days"`
	StartTime string   `bson:"startTime" json:"startTime"`
	EndTime   string   `bson:"endTime" json:"endTime"`
}

// Doctor represents a bookable practitioner profile.
type Doctor struct {
	ID             string           `bson:"id" json:"id"`
	UserID         string           `bson:"userId,omitempty" json:"userId,omitempty"`
	Name           string           `bson:"name" json:"name"`
	Specialization string           `bson:"specialization" json:"specialization"`
	Experience     int              `bson:"experience" json:"experience"`
	Availability   AvailabilityRule `bson:"availability" json:"availability"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time        `bson:"updatedAt" json:"updatedAt"`
}
