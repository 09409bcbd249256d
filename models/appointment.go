package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// IsLive reports whether an appointment in this status occupies its slot.
// Cancelled appointments free their slot for rebooking.
func (s AppointmentStatus) IsLive() bool {
	return s == StatusPending || s == StatusCompleted
}

// IsTerminal reports whether no further transitions are allowed from this status.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Appointment is a single booking of a doctor's slot by a user.
// Date is "YYYY-MM-DD" and Time is the slot start as "HH:MM" (24-hour).
type Appointment struct {
	ID        string            `bson:"id" json:"id"`
	DoctorID  string            `bson:"doctorId" json:"doctorId"`
	UserID    string            `bson:"userId" json:"userId"`
	Date      string            `bson:"date" json:"date"`
	Time      string            `bson:"time" json:"time"`
	Status    AppointmentStatus `bson:"status" json:"status"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}
