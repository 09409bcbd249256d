package schedule

import (
	"fmt"

	"mediconnect/models"
)

// ConflictError signals that the requested slot is not available at commit
// time: it is either occupied by a live appointment or not offered on that
// date at all.
type ConflictError struct {
	DoctorID string
	Date     string
	Time     string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("slot %s %s is not available for doctor %s", e.Date, e.Time, e.DoctorID)
}

// InvalidStateError signals a lifecycle transition attempted from a terminal
// or otherwise disallowed state.
type InvalidStateError struct {
	AppointmentID string
	Status        models.AppointmentStatus
	Op            string
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s appointment %s in state %s", e.Op, e.AppointmentID, e.Status)
}

// NotFoundError signals that a referenced appointment or doctor does not exist.
type NotFoundError struct {
	Kind string // "appointment" or "doctor"
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// StoreUnavailableError signals that the appointment store failed or timed
// out. The engine performs no retries; retry policy belongs to the caller.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e StoreUnavailableError) Error() string {
	return fmt.Sprintf("appointment store unavailable during %s: %v", e.Op, e.Err)
}

func (e StoreUnavailableError) Unwrap() error {
	return e.Err
}
