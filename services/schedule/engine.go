package schedule

import (
	"context"
	"errors"

	appointmentRepo "mediconnect/database/repository/appointment"
	doctorRepo "mediconnect/database/repository/doctor"
	"mediconnect/models"
	"mediconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SchedulingEngine governs the appointment lifecycle: slot queries, booking,
// reschedule, completion and cancellation.
type SchedulingEngine interface {
	// SlotsForDate computes the doctor's candidate slots for a date and marks
	// each as available or taken against the live appointments.
	SlotsForDate(ctx context.Context, doctorID, date string) ([]models.SlotStatus, error)
	// Book creates a Pending appointment on an available slot.
	Book(ctx context.Context, doctorID, userID, date, timeStr string) (*models.Appointment, error)
	// Reschedule moves a Pending appointment to a new available slot.
	Reschedule(ctx context.Context, apptID, newDate, newTime string) (*models.Appointment, error)
	// Complete transitions a Pending appointment to Completed.
	Complete(ctx context.Context, apptID string) (*models.Appointment, error)
	// Cancel transitions a Pending appointment to Cancelled, freeing its slot.
	Cancel(ctx context.Context, apptID string) (*models.Appointment, error)
}

// DefaultSchedulingEngine implements SchedulingEngine over the appointment
// and doctor store contracts. It holds no state of its own between calls; the
// commit-time booking guard is the store's partial unique index on
// (doctorId, date, time) over live statuses, so two concurrent callers cannot
// both win the same slot even after both observed it as available.
type DefaultSchedulingEngine struct {
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
}

// SlotsForDate combines the doctor's availability rule, the slot generator
// and the availability resolver.
func (e *DefaultSchedulingEngine) SlotsForDate(ctx context.Context, doctorID, date string) ([]models.SlotStatus, error) {
	doctor, err := e.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, NotFoundError{Kind: "doctor", ID: doctorID}
		}
		return nil, StoreUnavailableError{Op: "fetch doctor", Err: err}
	}

	slots := GenerateSlots(doctor.Availability, date)
	if len(slots) == 0 {
		return []models.SlotStatus{}, nil
	}

	appts, err := e.Appointments.ListByDoctorDate(ctx, doctorID, date)
	if err != nil {
		return nil, StoreUnavailableError{Op: "list appointments", Err: err}
	}

	return ResolveAvailability(slots, BookedTimes(appts, "")), nil
}

// Book validates the requested slot against the doctor's schedule and creates
// a Pending appointment. The availability pre-check gives a fast answer; the
// store's uniqueness guard settles races at commit time.
func (e *DefaultSchedulingEngine) Book(ctx context.Context, doctorID, userID, date, timeStr string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if err := e.ensureSlotAvailable(ctx, doctorID, date, timeStr, ""); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:       uuid.NewString(),
		DoctorID: doctorID,
		UserID:   userID,
		Date:     date,
		Time:     timeStr,
		Status:   models.StatusPending,
	}
	if err := e.Appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			// Lost the race between resolve and commit.
			return nil, ConflictError{DoctorID: doctorID, Date: date, Time: timeStr}
		}
		return nil, StoreUnavailableError{Op: "create appointment", Err: err}
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", doctorID),
		zap.String("date", date),
		zap.String("time", timeStr))
	return appt, nil
}

// Reschedule moves a Pending appointment to a new slot. The appointment's own
// current slot is excluded from the conflict set, so rescheduling onto itself
// succeeds.
func (e *DefaultSchedulingEngine) Reschedule(ctx context.Context, apptID, newDate, newTime string) (*models.Appointment, error) {
	appt, err := e.getAppointment(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending {
		return nil, InvalidStateError{AppointmentID: apptID, Status: appt.Status, Op: "reschedule"}
	}

	if err := e.ensureSlotAvailable(ctx, appt.DoctorID, newDate, newTime, apptID); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"date":   newDate,
		"time":   newTime,
		"status": models.StatusPending,
	}
	if err := e.Appointments.UpdateFields(ctx, apptID, fields); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			return nil, ConflictError{DoctorID: appt.DoctorID, Date: newDate, Time: newTime}
		case errors.Is(err, appointmentRepo.ErrNotFound):
			return nil, NotFoundError{Kind: "appointment", ID: apptID}
		default:
			return nil, StoreUnavailableError{Op: "update appointment", Err: err}
		}
	}

	appt.Date = newDate
	appt.Time = newTime
	appt.Status = models.StatusPending
	return appt, nil
}

// Complete transitions a Pending appointment to Completed.
func (e *DefaultSchedulingEngine) Complete(ctx context.Context, apptID string) (*models.Appointment, error) {
	return e.transition(ctx, apptID, models.StatusCompleted, "complete")
}

// Cancel transitions a Pending appointment to Cancelled. The slot becomes
// bookable again because cancelled appointments fall outside the live-status
// uniqueness filter.
func (e *DefaultSchedulingEngine) Cancel(ctx context.Context, apptID string) (*models.Appointment, error) {
	return e.transition(ctx, apptID, models.StatusCancelled, "cancel")
}

func (e *DefaultSchedulingEngine) transition(ctx context.Context, apptID string, to models.AppointmentStatus, op string) (*models.Appointment, error) {
	appt, err := e.getAppointment(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending {
		return nil, InvalidStateError{AppointmentID: apptID, Status: appt.Status, Op: op}
	}

	if err := e.Appointments.UpdateFields(ctx, apptID, map[string]any{"status": to}); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NotFoundError{Kind: "appointment", ID: apptID}
		}
		return nil, StoreUnavailableError{Op: "update appointment", Err: err}
	}

	appt.Status = to
	return appt, nil
}

func (e *DefaultSchedulingEngine) getAppointment(ctx context.Context, apptID string) (*models.Appointment, error) {
	appt, err := e.Appointments.GetByID(ctx, apptID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NotFoundError{Kind: "appointment", ID: apptID}
		}
		return nil, StoreUnavailableError{Op: "fetch appointment", Err: err}
	}
	return appt, nil
}

// ensureSlotAvailable re-runs the resolver for the doctor/date and fails with
// ConflictError unless the requested time is an offered, unoccupied slot.
// excludeID removes the appointment being rescheduled from the conflict set.
func (e *DefaultSchedulingEngine) ensureSlotAvailable(ctx context.Context, doctorID, date, timeStr, excludeID string) error {
	doctor, err := e.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return NotFoundError{Kind: "doctor", ID: doctorID}
		}
		return StoreUnavailableError{Op: "fetch doctor", Err: err}
	}

	slots := GenerateSlots(doctor.Availability, date)
	appts, err := e.Appointments.ListByDoctorDate(ctx, doctorID, date)
	if err != nil {
		return StoreUnavailableError{Op: "list appointments", Err: err}
	}

	for _, st := range ResolveAvailability(slots, BookedTimes(appts, excludeID)) {
		if st.Slot.Start == timeStr {
			if st.Available {
				return nil
			}
			break
		}
	}
	// Either occupied or not offered on this date at all.
	return ConflictError{DoctorID: doctorID, Date: date, Time: timeStr}
}
