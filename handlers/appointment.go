package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "mediconnect/database/repository/appointment"
	doctorRepo "mediconnect/database/repository/doctor"
	"mediconnect/models"
	"mediconnect/services/schedule"
	"mediconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking, reschedule, completion, cancellation
// and the various appointment listings.
type AppointmentHandler struct {
	Engine       schedule.SchedulingEngine
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(engine schedule.SchedulingEngine, appts appointmentRepo.AppointmentRepository, doctors doctorRepo.DoctorRepository) *AppointmentHandler {
	return &AppointmentHandler{Engine: engine, Appointments: appts, Doctors: doctors}
}

// appointmentView decorates a stored appointment with the status derived at
// request time; a Pending appointment whose start has elapsed is displayed as
// Completed without any stored transition.
type appointmentView struct {
	models.Appointment
	DisplayStatus models.AppointmentStatus `json:"displayStatus"`
}

func viewsOf(appts []models.Appointment, now time.Time) []appointmentView {
	views := make([]appointmentView, 0, len(appts))
	for _, a := range appts {
		views = append(views, appointmentView{Appointment: a, DisplayStatus: schedule.DisplayStatus(a, now)})
	}
	return views
}

// BookHandler handles POST /api/appointments.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req struct {
		Doctor string `json:"doctor" binding:"required"`
		Date   string `json:"date" binding:"required"`
		Time   string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := schedule.ParseDate(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := schedule.ParseClock(req.Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Engine.Book(c.Request.Context(), req.Doctor, userID, req.Date, req.Time)
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// MyAppointmentsHandler handles GET /api/appointments/my.
func (h *AppointmentHandler) MyAppointmentsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	appts, err := h.Appointments.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("failed to list user appointments", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching appointments"})
		return
	}
	c.JSON(http.StatusOK, viewsOf(appts, time.Now()))
}

// DoctorAppointmentsHandler handles GET /api/appointments/doctor: the
// appointment list for the doctor profile linked to the calling account.
func (h *AppointmentHandler) DoctorAppointmentsHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	doctor, err := h.Doctors.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor profile not found"})
			return
		}
		utils.GetLogger().Error("failed to resolve doctor profile", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching appointments"})
		return
	}

	appts, err := h.Appointments.ListByDoctor(c.Request.Context(), doctor.ID)
	if err != nil {
		utils.GetLogger().Error("failed to list doctor appointments", zap.String("doctorID", doctor.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching appointments"})
		return
	}
	c.JSON(http.StatusOK, viewsOf(appts, time.Now()))
}

// AllAppointmentsHandler handles GET /api/appointments (admin).
func (h *AppointmentHandler) AllAppointmentsHandler(c *gin.Context) {
	appts, err := h.Appointments.ListAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list all appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching all appointments"})
		return
	}
	c.JSON(http.StatusOK, viewsOf(appts, time.Now()))
}

// RescheduleHandler handles PATCH /api/appointments/:id/reschedule.
func (h *AppointmentHandler) RescheduleHandler(c *gin.Context) {
	apptID := c.Param("id")
	if !h.authorizeOwnership(c, apptID) {
		return
	}

	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := schedule.ParseDate(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := schedule.ParseClock(req.Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Engine.Reschedule(c.Request.Context(), apptID, req.Date, req.Time)
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CompleteHandler handles PATCH /api/appointments/:id/complete.
func (h *AppointmentHandler) CompleteHandler(c *gin.Context) {
	apptID := c.Param("id")
	if !h.authorizeOwnership(c, apptID) {
		return
	}

	appt, err := h.Engine.Complete(c.Request.Context(), apptID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelHandler handles PATCH /api/appointments/:id/cancel.
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	apptID := c.Param("id")
	if !h.authorizeOwnership(c, apptID) {
		return
	}

	appt, err := h.Engine.Cancel(c.Request.Context(), apptID)
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// authorizeOwnership lets the booking patient, the appointment's doctor, or
// an admin act on an appointment. On failure it writes the response and
// returns false.
func (h *AppointmentHandler) authorizeOwnership(c *gin.Context, apptID string) bool {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return false
	}
	roleVal, _ := c.Get("role")
	role, _ := roleVal.(models.Role)
	if role == models.RoleAdmin {
		return true
	}

	appt, err := h.Appointments.GetByID(c.Request.Context(), apptID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return false
		}
		utils.GetLogger().Error("failed to fetch appointment", zap.String("appointmentID", apptID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
		return false
	}

	if appt.UserID == userID {
		return true
	}
	if role == models.RoleDoctor {
		doctor, err := h.Doctors.GetByUserID(c.Request.Context(), userID)
		if err == nil && doctor.ID == appt.DoctorID {
			return true
		}
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	return false
}
