package handlers

import (
	"errors"
	"net/http"

	doctorRepo "mediconnect/database/repository/doctor"
	"mediconnect/models"
	doctorService "mediconnect/services/doctor"
	"mediconnect/services/schedule"
	"mediconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes the doctor directory, admin record management, the
// doctor's own profile update and the public slot-availability query.
type DoctorHandler struct {
	DoctorService doctorService.DoctorService
	Engine        schedule.SchedulingEngine
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(svc doctorService.DoctorService, engine schedule.SchedulingEngine) *DoctorHandler {
	return &DoctorHandler{DoctorService: svc, Engine: engine}
}

// ListDoctorsHandler handles GET /api/doctors.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.DoctorService.ListDoctors(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching doctors"})
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

// GetDoctorHandler handles GET /api/doctors/:id.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	doctor, err := h.DoctorService.GetDoctor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		utils.GetLogger().Error("failed to fetch doctor", zap.String("doctorID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching doctor"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// GetDoctorSlotsHandler handles GET /api/doctors/:id/slots?date=YYYY-MM-DD.
// Elapsed slots on the current date are included; hiding them is left to the
// client, which knows the viewer's clock.
func (h *DoctorHandler) GetDoctorSlotsHandler(c *gin.Context) {
	id := c.Param("id")
	date := c.Query("date")
	if _, err := schedule.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	statuses, err := h.Engine.SlotsForDate(c.Request.Context(), id, date)
	if err != nil {
		writeScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// CreateDoctorHandler handles POST /api/doctors (admin).
func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.DoctorService.CreateDoctor(c.Request.Context(), &doctor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDoctorHandler handles PUT /api/doctors/:id (admin).
func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doctor.ID = c.Param("id")

	updated, err := h.DoctorService.UpdateDoctor(c.Request.Context(), &doctor)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDoctorHandler handles DELETE /api/doctors/:id (admin).
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.DoctorService.DeleteDoctor(c.Request.Context(), id); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		utils.GetLogger().Error("failed to delete doctor", zap.String("doctorID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// UpdateProfileHandler handles PUT /api/doctors/profile (doctor). The
// availability rule is replaced wholesale after validation.
func (h *DoctorHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var update doctorService.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.DoctorService.UpdateOwnProfile(c.Request.Context(), userID, update)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor profile not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doctor)
}
