package handlers

import (
	"errors"
	"net/http"

	"mediconnect/services/schedule"
	"mediconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeScheduleError maps the scheduling error taxonomy onto HTTP statuses.
// Conflicts and invalid transitions are expected outcomes and reported
// verbatim; store failures are logged and surfaced as 503 so the client may
// retry with backoff.
func writeScheduleError(c *gin.Context, err error) {
	var (
		conflict     schedule.ConflictError
		invalidState schedule.InvalidStateError
		notFound     schedule.NotFoundError
		unavailable  schedule.StoreUnavailableError
	)

	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
	case errors.As(err, &invalidState):
		c.JSON(http.StatusConflict, gin.H{"error": invalidState.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &unavailable):
		utils.GetLogger().Error("appointment store unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry"})
	default:
		utils.GetLogger().Error("unexpected scheduling error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// callerID reads the authenticated user ID the auth middleware attached to
// the context.
func callerID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
