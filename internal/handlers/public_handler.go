package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skipit-studio/skipit-api/internal/httpresp"
	"github.com/skipit-studio/skipit-api/internal/logger"
	ucSchedule "github.com/skipit-studio/skipit-api/internal/usecase/schedule"
)

// PublicHandler serves the landing page: the live open/closed badge and the
// weekly schedule behind the date picker. No authentication.
type PublicHandler struct {
	getStatus   *ucSchedule.GetStatus
	getSchedule *ucSchedule.GetSchedule
}

func NewPublicHandler(
	getStatus *ucSchedule.GetStatus,
	getSchedule *ucSchedule.GetSchedule,
) *PublicHandler {
	return &PublicHandler{
		getStatus:   getStatus,
		getSchedule: getSchedule,
	}
}

func (h *PublicHandler) Status(c *gin.Context) {
	barberID := c.Param("barberId")

	entry, err := h.getStatus.Execute(c.Request.Context(), barberID)
	if err != nil {
		// Fail safe: never advertise "open" off the back of a backend
		// failure. The badge shows closed and the poller retries.
		logger.L().Error("status lookup failed",
			zap.String("barber_id", barberID),
			zap.Error(err))

		c.JSON(http.StatusOK, gin.H{
			"open":       false,
			"degraded":   true,
			"checked_at": time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"open":            entry.Open,
		"manual_override": entry.ManualOverride,
		"checked_at":      entry.CheckedAt,
	})
}

func (h *PublicHandler) Schedule(c *gin.Context) {
	barberID := c.Param("barberId")

	ws, err := h.getSchedule.Execute(c.Request.Context(), barberID)
	if err != nil {
		logger.L().Error("public schedule lookup failed",
			zap.String("barber_id", barberID),
			zap.Error(err))

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	httpresp.OK(c, ws)
}
