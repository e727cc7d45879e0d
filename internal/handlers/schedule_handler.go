package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
	"github.com/skipit-studio/skipit-api/internal/httperr"
	"github.com/skipit-studio/skipit-api/internal/httpresp"
	"github.com/skipit-studio/skipit-api/internal/middleware"
	ucSchedule "github.com/skipit-studio/skipit-api/internal/usecase/schedule"
)

// ScheduleHandler is the admin schedule editor's API: load-or-default,
// full save, manual override toggle and single-day edits.
type ScheduleHandler struct {
	getSchedule    *ucSchedule.GetSchedule
	saveSchedule   *ucSchedule.SaveSchedule
	toggleOverride *ucSchedule.ToggleOverride
	updateDay      *ucSchedule.UpdateDay
}

func NewScheduleHandler(
	getSchedule *ucSchedule.GetSchedule,
	saveSchedule *ucSchedule.SaveSchedule,
	toggleOverride *ucSchedule.ToggleOverride,
	updateDay *ucSchedule.UpdateDay,
) *ScheduleHandler {
	return &ScheduleHandler{
		getSchedule:    getSchedule,
		saveSchedule:   saveSchedule,
		toggleOverride: toggleOverride,
		updateDay:      updateDay,
	}
}

// --------- Requests ---------

type DayInput struct {
	Active     bool    `json:"active"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	BreakStart *string `json:"breakStart"`
	BreakEnd   *string `json:"breakEnd"`
}

type ScheduleSaveRequest struct {
	Monday    DayInput `json:"monday" binding:"required"`
	Tuesday   DayInput `json:"tuesday" binding:"required"`
	Wednesday DayInput `json:"wednesday" binding:"required"`
	Thursday  DayInput `json:"thursday" binding:"required"`
	Friday    DayInput `json:"friday" binding:"required"`
	Saturday  DayInput `json:"saturday" binding:"required"`
	Sunday    DayInput `json:"sunday" binding:"required"`

	ManualOverride *string `json:"manualOverride"`
}

type OverrideRequest struct {
	// "open", "closed" or null to clear explicitly.
	Override *string `json:"override"`
}

// --------- Handlers ---------

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(string)

	ws, err := h.getSchedule.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Error al cargar el horario.")
		return
	}

	httpresp.OK(c, ws)
}

func (h *ScheduleHandler) Save(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(string)

	var req ScheduleSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := ucSchedule.SaveScheduleInput{
		BarberID: barberID,
		UserID:   barberID,
		Days: map[domain.Weekday]domain.DaySchedule{
			domain.Monday:    toDomainDay(req.Monday),
			domain.Tuesday:   toDomainDay(req.Tuesday),
			domain.Wednesday: toDomainDay(req.Wednesday),
			domain.Thursday:  toDomainDay(req.Thursday),
			domain.Friday:    toDomainDay(req.Friday),
			domain.Saturday:  toDomainDay(req.Saturday),
			domain.Sunday:    toDomainDay(req.Sunday),
		},
	}

	if req.ManualOverride != nil {
		ov := domain.ManualOverride(*req.ManualOverride)
		in.ManualOverride = &ov
	}

	validationErrs, err := h.saveSchedule.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Error al guardar el horario.")
		return
	}
	if !validationErrs.Valid() {
		httperr.Validation(c, validationErrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) SetOverride(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(string)

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var requested *domain.ManualOverride
	if req.Override != nil {
		ov := domain.ManualOverride(*req.Override)
		requested = &ov
	}

	final, err := h.toggleOverride.Execute(c.Request.Context(), barberID, barberID, requested)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_override") {
			httperr.BadRequest(c, "invalid_override", "El estado manual debe ser open o closed.")
			return
		}
		httperr.Internal(c, "failed_to_update_override", "Error al actualizar el estado manual.")
		return
	}

	var effective *string
	if final != nil {
		s := string(*final)
		effective = &s
	}

	c.JSON(http.StatusOK, gin.H{"manual_override": effective})
}

func (h *ScheduleHandler) UpdateDay(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(string)

	day, ok := domain.ParseWeekday(c.Param("day"))
	if !ok {
		httperr.BadRequest(c, "invalid_day", "Día de la semana desconocido.")
		return
	}

	var req domain.DayUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	validationErrs, err := h.updateDay.Execute(c.Request.Context(), barberID, barberID, day, req)
	if err != nil {
		httperr.Internal(c, "failed_to_update_day", "Error al actualizar el día.")
		return
	}
	if !validationErrs.Valid() {
		httperr.Validation(c, validationErrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toDomainDay(in DayInput) domain.DaySchedule {
	d := domain.DaySchedule{
		Active: in.Active,
		Start:  in.Start,
		End:    in.End,
	}
	if in.BreakStart != nil && *in.BreakStart != "" {
		d.BreakStart = in.BreakStart
	}
	if in.BreakEnd != nil && *in.BreakEnd != "" {
		d.BreakEnd = in.BreakEnd
	}
	return d
}
