package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/skipit-studio/skipit-api/internal/audit"
	"github.com/skipit-studio/skipit-api/internal/cache"
	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
	"github.com/skipit-studio/skipit-api/internal/logger"
)

// UpdateDay merge-writes one weekday. The resulting day is validated with
// the same rules as a full save before anything is written, so a single-day
// edit cannot persist a schedule the editor would reject.
type UpdateDay struct {
	repo  domain.Repository
	cache cache.StatusCache
	audit *audit.Dispatcher
}

func NewUpdateDay(
	repo domain.Repository,
	c cache.StatusCache,
	audit *audit.Dispatcher,
) *UpdateDay {
	return &UpdateDay{repo: repo, cache: c, audit: audit}
}

func (uc *UpdateDay) Execute(
	ctx context.Context,
	barberID string,
	userID string,
	day domain.Weekday,
	in domain.DayUpdate,
) (domain.ValidationErrors, error) {

	ws, err := uc.repo.GetSchedule(ctx, barberID)
	if err != nil {
		return nil, err
	}

	var current *domain.DaySchedule
	if ws != nil {
		d := ws.Day(day)
		current = &d
	}

	patch := domain.BuildDayPatch(in, current)

	if errs := domain.ValidateDay(day, patch.Day(current)); !errs.Valid() {
		return errs, nil
	}

	if err := uc.repo.PatchDay(ctx, barberID, day, patch); err != nil {
		return nil, err
	}

	dayName := string(day)
	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		UserID:   &userID,
		Action:   audit.ActionDayUpdated,
		Entity:   "schedule_day",
		EntityID: &dayName,
	})

	if err := uc.cache.Invalidate(ctx, barberID); err != nil {
		logger.L().Warn("status cache invalidation failed",
			zap.String("barber_id", barberID),
			zap.Error(err))
	}

	return nil, nil
}
