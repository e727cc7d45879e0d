package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/skipit-studio/skipit-api/internal/audit"
	"github.com/skipit-studio/skipit-api/internal/cache"
	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
	"github.com/skipit-studio/skipit-api/internal/logger"
)

// ======================================================
// INPUT
// ======================================================

type SaveScheduleInput struct {
	BarberID string
	UserID   string

	Days           map[domain.Weekday]domain.DaySchedule
	ManualOverride *domain.ManualOverride
}

// ======================================================
// USE CASE
// ======================================================

// SaveSchedule validates and persists a full weekly schedule edit.
// Validation failures come back as field-keyed data, not as an error.
type SaveSchedule struct {
	repo  domain.Repository
	cache cache.StatusCache
	audit *audit.Dispatcher
}

func NewSaveSchedule(
	repo domain.Repository,
	c cache.StatusCache,
	audit *audit.Dispatcher,
) *SaveSchedule {
	return &SaveSchedule{repo: repo, cache: c, audit: audit}
}

func (uc *SaveSchedule) Execute(
	ctx context.Context,
	in SaveScheduleInput,
) (domain.ValidationErrors, error) {

	ws := &domain.WeeklySchedule{
		BarberID:       in.BarberID,
		Days:           in.Days,
		ManualOverride: in.ManualOverride,
	}

	if errs := domain.Validate(ws); !errs.Valid() {
		return errs, nil
	}

	if err := uc.repo.SaveSchedule(ctx, ws); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: in.BarberID,
		UserID:   &in.UserID,
		Action:   audit.ActionScheduleSaved,
		Entity:   "schedule",
		EntityID: &in.BarberID,
	})

	uc.invalidateStatus(ctx, in.BarberID)

	return nil, nil
}

func (uc *SaveSchedule) invalidateStatus(ctx context.Context, barberID string) {
	if err := uc.cache.Invalidate(ctx, barberID); err != nil {
		logger.L().Warn("status cache invalidation failed",
			zap.String("barber_id", barberID),
			zap.Error(err))
	}
}
