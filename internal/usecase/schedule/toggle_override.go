package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/skipit-studio/skipit-api/internal/audit"
	"github.com/skipit-studio/skipit-api/internal/cache"
	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
	"github.com/skipit-studio/skipit-api/internal/httperr"
	"github.com/skipit-studio/skipit-api/internal/logger"
)

// ToggleOverride applies the manual open/closed control. Requesting the
// value that is already set clears it back to schedule-driven status, so
// the same button both arms and disarms the override.
type ToggleOverride struct {
	repo  domain.Repository
	cache cache.StatusCache
	audit *audit.Dispatcher
}

func NewToggleOverride(
	repo domain.Repository,
	c cache.StatusCache,
	audit *audit.Dispatcher,
) *ToggleOverride {
	return &ToggleOverride{repo: repo, cache: c, audit: audit}
}

// Execute returns the override that is in effect after the call. requested
// nil is an explicit clear.
func (uc *ToggleOverride) Execute(
	ctx context.Context,
	barberID string,
	userID string,
	requested *domain.ManualOverride,
) (*domain.ManualOverride, error) {

	if requested != nil &&
		*requested != domain.OverrideOpen &&
		*requested != domain.OverrideClosed {
		return nil, httperr.ErrBusiness("invalid_override")
	}

	ws, err := uc.repo.GetSchedule(ctx, barberID)
	if err != nil {
		return nil, err
	}

	final := requested
	if requested != nil && ws != nil &&
		ws.ManualOverride != nil && *ws.ManualOverride == *requested {
		final = nil
	}

	if err := uc.repo.UpdateManualOverride(ctx, barberID, final); err != nil {
		return nil, err
	}

	meta := map[string]any{"override": nil}
	if final != nil {
		meta["override"] = string(*final)
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		UserID:   &userID,
		Action:   audit.ActionOverrideUpdated,
		Entity:   "schedule",
		EntityID: &barberID,
		Metadata: meta,
	})

	if err := uc.cache.Invalidate(ctx, barberID); err != nil {
		logger.L().Warn("status cache invalidation failed",
			zap.String("barber_id", barberID),
			zap.Error(err))
	}

	return final, nil
}
