package schedule

import (
	"context"

	"go.uber.org/zap"

	"github.com/skipit-studio/skipit-api/internal/cache"
	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
	"github.com/skipit-studio/skipit-api/internal/logger"
	"github.com/skipit-studio/skipit-api/internal/timezone"
)

// GetStatus answers the public "open now" question. Results are served from
// the status cache while fresh; a cache outage only costs the lookup, never
// the request.
type GetStatus struct {
	repo     domain.Repository
	cache    cache.StatusCache
	timezone string
}

func NewGetStatus(repo domain.Repository, c cache.StatusCache, tz string) *GetStatus {
	return &GetStatus{repo: repo, cache: c, timezone: tz}
}

func (uc *GetStatus) Execute(
	ctx context.Context,
	barberID string,
) (cache.StatusEntry, error) {

	if entry, err := uc.cache.Get(ctx, barberID); err != nil {
		logger.L().Warn("status cache read failed", zap.Error(err))
	} else if entry != nil {
		return *entry, nil
	}

	ws, err := uc.repo.GetSchedule(ctx, barberID)
	if err != nil {
		return cache.StatusEntry{}, err
	}

	now := timezone.NowIn(uc.timezone)

	entry := cache.StatusEntry{
		Open:      domain.IsOpen(ws, now),
		CheckedAt: now,
	}
	if ws != nil && ws.ManualOverride != nil {
		ov := string(*ws.ManualOverride)
		entry.ManualOverride = &ov
	}

	if err := uc.cache.Set(ctx, barberID, entry); err != nil {
		logger.L().Warn("status cache write failed", zap.Error(err))
	}

	return entry, nil
}
