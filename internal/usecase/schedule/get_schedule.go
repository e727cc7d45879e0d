package schedule

import (
	"context"

	domain "github.com/skipit-studio/skipit-api/internal/domain/schedule"
)

// GetSchedule loads a barber's schedule for the editor, falling back to the
// in-memory default when nothing was ever saved.
type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

func (uc *GetSchedule) Execute(
	ctx context.Context,
	barberID string,
) (*domain.WeeklySchedule, error) {

	ws, err := uc.repo.GetSchedule(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if ws == nil {
		return domain.DefaultWeekly(barberID), nil
	}

	return ws, nil
}
