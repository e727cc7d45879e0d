package audit

import (
	"go.uber.org/zap"

	"github.com/skipit-studio/skipit-api/internal/logger"
)

// Actions recorded against the schedule document.
const (
	ActionScheduleSaved   = "schedule_saved"
	ActionOverrideUpdated = "manual_override_updated"
	ActionDayUpdated      = "day_schedule_updated"
)

type Event struct {
	BarberID string
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(l *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BarberID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.L().Warn("audit write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Queue full: drop the event, auditing never blocks the API.
		logger.L().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
