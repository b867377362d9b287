package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/pkg/eventbus"
)

// PreventiveReminder runs a daily sweep over preventive requests scheduled
// for the current day that are still open, and announces them on the bus.
type PreventiveReminder struct {
	provider SnapshotProvider
	bus      *eventbus.Bus
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewPreventiveReminder(provider SnapshotProvider, bus *eventbus.Bus, logger *zap.Logger) *PreventiveReminder {
	return &PreventiveReminder{
		provider: provider,
		bus:      bus,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start schedules the sweep every morning at 07:00 server time.
func (r *PreventiveReminder) Start() error {
	_, err := r.cron.AddFunc("0 7 * * *", func() {
		r.Sweep(context.Background(), time.Now())
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	r.logger.Info("preventive maintenance reminder scheduled")
	return nil
}

func (r *PreventiveReminder) Stop() {
	r.cron.Stop()
}

// Sweep finds the due preventive requests for the given day and publishes
// MaintenanceDue when there are any.
func (r *PreventiveReminder) Sweep(ctx context.Context, now time.Time) []string {
	today := now.Format("2006-01-02")
	snap := r.provider.Snapshot()

	var due []string
	for _, req := range snap.Requests {
		if req.Type != entities.RequestTypePreventive || !req.Open() {
			continue
		}
		if req.ScheduledDate.Valid && req.ScheduledDate.String == today {
			due = append(due, req.ID)
		}
	}
	if len(due) == 0 {
		return nil
	}

	r.bus.Publish(ctx, events.MaintenanceDue{RequestIDs: due})
	r.logger.Info("preventive maintenance due", zap.Int("count", len(due)), zap.String("date", today))
	return due
}
