package jobs

import (
	"context"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ScheduleSweeper expires pending bookings that were never confirmed
// and hands their seats back, reopening schedules that filled up in
// the meantime.
type ScheduleSweeper struct {
	repo          *repository.Repository
	pendingExpiry time.Duration
	spec          string
	cron          *cron.Cron
	log           *zap.Logger
}

func NewScheduleSweeper(repo *repository.Repository, config *utils.Config, log *zap.Logger) *ScheduleSweeper {
	return &ScheduleSweeper{
		repo:          repo,
		pendingExpiry: time.Duration(config.Booking.PendingExpiryMinutes) * time.Minute,
		spec:          config.Booking.SweepSpec,
		log:           log.With(zap.String("job", "schedule_sweeper")),
	}
}

// Start registers the sweep on the cron schedule and kicks off the
// scheduler goroutine.
func (s *ScheduleSweeper) Start() error {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc(s.spec, func() {
		s.Sweep(context.Background())
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Schedule sweeper started", zap.String("spec", s.spec))
	return nil
}

func (s *ScheduleSweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep runs one pass. Failures on individual bookings are logged and
// skipped so one bad row cannot stall the rest.
func (s *ScheduleSweeper) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.pendingExpiry)

	stale, err := s.repo.Booking.FindStalePending(ctx, cutoff)
	if err != nil {
		s.log.Error("Sweep failed to list stale bookings", zap.Error(err))
		return
	}

	if len(stale) == 0 {
		return
	}

	expired := 0
	for _, booking := range stale {
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusExpired); err != nil {
			s.log.Error("Sweep failed to expire booking",
				zap.Error(err),
				zap.String("order_id", booking.OrderID),
			)
			continue
		}

		if err := s.repo.Schedule.ReleaseSeats(ctx, booking.ScheduleID, booking.Seats()); err != nil {
			s.log.Error("Sweep failed to release seats",
				zap.Error(err),
				zap.String("order_id", booking.OrderID),
				zap.Int("seats", booking.Seats()),
			)
			continue
		}

		expired++
	}

	s.log.Info("Sweep pass finished",
		zap.Int("stale", len(stale)),
		zap.Int("expired", expired),
		zap.Time("cutoff", cutoff),
	)
}
