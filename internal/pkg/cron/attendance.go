package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffline/backoffice-go/internal/domain/attendance"
)

// RegisterAttendanceSweeper schedules the stale-session sweep. It runs every
// minute so an open session never outlives its scheduled end by more than an
// interval.
func RegisterAttendanceSweeper(s *Scheduler, svc attendance.Service) {
	s.AddJob("sweep_stale_sessions", time.Minute, func(ctx context.Context) error {
		closed, err := svc.SweepStaleSessions(ctx)
		if closed > 0 {
			slog.Info("Closed stale attendance sessions", "count", closed)
		}
		return err
	})
}
