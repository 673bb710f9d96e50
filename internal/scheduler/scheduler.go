package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/logger"
	"github.com/TPMYandTPTH/xRAF-Dashboard-sub000/internal/service"
)

// Scheduler runs the periodic maintenance jobs. Currently that is one job:
// sweeping expired OTP sessions out of the in-memory store.
type Scheduler struct {
	cron *cron.Cron
	otp  service.OTPService
}

// NewScheduler registers the sweep job on the given cron schedule
// (with-seconds syntax, UTC).
func NewScheduler(otp service.OTPService, sweepSchedule string) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		otp:  otp,
	}

	if _, err := c.AddFunc(sweepSchedule, s.sweepExpiredSessions); err != nil {
		logger.Error("Failed to register OTP sweep job", "error", err, "schedule", sweepSchedule)
	}

	return s
}

func (s *Scheduler) sweepExpiredSessions() {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("OTP sweep panicked", "panic", r)
		}
	}()

	removed := s.otp.SweepExpired()
	if removed > 0 {
		logger.Info("Swept expired OTP sessions", "removed", removed)
	}
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Cron scheduler started")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
