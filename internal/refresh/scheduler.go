package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// Scheduler runs the orchestrator periodically, out of band of any request.
type Scheduler struct {
	scheduler *gocron.Scheduler
	logger    zerolog.Logger
}

// NewScheduler registers a periodic refresh. The first run happens one
// interval after Start, and runs never overlap.
func NewScheduler(o *Orchestrator, interval time.Duration, logger zerolog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be greater than zero, got %s", interval)
	}

	s := &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		logger:    logger.With().Str("component", "refresh-scheduler").Logger(),
	}
	_, err := s.scheduler.Every(interval).SingletonMode().WaitForSchedule().Do(func() {
		_, err := o.Run(context.Background(), TriggerSchedule)
		switch {
		case errors.Is(err, ErrRunInProgress):
			s.logger.Info().Msg("refresh already running; tick skipped")
		case err != nil:
			s.logger.Error().Err(err).Msg("scheduled refresh failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule refresh: %w", err)
	}
	return s, nil
}

// Start runs the scheduler until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.scheduler.StartAsync()
	s.logger.Info().Msg("refresh scheduler started")
	go func() {
		<-ctx.Done()
		s.Stop()
	}()
}

func (s *Scheduler) Stop() {
	if s.scheduler.IsRunning() {
		s.scheduler.Stop()
		s.logger.Info().Msg("refresh scheduler stopped")
	}
}
