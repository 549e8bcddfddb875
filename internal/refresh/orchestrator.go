package refresh

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/sales-analytics/internal/events"
	"github.com/rogerio-castellano/sales-analytics/internal/models"
)

// ViewRefresher rebuilds materialized views and reports how far they lag
// behind their base tables.
type ViewRefresher interface {
	RefreshView(ctx context.Context, view string) error
	CheckFreshness(ctx context.Context) (models.MaterializedViewFreshness, error)
}

// Result describes a successful run.
type Result struct {
	RunID           string                           `json:"runId"`
	Views           []string                         `json:"views"`
	StartedAt       time.Time                        `json:"startedAt"`
	DurationMs      int64                            `json:"durationMs"`
	DurationSeconds float64                          `json:"durationSeconds"`
	Freshness       models.MaterializedViewFreshness `json:"freshness"`
}

type Options struct {
	Views     []string
	History   RunLog
	Publisher events.Publisher
	Logger    zerolog.Logger
}

// Orchestrator refreshes a fixed, ordered list of views one at a time.
type Orchestrator struct {
	refresher ViewRefresher
	views     []string
	history   RunLog
	publisher events.Publisher
	logger    zerolog.Logger
	running   sync.Mutex
	now       func() time.Time
}

func NewOrchestrator(refresher ViewRefresher, opts Options) *Orchestrator {
	o := &Orchestrator{
		refresher: refresher,
		views:     append([]string{}, opts.Views...),
		history:   opts.History,
		publisher: opts.Publisher,
		logger:    opts.Logger.With().Str("component", "refresh").Logger(),
		now:       time.Now,
	}
	if o.history == nil {
		o.history = NewMemoryRunLog(100)
	}
	if o.publisher == nil {
		o.publisher = events.NopPublisher{}
	}
	return o
}

// Views returns the refresh order.
func (o *Orchestrator) Views() []string {
	return append([]string{}, o.views...)
}

// History returns the run log the orchestrator writes to.
func (o *Orchestrator) History() RunLog {
	return o.history
}

// Run refreshes every view in order and then checks freshness. The first
// failing view aborts the run with a *RefreshError; earlier views are not
// rolled back. Every run is recorded and published, successful or not.
func (o *Orchestrator) Run(ctx context.Context, trigger string) (Result, error) {
	if !o.running.TryLock() {
		return Result{}, ErrRunInProgress
	}
	defer o.running.Unlock()

	started := o.now()
	run := Run{
		RunID:     uuid.NewString(),
		Trigger:   trigger,
		StartedAt: started,
		Refreshed: make([]string, 0, len(o.views)),
	}
	logger := o.logger.With().Str("run_id", run.RunID).Str("trigger", trigger).Logger()
	logger.Info().Strs("views", o.views).Msg("refresh started")

	var freshness *models.MaterializedViewFreshness
	err := o.refreshAll(ctx, &run, logger)
	if err == nil {
		f, ferr := o.refresher.CheckFreshness(ctx)
		if ferr != nil {
			err = fmt.Errorf("check freshness: %w", ferr)
		} else {
			freshness = &f
		}
	}

	finished := o.now()
	run.FinishedAt = finished
	run.DurationMs = finished.Sub(started).Milliseconds()
	run.Status = StatusSucceeded
	if err != nil {
		run.Status = StatusFailed
		run.Error = err.Error()
		var refreshErr *RefreshError
		if errors.As(err, &refreshErr) {
			run.FailedView = refreshErr.View
		}
		logger.Error().Err(err).Int64("duration_ms", run.DurationMs).Msg("refresh failed")
	} else {
		logger.Info().Int64("duration_ms", run.DurationMs).Bool("stale", freshness.Stale).Msg("refresh finished")
	}

	o.record(ctx, run, freshness, logger)

	if err != nil {
		return Result{}, err
	}
	return Result{
		RunID:           run.RunID,
		Views:           run.Refreshed,
		StartedAt:       started,
		DurationMs:      run.DurationMs,
		DurationSeconds: math.Round(finished.Sub(started).Seconds()*100) / 100,
		Freshness:       *freshness,
	}, nil
}

func (o *Orchestrator) refreshAll(ctx context.Context, run *Run, logger zerolog.Logger) error {
	for i, view := range o.views {
		stepStart := o.now()
		if err := o.refresher.RefreshView(ctx, view); err != nil {
			return &RefreshError{View: view, Step: i + 1, Err: err}
		}
		run.Refreshed = append(run.Refreshed, view)
		logger.Debug().Str("view", view).Dur("took", o.now().Sub(stepStart)).Msg("view refreshed")
	}
	return nil
}

// record writes the run to history and publishes it. Neither failure changes
// the outcome of the run.
func (o *Orchestrator) record(ctx context.Context, run Run, freshness *models.MaterializedViewFreshness, logger zerolog.Logger) {
	// The caller's context may already be cancelled when the run failed on it.
	ctx = context.WithoutCancel(ctx)

	if err := o.history.Append(ctx, run); err != nil {
		logger.Warn().Err(err).Msg("could not record refresh run")
	}

	event := events.RefreshCompleted{
		RunID:      run.RunID,
		Trigger:    run.Trigger,
		Status:     run.Status,
		Views:      run.Refreshed,
		FailedView: run.FailedView,
		Error:      run.Error,
		DurationMs: run.DurationMs,
		FinishedAt: run.FinishedAt,
	}
	if freshness != nil {
		stale := freshness.Stale
		event.Stale = &stale
	}
	if err := o.publisher.PublishRefresh(ctx, event); err != nil {
		logger.Warn().Err(err).Msg("could not publish refresh event")
	}
}
