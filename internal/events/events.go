package events

import (
	"context"
	"time"
)

// RefreshCompleted is emitted once per orchestrator run, whatever its outcome.
type RefreshCompleted struct {
	RunID      string    `json:"runId"`
	Trigger    string    `json:"trigger"`
	Status     string    `json:"status"`
	Views      []string  `json:"views"`
	FailedView string    `json:"failedView,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"durationMs"`
	Stale      *bool     `json:"stale,omitempty"`
	FinishedAt time.Time `json:"finishedAt"`
}

type Publisher interface {
	PublishRefresh(ctx context.Context, event RefreshCompleted) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishRefresh(context.Context, RefreshCompleted) error { return nil }

func (NopPublisher) Close() error { return nil }
