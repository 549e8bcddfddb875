package refresh

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

const (
	TriggerAPI      = "api"
	TriggerCLI      = "cli"
	TriggerSchedule = "schedule"
)

// Run is the history entry kept for every orchestrator run.
type Run struct {
	RunID      string    `json:"runId"`
	Trigger    string    `json:"trigger"`
	Status     string    `json:"status"`
	Refreshed  []string  `json:"refreshed"`
	FailedView string    `json:"failedView,omitempty"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	DurationMs int64     `json:"durationMs"`
}

type RunLog interface {
	Append(ctx context.Context, run Run) error
	// Recent returns up to n runs, newest first.
	Recent(ctx context.Context, n int) ([]Run, error)
}

// RedisRunLog keeps the newest runs in a capped Redis list.
type RedisRunLog struct {
	rdb    *redis.Client
	key    string
	max    int
	logger zerolog.Logger
}

func NewRedisRunLog(rdb *redis.Client, key string, limit int, logger zerolog.Logger) *RedisRunLog {
	return &RedisRunLog{rdb: rdb, key: key, max: limit, logger: logger.With().Str("component", "refresh-history").Logger()}
}

func (l *RedisRunLog) Append(ctx context.Context, run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("encode run: %w", err)
	}

	pipe := l.rdb.TxPipeline()
	pipe.RPush(ctx, l.key, data)
	pipe.LTrim(ctx, l.key, int64(-l.max), -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append run to %s: %w", l.key, err)
	}
	return nil
}

func (l *RedisRunLog) Recent(ctx context.Context, n int) ([]Run, error) {
	if n <= 0 {
		return []Run{}, nil
	}
	entries, err := l.rdb.LRange(ctx, l.key, int64(-n), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read runs from %s: %w", l.key, err)
	}

	runs := make([]Run, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		var run Run
		if err := json.Unmarshal([]byte(entries[i]), &run); err != nil {
			l.logger.Warn().Err(err).Str("key", l.key).Msg("skipping undecodable refresh run")
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// MemoryRunLog is the process-local fallback when Redis is not configured.
type MemoryRunLog struct {
	mu   sync.Mutex
	runs []Run
	max  int
}

func NewMemoryRunLog(limit int) *MemoryRunLog {
	return &MemoryRunLog{max: limit}
}

func (l *MemoryRunLog) Append(_ context.Context, run Run) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runs = append(l.runs, run)
	if l.max > 0 && len(l.runs) > l.max {
		l.runs = slices.Clone(l.runs[len(l.runs)-l.max:])
	}
	return nil
}

func (l *MemoryRunLog) Recent(_ context.Context, n int) ([]Run, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	runs := make([]Run, 0, min(n, len(l.runs)))
	for i := len(l.runs) - 1; i >= 0 && len(runs) < n; i-- {
		runs = append(runs, l.runs[i])
	}
	return runs, nil
}
