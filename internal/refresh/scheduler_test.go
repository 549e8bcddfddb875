package refresh

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/sales-analytics/internal/repo"
)

func TestSchedulerRejectsNonPositiveInterval(t *testing.T) {
	o := NewOrchestrator(repo.NewInMemoryViewRepository(), Options{Views: []string{"mv_a"}, Logger: zerolog.Nop()})
	if _, err := NewScheduler(o, 0, zerolog.Nop()); err == nil {
		t.Error("expected error for zero interval, got nil")
	}
}

func TestSchedulerRunsOrchestrator(t *testing.T) {
	views := repo.NewInMemoryViewRepository()
	o := NewOrchestrator(views, Options{Views: []string{"mv_a"}, Logger: zerolog.Nop()})
	s, err := NewScheduler(o, 100*time.Millisecond, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		runs, _ := o.History().Recent(ctx, 1)
		if len(runs) == 1 {
			if runs[0].Trigger != TriggerSchedule {
				t.Errorf("expected trigger %s, got %s", TriggerSchedule, runs[0].Trigger)
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("expected a scheduled run within 3s")
}
