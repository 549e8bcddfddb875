package refresh

import (
	"context"
	"testing"
)

func TestMemoryRunLogKeepsNewest(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryRunLog(3)
	for _, id := range []string{"a", "b", "c", "d"} {
		if err := l.Append(ctx, Run{RunID: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	runs, _ := l.Recent(ctx, 10)
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].RunID != "d" || runs[2].RunID != "b" {
		t.Errorf("expected d..b newest first, got %s..%s", runs[0].RunID, runs[2].RunID)
	}

	runs, _ = l.Recent(ctx, 1)
	if len(runs) != 1 || runs[0].RunID != "d" {
		t.Errorf("expected only d, got %+v", runs)
	}
}
