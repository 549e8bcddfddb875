package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPublisherWritesKeyedMessage(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{writer: w}

	event := RefreshCompleted{RunID: "run-1", Status: "succeeded", Views: []string{"mv_a"}, FinishedAt: time.Now().UTC()}
	if err := p.PublishRefresh(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}
	if string(w.msgs[0].Key) != "run-1" {
		t.Errorf("expected key run-1, got %s", w.msgs[0].Key)
	}
	var decoded RefreshCompleted
	if err := json.Unmarshal(w.msgs[0].Value, &decoded); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	if decoded.Status != "succeeded" || len(decoded.Views) != 1 {
		t.Errorf("expected succeeded event with 1 view, got %+v", decoded)
	}
}

func TestKafkaPublisherWrapsWriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := &KafkaPublisher{writer: &recordingWriter{err: boom}}

	if err := p.PublishRefresh(context.Background(), RefreshCompleted{RunID: "x"}); !errors.Is(err, boom) {
		t.Errorf("expected broker down, got %v", err)
	}
}

func TestNewWithoutBrokersIsNop(t *testing.T) {
	if _, ok := New(nil, "topic").(NopPublisher); !ok {
		t.Error("expected NopPublisher without brokers")
	}
}
