package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafkago.Message
	closed   bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestPublisher_PublishesEvents(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w, 2, 10)
	p.Start(context.Background())

	ev := ReceiptEvent{
		ID:           "uuid-1",
		ReceiptID:    "R-001",
		PackageID:    "PKG-001",
		Status:       "verified",
		DisasterType: "flood",
		HarmScore:    90,
		Timestamp:    time.Now().UTC(),
	}
	p.Publish(ev)

	if err := p.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.messages))
	}
	msg := w.messages[0]
	if string(msg.Key) != "uuid-1" {
		t.Errorf("expected key uuid-1, got %s", msg.Key)
	}

	var decoded ReceiptEvent
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	if decoded.HarmScore != 90 {
		t.Errorf("expected harm score 90, got %d", decoded.HarmScore)
	}

	foundDisasterHeader := false
	for _, h := range msg.Headers {
		if h.Key == "disaster_type" && string(h.Value) == "flood" {
			foundDisasterHeader = true
		}
	}
	if !foundDisasterHeader {
		t.Error("expected disaster_type header on message")
	}

	if !w.closed {
		t.Error("expected writer closed after Stop")
	}
}

func TestPublisher_NoDisasterTypeHeaderWhenEmpty(t *testing.T) {
	msg, err := serializeToMessage(ReceiptEvent{ID: "uuid-2", Status: "pending", HarmScore: 10})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	for _, h := range msg.Headers {
		if h.Key == "disaster_type" {
			t.Error("did not expect disaster_type header for empty type")
		}
	}
}

func TestPublisher_DropsWhenBufferFull(t *testing.T) {
	// Publisher not started: nothing drains the buffer, so the second
	// publish must drop instead of blocking.
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w, 1, 1)

	done := make(chan struct{})
	go func() {
		p.Publish(ReceiptEvent{ID: "a"})
		p.Publish(ReceiptEvent{ID: "b"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on full buffer")
	}

	p.Start(context.Background())
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.messages) != 1 {
		t.Errorf("expected 1 delivered message, got %d", len(w.messages))
	}
}
