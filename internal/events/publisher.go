// Package events publishes receipt lifecycle events to Kafka. Publishing is
// asynchronous: handlers enqueue events and a small worker pool drains the
// queue into the Kafka writer, so a slow broker never blocks an API request.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// ReceiptEvent is the payload published when a receipt is created.
type ReceiptEvent struct {
	ID           string    `json:"id"`
	ReceiptID    string    `json:"receipt_id"`
	PackageID    string    `json:"package_id"`
	Status       string    `json:"status"`
	DisasterType string    `json:"disaster_type,omitempty"`
	HarmScore    int       `json:"harm_score"`
	Timestamp    time.Time `json:"timestamp"`
}

// MessageWriter is the kafka-go writer surface the publisher depends on.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type Publisher struct {
	writer     MessageWriter
	jobs       chan ReceiptEvent
	numWorkers int
	wg         sync.WaitGroup
}

// NewPublisher creates a publisher backed by a Kafka writer for the given
// brokers and topic.
func NewPublisher(brokers []string, topic string, numWorkers, bufferSize int) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return NewPublisherWithWriter(w, numWorkers, bufferSize)
}

// NewPublisherWithWriter creates a publisher on an existing writer.
func NewPublisherWithWriter(w MessageWriter, numWorkers, bufferSize int) *Publisher {
	return &Publisher{
		writer:     w,
		jobs:       make(chan ReceiptEvent, bufferSize),
		numWorkers: numWorkers,
	}
}

func (p *Publisher) Start(ctx context.Context) {
	for i := 1; i <= p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Publisher) worker(ctx context.Context) {
	defer p.wg.Done()

	for ev := range p.jobs {
		if err := p.write(ctx, ev); err != nil {
			slog.Error("failed to publish receipt event", "receipt_id", ev.ReceiptID, "error", err)
		}
	}
}

// Publish enqueues an event without blocking. When the buffer is full the
// event is dropped with a warning; receipts are already durable in the store.
func (p *Publisher) Publish(ev ReceiptEvent) {
	select {
	case p.jobs <- ev:
	default:
		slog.Warn("event buffer full, dropping receipt event", "receipt_id", ev.ReceiptID)
	}
}

// Stop drains queued events, waits for workers, and closes the writer.
func (p *Publisher) Stop() error {
	close(p.jobs)
	p.wg.Wait()
	return p.writer.Close()
}

func (p *Publisher) write(ctx context.Context, ev ReceiptEvent) error {
	msg, err := serializeToMessage(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func serializeToMessage(ev ReceiptEvent) (kafkago.Message, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize receipt event: %w", err)
	}
	headers := []kafkago.Header{
		{Key: "status", Value: []byte(ev.Status)},
	}
	if ev.DisasterType != "" {
		headers = append(headers, kafkago.Header{Key: "disaster_type", Value: []byte(ev.DisasterType)})
	}
	return kafkago.Message{
		Key:     []byte(ev.ID),
		Value:   data,
		Headers: headers,
	}, nil
}
