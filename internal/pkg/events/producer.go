package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dsu-aiml/portal/internal/pkg/logger"
)

// ContactSubmitted is emitted after a contact query has been stored.
const ContactSubmitted = "contact.submitted"

const publishTimeout = 5 * time.Second

// Envelope is the JSON value written for every event.
type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, data any) error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes events to a single Kafka topic. A nil *Producer is valid
// and drops every event, which is what you get when no brokers are configured.
type Producer struct {
	writer messageWriter
	topic  string
}

// NewProducer creates a Kafka producer, or returns nil when brokers is empty.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 {
		return nil
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 10 * time.Second,
		},
		topic: topic,
	}
}

// Publish writes one event keyed by key.
func (p *Producer) Publish(ctx context.Context, eventType, key string, data any) error {
	if p == nil || p.writer == nil {
		logger.Debug().Str("event", eventType).Msg("Kafka producer not configured, skipping publish")
		return nil
	}

	value, err := json.Marshal(Envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	}); err != nil {
		return fmt.Errorf("failed to publish %s event to %s: %w", eventType, p.topic, err)
	}
	return nil
}

// Close flushes pending writes and releases the connection.
func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
