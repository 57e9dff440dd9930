package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"cpd-events-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventHandler processes a single event. Returning an error triggers a
// redelivery via Nak.
type EventHandler func(ctx context.Context, event events.Event) error

// Subscriber consumes domain events from the NATS JetStream bus.
type Subscriber struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewSubscriber(url string) (*Subscriber, error) {
	nc, err := connect(url)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Subscriber{nc: nc, js: js}, nil
}

// Subscribe attaches a durable consumer to the given subject pattern. The
// durable name keeps the consumer's position across restarts.
func (s *Subscriber) Subscribe(subject string, durableName string, handler EventHandler) error {
	ctx := context.Background()

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, streamName, jetstream.ConsumerConfig{
		Durable:       durableName,
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	_, err = consumer.Consume(func(msg jetstream.Msg) {
		event, err := decodeEvent(msg)
		if err != nil {
			log.Printf("Error decoding event on %s: %v", msg.Subject(), err)
			msg.Nak()
			return
		}

		if err := handler(context.Background(), event); err != nil {
			log.Printf("Handler failed for event %s: %v", event.EventType(), err)
			msg.Nak()
			return
		}

		msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	log.Printf("Subscribed to %s with durable %s", subject, durableName)
	return nil
}

func (s *Subscriber) Close() {
	if s.nc != nil {
		s.nc.Close()
	}
}

// decodeEvent unwraps the wire envelope. Messages published without an
// envelope fall back to the subject for the type.
func decodeEvent(msg jetstream.Msg) (events.Event, error) {
	var env envelope
	if err := json.Unmarshal(msg.Data(), &env); err != nil {
		return nil, err
	}

	if env.Type == "" {
		env.Type = strings.TrimPrefix(msg.Subject(), subjectPrefix)
	}
	if env.OccurredAt.IsZero() {
		env.OccurredAt = time.Now()
	}

	return events.BaseEvent{
		Type:       env.Type,
		Data:       env.Payload,
		OccurredAt: env.OccurredAt,
	}, nil
}
