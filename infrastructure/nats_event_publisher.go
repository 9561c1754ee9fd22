package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"casinobot/domain/events"
	"casinobot/infrastructure/observability"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventEnvelope wraps every event published to NATS
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Timestamp     time.Time       `json:"timestamp"`
	SourceService string          `json:"source_service"`
	Payload       json.RawMessage `json:"payload"`
}

type messagePublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// NATSEventPublisher delivers events to in-process subscribers and then to NATS
type NATSEventPublisher struct {
	client        messagePublisher
	subjectMapper *EventSubjectMapper
	local         *Bus
}

// NewNATSEventPublisher creates a new NATS event publisher. local may be nil.
func NewNATSEventPublisher(client messagePublisher, subjectMapper *EventSubjectMapper, local *Bus) *NATSEventPublisher {
	return &NATSEventPublisher{
		client:        client,
		subjectMapper: subjectMapper,
		local:         local,
	}
}

// Publish publishes an event to NATS using the appropriate subject
func (p *NATSEventPublisher) Publish(event events.Event) error {
	ctx := context.Background()

	if p.local != nil {
		if err := p.local.Publish(event); err != nil {
			log.WithError(err).WithField("eventType", event.Type()).Error("Local event delivery failed")
		}
	}

	data, envelope, err := p.encode(event)
	if err != nil {
		return err
	}

	subject := p.subjectMapper.MapEventToSubject(event)
	if err := p.client.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event to NATS: %w", err)
	}

	if metrics := observability.GetMetrics(); metrics != nil {
		metrics.RecordNATSMessagePublished(string(event.Type()))
	}

	log.WithFields(log.Fields{
		"eventType": event.Type(),
		"eventId":   envelope.EventID,
		"subject":   subject,
	}).Debug("Successfully published event to NATS")

	return nil
}

func (p *NATSEventPublisher) encode(event events.Event) ([]byte, *EventEnvelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	envelope := &EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     string(event.Type()),
		Timestamp:     time.Now().UTC(),
		SourceService: "casinobot",
		Payload:       payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal event envelope: %w", err)
	}
	return data, envelope, nil
}
