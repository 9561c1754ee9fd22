package infrastructure

import (
	"context"

	"casinobot/domain/events"
	"casinobot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// TransactionalPublisher holds events until the transaction commits, then forwards them
type TransactionalPublisher struct {
	realPublisher interfaces.EventPublisher
	pending       []events.Event
}

// NewTransactionalPublisher creates a new transactional publisher
func NewTransactionalPublisher(realPublisher interfaces.EventPublisher) *TransactionalPublisher {
	return &TransactionalPublisher{
		realPublisher: realPublisher,
		pending:       make([]events.Event, 0),
	}
}

// Publish stores an event in the pending queue without immediately publishing
func (p *TransactionalPublisher) Publish(event events.Event) error {
	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"pendingCount": len(p.pending),
	}).Debug("Adding event to transactional publisher pending queue")

	p.pending = append(p.pending, event)
	return nil
}

// Flush publishes all pending events in order. Individual failures are logged and skipped.
func (p *TransactionalPublisher) Flush(ctx context.Context) error {
	log.WithField("pendingEventCount", len(p.pending)).Debug("Flushing pending events")

	for _, event := range p.pending {
		if err := p.realPublisher.Publish(event); err != nil {
			log.WithFields(log.Fields{
				"eventType": event.Type(),
				"error":     err,
			}).Error("Failed to publish event during flush")
		}
	}

	p.pending = p.pending[:0]
	return nil
}

// Discard clears all pending events without publishing them
func (p *TransactionalPublisher) Discard() {
	log.WithField("discardedEventCount", len(p.pending)).Debug("Discarding pending events")
	p.pending = p.pending[:0]
}

// Pending returns the number of buffered events
func (p *TransactionalPublisher) Pending() int {
	return len(p.pending)
}
