package infrastructure

import (
	"sync"

	"casinobot/domain/events"
)

// RecordingPublisher collects published events, optionally failing every call
type RecordingPublisher struct {
	mu              sync.Mutex
	PublishedEvents []events.Event
	PublishError    error
}

func (p *RecordingPublisher) Publish(event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.PublishError != nil {
		return p.PublishError
	}
	p.PublishedEvents = append(p.PublishedEvents, event)
	return nil
}

// Events returns a copy of what has been published so far
func (p *RecordingPublisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Event, len(p.PublishedEvents))
	copy(out, p.PublishedEvents)
	return out
}
