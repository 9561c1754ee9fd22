package infrastructure

import (
	"context"
	"sync"

	"casinobot/domain/events"

	log "github.com/sirupsen/logrus"
)

// Handler reacts to a published event
type Handler func(ctx context.Context, event events.Event)

// Bus dispatches events to in-process subscribers. Handlers run on their own goroutines.
type Bus struct {
	mu       sync.RWMutex
	handlers map[events.EventType][]Handler
	wg       sync.WaitGroup
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[events.EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType events.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Publish hands the event to every subscriber of its type
func (b *Bus) Publish(event events.Event) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	ctx := context.Background()
	for i, handler := range handlers {
		b.wg.Add(1)
		go func(h Handler, handlerIndex int) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
	return nil
}

// Wait blocks until every dispatched handler has returned
func (b *Bus) Wait() {
	b.wg.Wait()
}
