package infrastructure

import (
	"fmt"

	"casinobot/domain/events"
)

// DomainEventStream is the JetStream stream holding every subject below
const DomainEventStream = "casino_events"

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeBalanceChange:
		return "casino.balance.changed"
	case events.EventTypeAccountCreated:
		return "casino.accounts.created"
	case events.EventTypeRoundSettled:
		return "casino.rounds.settled"
	case events.EventTypeDailyRewardClaimed:
		return "casino.daily.claimed"
	default:
		return fmt.Sprintf("casino.unknown.%s", event.Type())
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"casino.balance.changed",
		"casino.accounts.created",
		"casino.rounds.settled",
		"casino.daily.claimed",
		"casino.unknown.*",
	}
}
