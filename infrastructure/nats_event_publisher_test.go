package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"casinobot/domain/entities"
	"casinobot/domain/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMessage struct {
	subject string
	data    []byte
}

type fakeMessagePublisher struct {
	messages []capturedMessage
	err      error
}

func (f *fakeMessagePublisher) Publish(ctx context.Context, subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, capturedMessage{subject: subject, data: data})
	return nil
}

func TestNATSEventPublisher_PublishesEnvelope(t *testing.T) {
	client := &fakeMessagePublisher{}
	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper(), nil)

	event := events.RoundSettledEvent{UserID: 7, Game: entities.GameCoinflip, Bet: 10, Winnings: 20, Net: 10, NewBalance: 110}
	require.NoError(t, publisher.Publish(event))
	require.Len(t, client.messages, 1)

	msg := client.messages[0]
	assert.Equal(t, "casino.rounds.settled", msg.subject)

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(msg.data, &envelope))
	assert.Equal(t, "round_settled", envelope.EventType)
	assert.Equal(t, "casinobot", envelope.SourceService)
	_, err := uuid.Parse(envelope.EventID)
	assert.NoError(t, err)

	var payload events.RoundSettledEvent
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, event, payload)
}

func TestNATSEventPublisher_DeliversLocallyFirst(t *testing.T) {
	client := &fakeMessagePublisher{err: errors.New("not connected")}
	bus := NewBus()

	delivered := make(chan events.Event, 1)
	bus.Subscribe(events.EventTypeDailyRewardClaimed, func(ctx context.Context, event events.Event) {
		delivered <- event
	})

	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper(), bus)
	err := publisher.Publish(events.DailyRewardClaimedEvent{UserID: 1, Reward: 50})
	assert.Error(t, err)

	bus.Wait()
	require.Len(t, delivered, 1)
}

func TestEventSubjectMapper_AllSubjectsCovered(t *testing.T) {
	mapper := NewEventSubjectMapper()
	subjects := mapper.GetAllSubjects()

	for _, event := range []events.Event{
		events.BalanceChangeEvent{},
		events.AccountCreatedEvent{},
		events.RoundSettledEvent{},
		events.DailyRewardClaimedEvent{},
	} {
		assert.Contains(t, subjects, mapper.MapEventToSubject(event))
	}
}
