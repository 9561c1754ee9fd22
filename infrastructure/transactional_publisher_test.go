package infrastructure

import (
	"context"
	"errors"
	"testing"

	"casinobot/domain/entities"
	"casinobot/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionalPublisher_FlushPublishesInOrder(t *testing.T) {
	recorder := &RecordingPublisher{}
	publisher := NewTransactionalPublisher(recorder)

	first := events.BalanceChangeEvent{UserID: 1, OldBalance: 100, NewBalance: 90, TransactionType: entities.TransactionTypeSlotsBet, ChangeAmount: -10}
	second := events.RoundSettledEvent{UserID: 1, Game: entities.GameSlots, Bet: 10}

	require.NoError(t, publisher.Publish(first))
	require.NoError(t, publisher.Publish(second))

	assert.Empty(t, recorder.Events(), "nothing leaves before flush")
	assert.Equal(t, 2, publisher.Pending())

	require.NoError(t, publisher.Flush(context.Background()))

	assert.Equal(t, []events.Event{first, second}, recorder.Events())
	assert.Equal(t, 0, publisher.Pending())
}

func TestTransactionalPublisher_Discard(t *testing.T) {
	recorder := &RecordingPublisher{}
	publisher := NewTransactionalPublisher(recorder)

	require.NoError(t, publisher.Publish(events.DailyRewardClaimedEvent{UserID: 1, Reward: 50}))
	publisher.Discard()
	require.NoError(t, publisher.Flush(context.Background()))

	assert.Empty(t, recorder.Events())
}

func TestTransactionalPublisher_FlushSwallowsPublishErrors(t *testing.T) {
	recorder := &RecordingPublisher{PublishError: errors.New("nats down")}
	publisher := NewTransactionalPublisher(recorder)

	require.NoError(t, publisher.Publish(events.AccountCreatedEvent{UserID: 1}))
	assert.NoError(t, publisher.Flush(context.Background()))
	assert.Equal(t, 0, publisher.Pending())
}
