package infrastructure

import (
	"context"
	"sync/atomic"
	"testing"

	"casinobot/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToSubscribersOfType(t *testing.T) {
	bus := NewBus()

	var settled, claimed atomic.Int32
	bus.Subscribe(events.EventTypeRoundSettled, func(ctx context.Context, event events.Event) {
		settled.Add(1)
	})
	bus.Subscribe(events.EventTypeRoundSettled, func(ctx context.Context, event events.Event) {
		settled.Add(1)
	})
	bus.Subscribe(events.EventTypeDailyRewardClaimed, func(ctx context.Context, event events.Event) {
		claimed.Add(1)
	})

	require.NoError(t, bus.Publish(events.RoundSettledEvent{UserID: 1}))
	bus.Wait()

	assert.Equal(t, int32(2), settled.Load())
	assert.Equal(t, int32(0), claimed.Load())
}

func TestBus_RecoversHandlerPanic(t *testing.T) {
	bus := NewBus()

	var ran atomic.Bool
	bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		panic("boom")
	})
	bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		ran.Store(true)
	})

	require.NoError(t, bus.Publish(events.BalanceChangeEvent{UserID: 1}))
	bus.Wait()

	assert.True(t, ran.Load())
}
