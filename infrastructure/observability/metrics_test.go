package observability

import (
	"context"
	"testing"

	"casinobot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	totals := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					totals[m.Name] += dp.Value
				}
			}
		}
	}
	return totals
}

func TestMetricsProvider_RecordRound(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := NewMetricsProvider(config.NewTestConfig())
	require.NoError(t, mp.InitializeWithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	mp.RecordRound("slots", OutcomeWin, 10, 50)
	mp.RecordRound("slots", OutcomeLoss, 10, 0)
	mp.RecordCommand("slots")
	mp.UpdateActiveSessions("blackjack", 1)
	mp.RecordSessionExpired("blackjack")

	totals := collectSums(t, reader)
	assert.Equal(t, int64(2), totals[RoundsTotal])
	assert.Equal(t, int64(20), totals[WageredTotal])
	assert.Equal(t, int64(50), totals[PayoutsTotal])
	assert.Equal(t, int64(1), totals[CommandsTotal])
	assert.Equal(t, int64(1), totals[SessionsActive])
	assert.Equal(t, int64(1), totals[SessionsExpired])
}

func TestMetricsProvider_DisabledIsNoop(t *testing.T) {
	var nilProvider *MetricsProvider
	assert.NotPanics(t, func() { nilProvider.RecordCommand("help") })

	mp := NewMetricsProvider(config.NewTestConfig())
	require.NoError(t, mp.Initialize(context.Background()))
	assert.NotPanics(t, func() { mp.RecordRound("coinflip", OutcomeWin, 1, 2) })
}
