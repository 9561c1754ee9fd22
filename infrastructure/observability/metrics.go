package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"casinobot/config"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// MetricsProvider manages OpenTelemetry metrics for the bot
type MetricsProvider struct {
	config        *config.Config
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	mu            sync.RWMutex

	commandsCounter              metric.Int64Counter
	roundsCounter                metric.Int64Counter
	wageredCounter               metric.Int64Counter
	payoutsCounter               metric.Int64Counter
	sessionsActiveGauge          metric.Int64UpDownCounter
	sessionsExpiredCounter       metric.Int64Counter
	natsMessagesPublishedCounter metric.Int64Counter
	balanceTransactionsCounter   metric.Int64Counter
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
	}
}

// Initialize sets up the OpenTelemetry metrics provider
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		return nil
	}

	if !mp.config.OTelEnabled {
		log.Info("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(mp.config.OTelServiceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdkmetric.Exporter
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err = stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}
		log.Info("Using console metric exporter")

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		log.WithField("endpoint", mp.config.OTelOTLPEndpoint).Info("Using OTLP metric exporter")

	case "none":
		log.Info("Metrics export disabled (exporter_type='none')")
		mp.initialized = true
		return nil

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}

	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
			),
		),
	)
	return mp.startMeter(mp.meterProvider)
}

// InitializeWithReader wires the provider to a caller-supplied reader, used to inspect metrics in tests
func (mp *MetricsProvider) InitializeWithReader(reader sdkmetric.Reader) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.meterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	return mp.startMeter(mp.meterProvider)
}

func (mp *MetricsProvider) startMeter(provider *sdkmetric.MeterProvider) error {
	otel.SetMeterProvider(provider)
	mp.meter = provider.Meter("casinobot")

	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	log.Info("Metrics provider initialized successfully")
	return nil
}

// createInstruments creates all metric instruments
func (mp *MetricsProvider) createInstruments() error {
	var err error

	counters := []struct {
		target      *metric.Int64Counter
		name        string
		description string
	}{
		{&mp.commandsCounter, CommandsTotal, "Total number of slash commands handled"},
		{&mp.roundsCounter, RoundsTotal, "Total number of settled rounds"},
		{&mp.wageredCounter, WageredTotal, "Total bits staked"},
		{&mp.payoutsCounter, PayoutsTotal, "Total bits paid back to players"},
		{&mp.sessionsExpiredCounter, SessionsExpired, "Total number of game sessions that timed out"},
		{&mp.natsMessagesPublishedCounter, NATSMessagesPublishedTotal, "Total number of NATS messages published"},
		{&mp.balanceTransactionsCounter, BalanceTransactionsTotal, "Total number of balance transactions"},
	}
	for _, c := range counters {
		*c.target, err = mp.meter.Int64Counter(c.name,
			metric.WithDescription(c.description),
			metric.WithUnit("1"),
		)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.name, err)
		}
	}

	mp.sessionsActiveGauge, err = mp.meter.Int64UpDownCounter(
		SessionsActive,
		metric.WithDescription("Current number of open game sessions"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sessions active gauge: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// RecordCommand records a slash command invocation
func (mp *MetricsProvider) RecordCommand(command string) {
	if !mp.isEnabled() {
		return
	}
	mp.commandsCounter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(LabelCommand, command)))
}

// RecordRound records a settled round with its stake and payout
func (mp *MetricsProvider) RecordRound(game, outcome string, bet, winnings int64) {
	if !mp.isEnabled() {
		return
	}
	ctx := context.Background()
	gameAttr := attribute.String(LabelGame, game)
	mp.roundsCounter.Add(ctx, 1, metric.WithAttributes(gameAttr, attribute.String(LabelOutcome, outcome)))
	mp.wageredCounter.Add(ctx, bet, metric.WithAttributes(gameAttr))
	if winnings > 0 {
		mp.payoutsCounter.Add(ctx, winnings, metric.WithAttributes(gameAttr))
	}
}

// UpdateActiveSessions moves the open session gauge for a game
func (mp *MetricsProvider) UpdateActiveSessions(game string, delta int64) {
	if !mp.isEnabled() {
		return
	}
	mp.sessionsActiveGauge.Add(context.Background(), delta,
		metric.WithAttributes(attribute.String(LabelGame, game)))
}

// RecordSessionExpired records a session closed by its timeout
func (mp *MetricsProvider) RecordSessionExpired(game string) {
	if !mp.isEnabled() {
		return
	}
	mp.sessionsExpiredCounter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(LabelGame, game)))
}

// RecordNATSMessagePublished records a NATS message being published
func (mp *MetricsProvider) RecordNATSMessagePublished(eventType string) {
	if !mp.isEnabled() {
		return
	}
	mp.natsMessagesPublishedCounter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(LabelEventType, eventType)))
}

// RecordBalanceTransaction records a balance transaction
func (mp *MetricsProvider) RecordBalanceTransaction(transactionType string) {
	if !mp.isEnabled() {
		return
	}
	mp.balanceTransactionsCounter.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String(LabelType, transactionType)))
}

// isEnabled checks if instruments exist. A nil provider is disabled.
func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.meter != nil
}

// Global metrics provider instance
var (
	globalMetrics *MetricsProvider
	metricsOnce   sync.Once
)

// InitializeGlobalMetrics initializes the global metrics provider
func InitializeGlobalMetrics(ctx context.Context, cfg *config.Config) error {
	var err error
	metricsOnce.Do(func() {
		globalMetrics = NewMetricsProvider(cfg)
		err = globalMetrics.Initialize(ctx)
	})
	return err
}

// GetMetrics returns the global metrics provider, nil before initialization
func GetMetrics() *MetricsProvider {
	return globalMetrics
}

// ShutdownGlobalMetrics shuts down the global metrics provider
func ShutdownGlobalMetrics(ctx context.Context) error {
	if globalMetrics != nil {
		return globalMetrics.Shutdown(ctx)
	}
	return nil
}
