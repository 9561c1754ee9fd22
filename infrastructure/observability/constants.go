package observability

// Metric name prefixes
const (
	MetricPrefix = "casinobot"
)

// Metric names
const (
	// Discord metrics
	CommandsTotal = MetricPrefix + ".commands.total"

	// Game metrics
	RoundsTotal     = MetricPrefix + ".rounds.total"
	WageredTotal    = MetricPrefix + ".rounds.wagered_total"
	PayoutsTotal    = MetricPrefix + ".rounds.payouts_total"
	SessionsActive  = MetricPrefix + ".sessions.active"
	SessionsExpired = MetricPrefix + ".sessions.expired_total"

	// NATS metrics
	NATSMessagesPublishedTotal = MetricPrefix + ".nats.messages_published_total"

	// Balance metrics
	BalanceTransactionsTotal = MetricPrefix + ".balance.transactions_total"
)

// Label keys
const (
	LabelType      = "type"
	LabelEventType = "event_type"
	LabelGame      = "game"
	LabelOutcome   = "outcome"
	LabelCommand   = "command"
)

// Round outcomes
const (
	OutcomeWin  = "win"
	OutcomePush = "push"
	OutcomeLoss = "loss"
)
