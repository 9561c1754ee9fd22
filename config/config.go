package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"casinobot/database"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string `envconfig:"DISCORD_TOKEN"`
	GuildID      string `envconfig:"GUILD_ID"` // Guild to register commands in, empty for global

	// Database configuration
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	DatabaseName string `envconfig:"DATABASE_NAME"`

	// Economy configuration
	StartingBalance int64 `envconfig:"STARTING_BALANCE" default:"100"`
	DailyReward     int64 `envconfig:"DAILY_REWARD" default:"50"`

	// Game configuration
	SessionTimeout      time.Duration `envconfig:"SESSION_TIMEOUT" default:"60s"`
	ChallengeGames      []string      `envconfig:"CHALLENGE_GAMES" default:"blackjack"`
	AnimationFrames     int           `envconfig:"ANIMATION_FRAMES" default:"3"`
	AnimationDelay      time.Duration `envconfig:"ANIMATION_DELAY" default:"500ms"`
	LeaderboardSize     int           `envconfig:"LEADERBOARD_SIZE" default:"5"`
	LeaderboardRefresh  string        `envconfig:"LEADERBOARD_REFRESH_CRON" default:"@every 10m"`
	Timezone            string        `envconfig:"TIMEZONE" default:"Local"` // Zone used for daily/weekly resets
	AdminDiscordIDs     []int64       `envconfig:"ADMIN_DISCORD_IDS"`        // Discord IDs allowed to add balance besides guild admins

	// NATS configuration
	NATSEnabled bool   `envconfig:"NATS_ENABLED" default:"false"`
	NATSServers string `envconfig:"NATS_SERVERS" default:"nats://nats:4222"`

	// Redis configuration (leaderboard cache, disabled when RedisAddr is empty)
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// OpenTelemetry configuration
	OTelEnabled              bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTelServiceName          string `envconfig:"OTEL_SERVICE_NAME" default:"casinobot"`
	OTelExporterType         string `envconfig:"OTEL_EXPORTER_TYPE" default:"console"` // console, otlp or none
	OTelOTLPEndpoint         string `envconfig:"OTEL_OTLP_ENDPOINT" default:"otel-collector:4317"`
	OTelExportIntervalMillis int    `envconfig:"OTEL_EXPORT_INTERVAL_MILLIS" default:"30000"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Environment
	Environment string `envconfig:"ENVIRONMENT" default:"development"` // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
				instance.DiscordToken = "test-token"
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// Location returns the time zone used for reset windows and daily claims.
// Unknown zone names fall back to the server's local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// IsAdmin reports whether the Discord ID is in the configured admin list
func (c *Config) IsAdmin(discordID int64) bool {
	for _, id := range c.AdminDiscordIDs {
		if id == discordID {
			return true
		}
	}
	return false
}

// load loads configuration from an optional .env file and environment variables
func load() (*Config, error) {
	// A missing .env file is normal in containers
	_ = godotenv.Load()

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if config.Environment != "test" {
		if err := config.Validate(); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// Validate checks required settings and value ranges
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.DatabaseName != "" && strings.TrimSpace(c.DatabaseName) == "" {
		return fmt.Errorf("DATABASE_NAME cannot be empty when provided")
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("STARTING_BALANCE cannot be negative")
	}
	if c.DailyReward <= 0 {
		return fmt.Errorf("DAILY_REWARD must be positive")
	}
	if c.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	if c.LeaderboardSize <= 0 {
		return fmt.Errorf("LEADERBOARD_SIZE must be positive")
	}
	return nil
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:        "test",
		StartingBalance:    100,
		DailyReward:        50,
		SessionTimeout:     60 * time.Second,
		ChallengeGames:     []string{"blackjack"},
		AnimationFrames:    0,
		LeaderboardSize:    5,
		LeaderboardRefresh: "@every 10m",
		Timezone:           "UTC",
		AdminDiscordIDs:    []int64{999999},
		OTelExporterType:   "none",
		LogLevel:           "debug",
	}
}
