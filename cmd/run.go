package cmd

import (
	"context"
	"fmt"
	"time"

	"casinobot/application"
	"casinobot/bot"
	"casinobot/config"
	"casinobot/database"
	"casinobot/domain/interfaces"
	"casinobot/infrastructure"
	"casinobot/infrastructure/observability"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	ConfigureLogging(cfg)

	log.Info("Starting casino bot...")

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully")

	if err := database.RunMigrationsWithURL(cfg.GetDatabaseURL()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Metrics are optional; the bot runs without them
	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		log.WithError(err).Warn("Failed to initialize metrics, continuing without them")
	}

	// In-process bus, optionally mirrored to NATS
	eventBus := infrastructure.NewBus()
	var publisher interfaces.EventPublisher = eventBus

	var natsClient *infrastructure.NATSClient
	if cfg.NATSEnabled {
		log.Infof("Connecting to NATS at %s...", cfg.NATSServers)
		natsClient = infrastructure.NewNATSClient(cfg.NATSServers)
		if err := natsClient.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		mapper := infrastructure.NewEventSubjectMapper()
		if err := natsClient.EnsureStream(infrastructure.DomainEventStream, mapper.GetAllSubjects()); err != nil {
			natsClient.Close()
			return fmt.Errorf("failed to ensure NATS stream: %w", err)
		}
		publisher = infrastructure.NewNATSEventPublisher(natsClient, mapper, eventBus)
		log.Info("NATS event publishing enabled")
	}

	// Leaderboard cache is optional; without it rankings come straight from the database
	var cache interfaces.LeaderboardCache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = infrastructure.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Warn("Leaderboard cache disabled")
		} else {
			cache = infrastructure.NewRedisLeaderboardCache(redisClient)
			log.Infof("Leaderboard cache enabled at %s", cfg.RedisAddr)
		}
	}

	uowFactory := infrastructure.NewUnitOfWorkFactory(db, publisher)
	casino := application.NewCasino(uowFactory, infrastructure.NewUserLocker(), cache, nil)

	var metrics application.RoundMetrics
	if m := observability.GetMetrics(); m != nil {
		metrics = m
	}
	application.RegisterApplicationSubscriptions(eventBus, metrics, cache)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(ctx, bot.Config{
		Token:              cfg.DiscordToken,
		GuildID:            cfg.GuildID,
		SessionTimeout:     cfg.SessionTimeout,
		Location:           cfg.Location(),
		LeaderboardRefresh: cfg.LeaderboardRefresh,
	}, casino)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	// Let in-flight subscribers finish
	eventBus.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := observability.ShutdownGlobalMetrics(shutdownCtx); err != nil {
		log.Errorf("Error shutting down metrics: %v", err)
	}
	if natsClient != nil {
		if err := natsClient.Close(); err != nil {
			log.Errorf("Error closing NATS connection: %v", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Errorf("Error closing Redis connection: %v", err)
		}
	}

	log.Info("Shutdown completed")
	return nil
}
