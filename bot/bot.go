package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"casinobot/bot/features/admin"
	"casinobot/bot/features/balance"
	"casinobot/bot/features/blackjack"
	"casinobot/bot/features/coinflip"
	"casinobot/bot/features/daily"
	"casinobot/bot/features/help"
	"casinobot/bot/features/leaderboard"
	"casinobot/bot/features/profile"
	"casinobot/bot/features/slots"
	"casinobot/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token              string
	GuildID            string
	SessionTimeout     time.Duration
	Location           *time.Location
	LeaderboardRefresh string
}

// Casino is everything the features ask of the application layer
type Casino interface {
	balance.Casino
	slots.Casino
	blackjack.Casino
	coinflip.Casino
	daily.Casino
	profile.Casino
	leaderboard.Casino
	admin.Casino
	LeaderboardRebuilder
}

// feature is implemented by every feature module
type feature interface {
	HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate)
	HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate)
}

// commandRoutes maps slash command names to the feature serving them
var commandRoutes = map[string]func(b *Bot) feature{
	"balance":      func(b *Bot) feature { return b.balance },
	"slots":        func(b *Bot) feature { return b.slots },
	"blackjack":    func(b *Bot) feature { return b.blackjack },
	"coinflip":     func(b *Bot) feature { return b.coinflip },
	"daily_reward": func(b *Bot) feature { return b.daily },
	"leaderboard":  func(b *Bot) feature { return b.leaderboard },
	"profile":      func(b *Bot) feature { return b.profile },
	"add_balance":  func(b *Bot) feature { return b.admin },
	"help":         func(b *Bot) feature { return b.help },
	"tos":          func(b *Bot) feature { return b.help },
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	config    Config
	session   *discordgo.Session
	scheduler *Scheduler

	// Feature modules
	balance     *balance.Feature
	slots       *slots.Feature
	blackjack   *blackjack.Feature
	coinflip    *coinflip.Feature
	daily       *daily.Feature
	leaderboard *leaderboard.Feature
	profile     *profile.Feature
	admin       *admin.Feature
	help        *help.Feature
}

// New creates a new bot instance with all features, connects and registers commands
func New(ctx context.Context, config Config, casino Casino) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	if config.Location == nil {
		config.Location = time.Local
	}

	bot := &Bot{
		config:      config,
		session:     dg,
		balance:     balance.NewFeature(dg, casino),
		slots:       slots.NewFeature(dg, casino, config.SessionTimeout),
		blackjack:   blackjack.NewFeature(dg, casino, config.SessionTimeout),
		coinflip:    coinflip.NewFeature(dg, casino),
		daily:       daily.NewFeature(dg, casino),
		leaderboard: leaderboard.NewFeature(dg, casino),
		profile:     profile.NewFeature(dg, casino),
		admin:       admin.NewFeature(dg, casino),
		help:        help.NewFeature(dg),
	}
	bot.scheduler = NewScheduler(config.Location, config.LeaderboardRefresh, casino, bot.slots, bot.blackjack)

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleInteractions)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Infof("Logged in as %s#%s", r.User.Username, r.User.Discriminator)
	})

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	if err := bot.scheduler.Start(ctx); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error starting scheduler: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	b.scheduler.Stop()
	return b.session.Close()
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	route, ok := commandRoutes[name]
	if !ok {
		log.Warnf("Unknown command: %s", name)
		return
	}

	observability.GetMetrics().RecordCommand(name)
	route(b).HandleCommand(s, i)
}

// handleInteractions routes component interactions to appropriate features
func (b *Bot) handleInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "slots_"):
		b.slots.HandleInteraction(s, i)
	case strings.HasPrefix(customID, "blackjack_"):
		b.blackjack.HandleInteraction(s, i)
	default:
		log.Warnf("Unrouted component interaction: %s", customID)
	}
}
