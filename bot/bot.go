package bot

import (
	"context"
	"fmt"
	"strings"

	"casino/events"
	"casino/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

type Bot struct {
	config           Config
	session          *discordgo.Session
	userService      service.UserService
	gamblingService  service.GamblingService
	rewardService    service.RewardService
	blackjackService service.BlackjackService
	eventBus         *events.Bus
}

func New(config Config, userService service.UserService, gamblingService service.GamblingService, rewardService service.RewardService, blackjackService service.BlackjackService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:           config,
		session:          dg,
		userService:      userService,
		gamblingService:  gamblingService,
		rewardService:    rewardService,
		blackjackService: blackjackService,
		eventBus:         eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleBlackjackInteraction)

	bot.subscribeEvents()

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// subscribeEvents logs committed domain events for operational visibility
func (b *Bot) subscribeEvents() {
	b.eventBus.Subscribe(events.EventTypeGamePlayed, func(ctx context.Context, e events.Event) {
		played := e.(events.GamePlayedEvent)
		log.WithFields(log.Fields{
			"userID":   played.UserID,
			"gameType": played.GameType,
			"bet":      played.Bet,
			"winnings": played.Winnings,
		}).Info("Game played")
	})
	b.eventBus.Subscribe(events.EventTypeRewardClaimed, func(ctx context.Context, e events.Event) {
		claimed := e.(events.RewardClaimedEvent)
		log.WithFields(log.Fields{
			"userID":   claimed.UserID,
			"gameType": claimed.GameType,
			"amount":   claimed.Amount,
		}).Info("Reward claimed")
	})
	b.eventBus.Subscribe(events.EventTypeUserCreated, func(ctx context.Context, e events.Event) {
		created := e.(events.UserCreatedEvent)
		log.WithFields(log.Fields{
			"userID":   created.UserID,
			"username": created.Username,
		}).Info("New player account created")
	})
}

func betOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "bet",
		Description: "Amount to bet (100, 2.5k, 1m, or all)",
		Required:    true,
	}
}

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "slots",
			Description: "Spin the 3x3 slot machine",
			Options:     []*discordgo.ApplicationCommandOption{betOption()},
		},
		{
			Name:        "spin",
			Description: "Spin the animated reels",
			Options:     []*discordgo.ApplicationCommandOption{betOption()},
		},
		{
			Name:        "coinflip",
			Description: "Flip a coin, double or nothing",
			Options: []*discordgo.ApplicationCommandOption{
				betOption(),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "side",
					Description: "The side you are calling",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Heads", Value: "heads"},
						{Name: "Tails", Value: "tails"},
					},
				},
			},
		},
		{
			Name:        "blackjack",
			Description: "Play a hand of blackjack against the dealer",
			Options:     []*discordgo.ApplicationCommandOption{betOption()},
		},
		{
			Name:        "daily",
			Description: "Claim your daily coin reward",
		},
		{
			Name:        "work",
			Description: "Work a shift at the casino for some coins",
		},
		{
			Name:        "balance",
			Description: "Check your current balance",
		},
		{
			Name:        "leaderboard",
			Description: "Show the richest players",
		},
		{
			Name:        "profile",
			Description: "Show your balance and recent transactions",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "slots":
		b.handleSlots(s, i)
	case "spin":
		b.handleAnimatedSlots(s, i)
	case "coinflip":
		b.handleCoinflip(s, i)
	case "blackjack":
		b.handleBlackjackCommand(s, i)
	case "daily":
		b.handleDaily(s, i)
	case "work":
		b.handleWork(s, i)
	case "balance":
		b.handleBalance(s, i)
	case "leaderboard":
		b.handleLeaderboard(s, i)
	case "profile":
		b.handleProfile(s, i)
	}
}

// handleBlackjackInteraction routes hit/stand button presses
func (b *Bot) handleBlackjackInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, "blackjack_") {
		return
	}
	b.handleBlackjackButton(s, i, customID)
}
