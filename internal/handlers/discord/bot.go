package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	commandIDs   map[string]string // Maps command name to command ID
	queueService queue.Service
	publisher    *panelPublisher
	deps         commandDeps
	config       *Config
	logger       *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an existing session to reuse; created from Token when nil
	Session *discordgo.Session

	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// StaffIDs may create and remove panels
	StaffIDs []string

	// MaxCapacity is quoted back when a panel capacity is refused (0 = no cap)
	MaxCapacity int

	// Queue service
	QueueService queue.Service

	Render RenderConfig

	// Logger (optional)
	Logger *slog.Logger
}

// NewSession creates a discordgo session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.QueueService == nil {
		return nil, errors.New("queue service cannot be nil")
	}

	session := cfg.Session
	if session == nil {
		var err error
		session, err = NewSession(cfg.Token)
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	publisher := &panelPublisher{
		api:     session,
		service: cfg.QueueService,
		render:  cfg.Render,
		logger:  logger,
	}

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		queueService: cfg.QueueService,
		publisher:    publisher,
		deps: commandDeps{
			service:     cfg.QueueService,
			publisher:   publisher,
			staff:       newStaffList(cfg.StaffIDs),
			logger:      logger,
			maxCapacity: cfg.MaxCapacity,
		},
		config: cfg,
		logger: logger,
	}

	if len(cfg.StaffIDs) == 0 {
		logger.Warn("no staff configured, panel commands will be refused")
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection, registers commands and restores every
// pinned panel from the store
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range []CommandHandler{
		NewStumblePanelCommand(b.deps),
		NewValorantPanelCommand(b.deps),
		NewRankingCommand(b.deps),
		NewRemoveCommand(b.deps),
	} {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	b.recover(ctx)

	b.logger.Info("bot is running")
	return nil
}

// recover completes queues left full by an earlier run and re-renders every
// pinned panel. Failures are logged; the bot keeps serving.
func (b *Bot) recover(ctx context.Context) {
	completed, err := b.queueService.CompleteFullQueues(ctx)
	if err != nil {
		b.logger.Error("failed to sweep full queues", "error", err)
	}
	if len(completed) > 0 {
		b.logger.Info("completed queues left full", "count", len(completed))
	}

	out, err := b.queueService.Recover(ctx)
	if err != nil {
		b.logger.Error("failed to recover panels", "error", err)
		return
	}

	for _, layout := range out.Panels {
		if err := b.publisher.RefreshLayout(layout); err != nil {
			b.logger.Warn("failed to restore panel",
				"venue_id", layout.VenueID, "message_id", layout.MessageID, "error", err)
			continue
		}
		b.logger.Info("restored panel", "venue_id", layout.VenueID, "message_id", layout.MessageID)
	}
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild
// when one is set or globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		"command", cmd.GetName(), "command_id", createdCmd.ID, "guild_id", b.config.GuildID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component",
				"custom_id", i.MessageComponentData().CustomID, "error", err)
		}
	}
}
