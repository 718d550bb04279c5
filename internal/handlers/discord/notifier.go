package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/bwmarrin/discordgo"
)

// NotifierConfig holds configuration for the completion notifier
type NotifierConfig struct {
	// API creates channels and sends messages, usually a *discordgo.Session
	API ChannelAPI

	// Categories maps each activity to the Discord category match channels go under
	Categories map[models.ActivityCategory]string

	Render RenderConfig

	// Logger (optional)
	Logger *slog.Logger
}

// Notifier opens a match channel for every completed queue
type Notifier struct {
	api        ChannelAPI
	categories map[models.ActivityCategory]string
	render     RenderConfig
	logger     *slog.Logger
}

// NewNotifier creates a completion notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.API == nil {
		return nil, errors.New("channel API cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Notifier{
		api:        cfg.API,
		categories: cfg.Categories,
		render:     cfg.Render,
		logger:     logger,
	}, nil
}

// QueueCompleted creates the ticket channel, mentions the matched
// participants and posts the payment embed
func (n *Notifier) QueueCompleted(ctx context.Context, event *models.QueueCompleted) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	venue, err := n.api.Channel(event.VenueID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to look up venue %s: %w", event.VenueID, err)
	}

	channel, err := n.createMatchChannel(ctx, venue.GuildID, event)
	if err != nil {
		return err
	}

	content, embed := renderTicket(event, n.render)
	if _, err := n.api.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to announce match in %s: %w", channel.ID, err)
	}
	if _, err := n.api.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send ticket to %s: %w", channel.ID, err)
	}

	n.logger.Info("match channel created",
		"completion_id", event.ID,
		"venue_id", event.VenueID,
		"channel_id", channel.ID,
		"participants", len(event.Participants))

	return nil
}

// createMatchChannel creates the channel under the activity's category and
// falls back to the guild root when that fails
func (n *Notifier) createMatchChannel(ctx context.Context, guildID string, event *models.QueueCompleted) (*discordgo.Channel, error) {
	data := discordgo.GuildChannelCreateData{
		Name:     matchChannelName(event.Label),
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: n.categories[event.Category],
	}

	channel, err := n.api.GuildChannelCreateComplex(guildID, data, discordgo.WithContext(ctx))
	if err == nil {
		return channel, nil
	}
	if data.ParentID == "" {
		return nil, fmt.Errorf("failed to create match channel: %w", err)
	}

	n.logger.Warn("failed to create match channel in category, retrying without it",
		"category_id", data.ParentID, "error", err)

	data.ParentID = ""
	channel, err = n.api.GuildChannelCreateComplex(guildID, data, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create match channel: %w", err)
	}
	return channel, nil
}
