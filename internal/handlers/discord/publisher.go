package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/bwmarrin/discordgo"
)

// ChannelAPI is the part of *discordgo.Session used to manage channels and messages
type ChannelAPI interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessagePin(channelID, messageID string, options ...discordgo.RequestOption) error
	ChannelMessageUnpin(channelID, messageID string, options ...discordgo.RequestOption) error
}

// panelPublisher owns the pinned panel message of each venue
type panelPublisher struct {
	api     ChannelAPI
	service queue.Service
	render  RenderConfig
	logger  *slog.Logger
}

// Publish sends a fresh panel message, pins it, records it on the panel and
// unpins the one it replaces. Pin failures are logged only.
func (p *panelPublisher) Publish(ctx context.Context, panel *models.Panel) error {
	embed, components := renderPanel(queue.LayoutOf(panel), p.render)

	msg, err := p.api.ChannelMessageSendComplex(panel.VenueID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("failed to send panel message: %w", err)
	}

	if err := p.api.ChannelMessagePin(panel.VenueID, msg.ID); err != nil {
		p.logger.Warn("failed to pin panel message",
			"venue_id", panel.VenueID, "message_id", msg.ID, "error", err)
	}

	out, err := p.service.SetPanelMessage(ctx, &queue.SetPanelMessageInput{
		VenueID:   panel.VenueID,
		MessageID: msg.ID,
	})
	if err != nil {
		return err
	}

	if out.PreviousMessageID != "" && out.PreviousMessageID != msg.ID {
		p.unpin(panel.VenueID, out.PreviousMessageID)
	}

	return nil
}

// Refresh re-renders the pinned panel message of a venue from its stored queues
func (p *panelPublisher) Refresh(ctx context.Context, venueID string) error {
	out, err := p.service.GetPanel(ctx, &queue.GetPanelInput{VenueID: venueID})
	if err != nil {
		return err
	}
	if out.Panel.PinnedMessageID == nil {
		return nil
	}
	return p.RefreshLayout(queue.LayoutOf(out.Panel))
}

// RefreshLayout edits the pinned message in place
func (p *panelPublisher) RefreshLayout(layout queue.PanelLayout) error {
	if layout.MessageID == "" {
		return nil
	}

	embed, components := renderPanel(layout, p.render)
	embeds := []*discordgo.MessageEmbed{embed}

	_, err := p.api.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    layout.VenueID,
		ID:         layout.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		return fmt.Errorf("failed to edit panel message %s: %w", layout.MessageID, err)
	}
	return nil
}

func (p *panelPublisher) unpin(venueID, messageID string) {
	if err := p.api.ChannelMessageUnpin(venueID, messageID); err != nil {
		p.logger.Warn("failed to unpin panel message",
			"venue_id", venueID, "message_id", messageID, "error", err)
	}
}
