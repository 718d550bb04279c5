package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/bwmarrin/discordgo"
)

// handleComponentInteraction decodes a button click and dispatches it by kind
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	action, err := ParseComponentAction(i.MessageComponentData().CustomID)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "⚠️ Esta fila não existe mais.")
	}

	// Buttons are tied to the channel of their panel
	if action.VenueID != i.ChannelID {
		return RespondWithEphemeralMessage(s, i, "⚠️ Esta fila não existe mais.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	userID := interactionUserID(i)

	switch action.Kind {
	case ComponentOpen:
		return b.handleOpen(ctx, s, i, action)
	case ComponentJoin:
		return b.handleJoin(ctx, s, i, action, userID)
	case ComponentLeave:
		return b.handleLeave(ctx, s, i, action, userID)
	case ComponentMembers:
		return b.handleMembers(ctx, s, i, action)
	case ComponentOverview:
		return b.handleOverview(ctx, s, i, action)
	default:
		return fmt.Errorf("unhandled component kind %q", action.Kind)
	}
}

func (b *Bot) handleOpen(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action ComponentAction) error {
	out, err := b.queueService.GetPanel(ctx, &queue.GetPanelInput{VenueID: action.VenueID})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, describeError(err))
	}

	q, ok := out.Panel.Queue(action.ModeKey)
	if !ok {
		return RespondWithEphemeralMessage(s, i, describeError(queue.ErrQueueNotFound))
	}

	embed, rows := renderQueueDetail(out.Panel, q, b.config.Render)
	return RespondWithEphemeralEmbedAndButtons(s, i, embed, rows)
}

// handleJoin defers its answer before touching the store: the join may close
// a round, and the answer must not wait on that.
func (b *Bot) handleJoin(ctx context.Context, api InteractionAPI, i *discordgo.InteractionCreate, action ComponentAction, userID string) error {
	if err := DeferEphemeral(api, i); err != nil {
		return fmt.Errorf("failed to acknowledge join: %w", err)
	}

	out, err := b.queueService.JoinQueue(ctx, &queue.JoinQueueInput{
		VenueID:       action.VenueID,
		ModeKey:       action.ModeKey,
		ParticipantID: userID,
	})
	if err != nil {
		return EditDeferredResponse(api, i, describeError(err))
	}

	if err := EditDeferredResponse(api, i, fmt.Sprintf("✅ Você entrou na fila **%s**!", out.Queue.Label)); err != nil {
		b.logger.Warn("failed to answer join", "venue_id", action.VenueID, "error", err)
	}

	if out.Completion != nil {
		if err := FollowupEphemeral(api, i, "✅ Fila completa! Ticket sendo criado e fila reiniciada."); err != nil {
			b.logger.Warn("failed to send completion notice",
				"venue_id", action.VenueID, "completion_id", out.Completion.ID, "error", err)
		}
	}

	b.refreshPanel(ctx, action.VenueID)
	return nil
}

func (b *Bot) handleLeave(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action ComponentAction, userID string) error {
	_, err := b.queueService.LeaveQueue(ctx, &queue.LeaveQueueInput{
		VenueID:       action.VenueID,
		ModeKey:       action.ModeKey,
		ParticipantID: userID,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, describeError(err))
	}

	err = RespondWithEphemeralMessage(s, i, "🚪 Você saiu da fila.")

	b.refreshPanel(ctx, action.VenueID)
	return err
}

func (b *Bot) handleMembers(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action ComponentAction) error {
	out, err := b.queueService.GetPanel(ctx, &queue.GetPanelInput{VenueID: action.VenueID})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, describeError(err))
	}

	q, ok := out.Panel.Queue(action.ModeKey)
	if !ok {
		return RespondWithEphemeralMessage(s, i, describeError(queue.ErrQueueNotFound))
	}

	return RespondWithEphemeralMessage(s, i, renderMembers(q))
}

func (b *Bot) handleOverview(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action ComponentAction) error {
	out, err := b.queueService.GetPanel(ctx, &queue.GetPanelInput{VenueID: action.VenueID})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, describeError(err))
	}

	return RespondWithEphemeralMessage(s, i, renderOverview(out.Panel))
}

// refreshPanel updates the pinned panel counts; failures are only logged
func (b *Bot) refreshPanel(ctx context.Context, venueID string) {
	if err := b.publisher.Refresh(ctx, venueID); err != nil {
		b.logger.Warn("failed to refresh panel", "venue_id", venueID, "error", err)
	}
}
