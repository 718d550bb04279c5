package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/bwmarrin/discordgo"
)

const (
	// requestTimeout bounds the work done for one interaction
	requestTimeout = 10 * time.Second

	maxLabelLength = 45
)

// StumbleMaps are the fixed maps of a Stumble Guys panel
var StumbleMaps = []string{"Block Dash", "Rush Hour", "Laser Tracer"}

// staffList holds the user IDs allowed to manage panels
type staffList map[string]struct{}

func newStaffList(ids []string) staffList {
	staff := make(staffList, len(ids))
	for _, id := range ids {
		staff[id] = struct{}{}
	}
	return staff
}

func (s staffList) allows(userID string) bool {
	_, ok := s[userID]
	return ok
}

// commandDeps are shared by every slash command
type commandDeps struct {
	service   queue.Service
	publisher *panelPublisher
	staff     staffList
	logger    *slog.Logger

	// maxCapacity is the engine's capacity cap, shown when a capacity is refused
	maxCapacity int
}

// CreatePanelCommand handles /criar and /criarvalorant
type CreatePanelCommand struct {
	BaseCommand
	commandDeps
	category        models.ActivityCategory
	defaultCapacity int
	defaultModes    string
}

// NewStumblePanelCommand creates the /criar command for the fixed Stumble Guys maps
func NewStumblePanelCommand(deps commandDeps) *CreatePanelCommand {
	return &CreatePanelCommand{
		BaseCommand: BaseCommand{
			Name:        "criar",
			Description: "Cria o painel de Stumble Guys com mapas (Block Dash, Rush Hour, Laser Tracer).",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "valor",
					Description: "Valor da aposta por pessoa (R$)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "max_pessoas",
					Description: "Número máximo por fila",
				},
			},
		},
		commandDeps:     deps,
		category:        models.CategoryStumble,
		defaultCapacity: 8,
	}
}

// NewValorantPanelCommand creates the /criarvalorant command with custom modes
func NewValorantPanelCommand(deps commandDeps) *CreatePanelCommand {
	return &CreatePanelCommand{
		BaseCommand: BaseCommand{
			Name:        "criarvalorant",
			Description: "Cria painel Valorant com modos customizáveis (ex: 1x1,2x2,5x5).",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "valor",
					Description: "Valor da aposta por pessoa (R$)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "max_pessoas",
					Description: "Número máximo padrão por fila",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "modos",
					Description: "Modos separados por vírgula. ex: 1x1,2x2,5x5",
				},
			},
		},
		commandDeps:     deps,
		category:        models.CategoryValorant,
		defaultCapacity: 5,
		defaultModes:    "1x1,2x2,5x5",
	}
}

// Handle creates or updates the panel of the channel and publishes it
func (c *CreatePanelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if !c.staff.allows(interactionUserID(i)) {
		return RespondWithError(s, i, describeError(queue.ErrPermissionDenied))
	}

	input, err := c.buildInput(i.ChannelID, options(i))
	if err != nil {
		return RespondWithError(s, i, describeError(err))
	}

	out, err := c.service.CreatePanel(ctx, input)
	if errors.Is(err, queue.ErrInvalidCapacity) {
		return RespondWithError(s, i, capacityMessage(c.maxCapacity))
	}
	if err != nil {
		c.logger.Error("failed to create panel", "venue_id", i.ChannelID, "error", err)
		return RespondWithError(s, i, describeError(err))
	}

	if err := c.publisher.Publish(ctx, out.Panel); err != nil {
		c.logger.Error("failed to publish panel", "venue_id", i.ChannelID, "error", err)
		return RespondWithError(s, i, "❌ Painel salvo, mas não foi possível publicar a mensagem.")
	}

	labels := make([]string, len(input.Modes))
	for n, m := range input.Modes {
		labels[n] = m.Label
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("✅ Painel de %s criado e fixado! Modos: %s",
		categoryTitle(c.category), strings.Join(labels, ", ")))
}

func (c *CreatePanelCommand) buildInput(venueID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*queue.CreatePanelInput, error) {
	price := models.Money(100)
	if opt, ok := opts["valor"]; ok {
		price = models.MoneyFromFloat(opt.FloatValue())
	}

	capacity := c.defaultCapacity
	if opt, ok := opts["max_pessoas"]; ok {
		capacity = int(opt.IntValue())
	}

	var modes []queue.ModeInput
	var err error
	switch c.category {
	case models.CategoryStumble:
		modes, err = parseModes(strings.Join(StumbleMaps, ","), capacity)
	default:
		raw := c.defaultModes
		if opt, ok := opts["modos"]; ok {
			raw = opt.StringValue()
		}
		modes, err = parseModes(raw, capacity)
	}
	if err != nil {
		return nil, err
	}

	return &queue.CreatePanelInput{
		VenueID:   venueID,
		Category:  c.category,
		UnitPrice: price,
		Modes:     modes,
	}, nil
}

// parseModes splits a comma list of mode labels; repeated labels collapse into one
func parseModes(raw string, capacity int) ([]queue.ModeInput, error) {
	seen := make(map[string]bool)
	var modes []queue.ModeInput
	for _, label := range strings.Split(raw, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if utf8.RuneCountInString(label) > maxLabelLength {
			return nil, fmt.Errorf("%w: %q is longer than %d characters", queue.ErrInvalidInput, label, maxLabelLength)
		}
		key := models.ModeKey(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		modes = append(modes, queue.ModeInput{Key: key, Label: label, Capacity: capacity})
	}

	if len(modes) == 0 {
		return nil, queue.ErrNoModes
	}
	if len(modes) > maxSelectors {
		return nil, fmt.Errorf("%w: at most %d modes per panel", queue.ErrInvalidInput, maxSelectors)
	}
	return modes, nil
}

// RankingCommand handles /ranking
type RankingCommand struct {
	BaseCommand
	commandDeps
}

// NewRankingCommand creates the /ranking command
func NewRankingCommand(deps commandDeps) *RankingCommand {
	return &RankingCommand{
		BaseCommand: BaseCommand{
			Name:        "ranking",
			Description: "Mostra ranking geral (especifique jogo: stumble ou valorant)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "jogo",
					Description: "stumble ou valorant",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Stumble Guys", Value: string(models.CategoryStumble)},
						{Name: "Valorant", Value: string(models.CategoryValorant)},
					},
				},
			},
		},
		commandDeps: deps,
	}
}

// Handle shows the top participants of a category
func (c *RankingCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	category := models.CategoryStumble
	if opt, ok := options(i)["jogo"]; ok {
		category = models.ActivityCategory(strings.ToLower(opt.StringValue()))
	}

	out, err := c.service.TopRanking(ctx, &queue.TopRankingInput{Category: category})
	if err != nil {
		return RespondWithError(s, i, describeError(err))
	}
	if len(out.Entries) == 0 {
		return RespondWithEphemeralMessage(s, i, "Nenhum dado de ranking ainda.")
	}

	return RespondWithEmbed(s, i, renderRanking(category, out.Entries))
}

// RemoveCommand handles /remover
type RemoveCommand struct {
	BaseCommand
	commandDeps
}

// NewRemoveCommand creates the /remover command
func NewRemoveCommand(deps commandDeps) *RemoveCommand {
	return &RemoveCommand{
		BaseCommand: BaseCommand{
			Name:        "remover",
			Description: "Remove painel/fila ativa neste canal (desfixa mensagem e limpa filas).",
		},
		commandDeps: deps,
	}
}

// Handle deletes the panel of the channel and unpins its message
func (c *RemoveCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if !c.staff.allows(interactionUserID(i)) {
		return RespondWithError(s, i, describeError(queue.ErrPermissionDenied))
	}

	out, err := c.service.RemovePanel(ctx, &queue.RemovePanelInput{VenueID: i.ChannelID})
	if err != nil {
		return RespondWithError(s, i, describeError(err))
	}

	if out.PinnedMessageID != "" {
		c.publisher.unpin(i.ChannelID, out.PinnedMessageID)
	}

	return RespondWithMessage(s, i, "🗑️ Painel removido e dados limpos.")
}
