package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	colorPanel = 0x992d22
	colorGold  = 0xf1c40f
	colorError = 0xff0000

	footerText = "ZN Revelation • Apostas automáticas"

	// Discord allows five rows of five buttons; one slot is the overview button
	buttonsPerRow = 5
	maxSelectors  = 24
)

// RenderConfig holds presentation settings shared by every message
type RenderConfig struct {
	// IconURL is shown as the embed thumbnail (optional)
	IconURL string

	// PixKey is the payment key printed on tickets
	PixKey string

	// FeePerEntrant is the house fee shown on panels
	FeePerEntrant models.Money
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

// formatMoney renders an amount the way Brazilian users write it, e.g. "R$ 1.234,50"
func formatMoney(m models.Money) string {
	return printer.Sprintf("R$ %.2f", m.Float())
}

func categoryTitle(category models.ActivityCategory) string {
	switch category {
	case models.CategoryStumble:
		return "Stumble Guys"
	case models.CategoryValorant:
		return "Valorant"
	}
	return string(category)
}

func mention(participantID string) string {
	return "<@" + participantID + ">"
}

func mentions(participantIDs []string, sep string) string {
	out := make([]string, len(participantIDs))
	for i, id := range participantIDs {
		out[i] = mention(id)
	}
	return strings.Join(out, sep)
}

// matchChannelName builds the ticket channel name, e.g. "🎫-blockdash-apostado"
func matchChannelName(label string) string {
	name := strings.ToLower(strings.Join(strings.Fields(label), ""))
	return "🎫-" + name + "-apostado"
}

func (c RenderConfig) thumbnail() *discordgo.MessageEmbedThumbnail {
	if c.IconURL == "" {
		return nil
	}
	return &discordgo.MessageEmbedThumbnail{URL: c.IconURL}
}

// renderPanel builds the pinned panel message from its layout alone, so a
// restart can rebuild it without any cached view.
func renderPanel(layout queue.PanelLayout, cfg RenderConfig) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	selectors := layout.Selectors
	if len(selectors) > maxSelectors {
		selectors = selectors[:maxSelectors]
	}

	lines := make([]string, 0, len(selectors))
	for _, sel := range selectors {
		lines = append(lines, printer.Sprintf("• **%s** — %d/%d", sel.Label, sel.Count, sel.Capacity))
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎮 Painel • %s", categoryTitle(layout.Category)),
		Description: fmt.Sprintf("💰 **Valor por pessoa:** %s\n🧾 **Taxa:** %s por AP\n🔁 **Rodada:** #%d\n\n%s",
			formatMoney(layout.UnitPrice), formatMoney(cfg.FeePerEntrant), layout.Round, strings.Join(lines, "\n")),
		Color:     colorPanel,
		Thumbnail: cfg.thumbnail(),
		Footer:    &discordgo.MessageEmbedFooter{Text: footerText},
	}

	buttons := make([]discordgo.MessageComponent, 0, len(selectors)+1)
	for _, sel := range selectors {
		button, ok := actionButton(ComponentAction{Kind: ComponentOpen, VenueID: layout.VenueID, ModeKey: sel.ModeKey},
			sel.Label, discordgo.PrimaryButton)
		if ok {
			buttons = append(buttons, button)
		}
	}
	if button, ok := actionButton(ComponentAction{Kind: ComponentOverview, VenueID: layout.VenueID},
		"Ver filas", discordgo.SecondaryButton); ok {
		buttons = append(buttons, button)
	}

	return embed, buttonRows(buttons)
}

func actionButton(action ComponentAction, label string, style discordgo.ButtonStyle) (discordgo.Button, bool) {
	id, err := action.CustomID()
	if err != nil {
		return discordgo.Button{}, false
	}
	return discordgo.Button{Label: label, Style: style, CustomID: id}, true
}

func buttonRows(buttons []discordgo.MessageComponent) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for len(buttons) > 0 {
		n := min(buttonsPerRow, len(buttons))
		rows = append(rows, discordgo.ActionsRow{Components: buttons[:n]})
		buttons = buttons[n:]
	}
	return rows
}

// renderQueueDetail shows one queue with its join, leave and members buttons
func renderQueueDetail(panel *models.Panel, q *models.Queue, cfg RenderConfig) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	var players string
	if len(q.Participants) > 0 {
		players = "🎟️ Jogadores:\n" + mentions(q.Participants, "\n")
	} else {
		players = "Nenhum jogador na fila ainda."
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎮 Fila #%d • %s", panel.Round, q.Label),
		Description: printer.Sprintf("🎮 **Jogo:** %s\n🗂️ **Modo/Mapa:** %s\n💰 **Valor por pessoa:** %s\n🧾 **Taxa:** %s por AP\n👥 **%d/%d inscritos**\n\n%s",
			categoryTitle(panel.Category), q.Label, formatMoney(panel.UnitPrice), formatMoney(cfg.FeePerEntrant),
			len(q.Participants), q.Capacity, players),
		Color:     colorPanel,
		Thumbnail: cfg.thumbnail(),
		Footer:    &discordgo.MessageEmbedFooter{Text: footerText},
	}

	var buttons []discordgo.MessageComponent
	for _, b := range []struct {
		kind  ComponentKind
		label string
		style discordgo.ButtonStyle
	}{
		{ComponentJoin, "Entrar", discordgo.SuccessButton},
		{ComponentLeave, "Sair", discordgo.DangerButton},
		{ComponentMembers, "Ver jogadores", discordgo.SecondaryButton},
	} {
		if button, ok := actionButton(ComponentAction{Kind: b.kind, VenueID: panel.VenueID, ModeKey: q.Key}, b.label, b.style); ok {
			buttons = append(buttons, button)
		}
	}

	return embed, buttonRows(buttons)
}

func renderMembers(q *models.Queue) string {
	if len(q.Participants) == 0 {
		return "Nenhum jogador nessa fila."
	}
	return fmt.Sprintf("👥 Jogadores na fila %s:\n%s", q.Label, mentions(q.Participants, "\n"))
}

func renderOverview(panel *models.Panel) string {
	lines := make([]string, 0, len(panel.Queues))
	for _, q := range panel.Queues {
		lines = append(lines, printer.Sprintf("**%s** — %d/%d", q.Label, len(q.Participants), q.Capacity))
	}
	return "📋 Filas:\n" + strings.Join(lines, "\n")
}

func renderRanking(category models.ActivityCategory, entries []models.RankingEntry) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, printer.Sprintf("%d. %s — %d entradas", e.Position, mention(e.ParticipantID), e.Count))
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Ranking • %s", categoryTitle(category)),
		Description: strings.Join(lines, "\n"),
		Color:       colorGold,
	}
}

// renderTicket builds the announcement and the payment embed sent to a new match channel
func renderTicket(event *models.QueueCompleted, cfg RenderConfig) (string, *discordgo.MessageEmbed) {
	content := fmt.Sprintf("🎮 %s — o confronto foi criado! Enviem o **comprovante do Pix** aqui.",
		mentions(event.Participants, " "))

	description := fmt.Sprintf("💸 **Valor por pessoa:** %s\n💰 **Total (sem taxa):** %s\n💸 **Taxa total (%s por AP):** %s\n\n",
		formatMoney(event.UnitPrice), formatMoney(event.TotalValue), formatMoney(cfg.FeePerEntrant), formatMoney(event.FeeTotal))
	if cfg.PixKey != "" {
		description += fmt.Sprintf("🔑 **Chave Pix:** `%s`\n\n", cfg.PixKey)
	}
	description += "⚠️ Enviem o comprovante **neste canal** para começar a partida."

	return content, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎟️ Ticket • %s", event.Label),
		Description: description,
		Color:       colorPanel,
		Thumbnail:   cfg.thumbnail(),
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Rodada #%d", event.CompletedRound)},
	}
}
