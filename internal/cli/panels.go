package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/spf13/cobra"
)

type panelSummary struct {
	VenueID   string         `json:"venue_id"`
	Category  string         `json:"category"`
	UnitPrice string         `json:"unit_price"`
	Round     int            `json:"round"`
	MessageID string         `json:"message_id,omitempty"`
	Queues    []queueSummary `json:"queues"`
}

type queueSummary struct {
	ModeKey      string   `json:"mode_key"`
	Label        string   `json:"label"`
	Capacity     int      `json:"capacity"`
	Participants []string `json:"participants"`
}

func newPanelsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "panels",
		Short: "List every panel and its queues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(svc queue.Service) error {
				out, err := svc.ListPanels(context.Background())
				if err != nil {
					return WrapExitError(ExitFailure, "failed to list panels", err)
				}

				summaries := summarizePanels(out.Panels)
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), summaries)
				}

				w := cmd.OutOrStdout()
				if len(summaries) == 0 {
					fmt.Fprintln(w, "No panels.")
					return nil
				}
				for _, p := range summaries {
					fmt.Fprintf(w, "%s  %s  %s  round #%d\n", p.VenueID, p.Category, p.UnitPrice, p.Round)
					for _, q := range p.Queues {
						fmt.Fprintf(w, "  %-20s %d/%d  %s\n", q.Label, len(q.Participants), q.Capacity,
							strings.Join(q.Participants, ", "))
					}
				}
				return nil
			})
		},
	}
}

func summarizePanels(panels []*models.Panel) []panelSummary {
	summaries := make([]panelSummary, 0, len(panels))
	for _, p := range panels {
		summary := panelSummary{
			VenueID:   p.VenueID,
			Category:  string(p.Category),
			UnitPrice: p.UnitPrice.String(),
			Round:     p.Round,
			MessageID: models.Deref(p.PinnedMessageID),
			Queues:    make([]queueSummary, 0, len(p.Queues)),
		}
		for _, q := range p.Queues {
			summary.Queues = append(summary.Queues, queueSummary{
				ModeKey:      q.Key,
				Label:        q.Label,
				Capacity:     q.Capacity,
				Participants: q.Participants,
			})
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
