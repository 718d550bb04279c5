package cli

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/spf13/cobra"
)

func newRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <venue-id>",
		Short: "Delete the panel of a venue and its waiting participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts, func(svc queue.Service) error {
				out, err := svc.RemovePanel(context.Background(), &queue.RemovePanelInput{VenueID: args[0]})
				if err != nil {
					return WrapExitError(ExitFailure, "failed to remove panel", err)
				}

				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), map[string]string{
						"venue_id":   args[0],
						"message_id": out.PinnedMessageID,
					})
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Removed panel %s\n", args[0])
				if out.PinnedMessageID != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Pinned message %s is left in the channel\n", out.PinnedMessageID)
				}
				return nil
			})
		},
	}
}
