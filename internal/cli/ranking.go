package cli

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/spf13/cobra"
)

type rankingOptions struct {
	*RootOptions
	Category string
	Limit    int
}

func newRankingCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &rankingOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Show the participants with the most joins in a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(opts.RootOptions, func(svc queue.Service) error {
				out, err := svc.TopRanking(context.Background(), &queue.TopRankingInput{
					Category: models.ActivityCategory(opts.Category),
					Limit:    opts.Limit,
				})
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to read ranking", err)
				}

				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), out.Entries)
				}

				w := cmd.OutOrStdout()
				if len(out.Entries) == 0 {
					fmt.Fprintln(w, "No entries.")
					return nil
				}
				for _, e := range out.Entries {
					fmt.Fprintf(w, "%d. %s %d\n", e.Position, e.ParticipantID, e.Count)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", string(models.CategoryStumble), "activity category (stumble|valorant)")
	cmd.Flags().IntVar(&opts.Limit, "limit", queue.DefaultRankingLimit, "maximum number of entries")

	return cmd
}
