package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/matchqueue/internal/config"
	"github.com/KirkDiggler/matchqueue/internal/repositories/store"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/spf13/cobra"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ServiceFactory opens the queue service a command works on. The returned
// function releases it.
type ServiceFactory func(opts *RootOptions) (queue.Service, func() error, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format  string
	EnvFile string

	// Open is replaced in tests
	Open ServiceFactory
}

// NewRootCommand creates the root command for queuectl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Open: OpenService})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queuectl",
		Short: "Inspect and maintain the match queue store",
		Long: `queuectl reads the same environment and dotenv file as the bot and
operates on its store directly.

Commands that write (remove) should run while the bot is stopped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file to read")

	cmd.AddCommand(newPanelsCommand(opts))
	cmd.AddCommand(newRankingCommand(opts))
	cmd.AddCommand(newRemoveCommand(opts))

	return cmd
}

// OpenService loads the configuration and opens the configured store
func OpenService(opts *RootOptions) (queue.Service, func() error, error) {
	noop := func() error { return nil }

	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, noop, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	repo, closeStore, err := store.Open(cfg.StoreConfig())
	if err != nil {
		return nil, noop, WrapExitError(ExitCommandError, "failed to open store", err)
	}

	svc, err := queue.New(&queue.Config{
		Store:         repo,
		Logger:        slog.New(slog.DiscardHandler),
		FeePerEntrant: cfg.FeePerEntrant,
		MaxCapacity:   cfg.MaxCapacity,
	})
	if err != nil {
		return nil, noop, errors.Join(WrapExitError(ExitCommandError, "failed to create queue service", err), closeStore())
	}

	return svc, closeStore, nil
}

func withService(opts *RootOptions, run func(svc queue.Service) error) (err error) {
	svc, closeFn, err := opts.Open(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeFn(); closeErr != nil && err == nil {
			err = WrapExitError(ExitCommandError, "failed to close store", closeErr)
		}
	}()

	return run(svc)
}
