package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/matchqueue/internal/config"
	"github.com/KirkDiggler/matchqueue/internal/handlers/discord"
	"github.com/KirkDiggler/matchqueue/internal/handlers/health"
	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/repositories/store"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cfg.DiscordToken == "" {
		logger.Error("DISCORD_TOKEN environment variable is required")
		os.Exit(1)
	}

	// Initialize the store
	repo, closeStore, err := store.Open(cfg.StoreConfig())
	if err != nil {
		logger.Error("Failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("Error closing store", "error", err)
		}
	}()
	logger.Info("store ready", "backend", cfg.StoreBackend)

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		logger.Error("Failed to create Discord session", "error", err)
		os.Exit(1)
	}

	render := discord.RenderConfig{
		IconURL:       cfg.IconURL,
		PixKey:        cfg.PixKey,
		FeePerEntrant: cfg.FeePerEntrant,
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		API: session,
		Categories: map[models.ActivityCategory]string{
			models.CategoryStumble:  cfg.CategoryParent(models.CategoryStumble),
			models.CategoryValorant: cfg.CategoryParent(models.CategoryValorant),
		},
		Render: render,
		Logger: logger,
	})
	if err != nil {
		logger.Error("Failed to create notifier", "error", err)
		os.Exit(1)
	}

	// Initialize queue service
	queueSvc, err := queue.New(&queue.Config{
		Store:         repo,
		Notifier:      notifier,
		Logger:        logger,
		FeePerEntrant: cfg.FeePerEntrant,
		MaxCapacity:   cfg.MaxCapacity,
	})
	if err != nil {
		logger.Error("Failed to create queue service", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		StaffIDs:      cfg.StaffIDs,
		MaxCapacity:   cfg.MaxCapacity,
		QueueService:  queueSvc,
		Render:        render,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("Failed to create Discord bot", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		logger.Error("Failed to start Discord bot", "error", err)
		os.Exit(1)
	}

	var healthSrv *health.Server
	if cfg.HealthEnabled() {
		healthSrv, err = health.New(&health.Config{
			Addr:   cfg.HealthAddr,
			Panels: queueSvc,
			Logger: logger,
		})
		if err == nil {
			err = healthSrv.Start()
		}
		if err != nil {
			logger.Warn("Health endpoint disabled", "error", err)
			healthSrv = nil
		}
	}

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	if healthSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := healthSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Error stopping health endpoint", "error", err)
		}
		cancel()
	}

	// Let tickets for rounds completed just before the signal reach Discord
	flushCtx, cancelFlush := context.WithTimeout(context.Background(), queue.DefaultNotifyTimeout)
	if err := queueSvc.Flush(flushCtx); err != nil {
		logger.Warn("Gave up waiting for match tickets", "error", err)
	}
	cancelFlush()

	if err := bot.Stop(); err != nil {
		logger.Error("Error stopping bot", "error", err)
	}

	logger.Info("Bot has been shut down")
}
