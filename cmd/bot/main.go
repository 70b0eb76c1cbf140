package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/myra/bird-quiz-bot/internal/config"
	"github.com/myra/bird-quiz-bot/internal/delivery/telegram"
	"github.com/myra/bird-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/myra/bird-quiz-bot/internal/infra/postgres/repository"
	"github.com/myra/bird-quiz-bot/internal/logger"
	"github.com/myra/bird-quiz-bot/internal/repository"
	"github.com/myra/bird-quiz-bot/internal/service"
	"github.com/myra/bird-quiz-bot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.APIToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}
	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{Command: "quiz", Description: "Start or continue the quiz"},
		{Command: "random", Description: "Show a random bird"},
		{Command: "species", Description: "Browse all species"},
		{Command: "progress", Description: "Show your stats"},
		{Command: "settings", Description: "Question types and answer formats"},
		{Command: "reset", Description: "Reset settings and progress"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	speciesRepo, err := repository.NewSpeciesRepository(cfg.DatasetPath)
	if err != nil {
		zl.Fatal("failed to load dataset",
			zap.String("path", cfg.DatasetPath),
			zap.Error(err),
		)
	}
	zl.Info("dataset loaded",
		zap.Int("species", speciesRepo.Count()),
		zap.String("version", speciesRepo.Metadata().Version),
	)

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("missing database configuration", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	progressService := service.NewProgressService(pgrepo.NewProgressRepository(pool))
	settingsService := service.NewSettingsService(pgrepo.NewSettingsRepository(pool))
	resetService := service.NewResetService(postgres.NewTransactor(pool))

	handler := telegram.NewHandler(
		bot,
		zl,
		speciesRepo,
		service.NewGenerator(),
		storage.NewSessions(),
		progressService,
		settingsService,
		resetService,
		cfg.MediaDir,
	)

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
