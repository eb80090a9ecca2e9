package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/config"
	"github.com/aliskhannn/flag-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/restcountries"
	"github.com/aliskhannn/flag-quiz-bot/internal/logger"
	"github.com/aliskhannn/flag-quiz-bot/internal/repository"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
	"github.com/aliskhannn/flag-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Telegram.Debug

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start a new flag quiz",
		},
		{
			Command:     "help",
			Description: "How to play",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, closeProvider, err := newFlagProvider(ctx, cfg)
	if err != nil {
		lg.Fatal("failed to init flag provider",
			zap.String("source", cfg.Flags.Source),
			zap.Error(err),
		)
	}
	defer closeProvider()

	gate := service.NewAccessGate(cfg.AccessCode)
	factory := service.NewSessionFactory(gate, provider, cfg.Quiz.Length)
	sessions := storage.NewSessionStorage()

	handler := telegram.NewHandler(bot, lg, factory, sessions)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler stopped with error", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	lg.Info("shutdown signal received")
}

// newFlagProvider builds the configured flag source and a func releasing its resources.
func newFlagProvider(ctx context.Context, cfg *config.Config) (service.FlagProvider, func(), error) {
	switch cfg.Flags.Source {
	case config.SourceRestCountries:
		return restcountries.NewClient(cfg.Flags.BaseURL, cfg.Flags.Timeout), func() {}, nil

	case config.SourceFile:
		return repository.NewFileFlagRepository(cfg.Flags.FilePath), func() {}, nil

	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}

		repo := pgrepo.NewFlagRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownFlagSource, cfg.Flags.Source)
	}
}
