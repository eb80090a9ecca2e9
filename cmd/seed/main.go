// Command seed copies the REST Countries catalog into the flags table used by
// the postgres flag source.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/restcountries"
	"github.com/aliskhannn/flag-quiz-bot/internal/repository"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

func main() {
	_ = godotenv.Load()

	dsn := flag.String("dsn", "", "PostgreSQL connection string (defaults to $DATABASE_URL)")
	baseURL := flag.String("base-url", restcountries.DefaultBaseURL, "REST Countries API base URL")
	file := flag.String("file", "", "read the catalog from a JSON file instead of the API")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	lg, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if *dsn == "" {
		*dsn = os.Getenv("DATABASE_URL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var source service.FlagProvider = restcountries.NewClient(*baseURL, *timeout)
	if *file != "" {
		source = repository.NewFileFlagRepository(*file)
	}

	if err := run(ctx, lg, *dsn, source); err != nil {
		lg.Error("seed failed", zap.Error(err))
		_ = lg.Sync()
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, lg *zap.Logger, dsn string, source service.FlagProvider) error {
	if dsn == "" {
		return errors.New("no database: pass -dsn or set DATABASE_URL")
	}

	records, err := source.LoadFlags(ctx)
	if err != nil {
		return fmt.Errorf("load flags: %w", err)
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 2})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	repo := pgrepo.NewFlagRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("prepare schema: %w", err)
	}

	var stored int
	err = postgres.NewTransactor(pool).WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		stored, err = repo.ReplaceAllWithTx(ctx, tx, records)
		return err
	})
	if err != nil {
		return fmt.Errorf("store flags: %w", err)
	}

	lg.Info("flags stored",
		zap.Int("fetched", len(records)),
		zap.Int("stored", stored),
	)
	return nil
}
