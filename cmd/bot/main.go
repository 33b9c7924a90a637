package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordtrainer/internal/config"
	"wordtrainer/internal/fsm"
	"wordtrainer/internal/handler"
	"wordtrainer/internal/middleware"
	"wordtrainer/internal/repository/postgres"
	"wordtrainer/internal/seed"
	"wordtrainer/internal/service"
	"wordtrainer/internal/session"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting word trainer bot")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database with retries
	db, err := connectDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories and services
	userRepo := postgres.NewUserRepo(db)
	wordRepo := postgres.NewWordRepo(db)

	userService := service.NewUserService(userRepo, cfg.Database.Timeout)
	wordService := service.NewWordService(wordRepo, cfg.Database.Timeout)
	quizService := service.NewQuizService(wordRepo, cfg.Database.Timeout)

	pairs, err := seed.Load(cfg.SeedFile)
	if err != nil {
		logger.Fatal("Failed to load seed words", zap.Error(err))
	}
	if err := wordService.SeedSharedWords(ctx, pairs); err != nil {
		logger.Fatal("Failed to seed shared words", zap.Error(err))
	}

	logger.Info("Shared dictionary seeded", zap.Int("words", len(pairs)))

	sessions := session.NewStore(cfg.Session.TTL)
	janitor := service.NewSessionJanitor(sessions, logger)
	machine := fsm.NewMachine(userService, wordService, quizService, sessions, logger)

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, c tele.Context) {
			logger.Error("Update failed", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	bot.Use(middleware.Recover(logger), middleware.Logging(logger))

	h := handler.NewHandler(bot, machine, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Bot started successfully")
		bot.Start()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received, stopping bot...")
		bot.Stop()
		return nil
	})

	g.Go(func() error {
		runSessionJanitor(gctx, janitor, cfg.Session.SweepInterval, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
		return
	}

	logger.Info("Bot stopped gracefully")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		var db *sqlx.DB
		pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.Timeout)
		db, err = sqlx.ConnectContext(pingCtx, "postgres", cfg.DSN())
		cancel()
		if err == nil {
			db.SetMaxOpenConns(cfg.Database.MaxConnections)
			db.SetMaxIdleConns(max(1, cfg.Database.MaxConnections/5))
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}

		logger.Warn("Failed to connect to database",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sqlx.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db.DB, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runSessionJanitor drops idle sessions until ctx is done
func runSessionJanitor(ctx context.Context, janitor *service.SessionJanitor, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session janitor stopped")
			return
		case <-ticker.C:
			janitor.CleanupExpired()
		}
	}
}
