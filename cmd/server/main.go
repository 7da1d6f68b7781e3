package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordswap/internal/api"
	"wordswap/internal/config"
	"wordswap/internal/dictionary"
	"wordswap/internal/handler"
	"wordswap/internal/repository/postgres"
	"wordswap/internal/service"
	"wordswap/internal/translate"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting wordswap server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("dictionary_source", cfg.DictionarySource),
		zap.String("reorder_mode", string(cfg.ReorderMode)),
		zap.Bool("bot_enabled", cfg.BotEnabled()),
	)

	var db *sql.DB
	if cfg.NeedsDatabase() {
		db, err = connectDatabase(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		logger.Info("Database migrations completed")
	}

	// Dictionaries are fixed for the lifetime of the process
	dicts := dictionary.Dictionaries()
	if cfg.DictionarySource == config.SourcePostgres {
		dictService := service.NewDictionaryService(postgres.NewDictionaryRepo(db), logger)
		dicts, err = dictService.Load(dicts)
		if err != nil {
			logger.Fatal("Failed to load dictionaries", zap.Error(err))
		}
	}

	translator := translate.New(dicts, cfg.ReorderMode)
	if !translator.HasPair(cfg.DefaultLangPair) {
		logger.Fatal("Default language pair has no dictionary",
			zap.String("lang_pair", string(cfg.DefaultLangPair)),
		)
	}

	translationService := service.NewTranslationService(translator, cfg.DefaultLangPair, logger)

	// HTTP endpoint
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewServer(translationService, cfg.CORSAllowedOrigin, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Telegram bot
	var bot *tele.Bot
	if cfg.BotEnabled() {
		bot, err = startBot(cfg, db, translator, translationService, logger)
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	// Graceful shutdown
	if bot != nil {
		bot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}

// startBot wires the Telegram handlers and starts polling in the background
func startBot(
	cfg *config.Config,
	db *sql.DB,
	translator *translate.Translator,
	translationService *service.TranslationService,
	logger *zap.Logger,
) (*tele.Bot, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Telegram bot initialized")

	userService := service.NewUserService(postgres.NewUserRepo(db), translator, cfg.DefaultLangPair)

	h := handler.NewHandler(bot, translationService, userService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	return bot, nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
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
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}
