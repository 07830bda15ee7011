package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"llamabot/server/agent"
	"llamabot/server/config"
	"llamabot/server/llm"
	"llamabot/server/logging"
	"llamabot/server/store"
)

func main() {
	_ = godotenv.Load()

	var migrate bool
	for _, a := range os.Args[1:] {
		switch a {
		case "--migrate":
			migrate = true
		}
	}

	cfg, err := config.Load()
	if err != nil && !(migrate && errors.Is(err, config.ErrMissingAPIKey)) {
		bootLog := logging.New("")
		bootLog.Fatal().Err(err).Msg("config")
	}
	logger := logging.New(cfg.LogLevel)
	if migrate {
		runMigrate(cfg, logger)
		return
	}

	client, err := llm.New(llm.Config{APIKey: cfg.GroqAPIKey})
	if err != nil {
		logger.Fatal().Err(err).Msg("completion client init failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot := &Bot{
		LLM:    client,
		Model:  client.Model(),
		System: agent.SystemPrompt,
		Log:    logger,
	}
	if db := openJournal(ctx, cfg, logger); db != nil {
		defer db.Close()
		bot.Journal = db
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           Router(bot),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("model", bot.Model).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if derr := bot.Drain(shutdownCtx); derr != nil {
			logger.Warn().Err(derr).Msg("journal drain incomplete")
		}
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("http server error")
	}
}

// openJournal connects to Postgres when DATABASE_URL is set. Failures only
// disable the journal; the bot keeps answering.
func openJournal(ctx context.Context, cfg config.Config, logger zerolog.Logger) *store.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("journal disabled (open failed)")
		return nil
	}
	if cfg.AutoMigrate {
		if err := store.Migrate(ctx, db); err != nil {
			logger.Warn().Err(err).Msg("journal disabled (migrate failed)")
			db.Close()
			return nil
		}
		logger.Info().Msg("migrated")
	}
	return db
}

func runMigrate(cfg config.Config, logger zerolog.Logger) {
	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("--migrate needs DATABASE_URL")
	}
	ctx := context.Background()
	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := store.Migrate(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("migrate")
	}
	logger.Info().Msg("migrated")
}
