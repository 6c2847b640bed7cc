package main

import (
	"context"
	"dscbot/internal/bot"
	"dscbot/internal/config"
	"dscbot/internal/gameapi"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	// Configuration
	cfg, dotenvFound, err := config.Load()
	setupLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load configuration")
	}
	if !dotenvFound {
		log.Debug().Msg("No .env file found, using the process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Game API
	api := gameapi.NewClient(cfg.ApiUrl, cfg.PlayersUrl, cfg.FetchTimeout)
	log.Info().Str("api", cfg.ApiUrl).Str("players", cfg.PlayersUrl).Dur("timeout", cfg.FetchTimeout).Msg("Game API configured")

	// Run bot
	if err := bot.NewBot(cfg.DiscordToken, cfg.CommandPrefix, api).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Bot stopped")
	}
	log.Info().Msg("Bye")
}

// Falls back to debug and console output when the configuration is empty
func setupLogger(cfg config.Config) {

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogPretty || cfg.LogLevel == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	}
	zerolog.DefaultContextLogger = &log.Logger

	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Unknown log level, using debug")
	}
}
