// main.go
//
// Entry point for the Wordle tracker.
//
//	go run .          HTTP server
//	go run . console  one game on the terminal
//
// Configuration comes from the environment (.env honored) and the game
// settings file named by SETTINGS_FILE; see internal/config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-tracker/internal/config"
	"github.com/robalobadob/wordle-tracker/internal/console"
	"github.com/robalobadob/wordle-tracker/internal/httpserver"
	"github.com/robalobadob/wordle-tracker/internal/leaderboard"
	"github.com/robalobadob/wordle-tracker/internal/metrics"
	"github.com/robalobadob/wordle-tracker/internal/play"
	"github.com/robalobadob/wordle-tracker/internal/store"
)

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	settings := config.NewSettingsSource(cfg.SettingsFile)
	gameCfg, err := settings.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load game settings")
	}
	log.Info().
		Int("words", len(gameCfg.Words())).
		Int("wordLength", gameCfg.WordLength()).
		Int("maxRounds", gameCfg.MaxRounds()).
		Msg("game settings loaded")

	if len(os.Args) > 1 && os.Args[1] == "console" {
		if err := console.Run(gameCfg, os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("console game failed")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open player store")
	}
	defer st.Close()

	rec := metrics.NewRecorder()
	opts := []play.Option{play.WithMetrics(rec), play.WithDailySalt(cfg.DailySalt)}
	if cfg.Redis.Addr != "" {
		board, err := leaderboard.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, leaderboards disabled")
		} else {
			defer board.Close()
			opts = append(opts, play.WithLeaderboard(board))
		}
	}
	svc := play.NewService(st, gameCfg, opts...)

	if cfg.WatchSettings {
		settings.Watch(svc.SetConfig)
	}

	srv := httpserver.New(svc, cfg, rec)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Driver).Msg("starting wordle-tracker")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
