package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jpihl/ultimax/bot"
	"github.com/jpihl/ultimax/config"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		panic(err)
	}
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := bot.NewBot(cfg)
	if err := b.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("bot exited")
	}
	log.Info().Msg("bot shutting down")
}
