package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jpihl/ultimax/automatic"
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

	var logchan chan string
	done := make(chan struct{})
	if path := cfg.GetString("autoplay-log-file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("opening log file")
		}
		defer f.Close()
		logchan = make(chan string, 64)
		go func() {
			for line := range logchan {
				fmt.Fprintln(f, line)
			}
			close(done)
		}()
	} else {
		close(done)
	}

	r := automatic.NewGameRunner(
		cfg.GetInt("autoplay-depth-1"),
		cfg.GetInt("autoplay-depth-2"),
		logchan)
	stats, err := r.CompareBots(context.Background(), cfg.GetInt("autoplay-games"))
	if logchan != nil {
		close(logchan)
	}
	<-done
	if err != nil {
		log.Fatal().Err(err).Msg("autoplay failed")
	}

	fmt.Printf("%d games: +%d -%d =%d (mean length %.1f plies)\n",
		stats.Games, stats.FirstWins, stats.SecondWins, stats.Draws,
		float64(stats.TotalPlies)/float64(stats.Games))
}
