// Package bot is a worker that serves engine analysis over NATS. It
// subscribes on a single subject and answers request-reply messages, so
// several workers can be pointed at the same subject to scale out.
package bot

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/jpihl/ultimax/analyzer"
	"github.com/jpihl/ultimax/config"
)

// AnalysisRequest is the JSON payload the bot answers. Board is the
// three packed position words in decimal, separated by spaces; Side
// selects the player searched for, as in PlayMove.
type AnalysisRequest struct {
	Depth string `json:"depth"`
	Board string `json:"board"`
	Side  bool   `json:"side"`
}

// AnalysisResponse carries the analyzer's token response back to the
// requester.
type AnalysisResponse struct {
	Tokens []string `json:"tokens"`
}

// Bot subscribes to the configured subject and runs searches on demand.
type Bot struct {
	cfg *config.Config
	an  *analyzer.Analyzer
	nc  *nats.Conn
}

// NewBot creates a bot; call Run to connect and serve.
func NewBot(cfg *config.Config) *Bot {
	return &Bot{
		cfg: cfg,
		an:  analyzer.NewAnalyzer(cfg.GetInt("max-analysis-depth")),
	}
}

// handle turns one raw request into one raw reply. Malformed requests
// get an error response rather than silence so requesters don't hang.
func (b *Bot) handle(data []byte) []byte {
	var req AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		out, _ := json.Marshal(AnalysisResponse{
			Tokens: []string{"error", "request", "invalid"},
		})
		return out
	}
	tokens := b.an.Analyze(req.Depth, req.Board, req.Side)
	out, err := json.Marshal(AnalysisResponse{Tokens: tokens})
	if err != nil {
		log.Error().Err(err).Msg("marshalling analysis response")
		return nil
	}
	return out
}

// Run connects to NATS and serves analysis requests until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	nc, err := nats.Connect(b.cfg.GetString("nats-url"))
	if err != nil {
		return err
	}
	b.nc = nc
	defer nc.Close()

	subject := b.cfg.GetString("nats-subject")
	sub, err := nc.QueueSubscribe(subject, subject, func(msg *nats.Msg) {
		log.Debug().Str("subject", msg.Subject).Int("bytes", len(msg.Data)).
			Msg("analysis-request")
		if reply := b.handle(msg.Data); reply != nil {
			if err := msg.Respond(reply); err != nil {
				log.Error().Err(err).Msg("responding to analysis request")
			}
		}
	})
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	log.Info().Str("subject", subject).Str("url", b.cfg.GetString("nats-url")).
		Msg("bot-listening")
	<-ctx.Done()
	return ctx.Err()
}
