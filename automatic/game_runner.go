// Package automatic contains the logic for playing full games of
// ultimate tic-tac-toe between two automatic players, for strength
// comparison and smoke testing of the engine.
package automatic

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/jpihl/ultimax/board"
	"github.com/jpihl/ultimax/equity"
	"github.com/jpihl/ultimax/movegen"
	"github.com/jpihl/ultimax/negamax"
)

// Result is the outcome of a single game, from the first player's point
// of view.
type Result int

const (
	Draw Result = iota
	FirstPlayerWon
	SecondPlayerWon
)

// Stats accumulates results across a batch of games.
type Stats struct {
	Games      uint64
	FirstWins  uint64
	SecondWins uint64
	Draws      uint64
	TotalPlies uint64
}

// GameRunner plays games between two players configured by search
// depth; depth 0 plays uniformly random legal moves.
type GameRunner struct {
	depth1  int
	depth2  int
	logchan chan string
}

// NewGameRunner returns a runner for the given player depths. logchan,
// if non-nil, receives one line per finished game.
func NewGameRunner(depth1, depth2 int, logchan chan string) *GameRunner {
	return &GameRunner{depth1: depth1, depth2: depth2, logchan: logchan}
}

// pickMove selects the player's move. Searching players take the head of
// the principal variation; random players draw from the legal moves.
func pickMove(pos board.Position, side bool, depth int, moves []board.Move) board.Move {
	if depth <= 0 {
		return moves[frand.Intn(len(moves))]
	}
	_, pv := negamax.Solve(pos, side, depth)
	if pv[0] == board.NullMove {
		// Should not happen with moves available; fall back gracefully.
		return moves[frand.Intn(len(moves))]
	}
	return pv[0]
}

// playGame plays one game to the end and returns the result and the
// number of plies played. The first player always owns the us word.
func (r *GameRunner) playGame() (Result, int) {
	pos := board.NewPosition()
	side := true
	plies := 0

	for {
		moves := movegen.GenerateMoves(pos)
		if len(moves) == 0 {
			break
		}
		depth := r.depth1
		if !side {
			depth = r.depth2
		}
		m := pickMove(pos, side, depth, moves)
		pos = pos.PlayMove(m, side)
		side = !side
		plies++
	}

	switch equity.Final(pos, true) {
	case equity.OutcomeWin:
		return FirstPlayerWon, plies
	case equity.OutcomeLoss:
		return SecondPlayerWon, plies
	}
	return Draw, plies
}

// CompareBots plays the configured number of games, spreading them over
// the available CPUs. Each game's search is single-threaded; the
// evaluation tables are read-only, so games are independent.
func (r *GameRunner) CompareBots(ctx context.Context, games int) (Stats, error) {
	var stats Stats

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, plies := r.playGame()

			atomic.AddUint64(&stats.Games, 1)
			atomic.AddUint64(&stats.TotalPlies, uint64(plies))
			switch result {
			case FirstPlayerWon:
				atomic.AddUint64(&stats.FirstWins, 1)
			case SecondPlayerWon:
				atomic.AddUint64(&stats.SecondWins, 1)
			default:
				atomic.AddUint64(&stats.Draws, 1)
			}
			if r.logchan != nil {
				r.logchan <- fmt.Sprintf("game %d: result %d, plies %d", i, result, plies)
			}
			return nil
		})
	}
	err := g.Wait()

	log.Info().
		Uint64("games", atomic.LoadUint64(&stats.Games)).
		Uint64("first-wins", atomic.LoadUint64(&stats.FirstWins)).
		Uint64("second-wins", atomic.LoadUint64(&stats.SecondWins)).
		Uint64("draws", atomic.LoadUint64(&stats.Draws)).
		Msg("autoplay-finished")

	return stats, err
}
