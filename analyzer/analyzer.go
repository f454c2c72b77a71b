// Package analyzer exposes the engine behind a string-in, tokens-out
// surface suitable for embedding: behind the wasm boundary, a message
// queue, or the interactive shell. Requests carry the search depth and a
// position serialised as the three packed words in decimal; responses
// are tagged token sequences.
package analyzer

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/jpihl/ultimax/board"
	"github.com/jpihl/ultimax/negamax"
	"github.com/jpihl/ultimax/utn"
)

// Analyzer runs fixed-depth searches on serialised positions.
type Analyzer struct {
	maxDepth int
}

// NewAnalyzer returns an analyzer that rejects depths above maxDepth.
// Out-of-range ceilings are clamped to the search's own limit.
func NewAnalyzer(maxDepth int) *Analyzer {
	if maxDepth <= 0 || maxDepth > negamax.MaxPly {
		maxDepth = negamax.MaxPly
	}
	return &Analyzer{maxDepth: maxDepth}
}

// NewDefaultAnalyzer returns an analyzer with the search's own depth
// ceiling.
func NewDefaultAnalyzer() *Analyzer {
	return NewAnalyzer(negamax.MaxPly)
}

// Analyze searches the given position to the given depth and returns the
// response tokens:
//
//	info depth <d> <pv moves...> <score>
//	error depth invalid
//	error depth overflow <max>
//	error board invalid
//
// boardWords is the three packed position words in decimal, separated by
// spaces. side selects the player the search answers for, as in
// PlayMove.
func (an *Analyzer) Analyze(depth, boardWords string, side bool) []string {
	d, err := strconv.Atoi(depth)
	if err != nil || d <= 0 {
		return []string{"error", "depth", "invalid"}
	}
	if d > an.maxDepth {
		return []string{"error", "depth", "overflow", strconv.Itoa(an.maxDepth)}
	}
	pos, err := utn.ParseWords(boardWords)
	if err != nil {
		return []string{"error", "board", "invalid"}
	}

	score, pv := negamax.Solve(pos, side, d)

	resp := []string{"info", "depth", strconv.Itoa(d)}
	resp = append(resp, lo.Map(trimPV(pv), func(m board.Move, _ int) string {
		return utn.MoveString(m)
	})...)
	return append(resp, utn.EvalString(score, d))
}

func trimPV(pv []board.Move) []board.Move {
	for i, m := range pv {
		if m == board.NullMove {
			return pv[:i]
		}
	}
	return pv
}
