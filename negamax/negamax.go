// Package negamax implements the engine's fixed-depth search: a
// fail-hard alpha-beta negamax that returns both a score and the
// principal variation. The search is synchronous and single-threaded;
// callers wanting parallelism may run independent searches on distinct
// positions, since the evaluation tables are read-only.
package negamax

import (
	"github.com/jpihl/ultimax/board"
	"github.com/jpihl/ultimax/equity"
	"github.com/jpihl/ultimax/movegen"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
(* Initial call for Player A's root node *)
negamax(rootNode, depth, −∞, +∞, 1)
**/

// MaxPly bounds the search depth. The game itself never exceeds 81
// plies; a lower bound keeps the fixed-size variation arrays that travel
// through the recursion small.
const MaxPly = 32

// PVLine is a fixed-length principal variation. Slot maxDepth-depth
// holds the move played at that level; slots past the end of the line
// hold NullMove.
type PVLine [MaxPly]board.Move

func emptyPV() PVLine {
	var pv PVLine
	for i := range pv {
		pv[i] = board.NullMove
	}
	return pv
}

// Moves returns the leading non-null moves of the variation.
func (pv PVLine) Moves() []board.Move {
	for i, m := range pv {
		if m == board.NullMove {
			return pv[:i:i]
		}
	}
	return pv[:]
}

// mateAdjust pulls conclusive scores toward the root by the number of
// plies already searched, so the search prefers the shortest win and the
// longest loss.
func mateAdjust(eval equity.Eval, depth, maxDepth int) equity.Eval {
	switch eval {
	case equity.OutcomeWin:
		return eval - equity.Eval(maxDepth-depth)
	case equity.OutcomeLoss:
		return eval + equity.Eval(maxDepth-depth)
	}
	return eval
}

// alphaBeta searches pos to the given remaining depth inside the
// fail-hard window [α, β]. side selects which word the next mark goes
// into and the sign of the evaluation; it flips on every level.
func alphaBeta(pos board.Position, side bool, depth int, α, β equity.Eval, maxDepth int) (equity.Eval, PVLine) {
	if depth == 0 {
		return mateAdjust(equity.Evaluate(pos, side), depth, maxDepth), emptyPV()
	}

	var buf [81]board.Move
	moves := movegen.AppendLegalMoves(buf[:0], pos)

	if len(moves) == 0 {
		// Game over. Only the meta-board matters now; anything short of
		// a decided meta-board is a draw here even if the heuristic
		// would have had an opinion.
		eval := equity.Final(pos, side)
		switch eval {
		case equity.OutcomeWin, equity.OutcomeLoss:
			eval = mateAdjust(eval, depth, maxDepth)
		default:
			eval = equity.OutcomeDraw
		}
		return eval, emptyPV()
	}

	pv := emptyPV()
	for _, m := range moves {
		value, line := alphaBeta(pos.PlayMove(m, side), !side, depth-1, -β, -α, maxDepth)
		value = -value
		line[maxDepth-depth] = m

		if value >= β {
			// Fail-hard beta cutoff.
			return β, line
		}
		if value > α {
			// New best move found. Update PV.
			α = value
			pv = line
		}
	}
	return α, pv
}

// Solve searches pos to exactly depth plies with a full window and
// returns the score and the principal variation, whose length is exactly
// depth (padded with NullMove when the line ends early). depth must be
// in [1, MaxPly].
func Solve(pos board.Position, side bool, depth int) (equity.Eval, []board.Move) {
	score, pv := alphaBeta(pos, side, depth, equity.OutcomeLoss, equity.OutcomeWin, depth)
	return score, pv[:depth]
}
