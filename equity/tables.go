// Package equity computes static evaluations of positions. Two lookup
// tables, one scoring a zone as a cell of the meta-board and one scoring
// a zone's interior, are precomputed over all 512x512 pairs of 9-bit
// grids at process start and are immutable afterwards, so concurrent
// searches may share them freely.
package equity

import (
	"math/bits"

	"github.com/jpihl/ultimax/board"
)

// Eval is a centipawn-like heuristic score. Positive is good for the
// side owning the us word.
type Eval = int32

// Outcome scores. Conclusive results sit far outside any heuristic sum
// so the search can recognise them exactly.
const (
	OutcomeWin  Eval = 1_000_000
	OutcomeDraw Eval = 0
	OutcomeLoss Eval = -1_000_000
)

// Line scoring weights. The big weights apply when a zone is scored as a
// meta-board cell, the small ones inside a zone.
const (
	bigTwoCount   Eval = 90
	bigOneCount   Eval = 20
	smallTwoCount Eval = 8
	smallOneCount Eval = 1
)

// Positional weights for cell placement, and the factor that scales the
// positional term up in the meta-board table.
const (
	centreWeight Eval = 9
	cornerWeight Eval = 7
	edgeWeight   Eval = 5
	sqBig        Eval = 25
)

const (
	cornerMask uint64 = 0b101_000_101
	edgeMask   uint64 = 0b010_101_010
	centreMask uint64 = 0b000_010_000
)

// evalLarge and evalSmall are indexed by (them<<9)|us, where us and them
// are the 9-bit grid patterns of one 3x3 board.
var (
	evalLarge [512 * 512]Eval
	evalSmall [512 * 512]Eval
)

func init() {
	for us := uint64(0); us < 512; us++ {
		for them := uint64(0); them < 512; them++ {
			buildEntry(us, them)
		}
	}
}

func lineScore(count int, two, one Eval) Eval {
	switch count {
	case 2:
		return two
	case 1:
		return one
	}
	return 0
}

func popcnt(grid uint64) Eval {
	return Eval(bits.OnesCount16(uint16(grid)))
}

func buildEntry(us, them uint64) {
	usLines := board.Lines(us)
	themLines := board.Lines(them)

	var large, small Eval
	var usWon, themWon bool

	for i := 0; i < 24; i += 3 {
		usCount := bits.OnesCount8(uint8((usLines >> i) & 0b111))
		themCount := bits.OnesCount8(uint8((themLines >> i) & 0b111))

		// A line with marks from both sides is dead for both.
		if usCount != 0 && themCount != 0 {
			continue
		}
		if usCount == 3 {
			usWon = true
			break
		}
		if themCount == 3 {
			themWon = true
			break
		}

		large += lineScore(usCount, bigTwoCount, bigOneCount) -
			lineScore(themCount, bigTwoCount, bigOneCount)
		small += lineScore(usCount, smallTwoCount, smallOneCount) -
			lineScore(themCount, smallTwoCount, smallOneCount)
	}

	pos := cornerWeight*(popcnt(us&cornerMask)-popcnt(them&cornerMask)) +
		edgeWeight*(popcnt(us&edgeMask)-popcnt(them&edgeMask)) +
		centreWeight*(popcnt(us&centreMask)-popcnt(them&centreMask))

	idx := them<<9 | us
	switch {
	case usWon:
		evalLarge[idx] = OutcomeWin
	case themWon:
		evalLarge[idx] = OutcomeLoss
	case popcnt(us|them) == 9:
		evalLarge[idx] = OutcomeDraw
	default:
		evalLarge[idx] = large + pos*sqBig
		evalSmall[idx] = small + pos
	}
}
