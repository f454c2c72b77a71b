package negamax

import (
	"testing"

	"github.com/matryer/is"

	"github.com/jpihl/ultimax/board"
	"github.com/jpihl/ultimax/equity"
	"github.com/jpihl/ultimax/movegen"
)

// mateInOne returns a position where X (the us word) completes the meta
// top row by playing NE/NE (move 20).
func mateInOne() board.Position {
	us := uint64(0b111) | uint64(0b111)<<9 | uint64(0b011)<<18
	share := uint64(0b11)<<36 | uint64(2)<<54
	return board.FromWords(us, 0, share)
}

func TestSolveMateInOne(t *testing.T) {
	is := is.New(t)

	score, pv := Solve(mateInOne(), true, 2)
	is.Equal(score, equity.OutcomeWin-1)
	is.Equal(len(pv), 2)
	is.Equal(pv[0], board.Move(20))
	is.Equal(pv[1], board.NullMove)
}

func TestMateDistanceStableAcrossDepths(t *testing.T) {
	is := is.New(t)

	// Searching deeper never pushes a forced win further away.
	for depth := 2; depth <= 5; depth++ {
		score, pv := Solve(mateInOne(), true, depth)
		is.Equal(score, equity.OutcomeWin-1)
		is.Equal(pv[0], board.Move(20))
		is.Equal(len(pv), depth)
	}
}

func TestSolveForcedLoss(t *testing.T) {
	is := is.New(t)

	// The opponent owns meta zones NW and N and sits on two cells of
	// the NE zone's top row. X's only legal move is W/NE, which sends
	// the opponent into zone NE to finish the job.
	us := uint64(169) << 27  // zone 3 cells 0,3,5,7
	them := uint64(338)<<27 | uint64(0b011)<<18
	share := uint64(0b11)<<45 | uint64(3)<<54
	p := board.FromWords(us, them, share)

	moves := movegen.GenerateMoves(p)
	is.Equal(len(moves), 1)
	is.Equal(moves[0], board.Move(29))

	score, pv := Solve(p, true, 2)
	is.Equal(score, equity.OutcomeLoss+2)
	is.Equal(pv[0], board.Move(29))
	is.Equal(pv[1], board.Move(20))
}

func TestSolveDeadDraw(t *testing.T) {
	is := is.New(t)

	// Eight zones full and drawn, one cell left in SE; filling it draws
	// the game.
	const drawnUs, drawnThem = uint64(0b110001101), uint64(0b001110010)
	var us, them uint64
	for z := 0; z < 7; z++ {
		us |= drawnUs << (9 * z)
		them |= drawnThem << (9 * z)
	}
	share := drawnUs | (drawnUs&^(1<<8))<<9 | drawnThem<<18 | drawnThem<<27 |
		uint64(8)<<54
	p := board.FromWords(us, them, share)

	moves := movegen.GenerateMoves(p)
	is.Equal(len(moves), 1)
	is.Equal(moves[0], board.Move(80))

	score, pv := Solve(p, true, 3)
	is.Equal(score, equity.OutcomeDraw)
	is.Equal(pv[0], board.Move(80))
	is.Equal(pv[1], board.NullMove)
	is.Equal(pv[2], board.NullMove)
}

func TestScoreWithinWindow(t *testing.T) {
	is := is.New(t)

	// Fail-hard: every score from a full-window root search stays in
	// [loss, win].
	p := board.NewPosition()
	side := true
	for ply := 0; ply < 6; ply++ {
		score, pv := Solve(p, side, 3)
		is.True(score >= equity.OutcomeLoss)
		is.True(score <= equity.OutcomeWin)
		is.True(pv[0] != board.NullMove)
		p = p.PlayMove(pv[0], side)
		side = !side
	}
}

func TestPVReplayIsLegal(t *testing.T) {
	is := is.New(t)

	_, pv := Solve(board.NewPosition(), true, 5)
	is.Equal(len(pv), 5)

	p := board.NewPosition()
	side := true
	for _, m := range pv {
		if m == board.NullMove {
			break
		}
		legal := false
		for _, lm := range movegen.GenerateMoves(p) {
			if lm == m {
				legal = true
				break
			}
		}
		is.True(legal)
		p = p.PlayMove(m, side)
		side = !side
	}
}

func TestPVLineMoves(t *testing.T) {
	is := is.New(t)

	pv := emptyPV()
	is.Equal(len(pv.Moves()), 0)
	pv[0], pv[1] = 40, 36
	is.Equal(len(pv.Moves()), 2)
}
