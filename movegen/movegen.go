// Package movegen contains the move-generating functions. Legal moves
// are emitted in ascending order, zones 0-8 and cells 0-8 within each
// zone; no other ordering heuristic is applied.
package movegen

import "github.com/jpihl/ultimax/board"

// AppendLegalMoves appends every legal move in p to moves and returns
// the extended slice. Callers on the search hot path pass a slice backed
// by a stack buffer to avoid allocating per frame.
//
// If either player already holds a completed line on the meta-board the
// position is terminal and no moves are emitted.
func AppendLegalMoves(moves []board.Move, p board.Position) []board.Move {
	us, them, share := p.Words()

	if board.LinePresence(share>>36) || board.LinePresence(share>>45) {
		return moves
	}

	zone := p.Zone()
	switch {
	case zone == board.ZoneAny:
		// Any vacant cell whose zone is still undecided.
		small := us | them
		shared := share | (share >> 18)
		large := (share >> 36) | (share >> 45)
		for m := uint64(0); m < 63; m++ {
			if (small>>m)&1 == 0 && (large>>(m/9))&1 == 0 {
				moves = append(moves, board.Move(m))
			}
		}
		for m := uint64(63); m < 81; m++ {
			if (shared>>(m-63))&1 == 0 && (large>>(m/9))&1 == 0 {
				moves = append(moves, board.Move(m))
			}
		}
	case zone > 6:
		// Zones 7 and 8 live in the share word.
		shared := share | (share >> 18)
		for m := uint64(9 * zone); m < uint64(9*zone+9); m++ {
			if (shared>>(m-63))&1 == 0 {
				moves = append(moves, board.Move(m))
			}
		}
	default:
		small := us | them
		for m := uint64(9 * zone); m < uint64(9*zone+9); m++ {
			if (small>>m)&1 == 0 {
				moves = append(moves, board.Move(m))
			}
		}
	}
	return moves
}

// GenerateMoves returns the legal moves in p in a freshly allocated
// slice.
func GenerateMoves(p board.Position) []board.Move {
	return AppendLegalMoves(make([]board.Move, 0, 81), p)
}
