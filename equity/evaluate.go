package equity

import "github.com/jpihl/ultimax/board"

// signed returns eval as-is when side holds the us word and negated
// otherwise; the tables are built from the us perspective.
func signed(side bool, eval Eval) Eval {
	if side {
		return eval
	}
	return -eval
}

// Large looks up the meta-board table for a pair of 9-bit won-zone
// patterns, from the perspective of the first argument.
func Large(metaUs, metaThem uint64) Eval {
	return evalLarge[metaThem<<9|metaUs]
}

// Final returns the meta-board table entry of p signed for side. For a
// position with no legal moves, OutcomeWin or OutcomeLoss marks a
// finished game; any other value is only the meta-board heuristic.
func Final(p board.Position, side bool) Eval {
	return signed(side, Large(p.MetaUs(), p.MetaThem()))
}

// Evaluate scores p heuristically. The meta-board is looked up first; a
// conclusive result there is the whole answer. Otherwise every zone that
// is neither decided nor full adds its interior score on top of the
// meta-board heuristic. The result is signed for side.
func Evaluate(p board.Position, side bool) Eval {
	metaUs, metaThem := p.MetaUs(), p.MetaThem()

	eval := Large(metaUs, metaThem)
	if eval == OutcomeWin || eval == OutcomeLoss {
		return signed(side, eval)
	}

	large := metaUs | metaThem
	if large == board.Chunk {
		return OutcomeDraw
	}

	for z := 0; z < 9; z++ {
		if (large>>z)&1 == 1 {
			continue
		}
		usData, themData := p.SmallUs(z), p.SmallThem(z)
		if usData|themData == board.Chunk {
			continue
		}
		eval += evalSmall[themData<<9|usData]
	}
	return signed(side, eval)
}
