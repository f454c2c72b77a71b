// Package utn implements the ultimate tic-tac-toe notation used at the
// engine's boundaries: move strings, score strings, a compressed board
// notation for compact passing of positions, and the raw three-word
// serialisation the browser wrapper ships across the JS boundary.
package utn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jpihl/ultimax/board"
	"github.com/jpihl/ultimax/equity"
)

// ZoneNames names the nine zones (and the nine cells of a zone) in
// row-major order.
var ZoneNames = [9]string{"NW", "N", "NE", "W", "C", "E", "SW", "S", "SE"}

var zoneNamesLower = [9]string{"nw", "n", "ne", "w", "c", "e", "sw", "s", "se"}

var (
	ErrBadMove  = errors.New("malformed move string")
	ErrBadBoard = errors.New("malformed board string")
)

// MoveString renders a move as "<zone>/<cell>", e.g. C/NW for cell 0 of
// the centre zone.
func MoveString(m board.Move) string {
	return ZoneNames[m/9] + "/" + ZoneNames[m%9]
}

// ParseMove parses the output of MoveString, case-insensitively.
func ParseMove(s string) (board.Move, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return board.NullMove, ErrBadMove
	}
	z, c := -1, -1
	for i, name := range zoneNamesLower {
		if parts[0] == name {
			z = i
		}
		if parts[1] == name {
			c = i
		}
	}
	if z < 0 || c < 0 {
		return board.NullMove, ErrBadMove
	}
	return board.Move(9*z + c), nil
}

// EvalString renders a score from a depth-maxDepth search: W<k> and
// L<k> for forced results k plies away, D0 for an exact zero, and a
// signed heuristic number otherwise.
func EvalString(eval equity.Eval, maxDepth int) string {
	switch {
	case eval <= equity.OutcomeLoss+equity.Eval(maxDepth):
		return fmt.Sprintf("L%d", eval-equity.OutcomeLoss)
	case eval >= equity.OutcomeWin-equity.Eval(maxDepth):
		return fmt.Sprintf("W%d", equity.OutcomeWin-eval)
	case eval == equity.OutcomeDraw:
		return "D0"
	}
	return fmt.Sprintf("%+d", eval)
}

// WordsString serialises p as its three packed words in decimal,
// separated by single spaces.
func WordsString(p board.Position) string {
	us, them, share := p.Words()
	return fmt.Sprintf("%d %d %d", us, them, share)
}

// ParseWords parses the output of WordsString.
func ParseWords(s string) (board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return board.Position{}, ErrBadBoard
	}
	var words [3]uint64
	for i, f := range fields {
		w, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return board.Position{}, ErrBadBoard
		}
		words[i] = w
	}
	return board.FromWords(words[0], words[1], words[2]), nil
}

// displayOrder yields the 81 cell indices in visual order: nine rows of
// nine cells, each row crossing three zones.
func displayOrder() []int {
	order := make([]int, 0, 81)
	for i := 0; i < 81; i += 27 {
		for j := 0; j <= 6; j += 3 {
			for k := 0; k < 27; k += 9 {
				order = append(order, i+j+k, i+j+k+1, i+j+k+2)
			}
		}
	}
	return order
}

// cellAt returns 'x', 'o' or '.' for cell i of p. The us word is the x
// player by convention.
func cellAt(p board.Position, i int) byte {
	us, them, share := p.Words()
	if i > 62 {
		if (share>>(i-63))&1 == 1 {
			return 'x'
		}
		if (share>>(i-45))&1 == 1 {
			return 'o'
		}
		return '.'
	}
	if (us>>i)&1 == 1 {
		return 'x'
	}
	if (them>>i)&1 == 1 {
		return 'o'
	}
	return '.'
}

// BoardString renders p in the compressed inline notation: nine visual
// rows joined by '/', runs of vacant cells shortened to their length,
// followed by the next-zone word.
func BoardString(p board.Position) string {
	order := displayOrder()
	var sb strings.Builder
	dots := 0
	flush := func() {
		if dots > 0 {
			sb.WriteString(strconv.Itoa(dots))
			dots = 0
		}
	}
	for row := 0; row < 9; row++ {
		if row > 0 {
			flush()
			sb.WriteByte('/')
		}
		for col := 0; col < 9; col++ {
			switch c := cellAt(p, order[9*row+col]); c {
			case '.':
				dots++
			default:
				flush()
				sb.WriteByte(c)
			}
		}
	}
	flush()

	zone := "any"
	if z := p.Zone(); z != board.ZoneAny {
		zone = zoneNamesLower[z]
	}
	return sb.String() + " " + zone
}

// ParseBoard parses the compressed notation back into a position. The
// meta-board is recomputed from the cell contents, with x taking
// precedence in the impossible case of a zone holding lines for both
// players.
func ParseBoard(s string) (board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return board.Position{}, ErrBadBoard
	}
	cells, zoneWord := fields[0], fields[1]

	var share uint64
	if zoneWord == "any" {
		share = board.ZoneAny << 54
	} else {
		z := -1
		for i, name := range zoneNamesLower {
			if zoneWord == name {
				z = i
			}
		}
		if z < 0 {
			return board.Position{}, ErrBadBoard
		}
		share = uint64(z) << 54
	}

	var expanded strings.Builder
	for _, r := range cells {
		switch {
		case r >= '1' && r <= '9':
			expanded.WriteString(strings.Repeat(".", int(r-'0')))
		case r == 'x' || r == 'o' || r == '.' || r == '/':
			expanded.WriteRune(r)
		default:
			return board.Position{}, ErrBadBoard
		}
	}
	rows := strings.Split(expanded.String(), "/")
	if len(rows) != 9 {
		return board.Position{}, ErrBadBoard
	}
	for _, row := range rows {
		if len(row) != 9 {
			return board.Position{}, ErrBadBoard
		}
	}

	var us, them uint64
	order := displayOrder()
	flat := strings.Join(rows, "")
	for pos, i := range order {
		switch flat[pos] {
		case 'x':
			if i > 62 {
				share |= 1 << (i - 63)
			} else {
				us |= 1 << i
			}
		case 'o':
			if i > 62 {
				share |= 1 << (i - 45)
			} else {
				them |= 1 << i
			}
		}
	}

	// Rebuild the meta-board from the cells.
	for z := 0; z < 7; z++ {
		if board.LinePresence(us >> (9 * z)) {
			share |= 1 << (36 + z)
		} else if board.LinePresence(them >> (9 * z)) {
			share |= 1 << (45 + z)
		}
	}
	for z := 7; z < 9; z++ {
		if board.LinePresence(share >> (9*z - 63)) {
			share |= 1 << (36 + z)
		} else if board.LinePresence((share >> 18) >> (9*z - 63)) {
			share |= 1 << (45 + z)
		}
	}

	return board.FromWords(us, them, share), nil
}

// DisplayText renders p as ASCII art: the nine zones with their cells,
// the meta-board below, and the zone the next move must be played in.
func DisplayText(p board.Position) string {
	order := displayOrder()
	var lines []string

	lines = append(lines, "---+---+---")
	for row := 0; row < 9; row++ {
		var sb strings.Builder
		for col := 0; col < 9; col++ {
			if col > 0 && col%3 == 0 {
				sb.WriteByte('|')
			}
			c := cellAt(p, order[9*row+col])
			if c == 'x' {
				c = 'X'
			} else if c == 'o' {
				c = 'O'
			}
			sb.WriteByte(c)
		}
		lines = append(lines, sb.String())
		if row%3 == 2 {
			lines = append(lines, "---+---+---")
		}
	}

	metaUs, metaThem := p.MetaUs(), p.MetaThem()
	for r := 0; r < 9; r += 3 {
		var sb strings.Builder
		for z := r; z < r+3; z++ {
			switch {
			case (metaUs>>z)&1 == 1:
				sb.WriteByte('X')
			case (metaThem>>z)&1 == 1:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		lines = append(lines, sb.String())
	}

	zone := "ANY"
	if z := p.Zone(); z != board.ZoneAny {
		zone = ZoneNames[z]
	}
	lines = append(lines, "ZONE: "+zone)

	return strings.Join(lines, "\n")
}
