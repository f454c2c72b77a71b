package board

import (
	"math/bits"
	"testing"

	"github.com/matryer/is"
)

// The triples of cells forming each line, in the slot order the magics
// encode: columns, rows, then the two diagonals.
var lineTriples = [8][3]int{
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func TestLinesAgainstBruteForce(t *testing.T) {
	is := is.New(t)
	for grid := uint64(0); grid < 512; grid++ {
		slots := Lines(grid)
		for slot, triple := range lineTriples {
			want := 0
			for _, c := range triple {
				if (grid>>c)&1 == 1 {
					want++
				}
			}
			got := bits.OnesCount8(uint8((slots >> (3 * slot)) & 0b111))
			if got != want {
				t.Fatalf("grid %09b slot %d: got count %d, want %d", grid, slot, got, want)
			}
		}
		is.True(slots>>24 == 0) // nothing outside the 24-bit result
	}
}

func TestLinePresenceAgainstBruteForce(t *testing.T) {
	for grid := uint64(0); grid < 512; grid++ {
		want := false
		for _, triple := range lineTriples {
			complete := true
			for _, c := range triple {
				if (grid>>c)&1 == 0 {
					complete = false
					break
				}
			}
			if complete {
				want = true
				break
			}
		}
		if got := LinePresence(grid); got != want {
			t.Fatalf("grid %09b: LinePresence = %v, want %v", grid, got, want)
		}
	}
}

func TestLinePresenceIgnoresHighBits(t *testing.T) {
	is := is.New(t)
	// A full row in the low 9 bits must be seen regardless of garbage
	// above, since callers pass unmasked shifted words.
	is.True(LinePresence(0b111 | 0xdead<<9))
	is.True(!LinePresence(0xdead << 9))
}
