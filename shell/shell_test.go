package shell

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/jpihl/ultimax/analyzer"
	"github.com/jpihl/ultimax/board"
	"github.com/jpihl/ultimax/config"
)

// testController builds a controller without a readline instance, since
// handle never touches it.
func testController() *ShellController {
	cfg := config.DefaultConfig()
	sc := &ShellController{
		cfg: cfg,
		an:  analyzer.NewAnalyzer(cfg.GetInt("max-analysis-depth")),
	}
	sc.reset()
	return sc
}

func TestHandleNewAndShow(t *testing.T) {
	is := is.New(t)
	sc := testController()

	out, err := sc.handle("new")
	is.NoErr(err)
	is.True(strings.Contains(out, "ZONE: ANY"))

	out, err = sc.handle("show")
	is.NoErr(err)
	is.True(strings.Contains(out, "X to move"))
}

func TestHandlePlay(t *testing.T) {
	is := is.New(t)
	sc := testController()

	out, err := sc.handle("play C/C")
	is.NoErr(err)
	is.True(strings.Contains(out, "O to move"))
	is.Equal(sc.pos.Zone(), 4)
	is.Equal(sc.history, []board.Move{40})

	// The same cell again is illegal.
	_, err = sc.handle("play C/C")
	is.True(err != nil)

	// So is a move outside the forced zone.
	_, err = sc.handle("play NW/NW")
	is.True(err != nil)
}

func TestHandleGen(t *testing.T) {
	is := is.New(t)
	sc := testController()

	out, err := sc.handle("gen")
	is.NoErr(err)
	is.Equal(len(strings.Fields(out)), 81)
}

func TestHandleAnalyze(t *testing.T) {
	is := is.New(t)
	sc := testController()

	out, err := sc.handle("analyze 2")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "info depth 2 "))

	_, err = sc.handle("analyze")
	is.True(err != nil)

	out, err = sc.handle("analyze 99")
	is.NoErr(err)
	is.True(strings.HasPrefix(out, "error depth overflow"))
}

func TestHandleSetboard(t *testing.T) {
	is := is.New(t)
	sc := testController()

	_, err := sc.handle("play C/C")
	is.NoErr(err)
	words, err := sc.handle("words")
	is.NoErr(err)

	sc2 := testController()
	_, err = sc2.handle("setboard " + words)
	is.NoErr(err)
	is.Equal(sc2.pos, sc.pos)

	notation, err := sc.handle("notation")
	is.NoErr(err)
	sc3 := testController()
	_, err = sc3.handle("setboard " + notation)
	is.NoErr(err)
	is.Equal(sc3.pos, sc.pos)

	_, err = sc3.handle("setboard garbage here")
	is.True(err != nil)
}

func TestHandleUnknownCommand(t *testing.T) {
	is := is.New(t)
	sc := testController()
	_, err := sc.handle("frobnicate")
	is.True(err != nil)
}

func TestHandleExit(t *testing.T) {
	is := is.New(t)
	sc := testController()
	_, err := sc.handle("exit")
	is.Equal(err, errExit)
}
