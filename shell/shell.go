// Package shell is the interactive frontend to the engine: a readline
// REPL for setting up positions, playing moves, and requesting analysis.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/jpihl/ultimax/analyzer"
	"github.com/jpihl/ultimax/automatic"
	"github.com/jpihl/ultimax/board"
	"github.com/jpihl/ultimax/config"
	"github.com/jpihl/ultimax/movegen"
	"github.com/jpihl/ultimax/utn"
)

var errExit = errors.New("sentinel error; should not be displayed")

// ShellController owns the readline loop and the current game state.
// The position is always stored with the us word belonging to X; side
// tracks whose turn it is.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config
	an  *analyzer.Analyzer

	pos     board.Position
	side    bool
	history []board.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController creates the controller with a fresh game.
func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31multimax>\033[0m ",
		HistoryFile:     "/tmp/ultimax-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &ShellController{
		l:   l,
		cfg: cfg,
		an:  analyzer.NewAnalyzer(cfg.GetInt("max-analysis-depth")),
	}
	sc.reset()
	return sc
}

func (sc *ShellController) reset() {
	sc.pos = board.NewPosition()
	sc.side = true
	sc.history = sc.history[:0]
}

func (sc *ShellController) sideName() string {
	if sc.side {
		return "X"
	}
	return "O"
}

// handle executes one command line and returns the text to display.
func (sc *ShellController) handle(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "new":
		sc.reset()
		return utn.DisplayText(sc.pos), nil

	case "show", "s":
		return utn.DisplayText(sc.pos) + "\n" + sc.sideName() + " to move", nil

	case "words":
		return utn.WordsString(sc.pos), nil

	case "notation":
		return utn.BoardString(sc.pos), nil

	case "gen":
		moves := movegen.GenerateMoves(sc.pos)
		if len(moves) == 0 {
			return "no legal moves; game is over", nil
		}
		strs := make([]string, len(moves))
		for i, m := range moves {
			strs[i] = utn.MoveString(m)
		}
		return strings.Join(strs, " "), nil

	case "play":
		if len(args) != 1 {
			return "", errors.New("play needs a move, e.g. `play C/NW`")
		}
		m, err := utn.ParseMove(args[0])
		if err != nil {
			return "", err
		}
		return sc.play(m)

	case "analyze", "go":
		if len(args) != 1 {
			return "", errors.New("analyze needs a depth, e.g. `analyze 6`")
		}
		tokens := sc.an.Analyze(args[0], utn.WordsString(sc.pos), sc.side)
		return strings.Join(tokens, " "), nil

	case "setboard":
		if len(args) == 0 {
			return "", errors.New("setboard needs a position in words or notation form")
		}
		return sc.setboard(strings.Join(args, " "))

	case "autoplay":
		return sc.autoplay(args)

	case "help":
		return helpText, nil

	case "exit", "quit":
		return "", errExit
	}
	return "", fmt.Errorf("command %v not found", cmd)
}

func (sc *ShellController) play(m board.Move) (string, error) {
	legal := false
	for _, lm := range movegen.GenerateMoves(sc.pos) {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return "", fmt.Errorf("%v is not a legal move here", utn.MoveString(m))
	}
	sc.pos = sc.pos.PlayMove(m, sc.side)
	sc.side = !sc.side
	sc.history = append(sc.history, m)
	return utn.DisplayText(sc.pos) + "\n" + sc.sideName() + " to move", nil
}

func (sc *ShellController) setboard(s string) (string, error) {
	pos, err := utn.ParseWords(s)
	if err != nil {
		pos, err = utn.ParseBoard(s)
	}
	if err != nil {
		return "", err
	}
	sc.pos = pos
	sc.side = true
	sc.history = sc.history[:0]
	return utn.DisplayText(sc.pos), nil
}

func (sc *ShellController) autoplay(args []string) (string, error) {
	games := sc.cfg.GetInt("autoplay-games")
	if len(args) > 0 {
		g, err := strconv.Atoi(args[0])
		if err != nil || g <= 0 {
			return "", errors.New("autoplay takes a positive number of games")
		}
		games = g
	}
	r := automatic.NewGameRunner(
		sc.cfg.GetInt("autoplay-depth-1"),
		sc.cfg.GetInt("autoplay-depth-2"),
		nil)
	stats, err := r.CompareBots(context.Background(), games)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d games: +%d -%d =%d (mean length %.1f plies)",
		stats.Games, stats.FirstWins, stats.SecondWins, stats.Draws,
		float64(stats.TotalPlies)/float64(stats.Games)), nil
}

const helpText = `Commands:
  new                start a new game
  show (s)           display the current position
  gen                list the legal moves
  play <zone/cell>   play a move, e.g. play C/NW
  analyze <depth>    search the current position
  setboard <pos>     set the position (three words, or board notation)
  words              print the position as three words
  notation           print the position in board notation
  autoplay [n]       play n automatic games with the configured depths
  exit               leave the shell`

// Loop reads and executes commands until EOF, interrupt, or exit. The
// analysis depth ceiling and autoplay behavior come from the config the
// controller was created with.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}

		out, err := sc.handle(strings.TrimSpace(line))
		if err == errExit {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			showMessage("Error: "+err.Error(), sc.l.Stderr())
			continue
		}
		if out != "" {
			showMessage(out, sc.l.Stdout())
		}
	}
	log.Debug().Msg("exiting readline loop")
}

// Execute runs a single command line non-interactively.
func (sc *ShellController) Execute(line string) {
	out, err := sc.handle(strings.TrimSpace(line))
	if err != nil && err != errExit {
		showMessage("Error: "+err.Error(), os.Stderr)
		return
	}
	if out != "" {
		showMessage(out, os.Stdout)
	}
}
