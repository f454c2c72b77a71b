package bot

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"

	"github.com/jpihl/ultimax/board"
	"github.com/jpihl/ultimax/config"
	"github.com/jpihl/ultimax/utn"
)

func newTestBot() *Bot {
	return NewBot(config.DefaultConfig())
}

func TestHandleValidRequest(t *testing.T) {
	is := is.New(t)
	b := newTestBot()

	req, err := json.Marshal(AnalysisRequest{
		Depth: "2",
		Board: utn.WordsString(board.NewPosition()),
		Side:  true,
	})
	is.NoErr(err)

	var resp AnalysisResponse
	is.NoErr(json.Unmarshal(b.handle(req), &resp))
	is.Equal(resp.Tokens[0], "info")
	is.Equal(resp.Tokens[1], "depth")
	is.Equal(resp.Tokens[2], "2")
}

func TestHandleBadJSON(t *testing.T) {
	is := is.New(t)
	b := newTestBot()

	var resp AnalysisResponse
	is.NoErr(json.Unmarshal(b.handle([]byte("{not json")), &resp))
	is.Equal(resp.Tokens, []string{"error", "request", "invalid"})
}

func TestHandleBadBoard(t *testing.T) {
	is := is.New(t)
	b := newTestBot()

	req, _ := json.Marshal(AnalysisRequest{Depth: "2", Board: "nope", Side: false})
	var resp AnalysisResponse
	is.NoErr(json.Unmarshal(b.handle(req), &resp))
	is.Equal(resp.Tokens, []string{"error", "board", "invalid"})
}
