//go:build js && wasm

// The wasm binary exposes the engine to the browser UI. It registers
// its callbacks on a JS global and then parks forever; the page calls
// analyze with a depth, the three position words, and the side to
// search for, and gets back the analyzer's token response.
package main

import (
	"syscall/js"

	"github.com/jpihl/ultimax/analyzer"
	"github.com/jpihl/ultimax/utn"
)

var an = analyzer.NewDefaultAnalyzer()

// (string, string, bool) => []string
func analyze(this js.Value, args []js.Value) interface{} {
	tokens := an.Analyze(args[0].String(), args[1].String(), args[2].Bool())
	out := make([]interface{}, len(tokens))
	for i, t := range tokens {
		out[i] = t
	}
	return out
}

// (string) => string
// Takes the three position words and returns the human-readable board
// notation, or "invalid".
func serialiseBoard(this js.Value, args []js.Value) interface{} {
	pos, err := utn.ParseWords(args[0].String())
	if err != nil {
		return "invalid"
	}
	return utn.BoardString(pos)
}

func registerCallbacks() {
	js.Global().Get("resUltimax").Invoke(map[string]interface{}{
		"analyze":        js.FuncOf(analyze),
		"serialiseBoard": js.FuncOf(serialiseBoard),
	})
}

func main() {
	registerCallbacks()
	// Keep Go "program" running.
	select {}
}
