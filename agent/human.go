package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"alphaya/game"
)

// Human reads moves typed on in, one per line, and asks again until the line
// names a legal move.
type Human[S game.State[S, A], A game.Action] struct {
	reader *bufio.Reader
	source io.Reader
}

func NewHuman[S game.State[S, A], A game.Action]() *Human[S, A] {
	return &Human[S, A]{}
}

func (a *Human[S, A]) Move(state S, in io.Reader, out io.Writer) (A, error) {
	if out == nil {
		out = io.Discard
	}
	moves := make(map[string]A)
	for _, move := range state.LegalMoves() {
		moves[move.String()] = move
	}

	r := a.lines(in)
	for {
		fmt.Fprint(out, "Please input your move: ")
		line, err := r.ReadString('\n')
		token := strings.TrimRight(line, "\r\n")
		if move, ok := moves[token]; ok {
			return move, nil
		}
		if err != nil {
			var none A
			return none, fmt.Errorf("failed to read move: %w", err)
		}
		fmt.Fprintln(out, "No such move")
	}
}

// lines keeps one buffered reader per input so that buffered text survives
// between turns.
func (a *Human[S, A]) lines(in io.Reader) *bufio.Reader {
	if r, ok := in.(*bufio.Reader); ok {
		return r
	}
	if a.reader == nil || a.source != in {
		a.reader = bufio.NewReader(in)
		a.source = in
	}
	return a.reader
}
