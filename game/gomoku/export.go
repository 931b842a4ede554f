package gomoku

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/muesli/termenv"

	"alphaya/game"
)

// Render pretty-prints the board, highest row first, on an orange background.
func Render(w io.Writer, s State) {
	out := termenv.NewOutput(w)
	grey := out.Color("8")
	board := out.Color("214")
	for i := Height - 1; i >= 0; i-- {
		fmt.Fprint(w, out.String(fmt.Sprintf("%2d", i+1)).Foreground(grey), " ")
		row := " "
		for j := 0; j < Width; j++ {
			switch s.cell(i, j) {
			case 'X':
				row += out.String("X").Foreground(out.Color("0")).Background(board).String() + " "
			case 'O':
				row += out.String("O").Foreground(out.Color("15")).Background(board).String() + " "
			default:
				row += out.String("+").Foreground(out.Color("208")).Background(board).String() + " "
			}
		}
		fmt.Fprintln(w, out.String(row).Background(board))
	}
	cols := "    "
	for j := 0; j < Width; j++ {
		cols += string('a'+byte(j)) + " "
	}
	fmt.Fprintln(w, out.String(cols).Foreground(grey))
}

// Descriptor returns the console and record settings of gomoku.
func Descriptor() *game.Descriptor[State, Action] {
	return &game.Descriptor[State, Action]{
		Name: "gomoku",
		Help: heredoc.Docf(`
			Gomoku
			Code: Ya

			Place stones in turn on a %dx%d board; the first player with
			five stones in a row, horizontally, vertically or diagonally, wins.
			Moves are written as column letter and row number, e.g. h8.`, Width, Height),
		RecordPrefix:        "gomoku",
		PlayerNames:         []string{"X", "O"},
		CustomizeState:      true,
		DefaultState:        "",
		CustomizeAgents:     []bool{true, true},
		DefaultAgents:       []string{"ai", "human"},
		DefaultAgentConfigs: []string{"scount 2000", ""},
		ByteCount:           ByteCount,
		Init:                Init,
		Render:              Render,
	}
}
