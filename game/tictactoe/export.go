package tictactoe

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/muesli/termenv"

	"alphaya/game"
)

// Render pretty-prints the board with coordinates:
//
//	    a   b   c
//
//	1   X | O |
//	   ---+---+---
//	...
func Render(w io.Writer, s State) {
	out := termenv.NewOutput(w)
	grey := out.Color("8")
	fmt.Fprintln(w, out.String("    a   b   c ").Foreground(grey))
	fmt.Fprintln(w, "              ")
	for i := 0; i < 3; i++ {
		if i > 0 {
			fmt.Fprintln(w, "   ---+---+---")
		}
		fmt.Fprint(w, out.String(fmt.Sprint(i+1)).Foreground(grey), "  ")
		for j := 0; j < 3; j++ {
			if j > 0 {
				fmt.Fprint(w, "|")
			}
			switch s.cell(i*3 + j) {
			case 'X':
				fmt.Fprint(w, " ", out.String("X").Foreground(out.Color("1")), " ")
			case 'O':
				fmt.Fprint(w, " ", out.String("O").Foreground(out.Color("6")), " ")
			default:
				fmt.Fprint(w, "   ")
			}
		}
		fmt.Fprintln(w)
	}
}

// Descriptor returns the console and record settings of tic-tac-toe.
func Descriptor() *game.Descriptor[State, Action] {
	return &game.Descriptor[State, Action]{
		Name: "tictactoe",
		Help: heredoc.Doc(`
			Tic-Tac-Toe
			Code: Ya

			Classic tic-tac-toe game.`),
		RecordPrefix:        "tictactoe",
		PlayerNames:         []string{"X", "O"},
		CustomizeState:      false,
		DefaultState:        "",
		CustomizeAgents:     []bool{true, true},
		DefaultAgents:       []string{"ai", "human"},
		DefaultAgentConfigs: []string{"", ""},
		ByteCount:           ByteCount,
		Init:                Init,
		Render:              Render,
	}
}
