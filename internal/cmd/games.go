package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"alphaya/experiments"
	"alphaya/game"
	"alphaya/game/gomoku"
	"alphaya/game/tictactoe"
)

// runner hides the state and action types of a game from the commands.
type runner interface {
	console(in io.Reader, out io.Writer, records string) error
	arena(root, config1, config2 string, games int) (*experiments.Result, error)
	exploration(root string, iterations, games int) (*experiments.Result, error)
}

type gameRunner[S game.State[S, A], A game.Action] struct {
	desc *game.Descriptor[S, A]
}

var games = map[string]runner{
	"tictactoe": gameRunner[tictactoe.State, tictactoe.Action]{tictactoe.Descriptor()},
	"gomoku":    gameRunner[gomoku.State, gomoku.Action]{gomoku.Descriptor()},
}

func gameNames() string {
	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupGame(cmd *cobra.Command) (runner, error) {
	name, _ := cmd.Flags().GetString("game")
	g, ok := games[name]
	if !ok {
		return nil, fmt.Errorf("unknown game %q, available games are: %s", name, gameNames())
	}
	return g, nil
}

func (g gameRunner[S, A]) console(in io.Reader, out io.Writer, records string) error {
	return NewConsole(g.desc, in, out, records).Run()
}

func (g gameRunner[S, A]) arena(root, config1, config2 string, games int) (*experiments.Result, error) {
	return experiments.Arena(g.desc, root, config1, config2, games).Run()
}

func (g gameRunner[S, A]) exploration(root string, iterations, games int) (*experiments.Result, error) {
	return experiments.Exploration(g.desc, root, iterations, games).Run()
}
