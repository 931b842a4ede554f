package agent

import (
	"fmt"
	"io"

	"alphaya/experiments/metrics"
	"alphaya/game"
	"alphaya/searcher"
)

// Constructor builds an agent by name from a config string.
type Constructor[S game.State[S, A], A game.Action] struct {
	Name        string
	Description string
	NeedConfig  bool
	New         func(config string) Agent[S, A]
}

// Registry lists the agents a player can choose from. The MCTS agent sends
// its search metrics to collector, which may be nil.
func Registry[S game.State[S, A], A game.Action](collector metrics.Collector) []Constructor[S, A] {
	return []Constructor[S, A]{
		{
			Name:        "human",
			Description: "You",
			New: func(string) Agent[S, A] {
				return NewHuman[S, A]()
			},
		},
		{
			Name:        "random",
			Description: "Randomly moving bot",
			NeedConfig:  true,
			New: func(config string) Agent[S, A] {
				return NewRandom[S, A](config)
			},
		},
		{
			Name:        "ai",
			Description: "AI using MCTS algorithm",
			NeedConfig:  true,
			New: func(config string) Agent[S, A] {
				return NewMCTS[S, A](config, searcher.WithMetrics(collector))
			},
		},
	}
}

// Lookup finds the constructor called name.
func Lookup[S game.State[S, A], A game.Action](registry []Constructor[S, A], name string) (Constructor[S, A], error) {
	for _, c := range registry {
		if c.Name == name {
			return c, nil
		}
	}
	return Constructor[S, A]{}, fmt.Errorf("unknown agent: %s", name)
}

// PrintRegistry lists the agents of registry, one per line.
func PrintRegistry[S game.State[S, A], A game.Action](out io.Writer, registry []Constructor[S, A]) {
	fmt.Fprintln(out, "Available agents are:")
	for _, c := range registry {
		if c.Description == "" {
			fmt.Fprintln(out, c.Name)
			continue
		}
		fmt.Fprintf(out, "%s (%s)\n", c.Name, c.Description)
	}
}
