package agent

import (
	"io"

	"alphaya/experiments/metrics"
	"alphaya/game"
	"alphaya/searcher"
)

// MCTS plays the moves found by a searcher that keeps its tree between turns.
type MCTS[S game.State[S, A], A game.Action] struct {
	searcher *searcher.MCTS[S, A]
	history  []metrics.SearchMetric
}

// NewMCTS builds a searching agent from a config string, see ParseConfig.
// Additional options override the config.
func NewMCTS[S game.State[S, A], A game.Action](config string, options ...searcher.Option) *MCTS[S, A] {
	c := ParseConfig(config)
	options = append([]searcher.Option{
		searcher.WithSeed(c.Seed),
		searcher.WithExploration(c.Exploration),
		searcher.WithIterations(c.Iterations),
		searcher.WithLogInterval(c.LogInterval),
	}, options...)
	return &MCTS[S, A]{searcher: searcher.NewMCTS[S, A](options...)}
}

func (a *MCTS[S, A]) Move(state S, in io.Reader, out io.Writer) (A, error) {
	move := a.searcher.FindNextMove(state, out)
	a.history = append(a.history, a.searcher.Metrics())
	return move, nil
}

// LastMetrics returns the metrics of the latest search.
func (a *MCTS[S, A]) LastMetrics() metrics.SearchMetric {
	return a.searcher.Metrics()
}

// Metrics returns the metrics of every search so far, in turn order.
func (a *MCTS[S, A]) Metrics() []metrics.SearchMetric {
	return a.history
}
