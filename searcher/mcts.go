package searcher

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"alphaya/experiments/metrics"
	"alphaya/game"
)

// MCTS searches for moves over successive turns of one game, keeping its
// tree and random source between calls. It is not safe for concurrent use.
type MCTS[S game.State[S, A], A game.Action] struct {
	iterations  int
	exploration float64
	logInterval int
	rng         *rand.Rand
	tree        *tree[S, A]
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

func NewMCTS[S game.State[S, A], A game.Action](options ...Option) *MCTS[S, A] {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	return &MCTS[S, A]{
		iterations:  s.iterations,
		exploration: s.exploration,
		logInterval: s.logInterval,
		rng:         rand.New(rand.NewSource(s.seed)),
		metrics:     s.metrics,
	}
}

// FindNextMove searches from state and returns the most visited move of the
// root. Progress lines "<pass>: <move> <expected score>" are written to out
// every log interval and at the final pass; out may be nil.
func (m *MCTS[S, A]) FindNextMove(state S, out io.Writer) A {
	if out == nil {
		out = io.Discard
	}

	m.metrics.Start(m.iterations, m.exploration)
	m.findRoot(state)
	if m.tree.root().terminal {
		panic(fmt.Sprintf("cannot search from terminal state %s", state))
	}

	var (
		slot  int
		found bool
	)
	for i := 1; ; i++ {
		leaf := m.tree.descend(m.exploration, m.rng)
		m.tree.backup(leaf)
		m.metrics.AddEpisode()

		if s, ok := m.tree.recommend(); ok {
			slot, found = s, true
		}
		if !found {
			continue
		}
		if (m.logInterval > 0 && i%m.logInterval == 0) || i >= m.iterations {
			m.report(out, i, slot)
		}
		if i >= m.iterations {
			break
		}
	}

	m.last = m.metrics.Complete(m.tree.size())
	move := m.tree.root().children[slot].move
	log.Debug().
		Str("move", move.String()).
		Int("episodes", m.last.Episodes).
		Int("tree_size", m.last.TreeSize).
		Bool("tree_reset", m.last.IsTreeReset).
		Msg("search complete")
	return move
}

// findRoot makes the node matching state the root, reusing the tree of the
// previous search when it contains state and starting a fresh one otherwise.
func (m *MCTS[S, A]) findRoot(state S) {
	if m.tree != nil {
		if i := m.tree.find(state.Bytes()); i != noNode {
			log.Debug().Int32("node", i).Int("old_size", m.tree.size()).Msg("reusing search tree")
			m.tree = m.tree.subtree(i)
			m.metrics.SetTreeReset(false)
			return
		}
		log.Debug().Msg("state not found in search tree")
	}
	m.tree = newTree[S, A](state, m.rng)
	m.metrics.SetTreeReset(true)
}

func (m *MCTS[S, A]) report(out io.Writer, pass int, slot int) {
	root := m.tree.root()
	e := root.children[slot]
	expected := m.tree.nodes[e.child].value(root.state.Player())
	fmt.Fprintf(out, "%d: %s %g\n", pass, e.move, expected)
}

// Metrics returns the metrics of the last search. They are empty unless a
// collector was set with WithMetrics.
func (m *MCTS[S, A]) Metrics() metrics.SearchMetric {
	return m.last
}

// Stat describes a child of the root.
type Stat[A game.Action] struct {
	Move     A
	Expanded bool
	Terminal bool
	Visits   int64
	Value    float64
}

// RootStats describes the children of the current root in slot order, values
// being from the perspective of the root's player.
func (m *MCTS[S, A]) RootStats() []Stat[A] {
	if m.tree == nil {
		return nil
	}
	root := m.tree.root()
	stats := make([]Stat[A], len(root.children))
	for k, e := range root.children {
		stats[k] = Stat[A]{Move: e.move}
		if e.child == noNode {
			continue
		}
		child := &m.tree.nodes[e.child]
		stats[k].Expanded = true
		stats[k].Terminal = child.terminal
		stats[k].Visits = child.visits
		stats[k].Value = child.value(root.state.Player())
	}
	return stats
}
