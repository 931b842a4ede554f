package searcher

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"alphaya/experiments/metrics"
	"alphaya/game/tictactoe"
	"alphaya/meta"
)

func newTicTacToeMCTS(seed uint64, iterations int, options ...Option) *MCTS[tictactoe.State, tictactoe.Action] {
	options = append([]Option{WithSeed(seed), WithExploration(1.0), WithIterations(iterations)}, options...)
	return NewMCTS[tictactoe.State, tictactoe.Action](options...)
}

// selfPlay plays a whole game with one searcher per player and returns the moves.
func selfPlay(seed uint64, iterations int) []tictactoe.Action {
	players := []*MCTS[tictactoe.State, tictactoe.Action]{
		newTicTacToeMCTS(seed, iterations),
		newTicTacToeMCTS(seed+1, iterations),
	}
	moves := []tictactoe.Action{}
	state := tictactoe.New()
	for _, over := state.Score(); !over; _, over = state.Score() {
		move := players[state.Player()].FindNextMove(state, nil)
		moves = append(moves, move)
		state = state.Play(move)
	}
	return moves
}

func TestFindNextMove(t *testing.T) {
	t.Run("returning a legal first move", func(t *testing.T) {
		state := tictactoe.New()

		got := newTicTacToeMCTS(1, 50).FindNextMove(state, nil)

		require.Contains(t, state.LegalMoves(), got, "Move should be one of the 9 cells")
	})

	t.Run("same seed returns the same move", func(t *testing.T) {
		state := tictactoe.New()

		first := newTicTacToeMCTS(1, 50).FindNextMove(state, nil)
		second := newTicTacToeMCTS(1, 50).FindNextMove(state, nil)

		require.Equal(t, first, second)
	})

	t.Run("same seeds replay the same game", func(t *testing.T) {
		require.Equal(t, selfPlay(3, 200), selfPlay(3, 200))
	})

	t.Run("taking an immediate win", func(t *testing.T) {
		// X: a1 b1, O: a2 b2, X to move
		state := tictactoe.Init("XX.OO....")

		got := newTicTacToeMCTS(5, 500).FindNextMove(state, nil)

		require.Equal(t, "c1", got.String())
	})

	t.Run("running past the budget until every root child exists", func(t *testing.T) {
		collector := metrics.NewCollector()
		m := newTicTacToeMCTS(1, 1, WithMetrics(collector))

		m.FindNextMove(tictactoe.New(), nil)

		require.Equal(t, 9, m.Metrics().Episodes, "Search should continue until all 9 root children are expanded")
		for _, stat := range m.RootStats() {
			require.True(t, stat.Expanded)
		}
	})

	t.Run("ignoring a non-finite exploration constant", func(t *testing.T) {
		for _, c := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			collector := metrics.NewCollector()
			m := newTicTacToeMCTS(1, 30, WithExploration(c), WithMetrics(collector))

			require.NotPanics(t, func() { m.FindNextMove(tictactoe.New(), nil) })
			require.Equal(t, meta.DefaultExploration, m.exploration)
		}
	})

	t.Run("panics on a terminal state", func(t *testing.T) {
		require.Panics(t, func() {
			newTicTacToeMCTS(1, 10).FindNextMove(tictactoe.Init("XXXOO...."), nil)
		})
	})
}

func TestProgressReport(t *testing.T) {
	t.Run("reporting only the final pass", func(t *testing.T) {
		var out bytes.Buffer

		move := newTicTacToeMCTS(1, 50).FindNextMove(tictactoe.New(), &out)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 1)
		require.True(t, strings.HasPrefix(lines[0], fmt.Sprintf("50: %s ", move)), "Got %q", lines[0])
	})

	t.Run("reporting every interval", func(t *testing.T) {
		var out bytes.Buffer

		newTicTacToeMCTS(1, 50, WithLogInterval(10)).FindNextMove(tictactoe.New(), &out)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 5)
		for k, line := range lines {
			require.True(t, strings.HasPrefix(line, fmt.Sprintf("%d: ", 10*(k+1))), "Got %q", line)
		}
	})
}

func TestTreeReuse(t *testing.T) {
	t.Run("reusing the subtree of the opponent's reply", func(t *testing.T) {
		collector := metrics.NewCollector()
		m := newTicTacToeMCTS(1, 300, WithMetrics(collector))
		state := tictactoe.New()

		move := m.FindNextMove(state, nil)
		require.True(t, m.Metrics().IsTreeReset, "First search should build a fresh tree")

		// Opponent answers with its first legal move
		state = state.Play(move)
		state = state.Play(state.LegalMoves()[0])
		i := m.tree.find(state.Bytes())
		require.NotEqual(t, noNode, i, "Opponent reply should already be in the tree")
		visits := m.tree.nodes[i].visits

		m.FindNextMove(state, nil)

		require.False(t, m.Metrics().IsTreeReset, "Second search should reuse the tree")
		require.Equal(t, visits+int64(m.Metrics().Episodes), m.tree.root().visits,
			"Reused root should keep its earlier visits")
	})

	t.Run("starting over from an unknown state", func(t *testing.T) {
		collector := metrics.NewCollector()
		m := newTicTacToeMCTS(1, 20, WithMetrics(collector))

		// every state below the first root has X on a1
		m.FindNextMove(tictactoe.Init("X...O...."), nil)
		m.FindNextMove(tictactoe.Init(".X..O...."), nil)

		require.True(t, m.Metrics().IsTreeReset)
		require.Equal(t, int64(m.Metrics().Episodes), m.tree.root().visits)
	})
}
