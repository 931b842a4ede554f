package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"

	"alphaya/game"
)

// edge is a child slot: the move leading to the child and the child's index
// in the arena, or noNode while unexpanded.
type edge[A game.Action] struct {
	move  A
	child int32
}

// node snapshots one reachable state. For a terminal node, scores holds the
// terminal score vector; otherwise it accumulates the terminal scores of
// every pass through the node.
type node[S game.State[S, A], A game.Action] struct {
	parent   int32
	terminal bool
	visits   int64
	scores   []int64
	state    S
	children []edge[A]
}

func newNode[S game.State[S, A], A game.Action](parent int32, state S, rng *rand.Rand) node[S, A] {
	n := node[S, A]{
		parent: parent,
		state:  state,
	}

	scores, over := state.Score()
	if over {
		n.terminal = true
		n.scores = append([]int64(nil), scores...)
		return n
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic(fmt.Sprintf("state %s is not over but has no legal moves", state))
	}
	n.scores = make([]int64, state.Players())
	n.children = make([]edge[A], len(moves))
	for i, move := range moves {
		n.children[i] = edge[A]{move: move, child: noNode}
	}
	rng.Shuffle(len(n.children), func(i, j int) {
		n.children[i], n.children[j] = n.children[j], n.children[i]
	})
	return n
}

// value estimates the node from a player's perspective: the raw score of a
// terminal node, the average score otherwise.
func (n *node[S, A]) value(player int) float64 {
	if n.terminal {
		return float64(n.scores[player])
	}
	return float64(n.scores[player]) / float64(n.visits)
}

func (n *node[S, A]) expanded() bool {
	for _, e := range n.children {
		if e.child == noNode {
			return false
		}
	}
	return true
}
