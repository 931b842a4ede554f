package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// selectOrExpand takes one step down from node i. If i has an unexpanded
// slot, the first one is expanded and the new child returned with
// expanded=true; otherwise the child maximizing UCT from the perspective of
// i's player is returned.
func (t *tree[S, A]) selectOrExpand(i int32, c float64, rng *rand.Rand) (child int32, expanded bool) {
	n := &t.nodes[i]
	if n.terminal {
		panic("cannot select below a terminal node")
	}

	for slot, e := range n.children {
		if e.child == noNode {
			return t.expand(i, slot, rng), true
		}
	}

	return t.pickChild(i, c), false
}

func (t *tree[S, A]) pickChild(i int32, c float64) int32 {
	n := &t.nodes[i]
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	player := n.state.Player()
	policy := newUCT(c, float64(n.visits))

	best := noNode
	maxScore := math.Inf(-1)
	for _, e := range n.children {
		child := &t.nodes[e.child]
		score := policy.evaluate(child.value(player), float64(child.visits))
		if score > maxScore {
			maxScore = score
			best = e.child
		}
	}
	return best
}

// descend repeats selectOrExpand from the root until it reaches a terminal node.
func (t *tree[S, A]) descend(c float64, rng *rand.Rand) int32 {
	i := int32(0)
	for !t.nodes[i].terminal {
		i, _ = t.selectOrExpand(i, c, rng)
	}
	return i
}

// backup records a pass ending at the terminal node leaf: leaf and every
// ancestor up to the root get a visit, and the ancestors add the leaf's score.
func (t *tree[S, A]) backup(leaf int32) {
	n := &t.nodes[leaf]
	n.visits++
	scores := n.scores

	for i := n.parent; i != noNode; i = t.nodes[i].parent {
		ancestor := &t.nodes[i]
		ancestor.visits++
		for player, score := range scores {
			ancestor.scores[player] += score
		}
	}
}

// recommend returns the slot of the root's most visited child, the first one
// on ties. There is no recommendation until every child of the root exists.
func (t *tree[S, A]) recommend() (slot int, ok bool) {
	root := t.root()
	if len(root.children) == 0 || !root.expanded() {
		return 0, false
	}

	best := int64(0)
	for k, e := range root.children {
		if v := t.nodes[e.child].visits; v > best {
			best = v
			slot = k
		}
	}
	return slot, true
}
