package searcher

import (
	"bytes"

	"golang.org/x/exp/rand"

	"alphaya/game"
)

// tree is an arena of nodes addressed by index. The root is always node 0;
// a node's children always come after it.
type tree[S game.State[S, A], A game.Action] struct {
	nodes []node[S, A]
}

func newTree[S game.State[S, A], A game.Action](state S, rng *rand.Rand) *tree[S, A] {
	return &tree[S, A]{
		nodes: []node[S, A]{newNode[S, A](noNode, state, rng)},
	}
}

func (t *tree[S, A]) root() *node[S, A] {
	return &t.nodes[0]
}

func (t *tree[S, A]) size() int {
	return len(t.nodes)
}

// expand materializes the child in slot of node i and returns its index.
func (t *tree[S, A]) expand(i int32, slot int, rng *rand.Rand) int32 {
	parent := &t.nodes[i]
	child := newNode[S, A](i, parent.state.Play(parent.children[slot].move), rng)
	index := int32(len(t.nodes))
	t.nodes = append(t.nodes, child)
	// append may have moved the arena
	t.nodes[i].children[slot].child = index
	return index
}

// find searches the tree depth-first, children in slot order, for the first
// node whose state encodes to key.
func (t *tree[S, A]) find(key []byte) int32 {
	stack := []int32{0}
	buf := make([]byte, 0, len(key))
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[i]
		buf = n.state.AppendBytes(buf[:0])
		if bytes.Equal(buf, key) {
			return i
		}
		for k := len(n.children) - 1; k >= 0; k-- {
			if child := n.children[k].child; child != noNode {
				stack = append(stack, child)
			}
		}
	}
	return noNode
}

// subtree copies the subtree rooted at node i into a fresh arena where it
// becomes the root. Statistics are copied unchanged; every node outside the
// subtree is left behind for the garbage collector.
func (t *tree[S, A]) subtree(i int32) *tree[S, A] {
	out := &tree[S, A]{nodes: make([]node[S, A], 0, t.count(i))}

	type pending struct {
		old    int32
		parent int32
		slot   int
	}
	queue := []pending{{old: i, parent: noNode}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		n := t.nodes[p.old]
		n.parent = p.parent
		n.children = append([]edge[A](nil), n.children...)

		index := int32(len(out.nodes))
		out.nodes = append(out.nodes, n)
		if p.parent != noNode {
			out.nodes[p.parent].children[p.slot].child = index
		}
		for slot, e := range n.children {
			if e.child != noNode {
				queue = append(queue, pending{old: e.child, parent: index, slot: slot})
			}
		}
	}
	return out
}

// count returns the number of nodes in the subtree rooted at node i.
func (t *tree[S, A]) count(i int32) int {
	total := 0
	stack := []int32{i}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		total++
		for _, e := range t.nodes[i].children {
			if e.child != noNode {
				stack = append(stack, e.child)
			}
		}
	}
	return total
}
