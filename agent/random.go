package agent

import (
	"io"

	"golang.org/x/exp/rand"

	"alphaya/game"
)

// Random plays a uniformly random legal move.
type Random[S game.State[S, A], A game.Action] struct {
	rng *rand.Rand
}

// NewRandom builds a random agent; only the "seed" key of config is used.
func NewRandom[S game.State[S, A], A game.Action](config string) *Random[S, A] {
	c := ParseConfig(config)
	return &Random[S, A]{rng: rand.New(rand.NewSource(c.Seed))}
}

func (a *Random[S, A]) Move(state S, in io.Reader, out io.Writer) (A, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("random agent asked to move without legal moves")
	}
	return moves[a.rng.Intn(len(moves))], nil
}
