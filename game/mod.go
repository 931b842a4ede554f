package game

import (
	"io"
	"slices"
)

// Action is a move a player can make. Actions are compared with == when a
// human types a move or a searcher matches a played move, and String must
// return the short token used in records and prompts (e.g. "a1").
type Action interface {
	comparable
	String() string
}

// State should be immutable - Play always returns a new value and never
// modifies the receiver.
//
// S is the concrete state type itself, so that Play can return it without a
// type assertion.
type State[S any, A Action] interface {
	// Player returns the index of the player to move, in [0, Players()).
	Player() int
	// Players returns the number of players of the game. It is constant for a game.
	Players() int
	// LegalMoves enumerates the moves of the player to move. The order does not
	// need to mean anything but must be the same every time for the same state.
	LegalMoves() []A
	Play(A) S
	// Score reports whether the game is over and, if so, the score of every
	// player. Scores do not have to sum to zero.
	Score() (scores []int64, over bool)
	// Bytes is the canonical encoding of the state: two states are equal if
	// and only if their encodings are equal.
	Bytes() []byte
	// AppendBytes appends the encoding returned by Bytes to b.
	AppendBytes(b []byte) []byte
	// String returns the short text form read back by a Descriptor's Init.
	String() string
}

// Descriptor holds everything the console, engine and record layers need to
// know about a game besides its rules.
type Descriptor[S State[S, A], A Action] struct {
	Name         string
	Help         string
	RecordPrefix string
	PlayerNames  []string

	// If CustomizeState is false, DefaultState is the only possible initial state.
	CustomizeState bool
	DefaultState   string

	CustomizeAgents     []bool
	DefaultAgents       []string
	DefaultAgentConfigs []string

	// ByteCount is the size of the canonical encoding of a state.
	ByteCount int

	// Init builds a state from any string; unknown input yields a sensible default.
	Init func(string) S
	// Render pretty-prints a state for a terminal.
	Render func(io.Writer, S)
}

// Players returns the number of players of the game.
func (d *Descriptor[S, A]) Players() int {
	return len(d.PlayerNames)
}

// Legal reports whether move is one of the legal moves of state.
func Legal[S State[S, A], A Action](state S, move A) bool {
	return slices.Contains(state.LegalMoves(), move)
}
