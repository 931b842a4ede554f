package tictactoe

import (
	"encoding/binary"
	"strings"
)

// Action is a board position, 0 being a1 (top left) and 8 being c3.
type Action uint8

func (a Action) String() string {
	return string([]byte{'a' + byte(a%3), '1' + byte(a/3)})
}

// horizontal, vertical and diagonal patterns as bitboards
var lines = [...]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b001010100, 0b100010001,
}

const full uint16 = 0b111111111

// ByteCount is the size of State.Bytes.
const ByteCount = 5

// State is a tic-tac-toe position: one bitboard per player and the side to move.
type State struct {
	bitboards [2]uint16
	side      uint8
}

// New returns the empty board with X to move.
func New() State {
	return State{}
}

// Init reads a state from any string: the first nine characters are read as
// cells, 'X' and 'O' being stones and anything else an empty cell. The side
// to move is derived from the stone counts.
func Init(s string) State {
	var state State
	count := [2]int{}
	for i := 0; i < 9 && i < len(s); i++ {
		switch s[i] {
		case 'X':
			state.bitboards[0] |= 1 << i
			count[0]++
		case 'O':
			state.bitboards[1] |= 1 << i
			count[1]++
		}
	}
	if count[1] < count[0] {
		state.side = 1
	}
	return state
}

func (s State) Player() int {
	return int(s.side)
}

func (s State) Players() int {
	return 2
}

func (s State) LegalMoves() []Action {
	occupied := s.bitboards[0] | s.bitboards[1]
	moves := make([]Action, 0, 9)
	for position := 0; position < 9; position++ {
		if occupied>>position&1 == 0 {
			moves = append(moves, Action(position))
		}
	}
	return moves
}

func (s State) Play(a Action) State {
	s.bitboards[s.side] |= 1 << a
	s.side ^= 1
	return s
}

func (s State) Score() ([]int64, bool) {
	for _, line := range lines {
		if s.bitboards[0]&line == line {
			return []int64{1, -1}, true
		}
	}
	for _, line := range lines {
		if s.bitboards[1]&line == line {
			return []int64{-1, 1}, true
		}
	}
	if (s.bitboards[0]|s.bitboards[1])&full == full {
		return []int64{0, 0}, true
	}
	return nil, false
}

func (s State) Bytes() []byte {
	return s.AppendBytes(make([]byte, 0, ByteCount))
}

func (s State) AppendBytes(b []byte) []byte {
	b = binary.LittleEndian.AppendUint16(b, s.bitboards[0])
	b = binary.LittleEndian.AppendUint16(b, s.bitboards[1])
	return append(b, s.side)
}

// String returns the nine cells in row order, e.g. "X.O......".
func (s State) String() string {
	var sb strings.Builder
	for i := 0; i < 9; i++ {
		sb.WriteByte(s.cell(i))
	}
	return sb.String()
}

func (s State) cell(i int) byte {
	switch {
	case s.bitboards[0]>>i&1 == 1:
		return 'X'
	case s.bitboards[1]>>i&1 == 1:
		return 'O'
	default:
		return '.'
	}
}
