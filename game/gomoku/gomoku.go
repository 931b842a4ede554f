package gomoku

import (
	"encoding/binary"
	"strconv"
	"strings"
)

const (
	// Height of the board, at least 1
	Height = 15
	// Width of the board, in [5, 16]
	Width = 15
)

// ByteCount is the size of State.Bytes.
const ByteCount = 4*Height + 1

// Action is a board position: the row in the high nibble, the column in the low one.
type Action uint8

func NewAction(row, col int) Action {
	return Action(row<<4 | col)
}

func (a Action) Row() int {
	return int(a >> 4)
}

func (a Action) Col() int {
	return int(a & 15)
}

// String returns the column letter followed by the 1-based row, e.g. "h8".
func (a Action) String() string {
	return string('a'+byte(a.Col())) + strconv.Itoa(a.Row()+1)
}

// State holds one bitboard row per board row and player.
type State struct {
	bitboards [2][Height]uint16
	side      uint8
}

func New() State {
	return State{}
}

// Init reads a state from any string. It understands the tokens "XM" and
// "OM" (side to move) and the triples "X <col> <row>", "O <col> <row>" and
// "+ <col> <row>" (empty the cell). Reading stops at the first malformed triple.
func Init(s string) State {
	var state State
	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		switch token := fields[i]; token {
		case "XM":
			state.side = 0
		case "OM":
			state.side = 1
		case "X", "O", "+":
			if i+2 >= len(fields) {
				return state
			}
			col, row, ok := parseCell(fields[i+1], fields[i+2])
			if !ok {
				return state
			}
			i += 2
			mask := uint16(1) << col
			state.bitboards[0][row] &^= mask
			state.bitboards[1][row] &^= mask
			switch token {
			case "X":
				state.bitboards[0][row] |= mask
			case "O":
				state.bitboards[1][row] |= mask
			}
		}
	}
	return state
}

func parseCell(c, r string) (col, row int, ok bool) {
	if len(c) != 1 || c[0] < 'a' || c[0] >= 'a'+Width {
		return 0, 0, false
	}
	n, err := strconv.Atoi(r)
	if err != nil || n < 1 || n > Height {
		return 0, 0, false
	}
	return int(c[0] - 'a'), n - 1, true
}

func (s State) Player() int {
	return int(s.side)
}

func (s State) Players() int {
	return 2
}

func (s State) LegalMoves() []Action {
	moves := make([]Action, 0, Width*Height)
	for i := 0; i < Height; i++ {
		occupied := s.bitboards[0][i] | s.bitboards[1][i]
		for j := 0; j < Width; j++ {
			if occupied>>j&1 == 0 {
				moves = append(moves, NewAction(i, j))
			}
		}
	}
	return moves
}

func (s State) Play(a Action) State {
	s.bitboards[s.side][a.Row()] |= 1 << a.Col()
	s.side ^= 1
	return s
}

func (s State) Score() ([]int64, bool) {
	if hasFive(&s.bitboards[0]) {
		return []int64{1, -1}, true
	}
	if hasFive(&s.bitboards[1]) {
		return []int64{-1, 1}, true
	}
	const fullRow = uint16(1)<<Width - 1
	for i := 0; i < Height; i++ {
		if s.bitboards[0][i]|s.bitboards[1][i] != fullRow {
			return nil, false
		}
	}
	return []int64{0, 0}, true
}

// hasFive reports whether the bitboard contains five stones in a row,
// horizontally, vertically or diagonally.
func hasFive(b *[Height]uint16) bool {
	for i := 0; i < Height; i++ {
		// horizontal: x & x>>1 & ... & x>>4 keeps the start of every run of five
		x := b[i]
		if x&(x>>1)&(x>>2)&(x>>3)&(x>>4) != 0 {
			return true
		}
		if i+4 >= Height {
			continue
		}
		vertical, rising, falling := x, x, x
		for k := 1; k <= 4; k++ {
			vertical &= b[i+k]
			rising &= b[i+k] >> k
			falling &= b[i+k] << k
		}
		if vertical != 0 || rising != 0 || falling&(uint16(1)<<Width-1) != 0 {
			return true
		}
	}
	return false
}

func (s State) Bytes() []byte {
	return s.AppendBytes(make([]byte, 0, ByteCount))
}

// AppendBytes appends the rows of X, then the rows of O, then the side to move.
func (s State) AppendBytes(b []byte) []byte {
	for _, board := range s.bitboards {
		for _, row := range board {
			b = binary.LittleEndian.AppendUint16(b, row)
		}
	}
	return append(b, s.side)
}

// String returns the side to move followed by every stone, e.g. "OM X h 8".
func (s State) String() string {
	parts := []string{"XM"}
	if s.side == 1 {
		parts[0] = "OM"
	}
	for i := 0; i < Height; i++ {
		for j := 0; j < Width; j++ {
			switch s.cell(i, j) {
			case 'X':
				parts = append(parts, "X", string('a'+byte(j)), strconv.Itoa(i+1))
			case 'O':
				parts = append(parts, "O", string('a'+byte(j)), strconv.Itoa(i+1))
			}
		}
	}
	return strings.Join(parts, " ")
}

func (s State) cell(row, col int) byte {
	switch {
	case s.bitboards[0][row]>>col&1 == 1:
		return 'X'
	case s.bitboards[1][row]>>col&1 == 1:
		return 'O'
	default:
		return '+'
	}
}
