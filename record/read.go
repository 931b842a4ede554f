package record

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

var ErrIncomplete = errors.New("record ends before the final score")

type scanner struct {
	s    *bufio.Scanner
	line int
}

func (s *scanner) next() (string, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read record")
		}
		return "", io.EOF
	}
	s.line++
	return s.s.Text(), nil
}

func (s *scanner) expect(tag string) error {
	got, err := s.next()
	if err != nil {
		return err
	}
	if got != tag {
		return errors.Errorf("line %d: expected %s, got %q", s.line, tag, got)
	}
	return nil
}

func (s *scanner) int() (int64, error) {
	text, err := s.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "line %d", s.line)
	}
	return n, nil
}

// Read parses a record. A record cut short before its SCORE section, as left
// by an interrupted game, returns the part read so far with ErrIncomplete.
func Read(r io.Reader) (*Game, error) {
	s := &scanner{s: bufio.NewScanner(r)}
	g := &Game{}
	if err := g.read(s); err != nil {
		if errors.Cause(err) == io.EOF {
			return g, ErrIncomplete
		}
		return nil, err
	}
	return g, nil
}

func (g *Game) read(s *scanner) error {
	var err error
	if err = s.expect(tagGame); err != nil {
		return err
	}
	if g.Prefix, err = s.next(); err != nil {
		return err
	}
	if err = s.expect(tagPlayers); err != nil {
		return err
	}
	n, err := s.int()
	if err != nil {
		return err
	}
	if n < 1 {
		return errors.Errorf("line %d: invalid number of players %d", s.line, n)
	}

	for i := int64(0); i < n; i++ {
		if err = s.expect(tagPlayer); err != nil {
			return err
		}
		index, err := s.int()
		if err != nil {
			return err
		}
		agent, err := s.next()
		if err != nil {
			return err
		}
		config, err := s.next()
		if err != nil {
			return err
		}
		g.Players = append(g.Players, Player{Index: int(index), Agent: agent, Config: config})
	}

	if err = s.expect(tagInit); err != nil {
		return err
	}
	if g.Init, err = s.next(); err != nil {
		return err
	}

	for {
		tag, err := s.next()
		if err != nil {
			return err
		}
		switch tag {
		case tagStep:
			if err := g.readStep(s, n); err != nil {
				return err
			}
		case tagScore:
			for i := int64(0); i < n; i++ {
				score, err := s.int()
				if err != nil {
					return err
				}
				g.Scores = append(g.Scores, score)
			}
			return nil
		default:
			return errors.Errorf("line %d: expected %s or %s, got %q", s.line, tagStep, tagScore, tag)
		}
	}
}

func (g *Game) readStep(s *scanner, players int64) error {
	player, err := s.int()
	if err != nil {
		return err
	}
	if player < 0 || player >= players {
		return errors.Errorf("line %d: player %d out of range", s.line, player)
	}
	action, err := s.next()
	if err != nil {
		return err
	}
	state, err := s.next()
	if err != nil {
		return err
	}
	g.Steps = append(g.Steps, Step{Player: int(player), Action: action, State: state})
	return nil
}

// ReadFile parses the record stored at path.
func ReadFile(path string) (*Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open record")
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil && err != ErrIncomplete {
		return nil, errors.Wrapf(err, "record %s", path)
	}
	return g, err
}
