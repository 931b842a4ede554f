package agent

import (
	"io"
	"math"
	"strconv"
	"strings"

	"alphaya/game"
	"alphaya/meta"
)

// Agent decides the moves of one player. Move is only called on
// non-terminal states where the agent's player is to move. An agent may read
// from in and write to out; only human agents are expected to read.
type Agent[S game.State[S, A], A game.Action] interface {
	Move(state S, in io.Reader, out io.Writer) (A, error)
}

// Config is the parsed form of an agent config string such as
// "seed 7 c 1.4 scount 2000".
type Config struct {
	Seed        uint64
	Exploration float64
	Iterations  int
	LogInterval int
}

func DefaultConfig() Config {
	return Config{
		Seed:        meta.DefaultSeed,
		Exploration: meta.DefaultExploration,
		Iterations:  meta.DefaultIterations,
	}
}

// ParseConfig reads whitespace separated "key value" pairs on top of the
// defaults. Unknown keys are skipped one token at a time. Parsing stops at
// the first malformed or missing value, keeping the defaults of the keys not
// yet read.
func ParseConfig(config string) Config {
	c := DefaultConfig()
	tokens := strings.Fields(config)
	for i := 0; i < len(tokens); i++ {
		key := tokens[i]
		switch key {
		case "seed", "c", "scount", "log":
		default:
			continue
		}
		i++
		if i >= len(tokens) {
			return c
		}
		value := tokens[i]

		switch key {
		case "seed":
			seed, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return c
			}
			c.Seed = seed
		case "c":
			exploration, err := strconv.ParseFloat(value, 64)
			if err != nil || math.IsNaN(exploration) || math.IsInf(exploration, 0) {
				return c
			}
			c.Exploration = exploration
		case "scount":
			iterations, err := parseCount(value)
			if err != nil {
				return c
			}
			c.Iterations = iterations
		case "log":
			interval, err := parseCount(value)
			if err != nil {
				return c
			}
			c.LogInterval = interval
		}
	}
	return c
}

func parseCount(value string) (int, error) {
	n, err := strconv.ParseUint(value, 10, 31)
	return int(n), err
}
