package engine

import (
	"io"

	"alphaya/agent"
	"alphaya/experiments/metrics"
	"alphaya/game"
)

// Seat is a player's agent along with what the record says about it.
type Seat[S game.State[S, A], A game.Action] struct {
	Agent  agent.Agent[S, A]
	Name   string
	Config string
}

// searchReporter is implemented by agents that search, see agent.MCTS.
type searchReporter interface {
	LastMetrics() metrics.SearchMetric
}

type Option func(e *settings)

type settings struct {
	in       io.Reader
	out      io.Writer
	record   io.Writer
	maxTurns int
	render   bool
}

// WithIO sets the streams handed to agents. Board renderings and turn
// announcements go to out as well.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *settings) {
		if in != nil {
			s.in = in
		}
		if out != nil {
			s.out = out
		}
	}
}

// WithRecord writes the game record to w.
func WithRecord(w io.Writer) Option {
	return func(s *settings) {
		s.record = w
	}
}

// WithMaxTurns stops a game after max turns, leaving it unscored. Zero plays
// until the game is over.
func WithMaxTurns(max int) Option {
	return func(s *settings) {
		if max >= 0 {
			s.maxTurns = max
		}
	}
}

// WithoutRender skips printing boards, for games between bots.
func WithoutRender() Option {
	return func(s *settings) {
		s.render = false
	}
}
