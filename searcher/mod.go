package searcher

import (
	"math"

	"alphaya/experiments/metrics"
	"alphaya/meta"
)

// noNode marks an unexpanded child slot and the parent of a root.
const noNode int32 = -1

type Option func(s *settings)

type settings struct {
	iterations  int
	exploration float64
	seed        uint64
	logInterval int
	metrics     metrics.Collector
}

func defaultSettings() settings {
	return settings{
		iterations:  meta.DefaultIterations,
		exploration: meta.DefaultExploration,
		seed:        meta.DefaultSeed,
		metrics:     metrics.NewDummyCollector(),
	}
}

// WithIterations sets the minimum number of selection, expansion and
// backpropagation passes per move. With zero the search stops as soon as
// every child of the root has been expanded.
func WithIterations(iterations int) Option {
	return func(s *settings) {
		if iterations >= 0 {
			s.iterations = iterations
		}
	}
}

// WithExploration sets the UCT exploration constant c. NaN and infinite
// values are ignored.
func WithExploration(c float64) Option {
	return func(s *settings) {
		if !math.IsNaN(c) && !math.IsInf(c, 0) {
			s.exploration = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

// WithLogInterval reports the current recommendation every interval passes,
// in addition to the final pass. Zero only reports the final pass.
func WithLogInterval(interval int) Option {
	return func(s *settings) {
		if interval >= 0 {
			s.logInterval = interval
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}
