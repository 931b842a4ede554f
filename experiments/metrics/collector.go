package metrics

import (
	"time"
)

// SearchMetric summarizes one move search.
type SearchMetric struct {
	Iterations  int
	Exploration float64
	Duration    time.Duration
	Episodes    int
	TreeSize    int
	IsTreeReset bool
}

type MoveMetric struct {
	Step   int
	Player int
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Scores         []int64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(iterations int, exploration float64)
	SetTreeReset(value bool)
	AddEpisode()
	Complete(treeSize int) SearchMetric
}

type collector struct {
	iterations  int
	exploration float64
	startTime   time.Time
	episodes    int
	isTreeReset bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int, exploration float64) {
	m.startTime = time.Now()
	m.iterations = iterations
	m.exploration = exploration
	m.episodes = 0
	m.isTreeReset = false
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset = value
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Iterations:  m.iterations,
		Exploration: m.exploration,
		Duration:    time.Since(m.startTime),
		Episodes:    m.episodes,
		TreeSize:    treeSize,
		IsTreeReset: m.isTreeReset,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int, exploration float64) {}
func (m *dummyCollector) SetTreeReset(value bool)                    {}
func (m *dummyCollector) AddEpisode()                                {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric         { return SearchMetric{} }
