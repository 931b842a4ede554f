package experiments

import (
	"time"

	"alphaya/experiments/metrics"
)

// Summary aggregates the games and searches of one agent config.
type Summary struct {
	Agent      int // AgentConfig.ID
	Games      int
	Wins       int
	Draws      int
	Losses     int
	Unfinished int
	Moves      int
	Episodes   int
	Duration   time.Duration // total search time
	// Throughput is the number of search episodes per second.
	Throughput float64
}

// Summarize tallies outcomes from the point of view of each config, in the
// order of configs, along with the search throughput of its moves.
func Summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) []Summary {
	summaries := make([]Summary, len(configs))
	index := make(map[int]int, len(configs))
	for i, config := range configs {
		summaries[i].Agent = config.ID
		index[config.ID] = i
	}

	seats := make(map[int][2]int, len(games))
	for _, g := range games {
		seats[g.ID] = [2]int{g.Agent1, g.Agent2}
		for player, id := range []int{g.Agent1, g.Agent2} {
			i, ok := index[id]
			if !ok {
				continue
			}
			s := &summaries[i]
			s.Games++
			if len(g.Scores) != 2 {
				s.Unfinished++
				continue
			}
			own, other := g.Scores[player], g.Scores[1-player]
			switch {
			case own > other:
				s.Wins++
			case own < other:
				s.Losses++
			default:
				s.Draws++
			}
		}
	}

	for _, m := range moves {
		seat, ok := seats[m.Game]
		if !ok || m.Player < 0 || m.Player > 1 {
			continue
		}
		i, ok := index[seat[m.Player]]
		if !ok {
			continue
		}
		s := &summaries[i]
		s.Moves++
		s.Episodes += m.Episodes
		s.Duration += m.Duration
	}

	for i := range summaries {
		if seconds := summaries[i].Duration.Seconds(); seconds > 0 {
			summaries[i].Throughput = float64(summaries[i].Episodes) / seconds
		}
	}
	return summaries
}
