package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"alphaya/agent"
	"alphaya/engine"
	"alphaya/experiments/metrics"
	"alphaya/game"
	"alphaya/meta"
	"alphaya/searcher"
)

const NumGames = 30 // Per match up

// Experiment is a set of matchups between MCTS agents on one game.
type Experiment[S game.State[S, A], A game.Action] struct {
	Name     string
	Game     *game.Descriptor[S, A]
	Initial  S
	Configs  []metrics.AgentConfig
	MatchUps [][]metrics.AgentConfig
	NumGames int
	// Root is the directory the CSV files are written under.
	Root string
}

// Arena pits two agent configs against each other, alternating who starts.
func Arena[S game.State[S, A], A game.Action](desc *game.Descriptor[S, A], root string, config1, config2 string, games int) *Experiment[S, A] {
	a := metrics.AgentConfig{ID: 1, Config: config1}
	b := metrics.AgentConfig{ID: 2, Config: config2}
	return &Experiment[S, A]{
		Name:     "arena",
		Game:     desc,
		Initial:  desc.Init(desc.DefaultState),
		Configs:  []metrics.AgentConfig{a, b},
		MatchUps: [][]metrics.AgentConfig{{a, b}},
		NumGames: games,
		Root:     root,
	}
}

// Exploration pairs agents with several exploration constants against a
// baseline with c = 1, playing games games per pairing.
func Exploration[S game.State[S, A], A game.Action](desc *game.Descriptor[S, A], root string, iterations, games int) *Experiment[S, A] {
	baseline := metrics.AgentConfig{ID: 0, Config: fmt.Sprintf("c 1 scount %d", iterations)}
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, c := range []float64{0, 0.5, 1.4, 2} {
		config := metrics.AgentConfig{ID: i + 1, Config: fmt.Sprintf("c %g scount %d", c, iterations)}
		configs = append(configs, config)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return &Experiment[S, A]{
		Name:     "exploration",
		Game:     desc,
		Initial:  desc.Init(desc.DefaultState),
		Configs:  append(configs, baseline),
		MatchUps: matchUps,
		NumGames: games,
		Root:     root,
	}
}

// Result holds everything an experiment produced.
type Result struct {
	Dir         string
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Summaries   []Summary
}

// Run plays every matchup NumGames times and stores the configs, games and
// moves as CSV files under Root.
func (x *Experiment[S, A]) Run() (*Result, error) {
	// Run a number of games for each matchup
	count := 0
	result := &Result{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchup := range x.MatchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), config1, config2)

		for i := 0; i < x.NumGames; i++ {
			count++
			// Alternate the starting agent
			seated := []metrics.AgentConfig{config1, config2}
			if i%2 == 1 {
				seated[0], seated[1] = seated[1], seated[0]
			}

			gameMetric, moveMetrics, err := x.runGame(seated, uint64(count))
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			result.GameRecords = append(result.GameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     seated[0].ID,
				Agent2:     seated[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.MoveRecords = append(result.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with scores: %v", mi+1, len(x.MatchUps), i+1, gameMetric.Scores)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(x.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	result.Summaries = Summarize(x.Configs, result.GameRecords, result.MoveRecords)
	for _, s := range result.Summaries {
		log.Info().
			Int("agent", s.Agent).
			Int("wins", s.Wins).
			Int("draws", s.Draws).
			Int("losses", s.Losses).
			Float64("episodes_per_second", s.Throughput).
			Msg("agent summary")
	}

	dir, err := x.store(result)
	if err != nil {
		return nil, err
	}
	result.Dir = dir
	return result, nil
}

func (x *Experiment[S, A]) store(result *Result) (string, error) {
	writer, err := metrics.NewWriter(x.Root, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(x.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(result.GameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.MoveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays one game between MCTS agents seated in order. Every game gets
// its own seed so that repeated matchups do not replay the same game.
func (x *Experiment[S, A]) runGame(seated []metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	seats := make([]engine.Seat[S, A], len(seated))
	for i, config := range seated {
		seats[i] = engine.Seat[S, A]{
			Agent: agent.NewMCTS[S, A](config.Config,
				searcher.WithSeed(meta.DefaultSeed+seed*uint64(len(seated))+uint64(i)),
				searcher.WithMetrics(metrics.NewCollector()),
			),
			Name:   "ai",
			Config: config.Config,
		}
	}
	e := engine.LocalEngine(x.Game, seats, engine.WithoutRender(), engine.WithMaxTurns(meta.MaxTurns))
	return e.Run(x.Initial)
}
