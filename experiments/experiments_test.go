package experiments

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"alphaya/experiments/metrics"
	"alphaya/game/tictactoe"
)

func TestArena(t *testing.T) {
	t.Run("playing every game and storing the results", func(t *testing.T) {
		root := t.TempDir()
		x := Arena(tictactoe.Descriptor(), root, "scount 20", "c 0 scount 5", 4)

		result, err := x.Run()

		require.NoError(t, err)
		require.Len(t, result.GameRecords, 4)
		for i, g := range result.GameRecords {
			require.Equal(t, i+1, g.ID)
			require.Len(t, g.Scores, 2, "Tic-tac-toe games should always finish")
			require.Equal(t, g.TotalMoves, countMoves(result.MoveRecords, g.ID))
		}
		require.Equal(t, 1, result.GameRecords[0].Agent1, "First game should seat agent 1 first")
		require.Equal(t, 2, result.GameRecords[1].Agent1, "Second game should swap the seats")
		for _, m := range result.MoveRecords {
			require.Greater(t, m.Episodes, 0, "Every move should come from a search")
		}

		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(result.Dir, file))
		}
		entries, err := os.ReadDir(filepath.Join(root, "arena"))
		require.NoError(t, err)
		require.Len(t, entries, 1)

		require.Len(t, result.Summaries, 2)
		for _, s := range result.Summaries {
			require.Equal(t, 4, s.Games)
			require.Equal(t, 4, s.Wins+s.Draws+s.Losses)
		}
		require.Equal(t, result.Summaries[0].Wins, result.Summaries[1].Losses)
	})
}

func TestExploration(t *testing.T) {
	t.Run("pairing each config with the baseline", func(t *testing.T) {
		x := Exploration(tictactoe.Descriptor(), t.TempDir(), 100, 6)

		require.Len(t, x.Configs, 5)
		require.Len(t, x.MatchUps, 4)
		require.Equal(t, 6, x.NumGames)
		for _, matchup := range x.MatchUps {
			require.Equal(t, 0, matchup[0].ID)
			require.Equal(t, "c 1 scount 100", matchup[0].Config)
		}
		require.Equal(t, "c 1.4 scount 100", x.MatchUps[2][1].Config)
	})
}

func countMoves(moves []metrics.MoveRecord, game int) int {
	count := 0
	for _, m := range moves {
		if m.Game == game {
			count++
		}
	}
	return count
}

func TestSummarize(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 7}, {ID: 9}}
	games := []metrics.GameRecord{
		{ID: 1, Agent1: 7, Agent2: 9, GameMetric: metrics.GameMetric{Scores: []int64{1, -1}}},
		{ID: 2, Agent1: 9, Agent2: 7, GameMetric: metrics.GameMetric{Scores: []int64{0, 0}}},
		{ID: 3, Agent1: 9, Agent2: 7, GameMetric: metrics.GameMetric{Scores: []int64{1, -1}}},
		{ID: 4, Agent1: 7, Agent2: 9},
	}
	moves := []metrics.MoveRecord{
		{Game: 1, MoveMetric: metrics.MoveMetric{Player: 0, SearchMetric: metrics.SearchMetric{Episodes: 100, Duration: time.Second}}},
		{Game: 1, MoveMetric: metrics.MoveMetric{Player: 1, SearchMetric: metrics.SearchMetric{Episodes: 30, Duration: time.Second}}},
		{Game: 2, MoveMetric: metrics.MoveMetric{Player: 1, SearchMetric: metrics.SearchMetric{Episodes: 300, Duration: time.Second}}},
	}

	t.Run("tallying outcomes per agent", func(t *testing.T) {
		got := Summarize(configs, games, moves)

		require.Equal(t, 7, got[0].Agent)
		require.Equal(t, 4, got[0].Games)
		require.Equal(t, 1, got[0].Wins)
		require.Equal(t, 1, got[0].Draws)
		require.Equal(t, 1, got[0].Losses)
		require.Equal(t, 1, got[0].Unfinished)

		require.Equal(t, 9, got[1].Agent)
		require.Equal(t, 1, got[1].Wins)
		require.Equal(t, 1, got[1].Losses)
	})

	t.Run("attributing moves to the seated agent", func(t *testing.T) {
		got := Summarize(configs, games, moves)

		require.Equal(t, 2, got[0].Moves)
		require.Equal(t, 400, got[0].Episodes)
		require.InDelta(t, 200.0, got[0].Throughput, 1e-9)
		require.Equal(t, 1, got[1].Moves)
		require.InDelta(t, 30.0, got[1].Throughput, 1e-9)
	})
}
