package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	t.Run("creating a directory per run", func(t *testing.T) {
		root := t.TempDir()

		w, err := NewWriter(root, "exploration")

		require.NoError(t, err)
		require.DirExists(t, w.Dir())
		require.Equal(t, filepath.Join(root, "exploration"), filepath.Dir(w.Dir()))
	})

	t.Run("writing agent configs", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "arena")
		require.NoError(t, err)

		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Config: "c 0.5 scount 100"}, {ID: 2}}))

		require.Equal(t, [][]string{
			{"id", "config"},
			{"1", "c 0.5 scount 100"},
			{"2", ""},
		}, readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv")))
	})

	t.Run("writing game records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "arena")
		require.NoError(t, err)
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{
			{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{
				StartingPlayer: 0,
				Scores:         []int64{1, -1},
				StartTime:      start,
				EndTime:        start.Add(2 * time.Second),
				Duration:       2 * time.Second,
				TotalMoves:     7,
			}},
			{ID: 2, Agent1: 2, Agent2: 1, GameMetric: GameMetric{StartTime: start, EndTime: start}},
		}

		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "2", "0", "1 -1", "2024-01-02T03:04:05Z", "2024-01-02T03:04:07Z", "2s", "7"}, rows[1])
		require.Equal(t, "", rows[2][4], "Unfinished game should have no scores")
	})

	t.Run("writing move records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "arena")
		require.NoError(t, err)
		records := []MoveRecord{{Game: 3, MoveMetric: MoveMetric{
			Step:   4,
			Player: 1,
			Action: "b2",
			SearchMetric: SearchMetric{
				Iterations:  50,
				Exploration: 1.4,
				Duration:    time.Millisecond,
				Episodes:    52,
				TreeSize:    300,
				IsTreeReset: false,
			},
		}}}

		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "step", "player", "action", "iterations", "exploration", "duration", "episodes", "tree_size", "is_tree_reset"}, rows[0])
		require.Equal(t, []string{"3", "4", "1", "b2", "50", "1.4", "1ms", "52", "300", "false"}, rows[1])
	})
}
