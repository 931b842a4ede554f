package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// AgentConfig identifies an agent taking part in an experiment.
type AgentConfig struct {
	ID     int
	Config string // agent config string, e.g. "c 1.4 scount 500"
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the first player
	Agent2 int // AgentConfig.ID of the second player
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates the directory root/name/<timestamp> holding the CSV
// files of one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return f.Close()
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Config,
		})
	}
	return w.write("agent_configs.csv", []string{"id", "config"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "scores", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			formatScores(record.Scores),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "iterations", "exploration", "duration", "episodes", "tree_size", "is_tree_reset"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Action,
			strconv.Itoa(record.Iterations),
			strconv.FormatFloat(record.Exploration, 'g', -1, 64),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.TreeSize),
			strconv.FormatBool(record.IsTreeReset),
		})
	}
	return w.write("move_records.csv", header, rows)
}

// formatScores joins scores with spaces; an unfinished game has none.
func formatScores(scores []int64) string {
	parts := make([]string, len(scores))
	for i, score := range scores {
		parts[i] = strconv.FormatInt(score, 10)
	}
	return strings.Join(parts, " ")
}
