package record

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// StepRow is one turn of a recorded game, with the final score of the player
// who moved as its outcome.
type StepRow struct {
	Game   string `parquet:"game,dict"`
	Prefix string `parquet:"prefix,dict"`
	Turn   int32  `parquet:"turn"`
	Player int32  `parquet:"player"`
	Agent  string `parquet:"agent,dict"`
	Action string `parquet:"action,dict"`
	Before string `parquet:"before"`
	After  string `parquet:"after"`
	Score  int64  `parquet:"score"`
}

// Rows flattens a game into one row per step. Games without scores get a
// zero outcome.
func (g *Game) Rows(id string) []StepRow {
	agents := make(map[int]string, len(g.Players))
	for _, p := range g.Players {
		agents[p.Index] = p.Agent
	}
	rows := make([]StepRow, 0, len(g.Steps))
	before := g.Init
	for turn, step := range g.Steps {
		row := StepRow{
			Game:   id,
			Prefix: g.Prefix,
			Turn:   int32(turn + 1),
			Player: int32(step.Player),
			Agent:  agents[step.Player],
			Action: step.Action,
			Before: before,
			After:  step.State,
		}
		if step.Player < len(g.Scores) {
			row.Score = g.Scores[step.Player]
		}
		rows = append(rows, row)
		before = step.State
	}
	return rows
}

// ExportParquet writes rows to outPath through a temporary file renamed on
// success.
func ExportParquet(outPath string, rows []StepRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "alphaya_step_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
