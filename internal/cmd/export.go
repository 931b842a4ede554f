package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"alphaya/record"
)

func Export() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [record-file|directory]...",
		Short: "Convert game records to Parquet",
		Long: heredoc.Doc(`export reads game records and writes every move as one row of
			a zstd compressed Parquet file, along with the states before
			and after the move and the final score of the player who
			made it.

			Directories are searched for *.txt records. Without
			arguments the --records directory is used. Records of
			interrupted games are exported without scores.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				records, _ := cmd.Flags().GetString("records")
				args = []string{records}
			}
			files, err := recordFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no records found in %s", strings.Join(args, ", "))
			}

			rows := []record.StepRow{}
			for _, file := range files {
				g, err := record.ReadFile(file)
				if err == record.ErrIncomplete {
					log.Warn().Str("file", file).Msg("exporting interrupted game")
				} else if err != nil {
					return err
				}
				rows = append(rows, g.Rows(strings.TrimSuffix(filepath.Base(file), ".txt"))...)
			}

			out, _ := cmd.Flags().GetString("out")
			if err := record.ExportParquet(out, rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d moves of %d games to %s\n", len(rows), len(files), out)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "records.parquet", "Parquet file to write")

	return cmd
}

// recordFiles expands directories into the records they hold, sorted by name.
func recordFiles(paths []string) ([]string, error) {
	files := []string{}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(path, "*.txt"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}
