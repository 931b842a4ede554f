package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"alphaya/experiments"
)

// ExperimentsDirectory is where experiment results go by default.
var ExperimentsDirectory = filepath.Join(xdg.DataHome, "alphaya", "experiments")

func Arena() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena [exploration]",
		Short: "Play MCTS agents against each other",
		Long: heredoc.Doc(`arena plays a number of games between two MCTS agents,
			alternating the starting player, and stores the agent
			configs, games and moves of the run as CSV files.

			With the "exploration" argument, agents with several
			exploration constants each play the --games games against
			an agent with c = 1, searching --scount passes per move.`),
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"exploration"},

		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lookupGame(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			games, _ := cmd.Flags().GetInt("games")
			if games < 1 {
				return fmt.Errorf("invalid number of games %d", games)
			}

			var result *experiments.Result
			if len(args) == 1 {
				scount, _ := cmd.Flags().GetInt("scount")
				result, err = g.exploration(out, scount, games)
			} else {
				agent1, _ := cmd.Flags().GetString("agent1")
				agent2, _ := cmd.Flags().GetString("agent2")
				result, err = g.arena(out, agent1, agent2, games)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-6s %6s %6s %6s %6s %12s\n", "agent", "games", "wins", "draws", "losses", "episodes/s")
			for _, s := range result.Summaries {
				fmt.Fprintf(w, "%-6d %6d %6d %6d %6d %12.0f\n", s.Agent, s.Games, s.Wins, s.Draws, s.Losses, s.Throughput)
			}
			fmt.Fprintf(w, "Results saved to %s\n", result.Dir)
			return nil
		},
	}

	cmd.Flags().String("agent1", "scount 200", "Config of the first agent")
	cmd.Flags().String("agent2", "scount 200", "Config of the second agent")
	cmd.Flags().IntP("games", "n", experiments.NumGames, "Number of games per matchup")
	cmd.Flags().Int("scount", 200, "Search passes per move in the exploration experiment")
	cmd.Flags().StringP("out", "o", ExperimentsDirectory, "Directory to store results in")

	return cmd
}
