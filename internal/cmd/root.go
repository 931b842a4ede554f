package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "alphaya",
		Short: "Play turn-based games against an MCTS agent",
		Long: heredoc.Doc(`alphaya plays turn-based board games between humans and bots.

			Without a subcommand it opens the interactive console of the
			game chosen with --game. Input ".play" in the console to start
			a game and ".help" to read the rules. Every game is recorded
			in the --records directory when it exists.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			}
		},
		RunE: runConsole,
	}

	// global flags
	root.PersistentFlags().StringP("game", "g", "tictactoe", "Game to play: "+gameNames())
	root.PersistentFlags().StringP("records", "r", "records", "Directory game records are saved to")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Arena())
	root.AddCommand(Export())

	return root
}

func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive console",
		Args:  cobra.NoArgs,
		RunE:  runConsole,
	}
}

func runConsole(cmd *cobra.Command, args []string) error {
	g, err := lookupGame(cmd)
	if err != nil {
		return err
	}
	records, _ := cmd.Flags().GetString("records")
	return g.console(cmd.InOrStdin(), cmd.OutOrStdout(), records)
}
