package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"dugout/internal/roster"
	"dugout/internal/score"
)

var defenseCmd = &cobra.Command{
	Use:   "defense <stats-file>",
	Short: "Score players at their defensive positions",
	Long: "Reads defensive statistics from a CSV or JSON file, evaluates " +
		"each player at every eligible position (and, unless disabled, at " +
		"unplayed positions via similarity prediction) and prints the " +
		"player/position score mapping as JSON.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		prepareLogger(config.Logger.Level)

		predictAll := config.Analysis.PredictAllPositions
		if cmd.Flags().Changed("predict") {
			predictAll, _ = cmd.Flags().GetBool("predict")
		}

		players, err := roster.LoadDefenseFile(args[0])
		if err != nil {
			return err
		}

		calculator := score.NewDefenseCalculator()
		result, err := calculator.ScoreDefense(players, predictAll)
		if err != nil {
			return err
		}
		slog.Debug("defensive analysis complete", "players", len(players), "predict", predictAll)

		record(config, "defense", args[0], result)
		return printJSON(result)
	},
}

func init() {
	defenseCmd.Flags().Bool("predict", true, "predict scores for unplayed positions")
}
