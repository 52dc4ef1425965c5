package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"dugout/internal/roster"
)

var matchupCmd = &cobra.Command{
	Use:   "matchup <stats-file>",
	Short: "Score every batter against the opposing pitcher",
	Long: "Reads batter and pitcher statistics from a CSV or JSON file, " +
		"evaluates the matchup rule set and prints a batter-name to score " +
		"mapping (0-100) as JSON.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		prepareLogger(config.Logger.Level)

		calculator, err := newCalculator(cmd, config)
		if err != nil {
			return err
		}

		batters, pitcher, err := roster.LoadMatchupFile(args[0])
		if err != nil {
			return err
		}

		result, err := calculator.ScoreMatchups(batters, pitcher)
		if err != nil {
			return err
		}
		slog.Debug("matchup analysis complete", "batters", len(batters), "pitcher", pitcher.Name)

		record(config, "matchup", args[0], result)
		return printJSON(result)
	},
}
