package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"dugout/internal/roster"
)

var versusCmd = &cobra.Command{
	Use:   "versus <stats-file>",
	Short: "Score one batter against multiple pitchers",
	Long: "Reads one or more batters and a pitcher list from a CSV or JSON " +
		"file, picks a batter (--batter, or the first one) and prints a " +
		"pitcher-name to score mapping (0-100) as JSON.",
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

		batters, pitchers, err := roster.LoadVersusFile(args[0])
		if err != nil {
			return err
		}

		batter := batters[0]
		if name, _ := cmd.Flags().GetString("batter"); name != "" {
			found := false
			for i := range batters {
				if batters[i].Name == name {
					batter = batters[i]
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("batter %q not found in %s", name, args[0])
			}
		}

		result, err := calculator.ScoreBatterVsPitchers(batter, pitchers)
		if err != nil {
			return err
		}
		slog.Debug("versus analysis complete", "batter", batter.Name, "pitchers", len(pitchers))

		record(config, "versus", args[0], result)
		return printJSON(result)
	},
}

func init() {
	versusCmd.Flags().String("batter", "", "name of the batter to analyze (default: first batter in the file)")
}
