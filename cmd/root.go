package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dugout/internal/configuration"
	"dugout/internal/dataset"
	"dugout/internal/roster"
	"dugout/internal/score"
	"dugout/internal/score/rule"
)

var rootCmd = &cobra.Command{
	Use:   "dugout",
	Short: "Rule-based lineup analysis",
	Long: "Dugout scores batters against an opposing pitcher and players at " +
		"defensive positions using a declarative matchup rule set, producing " +
		"0-100 scores for lineup optimization.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to YAML configuration file")
	rootCmd.PersistentFlags().String("rules", "", "path to YAML matchup rules file (overrides configuration)")

	rootCmd.AddCommand(matchupCmd)
	rootCmd.AddCommand(defenseCmd)
	rootCmd.AddCommand(versusCmd)
}

// prepareLogger configures the global logger using slog. Takes a string
// log level (e.g., "debug", "info", "warn", "error") and installs a
// JSON-formatted handler on os.Stderr. Unrecognized levels fall back to
// Info.
func prepareLogger(level string) {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// loadConfig reads the --config flag; without it the defaults apply.
func loadConfig(cmd *cobra.Command) (*configuration.AppConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return configuration.Default(), nil
	}
	return configuration.LoadConfig(path)
}

// loadRules resolves the matchup rule set: the --rules flag wins, then the
// configured rules file, then the built-in defaults.
func loadRules(cmd *cobra.Command, config *configuration.AppConfig) ([]rule.Rule, error) {
	path, _ := cmd.Flags().GetString("rules")
	if path == "" {
		path = config.Analysis.Rules
	}
	if path == "" {
		return rule.Defaults(roster.NewMatchupEnv)
	}
	return rule.LoadFromFile(path, roster.NewMatchupEnv)
}

// newCalculator wires a matchup calculator from the resolved rule set.
func newCalculator(cmd *cobra.Command, config *configuration.AppConfig) (*score.MatchupCalculator, error) {
	rules, err := loadRules(cmd, config)
	if err != nil {
		return nil, err
	}
	return score.NewMatchupCalculator(score.NewEvaluator(rules)), nil
}

// record appends the run to the configured report file, if any.
func record(config *configuration.AppConfig, kind, input string, result any) {
	if config.Report.File == "" {
		return
	}
	repo := dataset.NewJsonReportRepository(config.Report.File, config.Report.Size, config.Report.Amount)
	defer repo.Close()
	repo.Append(kind, input, result)
}

// printJSON writes the score mapping to stdout as indented JSON.
func printJSON(result any) error {
	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	body = append(body, '\n')
	_, err = os.Stdout.Write(body)
	return err
}
