package score

import "dugout/internal/roster"

// Scores are always on the 0-100 scale; MinScore and MaxScore bound every
// externally visible value regardless of how far the rule adjustments push.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Matchups maps a subject name to its matchup score in [0,100]. The
// subject is a batter name for roster analysis, or a pitcher name for
// batter-versus-pitchers analysis.
type Matchups map[string]float64

// Defense maps a player name to per-position defensive scores in [0,100].
type Defense map[string]map[roster.Position]float64

// clamp saturates a score into the [MinScore, MaxScore] range.
func clamp(v float64) float64 {
	switch {
	case v < MinScore:
		return MinScore
	case v > MaxScore:
		return MaxScore
	default:
		return v
	}
}
