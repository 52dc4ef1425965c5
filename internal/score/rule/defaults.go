package rule

import (
	_ "embed"

	"github.com/google/cel-go/cel"
)

//go:embed matchup_rules.yaml
var defaultMatchupRules []byte

// Defaults compiles the built-in matchup rule set. Deployments can replace
// it with a rules file via configuration; the built-in set encodes the
// reference adjustment constants.
func Defaults(envProvider func() (*cel.Env, error)) ([]Rule, error) {
	return Load(defaultMatchupRules, envProvider)
}
