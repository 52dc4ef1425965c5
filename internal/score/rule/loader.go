package rule

import (
	"os"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"
)

// Load parses a YAML rule script and compiles every rule against a fresh
// environment from envProvider. The script is a list of rules:
//
//   - name: obp walk advantage
//     when: "obp > 0.350 && walkRate > 0.10"
//     then: 8
func Load(script []byte, envProvider func() (*cel.Env, error)) ([]Rule, error) {
	rules := []Rule{}

	if err := yaml.Unmarshal(script, &rules); err != nil {
		return nil, err
	}

	for i := range rules {
		env, err := envProvider()
		if err != nil {
			return nil, err
		}

		if err := rules[i].Init(env); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

// LoadFromFile reads a YAML rule script from disk and compiles it.
func LoadFromFile(file string, envProvider func() (*cel.Env, error)) ([]Rule, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Load(content, envProvider)
}
