package rule

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Kind tags how a rule is applied across a batter collection.
type Kind string

const (
	// KindUniversal — the adjustment is added to every batter whose facts
	// satisfy the condition ("for all qualifying batters").
	KindUniversal Kind = "universal"
	// KindExistential — the adjustment is unlocked only if at least one
	// batter in the collection satisfies the condition, and is then added
	// to each batter that individually satisfies it.
	KindExistential Kind = "existential"
)

// Rule is one declarative matchup rule. The When field contains a CEL
// expression over the matchup fact variables that defines the trigger
// condition; it must return a boolean. The Then field is the signed point
// adjustment added to a batter's score when the rule applies. Rules are
// independent of each other, so their contributions sum commutatively.
// The CEL program is compiled when Init is called.
type Rule struct {
	// Name identifies the rule in logs and rule files.
	Name string `yaml:"name"`
	// Kind — universal (default when omitted) or existential.
	Kind Kind `yaml:"kind"`
	// When — CEL expression defining the rule trigger condition.
	When string `yaml:"when"`
	// Then — signed point adjustment applied when the condition is true.
	Then float64 `yaml:"then"`
	// program — compiled CEL program used to execute the condition.
	program cel.Program
}

// Init compiles the string expression in the When field into an executable
// CEL program using the provided env environment, and normalizes the Kind
// tag. In case of syntax or semantic errors, returns the corresponding
// error. After successful initialization, the rule is ready for Match/Eval.
func (r *Rule) Init(env *cel.Env) error {
	switch r.Kind {
	case "":
		r.Kind = KindUniversal
	case KindUniversal, KindExistential:
	default:
		return fmt.Errorf("rule %q: unknown kind %q", r.Name, r.Kind)
	}

	ast, iss := env.Parse(r.When)
	if iss.Err() != nil {
		return iss.Err()
	}

	checked, iss := env.Check(ast)
	if iss.Err() != nil {
		return iss.Err()
	}

	var err error
	r.program, err = env.Program(checked)
	if err != nil {
		return err
	}

	return nil
}

// Match executes the compiled condition against the provided fact map and
// reports whether it holds. A non-boolean result counts as no match.
func (r *Rule) Match(facts map[string]any) (bool, error) {
	result, _, err := r.program.Eval(facts)
	if err != nil {
		return false, err
	}

	matched, ok := result.Value().(bool)
	return ok && matched, nil
}

// Eval returns the rule's adjustment for the provided facts: Then when the
// condition holds, zero otherwise.
func (r *Rule) Eval(facts map[string]any) (float64, error) {
	matched, err := r.Match(facts)
	if err != nil || !matched {
		return 0, err
	}

	return r.Then, nil
}
