package roster

import (
	"fmt"
	"strings"
)

// Position is a defensive position code.
type Position string

const (
	Catcher     Position = "C"
	FirstBase   Position = "1B"
	SecondBase  Position = "2B"
	ThirdBase   Position = "3B"
	Shortstop   Position = "SS"
	LeftField   Position = "LF"
	CenterField Position = "CF"
	RightField  Position = "RF"
)

// AllPositions lists every valid position code in scorebook order.
var AllPositions = []Position{
	Catcher, FirstBase, SecondBase, ThirdBase,
	Shortstop, LeftField, CenterField, RightField,
}

// ParsePosition normalizes a raw position code.
func ParsePosition(raw string) (Position, error) {
	code := Position(strings.ToUpper(strings.TrimSpace(raw)))
	for _, p := range AllPositions {
		if code == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("unrecognized position code %q", raw)
}

// ParsePositions splits a comma- or slash-separated positions field and
// normalizes each entry, preserving order and dropping duplicates.
func ParsePositions(raw string) ([]Position, error) {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '/'
	})
	positions := make([]Position, 0, len(parts))
	seen := make(map[Position]bool, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		pos, err := ParsePosition(part)
		if err != nil {
			return nil, err
		}
		if !seen[pos] {
			seen[pos] = true
			positions = append(positions, pos)
		}
	}
	return positions, nil
}

// Fielder is one validated defensive record: season fielding stats plus
// the set of positions the player actually appeared at. Passed balls and
// caught-stealing percentage are meaningful only for catcher-eligible
// players; the general-position rule never reads them.
type Fielder struct {
	Name              string     `json:"name"`
	FieldingPct       float64    `json:"fielding_pct"`
	Errors            int        `json:"errors"`
	Putouts           int        `json:"putouts"`
	PassedBalls       int        `json:"passed_balls,omitempty"`
	CaughtStealingPct float64    `json:"caught_stealing_pct,omitempty"`
	Positions         []Position `json:"positions"`
}

// Validate checks the record invariants.
func (f *Fielder) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("player name cannot be empty")
	}
	if f.FieldingPct < 0.0 || f.FieldingPct > 1.0 {
		return fmt.Errorf("fielding percentage must be between 0.0 and 1.0, got %v", f.FieldingPct)
	}
	if f.Errors < 0 {
		return fmt.Errorf("errors must be non-negative, got %d", f.Errors)
	}
	if f.Putouts < 0 {
		return fmt.Errorf("putouts must be non-negative, got %d", f.Putouts)
	}
	if f.PassedBalls < 0 {
		return fmt.Errorf("passed balls must be non-negative, got %d", f.PassedBalls)
	}
	if f.CaughtStealingPct < 0.0 || f.CaughtStealingPct > 1.0 {
		return fmt.Errorf("caught stealing percentage must be between 0.0 and 1.0, got %v", f.CaughtStealingPct)
	}
	if len(f.Positions) == 0 {
		return fmt.Errorf("player must declare at least one eligible position")
	}
	for _, pos := range f.Positions {
		if _, err := ParsePosition(string(pos)); err != nil {
			return err
		}
	}
	return nil
}

// Eligible reports whether the player appeared at the given position.
func (f *Fielder) Eligible(pos Position) bool {
	for _, p := range f.Positions {
		if p == pos {
			return true
		}
	}
	return false
}

// CatcherEligible reports whether the catcher-only stats apply.
func (f *Fielder) CatcherEligible() bool {
	return f.Eligible(Catcher)
}
