package roster

import (
	"fmt"
	"strings"
)

// Handedness is a batting or throwing side: "L", "R", or "S" (switch).
// Pitchers never use "S".
type Handedness string

const (
	Left   Handedness = "L"
	Right  Handedness = "R"
	Switch Handedness = "S"
)

// ParseBatterHand normalizes a raw handedness value for a batter.
// Accepts "L", "R" and "S" in any case.
func ParseBatterHand(raw string) (Handedness, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "S":
		return Switch, nil
	}
	return "", fmt.Errorf("handedness must be 'L', 'R' or 'S', got %q", raw)
}

// ParsePitcherHand normalizes a raw handedness value for a pitcher.
// Accepts "L"/"R" as well as the scorebook forms "LHP"/"RHP".
func ParsePitcherHand(raw string) (Handedness, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "L", "LHP":
		return Left, nil
	case "R", "RHP":
		return Right, nil
	}
	return "", fmt.Errorf("pitcher handedness must be 'LHP' or 'RHP', got %q", raw)
}

// Batter is one validated offensive record. Immutable after creation:
// loaders validate on parse, the scoring boundary validates again before
// any rule runs.
type Batter struct {
	// Name is the unique subject key within one analysis run.
	Name string `json:"name"`
	// BA — batting average, 0.0 to 1.0.
	BA float64 `json:"ba"`
	// K — season strikeout count.
	K int `json:"k"`
	// OBP — on-base percentage, 0.0 to 1.0.
	OBP float64 `json:"obp"`
	// SLG — slugging percentage, 0.0 to 1.0.
	SLG float64 `json:"slg"`
	// HR — home runs.
	HR int `json:"hr"`
	// RBI — runs batted in.
	RBI int `json:"rbi"`
	// Hand — batting side: L, R or S.
	Hand Handedness `json:"handedness"`
}

// Validate checks the record invariants: non-empty name, rate stats in
// [0,1], counts non-negative, recognized handedness.
func (b *Batter) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("batter name cannot be empty")
	}
	if b.BA < 0.0 || b.BA > 1.0 {
		return fmt.Errorf("batting average must be between 0.0 and 1.0, got %v", b.BA)
	}
	if b.K < 0 {
		return fmt.Errorf("strikeouts must be non-negative, got %d", b.K)
	}
	if b.OBP < 0.0 || b.OBP > 1.0 {
		return fmt.Errorf("on-base percentage must be between 0.0 and 1.0, got %v", b.OBP)
	}
	if b.SLG < 0.0 || b.SLG > 1.0 {
		return fmt.Errorf("slugging percentage must be between 0.0 and 1.0, got %v", b.SLG)
	}
	if b.HR < 0 {
		return fmt.Errorf("home runs must be non-negative, got %d", b.HR)
	}
	if b.RBI < 0 {
		return fmt.Errorf("runs batted in must be non-negative, got %d", b.RBI)
	}
	if b.Hand != Left && b.Hand != Right && b.Hand != Switch {
		return fmt.Errorf("handedness must be 'L', 'R' or 'S', got %q", b.Hand)
	}
	return nil
}

// SwitchHitter reports whether the batter bats from both sides.
func (b *Batter) SwitchHitter() bool {
	return b.Hand == Switch
}
