package roster

import "fmt"

// Pitcher is one validated opposing-pitcher record.
type Pitcher struct {
	// Name is optional; a nameless pitcher is keyed positionally by callers.
	Name string `json:"name,omitempty"`
	// ERA — earned run average, non-negative.
	ERA float64 `json:"era"`
	// WHIP — walks plus hits per inning pitched, non-negative.
	WHIP float64 `json:"whip"`
	// KRate — fraction of batters struck out, 0.0 to 1.0.
	KRate float64 `json:"k_rate"`
	// WalkRate — fraction of batters walked, 0.0 to 1.0.
	WalkRate float64 `json:"walk_rate"`
	// Hand — throwing side: L or R only.
	Hand Handedness `json:"handedness"`
}

// Validate checks the record invariants.
func (p *Pitcher) Validate() error {
	if p.ERA < 0 {
		return fmt.Errorf("ERA must be non-negative, got %v", p.ERA)
	}
	if p.WHIP < 0 {
		return fmt.Errorf("WHIP must be non-negative, got %v", p.WHIP)
	}
	if p.KRate < 0.0 || p.KRate > 1.0 {
		return fmt.Errorf("strikeout rate must be between 0.0 and 1.0, got %v", p.KRate)
	}
	if p.WalkRate < 0.0 || p.WalkRate > 1.0 {
		return fmt.Errorf("walk rate must be between 0.0 and 1.0, got %v", p.WalkRate)
	}
	if p.Hand != Left && p.Hand != Right {
		return fmt.Errorf("pitcher handedness must be 'L' or 'R', got %q", p.Hand)
	}
	return nil
}

// Unknown reports whether the record is the "no games pitched" sentinel:
// ERA, WHIP, strikeout rate and walk rate all zero. Rules that read rate
// stats must treat such a pitcher as neutral instead of exploitable.
func (p *Pitcher) Unknown() bool {
	return p.ERA == 0 && p.WHIP == 0 && p.KRate == 0 && p.WalkRate == 0
}
