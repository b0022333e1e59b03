package types

import "fmt"

// Phase represents the clinical trial phase
type Phase string

const (
	Phase1 Phase = "Phase 1"
	Phase2 Phase = "Phase 2"
	Phase3 Phase = "Phase 3"
	Phase4 Phase = "Phase 4"
)

// AllPhases returns all valid trial phases
func AllPhases() []Phase {
	return []Phase{
		Phase1,
		Phase2,
		Phase3,
		Phase4,
	}
}

// IsValid checks if the phase is valid
func (p Phase) IsValid() bool {
	switch p {
	case Phase1, Phase2, Phase3, Phase4:
		return true
	default:
		return false
	}
}

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// ParsePhase parses a string into a Phase
func ParsePhase(s string) (Phase, error) {
	phase := Phase(s)
	if !phase.IsValid() {
		return "", fmt.Errorf("invalid trial phase: %s", s)
	}
	return phase, nil
}
