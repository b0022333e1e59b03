package types

import "fmt"

// SectionKind identifies one protocol section generated independently
// of the others.
type SectionKind string

const (
	SectionObjectives        SectionKind = "objectives"
	SectionInclusionCriteria SectionKind = "inclusion_criteria"
	SectionExclusionCriteria SectionKind = "exclusion_criteria"
	SectionStudyDesign       SectionKind = "study_design"
	SectionEndpoints         SectionKind = "endpoints"
	SectionVisitSchedule     SectionKind = "visit_schedule"
	SectionAssessments       SectionKind = "assessments"
)

// AllSectionKinds returns the section kinds in generation order.
// The order is also the order sections appear in the rendered protocol.
func AllSectionKinds() []SectionKind {
	return []SectionKind{
		SectionObjectives,
		SectionInclusionCriteria,
		SectionExclusionCriteria,
		SectionStudyDesign,
		SectionEndpoints,
		SectionVisitSchedule,
		SectionAssessments,
	}
}

// ExpectedSectionCount is the number of sections a complete protocol carries.
// The generation-coverage confidence factor is normalized against this count.
const ExpectedSectionCount = 7

// IsValid checks if the section kind is valid
func (k SectionKind) IsValid() bool {
	switch k {
	case SectionObjectives,
		SectionInclusionCriteria,
		SectionExclusionCriteria,
		SectionStudyDesign,
		SectionEndpoints,
		SectionVisitSchedule,
		SectionAssessments:
		return true
	default:
		return false
	}
}

// String returns the string representation of the section kind
func (k SectionKind) String() string {
	return string(k)
}

// Title returns a human-readable heading for the section
func (k SectionKind) Title() string {
	switch k {
	case SectionObjectives:
		return "Study Objectives"
	case SectionInclusionCriteria:
		return "Inclusion Criteria"
	case SectionExclusionCriteria:
		return "Exclusion Criteria"
	case SectionStudyDesign:
		return "Study Design"
	case SectionEndpoints:
		return "Endpoints"
	case SectionVisitSchedule:
		return "Visit Schedule"
	case SectionAssessments:
		return "Assessments"
	default:
		return string(k)
	}
}

// ParseSectionKind parses a string into a SectionKind
func ParseSectionKind(s string) (SectionKind, error) {
	kind := SectionKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid section kind: %s", s)
	}
	return kind, nil
}
