package config

// RuleConfig holds the thresholds applied by structural validation.
// Zero values fall back to the defaults, so a partial override file
// only needs to name the thresholds it changes.
type RuleConfig struct {
	// MinSampleSizeByPhase maps a phase name to its minimum enrollment
	MinSampleSizeByPhase map[string]int `toml:"min_sample_size_by_phase"`

	// MinDurationWeeks is the minimum acceptable study duration
	MinDurationWeeks int `toml:"min_duration_weeks"`

	// MinPrimaryEndpoints and MaxPrimaryEndpoints bound the count of
	// primary endpoints.
	MinPrimaryEndpoints int `toml:"min_primary_endpoints"`
	MaxPrimaryEndpoints int `toml:"max_primary_endpoints"`

	// MinInclusionCriteria and MinExclusionCriteria bound eligibility lists
	MinInclusionCriteria int `toml:"min_inclusion_criteria"`
	MinExclusionCriteria int `toml:"min_exclusion_criteria"`

	// MinTreatmentArms is the minimum number of study arms
	MinTreatmentArms int `toml:"min_treatment_arms"`

	// MinVisits is the minimum number of scheduled visits
	MinVisits int `toml:"min_visits"`

	// RequireBaselineVisit demands a week-zero visit in the schedule
	RequireBaselineVisit bool `toml:"require_baseline_visit"`
}

// DefaultRuleConfig returns the shipped validation thresholds
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		MinSampleSizeByPhase: map[string]int{
			"Phase 1": 20,
			"Phase 2": 40,
			"Phase 3": 100,
			"Phase 4": 100,
		},
		MinDurationWeeks:     4,
		MinPrimaryEndpoints:  1,
		MaxPrimaryEndpoints:  3,
		MinInclusionCriteria: 2,
		MinExclusionCriteria: 1,
		MinTreatmentArms:     2,
		MinVisits:            2,
		RequireBaselineVisit: true,
	}
}

// Merge overlays the non-zero fields of other onto c and returns the
// result. Used to apply a partial TOML override file.
func (c RuleConfig) Merge(other RuleConfig) RuleConfig {
	out := c
	if len(other.MinSampleSizeByPhase) > 0 {
		merged := map[string]int{}
		for k, v := range c.MinSampleSizeByPhase {
			merged[k] = v
		}
		for k, v := range other.MinSampleSizeByPhase {
			merged[k] = v
		}
		out.MinSampleSizeByPhase = merged
	}
	if other.MinDurationWeeks > 0 {
		out.MinDurationWeeks = other.MinDurationWeeks
	}
	if other.MinPrimaryEndpoints > 0 {
		out.MinPrimaryEndpoints = other.MinPrimaryEndpoints
	}
	if other.MaxPrimaryEndpoints > 0 {
		out.MaxPrimaryEndpoints = other.MaxPrimaryEndpoints
	}
	if other.MinInclusionCriteria > 0 {
		out.MinInclusionCriteria = other.MinInclusionCriteria
	}
	if other.MinExclusionCriteria > 0 {
		out.MinExclusionCriteria = other.MinExclusionCriteria
	}
	if other.MinTreatmentArms > 0 {
		out.MinTreatmentArms = other.MinTreatmentArms
	}
	if other.MinVisits > 0 {
		out.MinVisits = other.MinVisits
	}
	return out
}
