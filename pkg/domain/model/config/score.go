package config

// ScoreConfig holds the weights and shaping constants of the overall
// confidence score. All values are overridable through configuration;
// the defaults reproduce the shipped scoring behavior.
type ScoreConfig struct {
	// Factor weights. They sum to 1.0 by default; when a factor is
	// absent for a run its weight is redistributed proportionally
	// across the remaining factors.
	RetrievalWeight  float64 `toml:"retrieval_weight"`
	CoverageWeight   float64 `toml:"coverage_weight"`
	SectionWeight    float64 `toml:"section_weight"`
	ValidationWeight float64 `toml:"validation_weight"`

	// SimilarityOffset lifts the average retrieval similarity before
	// clamping, so strong matches saturate the factor.
	SimilarityOffset float64 `toml:"similarity_offset"`

	// CoverageFloor is the factor value at zero coverage; full
	// coverage scores 1.0 with linear interpolation between.
	CoverageFloor float64 `toml:"coverage_floor"`

	// ExpectedSections is the section count full coverage is measured
	// against.
	ExpectedSections int `toml:"expected_sections"`

	// Validation factor values per status
	ValidationPassed   float64 `toml:"validation_passed"`
	ValidationWarnings float64 `toml:"validation_warnings"`
	ValidationFailed   float64 `toml:"validation_failed"`

	// GeneratedConfidence is the per-section confidence assigned to
	// generator-produced content. Copied input and templates score 1.0
	// because their content is exact.
	GeneratedConfidence float64 `toml:"generated_confidence"`
}

// DefaultScoreConfig returns the shipped scoring constants
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		RetrievalWeight:     0.4,
		CoverageWeight:      0.4,
		SectionWeight:       0.1,
		ValidationWeight:    0.1,
		SimilarityOffset:    0.2,
		CoverageFloor:       0.85,
		ExpectedSections:    7,
		ValidationPassed:    1.0,
		ValidationWarnings:  0.9,
		ValidationFailed:    0.7,
		GeneratedConfidence: 0.95,
	}
}
