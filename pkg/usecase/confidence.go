package usecase

import (
	"math"

	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/model/config"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// scoreConfidence combines the run's signals into a single score in
// [0, 1]. Each factor contributes its configured weight; factors that
// did not apply to the run (no retrieval scores, no sections) hand
// their weight to the remaining ones proportionally.
func scoreConfidence(cfg config.ScoreConfig, contextBlock *model.ContextBlock, sections []model.SectionResult, validation model.ValidationOutcome) float64 {
	type factor struct {
		weight float64
		value  float64
	}
	var factors []factor

	if contextBlock.AverageSimilarity != nil {
		value := math.Min(1.0, *contextBlock.AverageSimilarity+cfg.SimilarityOffset)
		factors = append(factors, factor{weight: cfg.RetrievalWeight, value: value})
	}

	if cfg.ExpectedSections > 0 {
		var generated int
		for _, s := range sections {
			if s.Source == types.SourceGenerated {
				generated++
			}
		}
		coverage := float64(generated) / float64(cfg.ExpectedSections)
		if coverage > 1.0 {
			coverage = 1.0
		}
		value := cfg.CoverageFloor + (1.0-cfg.CoverageFloor)*coverage
		factors = append(factors, factor{weight: cfg.CoverageWeight, value: value})
	}

	if len(sections) > 0 {
		var sum float64
		for _, s := range sections {
			sum += s.Confidence
		}
		factors = append(factors, factor{weight: cfg.SectionWeight, value: sum / float64(len(sections))})
	}

	factors = append(factors, factor{weight: cfg.ValidationWeight, value: validationFactor(cfg, validation.Status)})

	var weightSum, weighted float64
	for _, f := range factors {
		weightSum += f.weight
		weighted += f.weight * f.value
	}
	if weightSum == 0 {
		return 0
	}

	score := weighted / weightSum
	score = math.Max(0.0, math.Min(1.0, score))
	return math.Round(score*1000) / 1000
}

func validationFactor(cfg config.ScoreConfig, status types.ValidationStatus) float64 {
	switch status {
	case types.ValidationFailed:
		return cfg.ValidationFailed
	case types.ValidationWarnings:
		return cfg.ValidationWarnings
	default:
		return cfg.ValidationPassed
	}
}
