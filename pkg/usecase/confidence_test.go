package usecase

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/model/config"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

func generatedSections(n int, confidence float64) []model.SectionResult {
	return sectionsFrom(n, types.SourceGenerated, confidence)
}

func fallbackSections(n int) []model.SectionResult {
	return sectionsFrom(n, types.SourceFallbackTemplate, 1.0)
}

func sectionsFrom(n int, source types.SourceTag, confidence float64) []model.SectionResult {
	kinds := types.AllSectionKinds()
	sections := make([]model.SectionResult, 0, n)
	for i := 0; i < n; i++ {
		sections = append(sections, model.SectionResult{
			Kind:       kinds[i%len(kinds)],
			Content:    "{}",
			Source:     source,
			Confidence: confidence,
		})
	}
	return sections
}

func TestScoreConfidence(t *testing.T) {
	cfg := config.DefaultScoreConfig()

	t.Run("all factors present", func(t *testing.T) {
		avg := 0.75
		block := &model.ContextBlock{ExampleCount: 3, AverageSimilarity: &avg}
		sections := generatedSections(7, 0.95)
		validation := model.ValidationOutcome{Status: types.ValidationPassed}

		// retrieval 0.95, coverage 1.0, sections 0.95, validation 1.0
		score := scoreConfidence(cfg, block, sections, validation)
		gt.Value(t, score).Equal(0.975)
	})

	t.Run("missing retrieval redistributes weight", func(t *testing.T) {
		block := &model.ContextBlock{}
		sections := generatedSections(7, 0.95)
		validation := model.ValidationOutcome{Status: types.ValidationPassed}

		score := scoreConfidence(cfg, block, sections, validation)
		gt.Value(t, score).Equal(0.992)
	})

	t.Run("validation status lowers the score", func(t *testing.T) {
		avg := 0.75
		block := &model.ContextBlock{ExampleCount: 3, AverageSimilarity: &avg}
		sections := generatedSections(7, 0.95)

		warned := scoreConfidence(cfg, block, sections, model.ValidationOutcome{Status: types.ValidationWarnings})
		failed := scoreConfidence(cfg, block, sections, model.ValidationOutcome{Status: types.ValidationFailed})

		gt.Value(t, warned).Equal(0.965)
		gt.Value(t, failed).Equal(0.945)
		gt.Bool(t, failed < warned).True()
	})

	t.Run("no sections scores coverage floor", func(t *testing.T) {
		block := &model.ContextBlock{}
		validation := model.ValidationOutcome{Status: types.ValidationPassed}

		// coverage 0.85 at weight 0.4, validation 1.0 at weight 0.1
		score := scoreConfidence(cfg, block, nil, validation)
		gt.Value(t, score).Equal(0.88)
	})

	t.Run("similarity offset saturates at one", func(t *testing.T) {
		avg := 0.95
		block := &model.ContextBlock{ExampleCount: 1, AverageSimilarity: &avg}
		sections := generatedSections(7, 1.0)
		validation := model.ValidationOutcome{Status: types.ValidationPassed}

		score := scoreConfidence(cfg, block, sections, validation)
		gt.Value(t, score).Equal(1.0)
	})

	t.Run("moderate retrieval with full generation", func(t *testing.T) {
		avg := 0.61
		block := &model.ContextBlock{ExampleCount: 3, AverageSimilarity: &avg}
		sections := generatedSections(7, 0.95)
		validation := model.ValidationOutcome{Status: types.ValidationPassed}

		// retrieval 0.81, coverage 1.0, sections 0.95, validation 1.0
		score := scoreConfidence(cfg, block, sections, validation)
		gt.Value(t, score).Equal(0.919)
	})

	t.Run("all templates without retrieval", func(t *testing.T) {
		block := &model.ContextBlock{}
		sections := fallbackSections(7)
		validation := model.ValidationOutcome{Status: types.ValidationPassed}

		// coverage floors at 0.85; sections and validation sit at 1.0;
		// renormalized over weights 0.4, 0.1, 0.1
		score := scoreConfidence(cfg, block, sections, validation)
		gt.Value(t, score).Equal(0.9)
	})

	t.Run("fallback sections lower coverage", func(t *testing.T) {
		avg := 0.75
		block := &model.ContextBlock{ExampleCount: 3, AverageSimilarity: &avg}
		validation := model.ValidationOutcome{Status: types.ValidationPassed}

		allGenerated := scoreConfidence(cfg, block, generatedSections(7, 0.95), validation)
		mixed := scoreConfidence(cfg, block, append(generatedSections(4, 0.95), fallbackSections(3)...), validation)
		allFallback := scoreConfidence(cfg, block, fallbackSections(7), validation)

		gt.Value(t, mixed).Equal(0.951)
		gt.Value(t, allFallback).Equal(0.92)
		gt.Bool(t, allFallback < mixed && mixed < allGenerated).True()
	})

	t.Run("higher similarity never lowers the score", func(t *testing.T) {
		sections := generatedSections(7, 0.95)
		validation := model.ValidationOutcome{Status: types.ValidationPassed}

		var prev float64
		for _, avg := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			avg := avg
			block := &model.ContextBlock{ExampleCount: 3, AverageSimilarity: &avg}
			score := scoreConfidence(cfg, block, sections, validation)
			gt.Bool(t, score >= prev).True()
			prev = score
		}
	})

	t.Run("zero weights yield zero", func(t *testing.T) {
		score := scoreConfidence(config.ScoreConfig{}, &model.ContextBlock{}, nil, model.ValidationOutcome{})
		gt.Value(t, score).Equal(0.0)
	})
}
