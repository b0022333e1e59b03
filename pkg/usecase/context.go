package usecase

import (
	"fmt"
	"strings"

	"github.com/trialworks/protodraft/pkg/domain/model"
)

// AssembleContext folds retrieved examples into the prompt context
// shared by every section. At most limit examples contribute; the
// input order (descending similarity) is preserved. Examples without
// a similarity score still contribute text but are excluded from the
// average.
func AssembleContext(examples []model.RetrievedExample, limit int) model.ContextBlock {
	if limit > 0 && len(examples) > limit {
		examples = examples[:limit]
	}
	if len(examples) == 0 {
		return model.ContextBlock{}
	}

	var sb strings.Builder
	sb.WriteString("REFERENCE CONTEXT FROM SIMILAR PROTOCOLS:\n")

	var scoreSum float64
	var scoreCount int

	for i, ex := range examples {
		fmt.Fprintf(&sb, "\nSimilar Protocol %d", i+1)
		if ex.Similarity != nil {
			fmt.Fprintf(&sb, " (Similarity: %.1f%%)", *ex.Similarity*100)
			scoreSum += *ex.Similarity
			scoreCount++
		}
		sb.WriteString(":\n")
		fmt.Fprintf(&sb, "- Phase: %s\n", ex.Profile.Phase)
		fmt.Fprintf(&sb, "- Indication: %s\n", ex.Profile.Indication)
		if len(ex.Profile.Design) > 0 {
			fmt.Fprintf(&sb, "- Design: %s\n", strings.Join(ex.Profile.Design, ", "))
		}
		fmt.Fprintf(&sb, "- Sample Size: %d\n", ex.Profile.SampleSize)
		fmt.Fprintf(&sb, "- Duration: %d weeks\n", ex.Profile.DurationWeeks)
		if len(ex.Profile.TreatmentArms) > 0 {
			fmt.Fprintf(&sb, "- Treatment Arms: %s\n", strings.Join(ex.Profile.TreatmentArms, "; "))
		}
		for _, ep := range ex.Profile.Endpoints {
			fmt.Fprintf(&sb, "- Endpoint (%s): %s\n", ep.Type, ep.Name)
		}
		if ex.Summary != "" {
			fmt.Fprintf(&sb, "- Summary: %s\n", ex.Summary)
		}
	}

	block := model.ContextBlock{
		Text:         sb.String(),
		ExampleCount: len(examples),
	}
	if scoreCount > 0 {
		avg := scoreSum / float64(scoreCount)
		block.AverageSimilarity = &avg
	}
	return block
}
