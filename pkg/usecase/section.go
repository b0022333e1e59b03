package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"github.com/trialworks/protodraft/pkg/utils/logging"
)

// objectivesPayload is the structured content of the objectives section
type objectivesPayload struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary"`
}

// generateSection runs the fallback ladder for one section kind. It
// always yields a result: generator output first, the caller's own
// input second, and a deterministic template last.
func (uc *UseCases) generateSection(ctx context.Context, kind types.SectionKind, profile *model.TrialProfile, contextBlock *model.ContextBlock) model.SectionResult {
	logger := logging.From(ctx)

	if uc.genCfg.UseGeneration && uc.generator != nil {
		content, err := uc.generateWithLLM(ctx, kind, profile, contextBlock)
		if err == nil {
			return model.SectionResult{
				Kind:       kind,
				Content:    content,
				Source:     types.SourceGenerated,
				Confidence: uc.scoreCfg.GeneratedConfidence,
			}
		}
		logger.Warn("section generation failed, falling back",
			"section", kind, "error", err)
	}

	if content, ok := copiedInput(kind, profile); ok {
		return model.SectionResult{
			Kind:       kind,
			Content:    content,
			Source:     types.SourceCopiedInput,
			Confidence: 1.0,
		}
	}

	return model.SectionResult{
		Kind:       kind,
		Content:    fallbackSection(kind, profile),
		Source:     types.SourceFallbackTemplate,
		Confidence: 1.0,
	}
}

// generateWithLLM prompts the generator for one section and checks
// the response parses into the section's expected shape. A malformed
// response counts as a generation failure.
func (uc *UseCases) generateWithLLM(ctx context.Context, kind types.SectionKind, profile *model.TrialProfile, contextBlock *model.ContextBlock) (string, error) {
	system := systemPrompt(kind, profile)
	user := userPrompt(kind, profile, contextBlock)

	raw, err := uc.generator.Complete(ctx, system, user)
	if err != nil {
		return "", err
	}

	return normalizeSectionContent(kind, raw)
}

// copiedInput returns the caller's own content for the kind, when the
// profile carries any.
func copiedInput(kind types.SectionKind, profile *model.TrialProfile) (string, bool) {
	switch kind {
	case types.SectionInclusionCriteria:
		if len(profile.InclusionCriteria) > 0 {
			return mustMarshalJSON(profile.InclusionCriteria), true
		}
	case types.SectionExclusionCriteria:
		if len(profile.ExclusionCriteria) > 0 {
			return mustMarshalJSON(profile.ExclusionCriteria), true
		}
	case types.SectionStudyDesign:
		if len(profile.Design) > 0 {
			return strings.Join(profile.Design, ", "), true
		}
	case types.SectionEndpoints:
		if len(profile.Endpoints) > 0 {
			return mustMarshalJSON(profile.Endpoints), true
		}
	}
	return "", false
}

func systemPrompt(kind types.SectionKind, profile *model.TrialProfile) string {
	return fmt.Sprintf(
		"You are an expert clinical trial protocol writer specializing in %s. Write professional protocol content specific to this indication, not generic boilerplate.",
		profile.Indication)
}

func userPrompt(kind types.SectionKind, profile *model.TrialProfile, contextBlock *model.ContextBlock) string {
	var sb strings.Builder

	sb.WriteString("Trial Specification:\n")
	fmt.Fprintf(&sb, "- Title: %s\n", profile.Title)
	fmt.Fprintf(&sb, "- Phase: %s\n", profile.Phase)
	fmt.Fprintf(&sb, "- Indication: %s\n", profile.Indication)
	if len(profile.Design) > 0 {
		fmt.Fprintf(&sb, "- Design: %s\n", strings.Join(profile.Design, ", "))
	}
	fmt.Fprintf(&sb, "- Sample Size: %d\n", profile.SampleSize)
	fmt.Fprintf(&sb, "- Duration: %d weeks\n", profile.DurationWeeks)
	if len(profile.TreatmentArms) > 0 {
		fmt.Fprintf(&sb, "- Treatment Arms: %s\n", strings.Join(profile.TreatmentArms, "; "))
	}
	if profile.AgeRange != "" {
		fmt.Fprintf(&sb, "- Age Range: %s\n", profile.AgeRange)
	}
	for _, ep := range profile.Endpoints {
		fmt.Fprintf(&sb, "- Endpoint (%s): %s\n", ep.Type, ep.Name)
	}

	if !contextBlock.Empty() {
		sb.WriteString("\n")
		sb.WriteString(contextBlock.Text)
	}

	if profile.Instructions != "" {
		sb.WriteString("\n## ADDITIONAL USER INSTRUCTIONS:\n")
		sb.WriteString(profile.Instructions)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sectionTask(kind, profile))
	return sb.String()
}

func sectionTask(kind types.SectionKind, profile *model.TrialProfile) string {
	switch kind {
	case types.SectionObjectives:
		return fmt.Sprintf(`Generate study objectives for this %s trial.
Return ONLY a JSON object with a "primary" string and a "secondary" array of strings.
Example: {"primary": "To evaluate ...", "secondary": ["To assess ..."]}`, profile.Indication)
	case types.SectionInclusionCriteria:
		return fmt.Sprintf(`Generate inclusion criteria appropriate for %s trials.
Return ONLY a JSON array of criterion strings, 4 to 8 entries.`, profile.Indication)
	case types.SectionExclusionCriteria:
		return fmt.Sprintf(`Generate exclusion criteria appropriate for %s trials.
Return ONLY a JSON array of criterion strings, 3 to 6 entries.`, profile.Indication)
	case types.SectionStudyDesign:
		return fmt.Sprintf(`Generate a detailed study design description SPECIFIC to %s, covering randomization, blinding, treatment groups, and indication-specific assessment approaches.
Generate 2-4 sentences. Return ONLY the design description, no additional commentary.`, profile.Indication)
	case types.SectionEndpoints:
		return `Refine the trial endpoints with clear, specific descriptions of what is measured, how it is assessed, and its clinical relevance.
Return ONLY a JSON array of endpoint objects with keys: type, name, description, timeframe.`
	case types.SectionVisitSchedule:
		return fmt.Sprintf(`Generate a visit schedule with timing appropriate for %s studies, from Screening through Week %d.
Return ONLY a JSON array of visit objects with keys: id, name, week, window.
Example: [{"id": "V0", "name": "Screening", "week": -1, "window": "+/-3 days"}]`, profile.Indication, profile.DurationWeeks)
	case types.SectionAssessments:
		return fmt.Sprintf(`Generate clinical assessments for %s trials: standard assessments (demographics, vital signs, adverse events, labs) plus indication-specific ones.
Return ONLY a JSON array of assessment objects with keys: id, name, description, timing.`, profile.Indication)
	default:
		return ""
	}
}

// normalizeSectionContent validates generator output against the
// section's expected shape and strips surrounding prose.
func normalizeSectionContent(kind types.SectionKind, raw string) (string, error) {
	switch kind {
	case types.SectionObjectives:
		extracted, err := extractJSON(raw, objectPattern)
		if err != nil {
			return "", err
		}
		var payload objectivesPayload
		if err := json.Unmarshal([]byte(extracted), &payload); err != nil {
			return "", types.ErrGenerationUnavailable
		}
		if payload.Primary == "" {
			return "", types.ErrGenerationUnavailable
		}
		return extracted, nil

	case types.SectionInclusionCriteria, types.SectionExclusionCriteria:
		extracted, err := extractJSON(raw, arrayPattern)
		if err != nil {
			return "", err
		}
		var items []string
		if err := json.Unmarshal([]byte(extracted), &items); err != nil || len(items) == 0 {
			return "", types.ErrGenerationUnavailable
		}
		return extracted, nil

	case types.SectionEndpoints:
		extracted, err := extractJSON(raw, arrayPattern)
		if err != nil {
			return "", err
		}
		var items []model.Endpoint
		if err := json.Unmarshal([]byte(extracted), &items); err != nil || len(items) == 0 {
			return "", types.ErrGenerationUnavailable
		}
		return extracted, nil

	case types.SectionVisitSchedule:
		extracted, err := extractJSON(raw, arrayPattern)
		if err != nil {
			return "", err
		}
		var items []model.Visit
		if err := json.Unmarshal([]byte(extracted), &items); err != nil || len(items) == 0 {
			return "", types.ErrGenerationUnavailable
		}
		return extracted, nil

	case types.SectionAssessments:
		extracted, err := extractJSON(raw, arrayPattern)
		if err != nil {
			return "", err
		}
		var items []model.Assessment
		if err := json.Unmarshal([]byte(extracted), &items); err != nil || len(items) == 0 {
			return "", types.ErrGenerationUnavailable
		}
		return extracted, nil

	default:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return "", types.ErrGenerationUnavailable
		}
		return trimmed, nil
	}
}

var (
	arrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
	objectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

func extractJSON(raw string, pattern *regexp.Regexp) (string, error) {
	match := pattern.FindString(raw)
	if match == "" {
		return "", types.ErrGenerationUnavailable
	}
	return match, nil
}

func mustMarshalJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}
