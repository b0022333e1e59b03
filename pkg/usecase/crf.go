package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/utils/logging"
)

// buildCRF derives the case report form schema from the protocol
// assessments. Standard forms (demographics, vitals, adverse events)
// are always present; indication-specific assessments get their own
// forms with generator-designed fields when a generator is available.
func (uc *UseCases) buildCRF(ctx context.Context, profile *model.TrialProfile, protocol *model.Protocol) model.CRFSchema {
	forms := standardForms(profile)

	for _, assessment := range protocol.Assessments {
		if isStandardAssessment(assessment.ID) {
			continue
		}
		form := uc.assessmentForm(ctx, profile, assessment)
		if form != nil {
			forms = append(forms, *form)
		}
	}

	return model.CRFSchema{Forms: forms}
}

// Standard assessments are already covered by the fixed forms.
func isStandardAssessment(id string) bool {
	switch id {
	case "DEMO", "VITAL", "AE", "LAB":
		return true
	}
	return strings.HasPrefix(id, "SCORE")
}

// assessmentForm asks the generator to design capture fields for one
// indication-specific assessment. Without a generator, or when the
// response does not parse, the assessment gets no dedicated form.
func (uc *UseCases) assessmentForm(ctx context.Context, profile *model.TrialProfile, assessment model.Assessment) *model.CRFForm {
	if !uc.genCfg.UseGeneration || uc.generator == nil {
		return nil
	}
	logger := logging.From(ctx)

	system := fmt.Sprintf(
		"You are an expert in clinical trial data collection and case report form design for %s.",
		profile.Indication)

	var sb strings.Builder
	sb.WriteString("Generate CRF fields for the following assessment:\n")
	fmt.Fprintf(&sb, "- Assessment: %s\n", assessment.Name)
	fmt.Fprintf(&sb, "- Description: %s\n", assessment.Description)
	fmt.Fprintf(&sb, "- Indication: %s\n", profile.Indication)
	if profile.Instructions != "" {
		sb.WriteString("\n## ADDITIONAL USER INSTRUCTIONS:\n")
		sb.WriteString(profile.Instructions)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, `
Create 3-6 fields appropriate for capturing this assessment data in %s.
Return ONLY a JSON array of field objects with keys: name, label, type (text/number/date/dropdown/checkbox), unit, options, required.
Example: [{"name": "lesion_size", "label": "Lesion Size", "type": "number", "unit": "mm", "required": true}]`,
		profile.Indication)

	raw, err := uc.generator.Complete(ctx, system, sb.String())
	if err != nil {
		logger.Warn("CRF field generation failed", "assessment", assessment.Name, "error", err)
		return nil
	}

	extracted, err := extractJSON(raw, arrayPattern)
	if err != nil {
		logger.Warn("CRF field response had no JSON array", "assessment", assessment.Name)
		return nil
	}

	var fields []model.CRFField
	if err := json.Unmarshal([]byte(extracted), &fields); err != nil || len(fields) == 0 {
		logger.Warn("CRF field response did not parse", "assessment", assessment.Name, "error", err)
		return nil
	}

	return &model.CRFForm{
		ID:     assessment.ID,
		Name:   assessment.Name,
		Fields: fields,
	}
}

// standardForms returns the fixed CDASH-style forms every study
// collects, plus an efficacy score form when any endpoint is score
// based.
func standardForms(profile *model.TrialProfile) []model.CRFForm {
	forms := []model.CRFForm{
		{
			ID:   "DM",
			Name: "Demographics",
			Fields: []model.CRFField{
				{Name: "subject_id", Label: "Subject ID", Type: "text", Required: true},
				{Name: "age", Label: "Age (years)", Type: "number", Unit: "years", Required: true},
				{Name: "sex", Label: "Sex", Type: "dropdown", Options: []string{"Male", "Female", "Other"}, Required: true},
				{Name: "race", Label: "Race", Type: "dropdown", Required: true},
			},
		},
		{
			ID:   "VS",
			Name: "Vital Signs",
			Fields: []model.CRFField{
				{Name: "assessment_date", Label: "Assessment Date", Type: "date", Required: true},
				{Name: "systolic_bp", Label: "Systolic Blood Pressure", Type: "number", Unit: "mmHg", Required: true},
				{Name: "diastolic_bp", Label: "Diastolic Blood Pressure", Type: "number", Unit: "mmHg", Required: true},
				{Name: "heart_rate", Label: "Heart Rate", Type: "number", Unit: "bpm", Required: true},
				{Name: "temperature", Label: "Temperature", Type: "number", Unit: "C", Required: true},
			},
		},
		{
			ID:   "AE",
			Name: "Adverse Events",
			Fields: []model.CRFField{
				{Name: "ae_term", Label: "Adverse Event Term", Type: "text", Required: true},
				{Name: "ae_start_date", Label: "Start Date", Type: "date", Required: true},
				{Name: "severity", Label: "Severity", Type: "dropdown", Options: []string{"Mild", "Moderate", "Severe"}, Required: true},
				{Name: "relationship", Label: "Relationship to Study Drug", Type: "dropdown", Options: []string{"Not Related", "Unlikely", "Possible", "Probable", "Definite"}, Required: true},
			},
		},
	}

	for _, ep := range profile.Endpoints {
		if strings.Contains(strings.ToLower(ep.Name), "score") {
			forms = append(forms, model.CRFForm{
				ID:   "EFF",
				Name: "Efficacy Assessment",
				Fields: []model.CRFField{
					{Name: "assessment_date", Label: "Assessment Date", Type: "date", Required: true},
					{Name: "total_score", Label: "Total Score", Type: "number", Required: true},
				},
			})
			break
		}
	}

	return forms
}
