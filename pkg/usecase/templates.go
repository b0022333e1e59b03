package usecase

import (
	"fmt"
	"strings"

	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// Fallback templates, keyed by section kind and phase. They are the
// last tier of the ladder and must succeed for any valid profile.

type templateFunc func(profile *model.TrialProfile) string

// phaseAny is the lookup key for a kind's phase-independent template,
// used when no entry matches the profile's phase.
const phaseAny = types.Phase("")

var fallbackTemplates = map[types.SectionKind]map[types.Phase]templateFunc{
	types.SectionObjectives: {
		types.Phase1: objectivesTemplate("To evaluate the safety and tolerability of the study intervention in patients with %s.", "To characterize the pharmacokinetic profile of the study intervention."),
		types.Phase2: objectivesTemplate("To evaluate the preliminary efficacy of the study intervention in patients with %s.", "To assess the safety and tolerability of the study intervention."),
		types.Phase3: objectivesTemplate("To confirm the efficacy of the study intervention in patients with %s.", "To assess the long-term safety and tolerability of the study intervention."),
		types.Phase4: objectivesTemplate("To evaluate the real-world effectiveness of the study intervention in patients with %s.", "To monitor the long-term safety profile of the study intervention in routine clinical practice."),
		phaseAny:     objectivesTemplate("To evaluate the efficacy of the study intervention in patients with %s.", "To assess the safety and tolerability of the study intervention."),
	},
	types.SectionInclusionCriteria: {
		phaseAny: func(profile *model.TrialProfile) string {
			return mustMarshalJSON(fallbackInclusionCriteria(profile))
		},
	},
	types.SectionExclusionCriteria: {
		phaseAny: func(profile *model.TrialProfile) string {
			return mustMarshalJSON(fallbackExclusionCriteria())
		},
	},
	types.SectionStudyDesign: {
		phaseAny: fallbackStudyDesign,
	},
	types.SectionEndpoints: {
		phaseAny: func(profile *model.TrialProfile) string {
			return mustMarshalJSON(fallbackEndpoints(profile))
		},
	},
	types.SectionVisitSchedule: {
		phaseAny: func(profile *model.TrialProfile) string {
			return mustMarshalJSON(fallbackVisitSchedule(profile))
		},
	},
	types.SectionAssessments: {
		phaseAny: func(profile *model.TrialProfile) string {
			return mustMarshalJSON(fallbackAssessments(profile))
		},
	},
}

// fallbackSection renders the template tier for a kind, preferring a
// phase-specific entry over the kind's default.
func fallbackSection(kind types.SectionKind, profile *model.TrialProfile) string {
	byPhase, ok := fallbackTemplates[kind]
	if !ok {
		return ""
	}
	if tmpl, ok := byPhase[profile.Phase]; ok {
		return tmpl(profile)
	}
	if tmpl, ok := byPhase[phaseAny]; ok {
		return tmpl(profile)
	}
	return ""
}

func objectivesTemplate(primaryFmt, secondary string) templateFunc {
	return func(profile *model.TrialProfile) string {
		return mustMarshalJSON(objectivesPayload{
			Primary:   fmt.Sprintf(primaryFmt, profile.Indication),
			Secondary: []string{secondary},
		})
	}
}

func fallbackInclusionCriteria(profile *model.TrialProfile) []string {
	ageRange := profile.AgeRange
	if ageRange == "" {
		ageRange = "18-75"
	}
	return []string{
		fmt.Sprintf("Adults aged %s years with confirmed %s", ageRange, profile.Indication),
		"Willing and able to provide informed consent",
		"Adequate organ function as defined by laboratory values",
	}
}

func fallbackExclusionCriteria() []string {
	return []string{
		"Pregnant or breastfeeding women",
		"Known hypersensitivity to study drug or excipients",
		"Severe comorbid conditions that would interfere with study participation",
	}
}

func fallbackStudyDesign(profile *model.TrialProfile) string {
	design := strings.Join(profile.Design, ", ")
	if design == "" {
		design = "interventional"
	}
	arms := profile.TreatmentArms
	if len(arms) == 0 {
		arms = []string{"Intervention", "Control"}
	}
	return fmt.Sprintf(
		"This is a %s %s study in patients with %s. Approximately %d participants will be enrolled across %d treatment arms (%s) for a total study duration of %d weeks.",
		profile.Phase, design, profile.Indication, profile.SampleSize, len(arms), strings.Join(arms, "; "), profile.DurationWeeks)
}

func fallbackEndpoints(profile *model.TrialProfile) []model.Endpoint {
	if len(profile.Endpoints) > 0 {
		return profile.Endpoints
	}
	return []model.Endpoint{
		{
			Type:        types.EndpointPrimary,
			Name:        fmt.Sprintf("Clinical response in %s", profile.Indication),
			Description: "Proportion of participants achieving the protocol-defined response criteria",
			Timeframe:   fmt.Sprintf("Week %d", profile.DurationWeeks),
		},
		{
			Type:        types.EndpointSecondary,
			Name:        "Incidence of adverse events",
			Description: "Safety and tolerability of the study intervention",
			Timeframe:   "Throughout study",
		},
	}
}

// fallbackVisitSchedule builds a deterministic schedule: screening,
// baseline, follow-ups every 4 weeks, end of study.
func fallbackVisitSchedule(profile *model.TrialProfile) []model.Visit {
	visits := []model.Visit{
		{ID: "V0", Name: "Screening", Week: -1, Window: "+/-3 days"},
		{ID: "V1", Name: "Baseline/Day 1", Week: 0, Window: "Day 1"},
	}

	num := 2
	for week := 4; week <= profile.DurationWeeks; week += 4 {
		visits = append(visits, model.Visit{
			ID:     fmt.Sprintf("V%d", num),
			Name:   fmt.Sprintf("Week %d", week),
			Week:   week,
			Window: "+/-7 days",
		})
		num++
	}

	last := visits[len(visits)-1]
	if last.Week != profile.DurationWeeks {
		visits = append(visits, model.Visit{
			ID:     fmt.Sprintf("V%d", num),
			Name:   fmt.Sprintf("End of Study (Week %d)", profile.DurationWeeks),
			Week:   profile.DurationWeeks,
			Window: "+/-7 days",
		})
	}
	return visits
}

func fallbackAssessments(profile *model.TrialProfile) []model.Assessment {
	assessments := []model.Assessment{
		{ID: "DEMO", Name: "Demographics", Description: "Participant demographics and baseline characteristics", Timing: "Screening"},
		{ID: "VITAL", Name: "Vital Signs", Description: "Blood pressure, heart rate, temperature, respiratory rate", Timing: "All visits"},
		{ID: "AE", Name: "Adverse Events", Description: "Assessment of adverse events", Timing: "All visits"},
		{ID: "LAB", Name: "Laboratory Tests", Description: "Hematology, chemistry, urinalysis", Timing: "Screening, Week 4, Week 12, End of Study"},
	}

	for _, ep := range profile.Endpoints {
		if strings.Contains(strings.ToLower(ep.Name), "score") {
			assessments = append(assessments, model.Assessment{
				ID:          fmt.Sprintf("SCORE_%d", len(assessments)),
				Name:        "Clinical Score Assessment",
				Description: ep.Name,
				Timing:      "Baseline, all follow-up visits",
			})
		}
	}
	return assessments
}
