package rules

import (
	"fmt"

	"github.com/trialworks/protodraft/pkg/domain/interfaces"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/model/config"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

const (
	severityError   = "error"
	severityWarning = "warning"
)

// Validator applies structural rules to a generated protocol. It
// reports findings; it never rejects a protocol outright. Only the
// aggregate status feeds the confidence score.
type Validator struct {
	cfg config.RuleConfig
}

var _ interfaces.StructuralValidator = &Validator{}

// New creates a validator with the given thresholds
func New(cfg config.RuleConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Default creates a validator with the shipped thresholds
func Default() *Validator {
	return New(config.DefaultRuleConfig())
}

// Validate checks the profile and protocol against the configured
// rules and aggregates findings into a single outcome.
func (v *Validator) Validate(profile *model.TrialProfile, protocol *model.Protocol) model.ValidationOutcome {
	var messages []model.ValidationMessage

	messages = append(messages, v.checkEnrollment(profile)...)
	messages = append(messages, v.checkEndpoints(profile)...)
	messages = append(messages, v.checkEligibility(profile)...)
	messages = append(messages, v.checkArms(profile)...)
	messages = append(messages, v.checkVisits(protocol)...)

	status := types.ValidationPassed
	for _, m := range messages {
		if m.Severity == severityError {
			status = types.ValidationFailed
			break
		}
		status = types.ValidationWarnings
	}

	return model.ValidationOutcome{
		Status:   status,
		Messages: messages,
	}
}

func (v *Validator) checkEnrollment(profile *model.TrialProfile) []model.ValidationMessage {
	var messages []model.ValidationMessage

	minSample, ok := v.cfg.MinSampleSizeByPhase[profile.Phase.String()]
	if !ok {
		minSample = 20
	}
	if profile.SampleSize < minSample {
		messages = append(messages, model.ValidationMessage{
			Rule:     "sample_size_minimum",
			Severity: severityWarning,
			Message:  fmt.Sprintf("Sample size (%d) is below recommended minimum for %s (%d)", profile.SampleSize, profile.Phase, minSample),
		})
	}

	if profile.DurationWeeks < v.cfg.MinDurationWeeks {
		messages = append(messages, model.ValidationMessage{
			Rule:     "duration_minimum",
			Severity: severityWarning,
			Message:  fmt.Sprintf("Study duration (%d weeks) is below minimum recommended duration (%d weeks)", profile.DurationWeeks, v.cfg.MinDurationWeeks),
		})
	}

	return messages
}

func (v *Validator) checkEndpoints(profile *model.TrialProfile) []model.ValidationMessage {
	var messages []model.ValidationMessage

	primary := profile.PrimaryEndpoints()
	if len(primary) < v.cfg.MinPrimaryEndpoints {
		messages = append(messages, model.ValidationMessage{
			Rule:     "endpoint_requirements",
			Severity: severityError,
			Message:  "At least one primary endpoint is required",
		})
	} else if len(primary) > v.cfg.MaxPrimaryEndpoints {
		messages = append(messages, model.ValidationMessage{
			Rule:     "endpoint_requirements",
			Severity: severityWarning,
			Message:  fmt.Sprintf("Number of primary endpoints (%d) exceeds recommended maximum (%d). Consider secondary endpoints for some.", len(primary), v.cfg.MaxPrimaryEndpoints),
		})
	}

	return messages
}

func (v *Validator) checkEligibility(profile *model.TrialProfile) []model.ValidationMessage {
	var messages []model.ValidationMessage

	if len(profile.InclusionCriteria) < v.cfg.MinInclusionCriteria {
		messages = append(messages, model.ValidationMessage{
			Rule:     "eligibility_criteria",
			Severity: severityWarning,
			Message:  fmt.Sprintf("Only %d inclusion criteria provided. Consider adding more detailed criteria.", len(profile.InclusionCriteria)),
		})
	}
	if len(profile.ExclusionCriteria) < v.cfg.MinExclusionCriteria {
		messages = append(messages, model.ValidationMessage{
			Rule:     "eligibility_criteria",
			Severity: severityWarning,
			Message:  fmt.Sprintf("Only %d exclusion criteria provided. Consider adding more detailed criteria.", len(profile.ExclusionCriteria)),
		})
	}

	return messages
}

func (v *Validator) checkArms(profile *model.TrialProfile) []model.ValidationMessage {
	if len(profile.TreatmentArms) == 0 {
		return nil
	}
	if len(profile.TreatmentArms) < v.cfg.MinTreatmentArms {
		return []model.ValidationMessage{{
			Rule:     "treatment_arms",
			Severity: severityWarning,
			Message:  "Only one treatment arm specified. Consider adding a control/comparator arm.",
		}}
	}
	return nil
}

func (v *Validator) checkVisits(protocol *model.Protocol) []model.ValidationMessage {
	var messages []model.ValidationMessage

	if len(protocol.VisitSchedule) < v.cfg.MinVisits {
		messages = append(messages, model.ValidationMessage{
			Rule:     "visit_schedule",
			Severity: severityError,
			Message:  fmt.Sprintf("Visit schedule must have at least %d visits (baseline and follow-up)", v.cfg.MinVisits),
		})
	}

	if v.cfg.RequireBaselineVisit {
		hasBaseline := false
		for _, visit := range protocol.VisitSchedule {
			if visit.Week == 0 {
				hasBaseline = true
				break
			}
		}
		if !hasBaseline {
			messages = append(messages, model.ValidationMessage{
				Rule:     "visit_schedule",
				Severity: severityError,
				Message:  "Visit schedule must include a baseline visit (Week 0)",
			})
		}
	}

	return messages
}
