package rules_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/model/config"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"github.com/trialworks/protodraft/pkg/service/rules"
)

func cleanProfile() *model.TrialProfile {
	return &model.TrialProfile{
		Title:         "Phase III Study in Asthma",
		Indication:    "Asthma",
		Phase:         types.Phase3,
		SampleSize:    400,
		DurationWeeks: 52,
		TreatmentArms: []string{"Active", "Placebo"},
		InclusionCriteria: []string{
			"Adults aged 18-75 years",
			"Documented asthma diagnosis",
		},
		ExclusionCriteria: []string{"Current smokers"},
		Endpoints: []model.Endpoint{
			{Name: "Change in FEV1", Type: types.EndpointPrimary},
		},
	}
}

func cleanProtocol() *model.Protocol {
	return &model.Protocol{
		Title: "Phase III Study in Asthma",
		VisitSchedule: []model.Visit{
			{ID: "V0", Name: "Screening", Week: -1},
			{ID: "V1", Name: "Baseline", Week: 0},
			{ID: "V2", Name: "Week 52", Week: 52},
		},
	}
}

func messagesByRule(outcome model.ValidationOutcome, rule string) []model.ValidationMessage {
	var matched []model.ValidationMessage
	for _, m := range outcome.Messages {
		if m.Rule == rule {
			matched = append(matched, m)
		}
	}
	return matched
}

func TestValidatePasses(t *testing.T) {
	outcome := rules.Default().Validate(cleanProfile(), cleanProtocol())
	gt.Value(t, outcome.Status).Equal(types.ValidationPassed)
	gt.Array(t, outcome.Messages).Length(0)
}

func TestEnrollmentRules(t *testing.T) {
	v := rules.Default()

	t.Run("small sample warns per phase", func(t *testing.T) {
		profile := cleanProfile()
		profile.SampleSize = 50 // below the Phase 3 minimum of 100

		outcome := v.Validate(profile, cleanProtocol())
		gt.Value(t, outcome.Status).Equal(types.ValidationWarnings)
		gt.Array(t, messagesByRule(outcome, "sample_size_minimum")).Length(1)
	})

	t.Run("same sample passes a looser phase", func(t *testing.T) {
		profile := cleanProfile()
		profile.Phase = types.Phase2
		profile.SampleSize = 50

		outcome := v.Validate(profile, cleanProtocol())
		gt.Array(t, messagesByRule(outcome, "sample_size_minimum")).Length(0)
	})

	t.Run("short duration warns", func(t *testing.T) {
		profile := cleanProfile()
		profile.DurationWeeks = 2

		outcome := v.Validate(profile, cleanProtocol())
		gt.Array(t, messagesByRule(outcome, "duration_minimum")).Length(1)
	})
}

func TestEndpointRules(t *testing.T) {
	v := rules.Default()

	t.Run("missing primary endpoint is an error", func(t *testing.T) {
		profile := cleanProfile()
		profile.Endpoints = []model.Endpoint{
			{Name: "Exacerbation rate", Type: types.EndpointSecondary},
		}

		outcome := v.Validate(profile, cleanProtocol())
		gt.Value(t, outcome.Status).Equal(types.ValidationFailed)
		messages := messagesByRule(outcome, "endpoint_requirements")
		gt.Array(t, messages).Length(1)
		gt.Value(t, messages[0].Severity).Equal("error")
	})

	t.Run("too many primary endpoints warns", func(t *testing.T) {
		profile := cleanProfile()
		for _, name := range []string{"FVC", "PEF", "ACQ score"} {
			profile.Endpoints = append(profile.Endpoints,
				model.Endpoint{Name: name, Type: types.EndpointPrimary})
		}

		outcome := v.Validate(profile, cleanProtocol())
		gt.Value(t, outcome.Status).Equal(types.ValidationWarnings)
		gt.Array(t, messagesByRule(outcome, "endpoint_requirements")).Length(1)
	})
}

func TestEligibilityRules(t *testing.T) {
	profile := cleanProfile()
	profile.InclusionCriteria = []string{"Adults"}
	profile.ExclusionCriteria = nil

	outcome := rules.Default().Validate(profile, cleanProtocol())
	gt.Value(t, outcome.Status).Equal(types.ValidationWarnings)
	gt.Array(t, messagesByRule(outcome, "eligibility_criteria")).Length(2)
}

func TestArmRules(t *testing.T) {
	v := rules.Default()

	t.Run("single arm warns", func(t *testing.T) {
		profile := cleanProfile()
		profile.TreatmentArms = []string{"Active"}

		outcome := v.Validate(profile, cleanProtocol())
		gt.Array(t, messagesByRule(outcome, "treatment_arms")).Length(1)
	})

	t.Run("no arms declared is not checked", func(t *testing.T) {
		profile := cleanProfile()
		profile.TreatmentArms = nil

		outcome := v.Validate(profile, cleanProtocol())
		gt.Array(t, messagesByRule(outcome, "treatment_arms")).Length(0)
	})
}

func TestVisitRules(t *testing.T) {
	v := rules.Default()

	t.Run("too few visits is an error", func(t *testing.T) {
		protocol := cleanProtocol()
		protocol.VisitSchedule = protocol.VisitSchedule[:1]

		outcome := v.Validate(cleanProfile(), protocol)
		gt.Value(t, outcome.Status).Equal(types.ValidationFailed)
	})

	t.Run("missing baseline is an error", func(t *testing.T) {
		protocol := cleanProtocol()
		protocol.VisitSchedule = []model.Visit{
			{ID: "V0", Name: "Screening", Week: -1},
			{ID: "V1", Name: "Week 4", Week: 4},
		}

		outcome := v.Validate(cleanProfile(), protocol)
		gt.Value(t, outcome.Status).Equal(types.ValidationFailed)
		gt.Array(t, messagesByRule(outcome, "visit_schedule")).Length(1)
	})
}

func TestConfiguredThresholds(t *testing.T) {
	cfg := config.DefaultRuleConfig().Merge(config.RuleConfig{
		MinDurationWeeks: 24,
	})
	v := rules.New(cfg)

	profile := cleanProfile()
	profile.DurationWeeks = 12

	outcome := v.Validate(profile, cleanProtocol())
	gt.Array(t, messagesByRule(outcome, "duration_minimum")).Length(1)
}
