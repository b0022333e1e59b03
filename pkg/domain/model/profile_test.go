package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

func validProfile() *model.TrialProfile {
	return &model.TrialProfile{
		Title:         "Phase II Study of Test Agent in Hypertension",
		Indication:    "Hypertension",
		Phase:         types.Phase2,
		SampleSize:    120,
		DurationWeeks: 24,
		Endpoints: []model.Endpoint{
			{Name: "Change in systolic blood pressure", Type: types.EndpointPrimary},
			{Name: "Incidence of adverse events", Type: types.EndpointSecondary},
		},
	}
}

func TestProfileValidate(t *testing.T) {
	t.Run("valid profile passes", func(t *testing.T) {
		gt.NoError(t, validProfile().Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		p := validProfile()
		p.Title = "  "
		err := p.Validate()
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, types.ErrInvalidProfile)).True()
	})

	t.Run("missing indication", func(t *testing.T) {
		p := validProfile()
		p.Indication = ""
		gt.Error(t, p.Validate())
	})

	t.Run("unknown phase", func(t *testing.T) {
		p := validProfile()
		p.Phase = "Phase 9"
		gt.Error(t, p.Validate())
	})

	t.Run("non-positive sample size", func(t *testing.T) {
		p := validProfile()
		p.SampleSize = 0
		gt.Error(t, p.Validate())
	})

	t.Run("non-positive duration", func(t *testing.T) {
		p := validProfile()
		p.DurationWeeks = -1
		gt.Error(t, p.Validate())
	})

	t.Run("endpoint without name", func(t *testing.T) {
		p := validProfile()
		p.Endpoints = append(p.Endpoints, model.Endpoint{Name: "", Type: types.EndpointPrimary})
		gt.Error(t, p.Validate())
	})

	t.Run("endpoint with unknown type", func(t *testing.T) {
		p := validProfile()
		p.Endpoints = append(p.Endpoints, model.Endpoint{Name: "Something", Type: "tertiary"})
		gt.Error(t, p.Validate())
	})
}

func TestProfileAgeRange(t *testing.T) {
	valid := []string{"18-65", "18 - 65", "50-85", "65+", ""}
	for _, ar := range valid {
		p := validProfile()
		p.AgeRange = ar
		gt.NoError(t, p.Validate())
	}

	invalid := []string{"adults", "18-", "-65", "18--65", "18 to 65"}
	for _, ar := range invalid {
		p := validProfile()
		p.AgeRange = ar
		gt.Error(t, p.Validate())
	}
}

func TestProfileEndpointSelectors(t *testing.T) {
	p := validProfile()
	p.Endpoints = append(p.Endpoints, model.Endpoint{Name: "Biomarker exploration", Type: types.EndpointExploratory})

	gt.Array(t, p.PrimaryEndpoints()).Length(1)
	gt.Array(t, p.SecondaryEndpoints()).Length(1)
	gt.Value(t, p.PrimaryEndpoints()[0].Name).Equal("Change in systolic blood pressure")
}

func TestNewProtocolID(t *testing.T) {
	id1 := model.NewProtocolID()
	id2 := model.NewProtocolID()

	gt.Value(t, id1).NotEqual(id2)
	gt.Bool(t, len(id1.String()) == len("PROT-")+12).True()
	gt.Bool(t, id1.String()[:5] == "PROT-").True()
}
