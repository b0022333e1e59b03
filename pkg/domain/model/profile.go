package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// Endpoint is one measurable outcome of a trial
type Endpoint struct {
	Name        string             `json:"name" firestore:"name"`
	Type        types.EndpointType `json:"type" firestore:"type"`
	Description string             `json:"description,omitempty" firestore:"description,omitempty"`
	Timeframe   string             `json:"timeframe,omitempty" firestore:"timeframe,omitempty"`
}

// ageRangePattern matches forms like "18-65", "18 - 65" or "18+".
var ageRangePattern = regexp.MustCompile(`^\d{1,3}\s*(-\s*\d{1,3}|\+)$`)

// TrialProfile is the structured description of a planned clinical
// trial. It is the sole input to protocol generation.
type TrialProfile struct {
	Title             string      `json:"title" firestore:"title"`
	Sponsor           string      `json:"sponsor,omitempty" firestore:"sponsor,omitempty"`
	Indication        string      `json:"indication" firestore:"indication"`
	Phase             types.Phase `json:"phase" firestore:"phase"`
	Design            []string    `json:"design,omitempty" firestore:"design,omitempty"`
	SampleSize        int         `json:"sample_size" firestore:"sample_size"`
	DurationWeeks     int         `json:"duration_weeks" firestore:"duration_weeks"`
	Endpoints         []Endpoint  `json:"endpoints,omitempty" firestore:"endpoints,omitempty"`
	InclusionCriteria []string    `json:"inclusion_criteria,omitempty" firestore:"inclusion_criteria,omitempty"`
	ExclusionCriteria []string    `json:"exclusion_criteria,omitempty" firestore:"exclusion_criteria,omitempty"`
	TreatmentArms     []string    `json:"treatment_arms,omitempty" firestore:"treatment_arms,omitempty"`
	AgeRange          string      `json:"age_range,omitempty" firestore:"age_range,omitempty"`
	Region            string      `json:"region,omitempty" firestore:"region,omitempty"`

	// Instructions is free text from the caller that is injected into
	// every section prompt and copied through by the fallback ladder.
	Instructions string `json:"instructions,omitempty" firestore:"instructions,omitempty"`
}

// Validate checks the structural preconditions of a profile. A profile
// that fails here never reaches the generation pipeline.
func (p *TrialProfile) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return goerr.Wrap(types.ErrInvalidProfile, "title is required", goerr.V(types.FieldKey, "title"))
	}
	if strings.TrimSpace(p.Indication) == "" {
		return goerr.Wrap(types.ErrInvalidProfile, "indication is required", goerr.V(types.FieldKey, "indication"))
	}
	if !p.Phase.IsValid() {
		return goerr.Wrap(types.ErrInvalidProfile, "unknown trial phase", goerr.V(types.FieldKey, "phase"), goerr.V("phase", p.Phase))
	}
	if p.SampleSize <= 0 {
		return goerr.Wrap(types.ErrInvalidProfile, "sample size must be positive", goerr.V(types.FieldKey, "sample_size"), goerr.V("sample_size", p.SampleSize))
	}
	if p.DurationWeeks <= 0 {
		return goerr.Wrap(types.ErrInvalidProfile, "duration must be positive", goerr.V(types.FieldKey, "duration_weeks"), goerr.V("duration_weeks", p.DurationWeeks))
	}
	if p.AgeRange != "" && !ageRangePattern.MatchString(p.AgeRange) {
		return goerr.Wrap(types.ErrInvalidProfile, "age range must look like 18-65 or 18+", goerr.V(types.FieldKey, "age_range"), goerr.V("age_range", p.AgeRange))
	}
	for i, ep := range p.Endpoints {
		if strings.TrimSpace(ep.Name) == "" {
			return goerr.Wrap(types.ErrInvalidProfile, "endpoint name is required", goerr.V(types.FieldKey, "endpoints"), goerr.V("index", i))
		}
		if !ep.Type.IsValid() {
			return goerr.Wrap(types.ErrInvalidProfile, "unknown endpoint type", goerr.V(types.FieldKey, "endpoints"), goerr.V("index", i), goerr.V("type", ep.Type))
		}
	}
	return nil
}

// PrimaryEndpoints returns the endpoints typed as primary
func (p *TrialProfile) PrimaryEndpoints() []Endpoint {
	var out []Endpoint
	for _, ep := range p.Endpoints {
		if ep.Type == types.EndpointPrimary {
			out = append(out, ep)
		}
	}
	return out
}

// SecondaryEndpoints returns the endpoints typed as secondary
func (p *TrialProfile) SecondaryEndpoints() []Endpoint {
	var out []Endpoint
	for _, ep := range p.Endpoints {
		if ep.Type == types.EndpointSecondary {
			out = append(out, ep)
		}
	}
	return out
}
