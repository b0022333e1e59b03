package export

import (
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// FHIR R4 resource shapes, reduced to what the bundle carries.

type fhirBundle struct {
	ResourceType string      `json:"resourceType"`
	Type         string      `json:"type"`
	Entry        []fhirEntry `json:"entry"`
}

type fhirEntry struct {
	Resource any `json:"resource"`
}

type fhirResearchStudy struct {
	ResourceType string          `json:"resourceType"`
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Phase        fhirText        `json:"phase"`
	Category     []fhirText      `json:"category"`
	Focus        []fhirText      `json:"focus"`
	Sponsor      fhirReference   `json:"sponsor,omitempty"`
	Objective    []fhirObjective `json:"objective,omitempty"`
}

type fhirText struct {
	Text string `json:"text"`
}

type fhirReference struct {
	Display string `json:"display,omitempty"`
}

type fhirObjective struct {
	Name string   `json:"name"`
	Type fhirText `json:"type"`
}

type fhirQuestionnaire struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	Title        string     `json:"title"`
	Item         []fhirItem `json:"item"`
}

type fhirItem struct {
	LinkID   string `json:"linkId"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

func (e *Exporter) exportFHIR(outcome *model.GenerationOutcome) (*Result, error) {
	profile := &outcome.Profile

	study := fhirResearchStudy{
		ResourceType: "ResearchStudy",
		ID:           string(outcome.ID),
		Status:       "active",
		Title:        outcome.Protocol.Title,
		Description:  fmt.Sprintf("%s study in %s", profile.Phase, profile.Indication),
		Phase:        fhirText{Text: profile.Phase.String()},
		Category:     []fhirText{{Text: "Interventional"}},
		Focus:        []fhirText{{Text: profile.Indication}},
		Sponsor:      fhirReference{Display: profile.Sponsor},
		Objective: []fhirObjective{{
			Name: outcome.Protocol.Objectives.Primary,
			Type: fhirText{Text: "primary"},
		}},
	}

	entries := []fhirEntry{{Resource: study}}

	for _, form := range outcome.CRF.Forms {
		q := fhirQuestionnaire{
			ResourceType: "Questionnaire",
			ID:           fmt.Sprintf("%s-%s", outcome.ID, form.ID),
			Status:       "active",
			Title:        form.Name,
		}
		for _, field := range form.Fields {
			q.Item = append(q.Item, fhirItem{
				LinkID:   field.Name,
				Text:     field.Label,
				Type:     fhirItemType(field.Type),
				Required: field.Required,
			})
		}
		entries = append(entries, fhirEntry{Resource: q})
	}

	bundle := fhirBundle{
		ResourceType: "Bundle",
		Type:         "collection",
		Entry:        entries,
	}

	raw, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal FHIR bundle")
	}

	return &Result{
		Format:   types.ExportFHIRJSON,
		Filename: exportFilename(outcome.ID, "FHIR.json"),
		Content:  string(raw),
	}, nil
}

func fhirItemType(fieldType string) string {
	switch fieldType {
	case "number":
		return "decimal"
	case "date":
		return "date"
	case "datetime":
		return "dateTime"
	case "dropdown", "checkbox", "radio":
		return "choice"
	default:
		return "string"
	}
}
