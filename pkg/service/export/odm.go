package export

import (
	"encoding/xml"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// CDISC ODM v1.3 document structure, reduced to the elements this
// service populates.

type odmDocument struct {
	XMLName          xml.Name `xml:"ODM"`
	Namespace        string   `xml:"xmlns,attr"`
	ODMVersion       string   `xml:"ODMVersion,attr"`
	FileOID          string   `xml:"FileOID,attr"`
	FileType         string   `xml:"FileType,attr"`
	CreationDateTime string   `xml:"CreationDateTime,attr"`
	SourceSystem     string   `xml:"SourceSystem,attr"`

	Study odmStudy `xml:"Study"`
}

type odmStudy struct {
	OID             string             `xml:"OID,attr"`
	GlobalVariables odmGlobalVariables `xml:"GlobalVariables"`
	MetaData        odmMetaDataVersion `xml:"MetaDataVersion"`
}

type odmGlobalVariables struct {
	StudyName        string `xml:"StudyName"`
	StudyDescription string `xml:"StudyDescription"`
	ProtocolName     string `xml:"ProtocolName"`
}

type odmMetaDataVersion struct {
	OID  string `xml:"OID,attr"`
	Name string `xml:"Name,attr"`

	Protocol  odmProtocol   `xml:"Protocol"`
	EventDefs []odmEventDef `xml:"StudyEventDef"`
	FormDefs  []odmFormDef  `xml:"FormDef"`
	ItemDefs  []odmItemDef  `xml:"ItemDef"`
}

type odmProtocol struct {
	Description odmTranslatedText `xml:"Description>TranslatedText"`
	Objectives  []odmObjective    `xml:"StudyObjective"`
	Arms        []odmArm          `xml:"Arm"`
	Criteria    []odmCriterion    `xml:"InclusionExclusionCriteria>Criterion"`
	Endpoints   []odmEndpoint     `xml:"StudyEndPoint"`
	EventRefs   []odmEventRef     `xml:"StudyEventRef"`
}

type odmTranslatedText struct {
	Lang string `xml:"lang,attr"`
	Text string `xml:",chardata"`
}

type odmObjective struct {
	OID         string            `xml:"OID,attr"`
	Description odmTranslatedText `xml:"Description>TranslatedText"`
}

type odmArm struct {
	OID         string            `xml:"OID,attr"`
	Name        string            `xml:"Name,attr"`
	Description odmTranslatedText `xml:"Description>TranslatedText"`
}

type odmCriterion struct {
	OID         string            `xml:"OID,attr"`
	Type        string            `xml:"Type,attr"`
	Description odmTranslatedText `xml:"Description>TranslatedText"`
}

type odmEndpoint struct {
	OID         string            `xml:"OID,attr"`
	Type        string            `xml:"Type,attr"`
	Description odmTranslatedText `xml:"Description>TranslatedText"`
}

type odmEventRef struct {
	StudyEventOID string `xml:"StudyEventOID,attr"`
	OrderNumber   int    `xml:"OrderNumber,attr"`
	Mandatory     string `xml:"Mandatory,attr"`
}

type odmEventDef struct {
	OID         string            `xml:"OID,attr"`
	Name        string            `xml:"Name,attr"`
	Repeating   string            `xml:"Repeating,attr"`
	Type        string            `xml:"Type,attr"`
	Description odmTranslatedText `xml:"Description>TranslatedText"`
}

type odmFormDef struct {
	OID      string       `xml:"OID,attr"`
	Name     string       `xml:"Name,attr"`
	ItemRefs []odmItemRef `xml:"ItemGroupRef"`
}

type odmItemRef struct {
	ItemGroupOID string `xml:"ItemGroupOID,attr"`
	Mandatory    string `xml:"Mandatory,attr"`
}

type odmItemDef struct {
	OID      string            `xml:"OID,attr"`
	Name     string            `xml:"Name,attr"`
	DataType string            `xml:"DataType,attr"`
	Question odmTranslatedText `xml:"Question>TranslatedText"`
}

func (e *Exporter) exportODM(outcome *model.GenerationOutcome) (*Result, error) {
	now := e.now()
	profile := &outcome.Profile
	protocol := &outcome.Protocol

	doc := odmDocument{
		Namespace:        "http://www.cdisc.org/ns/odm/v1.3",
		ODMVersion:       "1.3.2",
		FileOID:          fmt.Sprintf("ODM.%s.%s", outcome.ID, now.Format("20060102150405")),
		FileType:         "Snapshot",
		CreationDateTime: now.Format("2006-01-02T15:04:05Z07:00"),
		SourceSystem:     "protodraft",
		Study: odmStudy{
			OID: string(outcome.ID),
			GlobalVariables: odmGlobalVariables{
				StudyName:        protocol.Title,
				StudyDescription: fmt.Sprintf("%s study in %s", profile.Phase, profile.Indication),
				ProtocolName:     string(outcome.ID),
			},
			MetaData: odmMetaDataVersion{
				OID:  fmt.Sprintf("MDV.%s.1", outcome.ID),
				Name: "Study MetaData Version 1",
			},
		},
	}

	meta := &doc.Study.MetaData
	meta.Protocol.Description = englishText(fmt.Sprintf("%s study evaluating treatment in patients with %s", profile.Phase, profile.Indication))

	meta.Protocol.Objectives = append(meta.Protocol.Objectives, odmObjective{
		OID:         "OBJ.PRIMARY",
		Description: englishText(protocol.Objectives.Primary),
	})
	for i, obj := range protocol.Objectives.Secondary {
		meta.Protocol.Objectives = append(meta.Protocol.Objectives, odmObjective{
			OID:         fmt.Sprintf("OBJ.SECONDARY.%d", i+1),
			Description: englishText(obj),
		})
	}

	for i, arm := range profile.TreatmentArms {
		meta.Protocol.Arms = append(meta.Protocol.Arms, odmArm{
			OID:         fmt.Sprintf("ARM.%d", i+1),
			Name:        arm,
			Description: englishText(arm),
		})
	}

	for i, criterion := range protocol.InclusionCriteria {
		meta.Protocol.Criteria = append(meta.Protocol.Criteria, odmCriterion{
			OID:         fmt.Sprintf("IC.%d", i+1),
			Type:        "Inclusion",
			Description: englishText(criterion),
		})
	}
	for i, criterion := range protocol.ExclusionCriteria {
		meta.Protocol.Criteria = append(meta.Protocol.Criteria, odmCriterion{
			OID:         fmt.Sprintf("EC.%d", i+1),
			Type:        "Exclusion",
			Description: englishText(criterion),
		})
	}

	for i, ep := range protocol.Endpoints {
		desc := ep.Name
		if ep.Timeframe != "" {
			desc += " at " + ep.Timeframe
		}
		meta.Protocol.Endpoints = append(meta.Protocol.Endpoints, odmEndpoint{
			OID:         fmt.Sprintf("EP.%d", i+1),
			Type:        string(ep.Type),
			Description: englishText(desc),
		})
	}

	for i, visit := range protocol.VisitSchedule {
		meta.Protocol.EventRefs = append(meta.Protocol.EventRefs, odmEventRef{
			StudyEventOID: "SE." + visit.ID,
			OrderNumber:   i + 1,
			Mandatory:     "Yes",
		})
		desc := fmt.Sprintf("%s - Week %d", visit.Name, visit.Week)
		if visit.Window != "" {
			desc += fmt.Sprintf(" (Window: %s)", visit.Window)
		}
		meta.EventDefs = append(meta.EventDefs, odmEventDef{
			OID:         "SE." + visit.ID,
			Name:        visit.Name,
			Repeating:   "No",
			Type:        "Scheduled",
			Description: englishText(desc),
		})
	}

	for _, form := range outcome.CRF.Forms {
		meta.FormDefs = append(meta.FormDefs, odmFormDef{
			OID:  "FORM." + form.ID,
			Name: form.Name,
			ItemRefs: []odmItemRef{{
				ItemGroupOID: "IG." + form.ID,
				Mandatory:    "Yes",
			}},
		})
		for _, field := range form.Fields {
			meta.ItemDefs = append(meta.ItemDefs, odmItemDef{
				OID:      fmt.Sprintf("IT.%s.%s", form.ID, field.Name),
				Name:     field.Name,
				DataType: odmDataType(field.Type),
				Question: englishText(field.Label),
			})
		}
	}

	raw, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal ODM document")
	}

	return &Result{
		Format:   types.ExportODMXML,
		Filename: exportFilename(outcome.ID, "ODM.xml"),
		Content:  xml.Header + string(raw),
	}, nil
}

func englishText(s string) odmTranslatedText {
	return odmTranslatedText{Lang: "en", Text: s}
}

func odmDataType(fieldType string) string {
	switch fieldType {
	case "number":
		return "integer"
	case "date":
		return "date"
	case "datetime":
		return "datetime"
	default:
		return "text"
	}
}
