package model

// CRFField is a single data-capture field on a case report form
type CRFField struct {
	Name     string   `json:"name" firestore:"name"`
	Label    string   `json:"label" firestore:"label"`
	Type     string   `json:"type" firestore:"type"`
	Unit     string   `json:"unit,omitempty" firestore:"unit,omitempty"`
	Options  []string `json:"options,omitempty" firestore:"options,omitempty"`
	Required bool     `json:"required" firestore:"required"`
}

// CRFForm is one case report form, derived from a protocol assessment
type CRFForm struct {
	ID     string     `json:"id" firestore:"id"`
	Name   string     `json:"name" firestore:"name"`
	Fields []CRFField `json:"fields" firestore:"fields"`
}

// CRFSchema is the full set of case report forms for a protocol
type CRFSchema struct {
	Forms []CRFForm `json:"forms" firestore:"forms"`
}
