package model

// Objectives describes what the study sets out to demonstrate
type Objectives struct {
	Primary   string   `json:"primary" firestore:"primary"`
	Secondary []string `json:"secondary,omitempty" firestore:"secondary,omitempty"`
}

// Visit is one scheduled participant encounter
type Visit struct {
	ID     string `json:"id" firestore:"id"`
	Name   string `json:"name" firestore:"name"`
	Week   int    `json:"week" firestore:"week"`
	Window string `json:"window,omitempty" firestore:"window,omitempty"`
}

// Assessment is one procedure or measurement performed during the study
type Assessment struct {
	ID          string `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Timing      string `json:"timing,omitempty" firestore:"timing,omitempty"`
}

// Protocol is the structured document assembled from the generated
// sections. It mirrors the section kinds one to one.
type Protocol struct {
	Title             string       `json:"title" firestore:"title"`
	Objectives        Objectives   `json:"objectives" firestore:"objectives"`
	InclusionCriteria []string     `json:"inclusion_criteria" firestore:"inclusion_criteria"`
	ExclusionCriteria []string     `json:"exclusion_criteria" firestore:"exclusion_criteria"`
	StudyDesign       string       `json:"study_design" firestore:"study_design"`
	Endpoints         []Endpoint   `json:"endpoints" firestore:"endpoints"`
	VisitSchedule     []Visit      `json:"visit_schedule" firestore:"visit_schedule"`
	Assessments       []Assessment `json:"assessments" firestore:"assessments"`
}
