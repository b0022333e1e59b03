package seed

import (
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// SampleProfiles returns the curated corpus of historical trial
// profiles across therapeutic areas.
func SampleProfiles() []model.TrialProfile {
	return []model.TrialProfile{
		{
			Title:         "Phase III Randomized Study of Novel Checkpoint Inhibitor in Advanced Non-Small Cell Lung Cancer",
			Sponsor:       "Oncology Research Institute",
			Indication:    "Advanced Non-Small Cell Lung Cancer",
			Phase:         types.Phase3,
			Design:        []string{"randomized", "open-label", "active-controlled", "multicenter"},
			SampleSize:    450,
			DurationWeeks: 104,
			TreatmentArms: []string{
				"Novel Checkpoint Inhibitor 200mg IV Q3W",
				"Standard of Care Chemotherapy",
			},
			Endpoints: []model.Endpoint{
				{Type: types.EndpointPrimary, Name: "Overall Survival (OS)", Description: "Time from randomization to death from any cause", Timeframe: "Until death or end of study"},
				{Type: types.EndpointSecondary, Name: "Progression-Free Survival (PFS)", Description: "Time from randomization to disease progression or death", Timeframe: "Every 6 weeks"},
				{Type: types.EndpointSecondary, Name: "Objective Response Rate (ORR)", Description: "Proportion of patients with complete or partial response", Timeframe: "Every 6 weeks"},
			},
			InclusionCriteria: []string{
				"Age >= 18 years",
				"Histologically confirmed advanced NSCLC",
				"ECOG performance status 0-1",
				"Measurable disease per RECIST v1.1",
				"Adequate organ function",
			},
			ExclusionCriteria: []string{
				"Prior immune checkpoint inhibitor therapy",
				"Active brain metastases",
				"Active autoimmune disease",
			},
			AgeRange: "18-99",
			Region:   "Global",
		},
		{
			Title:         "Phase II Double-Blind Study of Novel PCSK9 Inhibitor in Patients with Hypercholesterolemia",
			Sponsor:       "Cardiology Innovations Ltd",
			Indication:    "Hypercholesterolemia",
			Phase:         types.Phase2,
			Design:        []string{"randomized", "double-blind", "placebo-controlled", "parallel-group"},
			SampleSize:    180,
			DurationWeeks: 24,
			TreatmentArms: []string{
				"PCSK9 Inhibitor 150mg SC Q2W",
				"PCSK9 Inhibitor 300mg SC Q4W",
				"Placebo SC Q2W",
			},
			Endpoints: []model.Endpoint{
				{Type: types.EndpointPrimary, Name: "Change in LDL-C from baseline to Week 24", Description: "Percent change in LDL cholesterol levels", Timeframe: "Week 24"},
				{Type: types.EndpointSecondary, Name: "Change in total cholesterol", Timeframe: "Week 12 and Week 24"},
				{Type: types.EndpointSecondary, Name: "Safety and tolerability", Description: "Incidence of adverse events", Timeframe: "Throughout study"},
			},
			InclusionCriteria: []string{
				"Age 18-75 years",
				"LDL-C >= 100 mg/dL despite statin therapy",
				"Stable statin dose for >= 4 weeks",
			},
			ExclusionCriteria: []string{
				"Uncontrolled hypertension (>160/100 mmHg)",
				"Recent cardiovascular event (<3 months)",
			},
			AgeRange: "18-75",
			Region:   "US/EU",
		},
		{
			Title:         "Phase II Proof-of-Concept Study of JAK Inhibitor in Moderate to Severe Rheumatoid Arthritis",
			Sponsor:       "Autoimmune Therapeutics Inc",
			Indication:    "Rheumatoid Arthritis",
			Phase:         types.Phase2,
			Design:        []string{"randomized", "double-blind", "placebo-controlled"},
			SampleSize:    200,
			DurationWeeks: 52,
			TreatmentArms: []string{
				"JAK Inhibitor 5mg once daily",
				"JAK Inhibitor 10mg once daily",
				"Placebo once daily",
			},
			Endpoints: []model.Endpoint{
				{Type: types.EndpointPrimary, Name: "ACR20 response at Week 24", Description: "Proportion of patients achieving ACR20 response", Timeframe: "Week 24"},
				{Type: types.EndpointSecondary, Name: "Change in DAS28-CRP", Description: "Change from baseline in Disease Activity Score", Timeframe: "Week 12, 24, 52"},
			},
			InclusionCriteria: []string{
				"Age 18-75 years",
				"ACR/EULAR 2010 criteria for RA >= 6 months",
				"Active disease (DAS28-CRP >= 3.2)",
				"Inadequate response to MTX or csDMARDs",
			},
			ExclusionCriteria: []string{
				"Prior JAK inhibitor therapy",
				"Active or latent tuberculosis",
				"Hepatitis B or C infection",
			},
			AgeRange: "18-75",
			Region:   "US/EU/Asia",
		},
		{
			Title:         "Phase II Study of Monoclonal Antibody in Early Alzheimer's Disease",
			Sponsor:       "Neuroscience Partners",
			Indication:    "Early Alzheimer's Disease",
			Phase:         types.Phase2,
			Design:        []string{"randomized", "double-blind", "placebo-controlled"},
			SampleSize:    250,
			DurationWeeks: 78,
			TreatmentArms: []string{
				"Anti-Amyloid mAb 10mg/kg IV Q4W",
				"Placebo IV Q4W",
			},
			Endpoints: []model.Endpoint{
				{Type: types.EndpointPrimary, Name: "Change in CDR-SB at Week 78", Description: "Change from baseline in Clinical Dementia Rating Sum of Boxes", Timeframe: "Week 78"},
				{Type: types.EndpointSecondary, Name: "Change in ADAS-Cog14", Description: "Change in cognitive function score", Timeframe: "Week 26, 52, 78"},
			},
			InclusionCriteria: []string{
				"Age 50-85 years",
				"Clinical diagnosis of mild cognitive impairment or mild dementia due to AD",
				"MMSE score 20-28",
				"Positive amyloid PET scan",
			},
			ExclusionCriteria: []string{
				"Other primary cause of dementia",
				"History of stroke or TIA within 2 years",
				"MRI contraindications",
			},
			AgeRange: "50-85",
			Region:   "US/EU",
		},
		{
			Title:         "Phase III Study of Novel GLP-1 Receptor Agonist in Type 2 Diabetes",
			Sponsor:       "Metabolic Health Corp",
			Indication:    "Type 2 Diabetes Mellitus",
			Phase:         types.Phase3,
			Design:        []string{"randomized", "double-blind", "active-controlled", "non-inferiority"},
			SampleSize:    800,
			DurationWeeks: 52,
			TreatmentArms: []string{
				"Novel GLP-1 RA 1mg SC once weekly",
				"Active Comparator GLP-1 RA 1mg SC once weekly",
			},
			Endpoints: []model.Endpoint{
				{Type: types.EndpointPrimary, Name: "Change in HbA1c at Week 52", Description: "Change from baseline in glycated hemoglobin", Timeframe: "Week 52"},
				{Type: types.EndpointSecondary, Name: "Proportion achieving HbA1c <7%", Timeframe: "Week 52"},
				{Type: types.EndpointSecondary, Name: "Change in body weight", Timeframe: "Week 26 and 52"},
			},
			InclusionCriteria: []string{
				"Age 18-75 years",
				"Type 2 diabetes >= 6 months",
				"HbA1c 7.0-10.5%",
				"Stable metformin therapy >= 8 weeks",
			},
			ExclusionCriteria: []string{
				"Type 1 diabetes or secondary diabetes",
				"History of pancreatitis",
				"Severe renal impairment (eGFR <30)",
			},
			AgeRange: "18-75",
			Region:   "Global",
		},
		{
			Title:         "Phase III Study of Anti-Integrin Monoclonal Antibody in Moderate to Severe Ulcerative Colitis",
			Sponsor:       "GI Therapeutics Global",
			Indication:    "Ulcerative Colitis",
			Phase:         types.Phase3,
			Design:        []string{"randomized", "double-blind", "placebo-controlled", "multicenter"},
			SampleSize:    600,
			DurationWeeks: 52,
			TreatmentArms: []string{
				"Anti-Integrin mAb 300mg IV at Weeks 0, 2, 6, then Q8W",
				"Placebo IV at Weeks 0, 2, 6, then Q8W",
			},
			Endpoints: []model.Endpoint{
				{Type: types.EndpointPrimary, Name: "Clinical remission at Week 52", Description: "Mayo score <=2 with no subscore >1 and rectal bleeding subscore 0", Timeframe: "Week 52"},
				{Type: types.EndpointSecondary, Name: "Endoscopic improvement", Description: "Endoscopic Mayo subscore <=1", Timeframe: "Week 52"},
			},
			InclusionCriteria: []string{
				"Age 18-75 years",
				"Confirmed diagnosis of UC >= 3 months",
				"Moderate to severe active disease (Mayo score 6-12)",
				"Inadequate response or intolerance to conventional therapy",
			},
			ExclusionCriteria: []string{
				"Crohn's disease or indeterminate colitis",
				"Toxic megacolon or bowel obstruction",
				"Prior anti-integrin therapy",
			},
			AgeRange: "18-75",
			Region:   "Global",
		},
		{
			Title:         "Phase III Study of Anti-IL-5 Receptor Monoclonal Antibody in Severe Eosinophilic Asthma",
			Sponsor:       "Respiratory Medicine Alliance",
			Indication:    "Severe Eosinophilic Asthma",
			Phase:         types.Phase3,
			Design:        []string{"randomized", "double-blind", "placebo-controlled", "parallel-group"},
			SampleSize:    400,
			DurationWeeks: 52,
			TreatmentArms: []string{
				"Anti-IL-5R mAb 100mg SC Q4W",
				"Placebo SC Q4W",
			},
			Endpoints: []model.Endpoint{
				{Type: types.EndpointPrimary, Name: "Annual exacerbation rate", Description: "Rate of clinically significant asthma exacerbations", Timeframe: "52 weeks"},
				{Type: types.EndpointSecondary, Name: "Change in FEV1", Description: "Change from baseline in pre-bronchodilator FEV1", Timeframe: "Week 52"},
			},
			InclusionCriteria: []string{
				"Age 18-75 years",
				"Physician-diagnosed asthma >= 12 months",
				">= 2 exacerbations in past 12 months requiring systemic corticosteroids",
				"Blood eosinophils >= 300 cells/uL at screening",
			},
			ExclusionCriteria: []string{
				"Current smoker or >= 10 pack-year history",
				"Other significant lung disease",
				"Recent biologics use (<4 months)",
			},
			AgeRange: "18-75",
			Region:   "Global",
		},
		{
			Title:         "Phase III Study of SGLT2 Inhibitor in Chronic Kidney Disease without Diabetes",
			Sponsor:       "Nephrology Innovation Group",
			Indication:    "Chronic Kidney Disease",
			Phase:         types.Phase3,
			Design:        []string{"randomized", "double-blind", "placebo-controlled", "event-driven"},
			SampleSize:    3000,
			DurationWeeks: 156,
			TreatmentArms: []string{
				"SGLT2 Inhibitor 10mg once daily",
				"Placebo once daily",
			},
			Endpoints: []model.Endpoint{
				{Type: types.EndpointPrimary, Name: "Composite renal outcome", Description: "Sustained >=50% eGFR decline, ESKD, or renal death", Timeframe: "Time to event (median 3 years)"},
				{Type: types.EndpointSecondary, Name: "eGFR slope", Description: "Annual rate of eGFR decline", Timeframe: "Throughout study"},
			},
			InclusionCriteria: []string{
				"Age 18-85 years",
				"CKD with eGFR 20-60 mL/min/1.73m2",
				"UACR >= 200 mg/g",
				"No diabetes mellitus",
			},
			ExclusionCriteria: []string{
				"Type 1 or Type 2 diabetes",
				"Kidney transplant recipient or planned transplant",
				"Polycystic kidney disease",
			},
			AgeRange: "18-85",
			Region:   "Global",
		},
	}
}
