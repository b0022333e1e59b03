package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/trialworks/protodraft/pkg/domain/model"
)

// buildNarrative renders the human-readable protocol document from
// the structured protocol. It is deterministic; the generated content
// already sits in the protocol fields.
func buildNarrative(profile *model.TrialProfile, protocol *model.Protocol) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "CLINICAL TRIAL PROTOCOL\n\n%s\n\n", protocol.Title)
	sb.WriteString("Protocol Version: 1.0\n")
	fmt.Fprintf(&sb, "Sponsor: %s\n", profile.Sponsor)
	fmt.Fprintf(&sb, "Date: %s\n", time.Now().UTC().Format("2006-01-02"))

	sb.WriteString("\nProtocol Synopsis\n\n")
	fmt.Fprintf(&sb, "Title: %s\n", protocol.Title)
	fmt.Fprintf(&sb, "Phase: %s\n", profile.Phase)
	fmt.Fprintf(&sb, "Indication: %s\n", profile.Indication)
	fmt.Fprintf(&sb, "Sample Size: Approximately %d participants will be enrolled.\n", profile.SampleSize)
	fmt.Fprintf(&sb, "Study Duration: %d weeks.\n", profile.DurationWeeks)

	sb.WriteString("\nStudy Objectives and Endpoints\n\n")
	fmt.Fprintf(&sb, "Primary Objective: %s\n", protocol.Objectives.Primary)
	for _, obj := range protocol.Objectives.Secondary {
		fmt.Fprintf(&sb, "Secondary Objective: %s\n", obj)
	}
	sb.WriteString("\nEndpoints:\n")
	for _, ep := range protocol.Endpoints {
		fmt.Fprintf(&sb, "- %s: %s\n", strings.ToUpper(ep.Type.String()), ep.Name)
	}

	sb.WriteString("\nStudy Design\n\n")
	sb.WriteString(protocol.StudyDesign)
	sb.WriteString("\n")
	if len(profile.TreatmentArms) > 0 {
		sb.WriteString("\nTreatment Arms:\n")
		for i, arm := range profile.TreatmentArms {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, arm)
		}
	}

	sb.WriteString("\nStudy Population\n\n")
	fmt.Fprintf(&sb, "Target enrollment: %d participants\n", profile.SampleSize)
	if profile.AgeRange != "" {
		fmt.Fprintf(&sb, "Age range: %s\n", profile.AgeRange)
	}
	sb.WriteString("\nInclusion Criteria:\n")
	for i, criterion := range protocol.InclusionCriteria {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, criterion)
	}
	sb.WriteString("\nExclusion Criteria:\n")
	for i, criterion := range protocol.ExclusionCriteria {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, criterion)
	}

	sb.WriteString("\nStudy Duration and Schedule\n\n")
	fmt.Fprintf(&sb, "Total study duration: %d weeks per participant\n", profile.DurationWeeks)
	for _, v := range protocol.VisitSchedule {
		line := fmt.Sprintf("  %s: %s (Week %d", v.ID, v.Name, v.Week)
		if v.Window != "" {
			line += ", " + v.Window
		}
		sb.WriteString(line + ")\n")
	}

	sb.WriteString("\nStatistical Considerations\n\n")
	fmt.Fprintf(&sb, "Sample Size: %d participants\n", profile.SampleSize)
	sb.WriteString("Statistical analysis will be performed on the intent-to-treat (ITT) population.\n")

	sb.WriteString("\nSafety Monitoring\n\n")
	sb.WriteString("Adverse events will be monitored throughout the study and graded according to CTCAE v5.0.\n")
	sb.WriteString("A Data Safety Monitoring Board (DSMB) will review safety data periodically.\n")

	return sb.String()
}
