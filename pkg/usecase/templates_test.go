package usecase

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

func templateProfile(phase types.Phase) *model.TrialProfile {
	return &model.TrialProfile{
		Title:         "Study of TW-101 in Hypertension",
		Indication:    "Hypertension",
		Phase:         phase,
		SampleSize:    120,
		DurationWeeks: 12,
	}
}

func TestFallbackTemplates(t *testing.T) {
	t.Run("every kind renders for every phase", func(t *testing.T) {
		phases := append(types.AllPhases(), types.Phase("Phase 5"))
		for _, kind := range types.AllSectionKinds() {
			for _, phase := range phases {
				content := fallbackSection(kind, templateProfile(phase))
				gt.Bool(t, content != "").True()
			}
		}
	})

	t.Run("objectives vary by phase", func(t *testing.T) {
		p1 := fallbackSection(types.SectionObjectives, templateProfile(types.Phase1))
		p3 := fallbackSection(types.SectionObjectives, templateProfile(types.Phase3))

		gt.Bool(t, strings.Contains(p1, "safety and tolerability")).True()
		gt.Bool(t, strings.Contains(p3, "confirm the efficacy")).True()
		gt.Value(t, p1).NotEqual(p3)
	})

	t.Run("unknown kind yields nothing", func(t *testing.T) {
		content := fallbackSection(types.SectionKind("appendix"), templateProfile(types.Phase2))
		gt.Value(t, content).Equal("")
	})
}
