package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

func TestParsePhase(t *testing.T) {
	for _, phase := range types.AllPhases() {
		parsed, err := types.ParsePhase(phase.String())
		gt.NoError(t, err)
		gt.Value(t, parsed).Equal(phase)
	}

	_, err := types.ParsePhase("Phase 5")
	gt.Error(t, err)

	_, err = types.ParsePhase("")
	gt.Error(t, err)
}

func TestParseSectionKind(t *testing.T) {
	kinds := types.AllSectionKinds()
	gt.Array(t, kinds).Length(types.ExpectedSectionCount)

	for _, kind := range kinds {
		parsed, err := types.ParseSectionKind(kind.String())
		gt.NoError(t, err)
		gt.Value(t, parsed).Equal(kind)
		gt.Value(t, kind.Title()).NotEqual("")
	}

	_, err := types.ParseSectionKind("statistics")
	gt.Error(t, err)
}

func TestSectionKindOrder(t *testing.T) {
	kinds := types.AllSectionKinds()
	gt.Value(t, kinds[0]).Equal(types.SectionObjectives)
	gt.Value(t, kinds[len(kinds)-1]).Equal(types.SectionAssessments)
}

func TestParseExportFormat(t *testing.T) {
	cases := []struct {
		input     string
		extension string
	}{
		{input: "odm-xml", extension: "xml"},
		{input: "fhir-json", extension: "json"},
		{input: "csv", extension: "csv"},
		{input: "json", extension: "json"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			format, err := types.ParseExportFormat(tc.input)
			gt.NoError(t, err)
			gt.Value(t, format.Extension()).Equal(tc.extension)
		})
	}

	_, err := types.ParseExportFormat("pdf")
	gt.Error(t, err)
}

func TestParseValidationStatus(t *testing.T) {
	for _, status := range types.AllValidationStatuses() {
		parsed, err := types.ParseValidationStatus(status.String())
		gt.NoError(t, err)
		gt.Value(t, parsed).Equal(status)
	}

	_, err := types.ParseValidationStatus("ok")
	gt.Error(t, err)
}

func TestParseEndpointType(t *testing.T) {
	for _, et := range types.AllEndpointTypes() {
		parsed, err := types.ParseEndpointType(et.String())
		gt.NoError(t, err)
		gt.Value(t, parsed).Equal(et)
	}

	_, err := types.ParseEndpointType("tertiary")
	gt.Error(t, err)
}
