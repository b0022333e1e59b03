package export

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// exportCSV renders the CRF schema as a data dictionary
func (e *Exporter) exportCSV(outcome *model.GenerationOutcome) (*Result, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := []string{"Form ID", "Form Name", "Field Name", "Field Label", "Data Type", "Unit", "Options", "Required"}
	if err := w.Write(header); err != nil {
		return nil, goerr.Wrap(err, "failed to write CSV header")
	}

	for _, form := range outcome.CRF.Forms {
		for _, field := range form.Fields {
			record := []string{
				form.ID,
				form.Name,
				field.Name,
				field.Label,
				field.Type,
				field.Unit,
				strings.Join(field.Options, "; "),
				strconv.FormatBool(field.Required),
			}
			if err := w.Write(record); err != nil {
				return nil, goerr.Wrap(err, "failed to write CSV record")
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to flush CSV")
	}

	return &Result{
		Format:   types.ExportCSV,
		Filename: exportFilename(outcome.ID, "DataDictionary.csv"),
		Content:  buf.String(),
	}, nil
}

// exportJSON renders the full outcome as indented JSON
func (e *Exporter) exportJSON(outcome *model.GenerationOutcome) (*Result, error) {
	envelope := struct {
		ExportDate string                   `json:"export_date"`
		StudyID    model.ProtocolID         `json:"study_id"`
		Outcome    *model.GenerationOutcome `json:"outcome"`
	}{
		ExportDate: e.now().Format("2006-01-02T15:04:05Z07:00"),
		StudyID:    outcome.ID,
		Outcome:    outcome,
	}

	raw, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal outcome")
	}

	return &Result{
		Format:   types.ExportJSON,
		Filename: exportFilename(outcome.ID, "Export.json"),
		Content:  string(raw),
	}, nil
}
