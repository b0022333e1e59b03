package export

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// Result is a rendered export document
type Result struct {
	Format   types.ExportFormat `json:"format"`
	Filename string             `json:"filename"`
	Content  string             `json:"content"`
}

// Exporter renders a generation outcome into interchange formats
type Exporter struct {
	now func() time.Time
}

// Option is a functional option for Exporter configuration
type Option func(*Exporter)

// WithClock overrides the timestamp source, used by tests
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// New creates an exporter
func New(opts ...Option) *Exporter {
	e := &Exporter{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders the outcome in the requested format
func (e *Exporter) Export(outcome *model.GenerationOutcome, format types.ExportFormat) (*Result, error) {
	switch format {
	case types.ExportODMXML:
		return e.exportODM(outcome)
	case types.ExportFHIRJSON:
		return e.exportFHIR(outcome)
	case types.ExportCSV:
		return e.exportCSV(outcome)
	case types.ExportJSON:
		return e.exportJSON(outcome)
	default:
		return nil, goerr.New("unsupported export format", goerr.V("format", format))
	}
}

func exportFilename(id model.ProtocolID, suffix string) string {
	return fmt.Sprintf("%s_%s", id, suffix)
}
