package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// ProtocolID is the unique identifier for a generation outcome
type ProtocolID string

// NewProtocolID generates a new ProtocolID with a readable prefix
func NewProtocolID() ProtocolID {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return ProtocolID("PROT-" + strings.ToUpper(raw[:12]))
}

// String returns the string representation of ProtocolID
func (id ProtocolID) String() string {
	return string(id)
}

// ValidationMessage is a single finding from structural validation
type ValidationMessage struct {
	Rule     string `json:"rule" firestore:"rule"`
	Severity string `json:"severity" firestore:"severity"`
	Message  string `json:"message" firestore:"message"`
}

// ValidationOutcome is the aggregate result of structural validation
type ValidationOutcome struct {
	Status   types.ValidationStatus `json:"status" firestore:"status"`
	Messages []ValidationMessage    `json:"messages,omitempty" firestore:"messages,omitempty"`
}

// GenerationOutcome is the full record of one protocol generation run
type GenerationOutcome struct {
	ID          ProtocolID        `json:"id" firestore:"id"`
	GeneratedAt time.Time         `json:"generated_at" firestore:"generated_at"`
	Profile     TrialProfile      `json:"profile" firestore:"profile"`
	Protocol    Protocol          `json:"protocol" firestore:"protocol"`
	Narrative   string            `json:"narrative,omitempty" firestore:"narrative,omitempty"`
	CRF         CRFSchema         `json:"crf" firestore:"crf"`
	Sections    []SectionResult   `json:"sections" firestore:"sections"`
	Context     ContextBlock      `json:"context" firestore:"context"`
	Validation  ValidationOutcome `json:"validation" firestore:"validation"`
	Confidence  float64           `json:"confidence" firestore:"confidence"`
}

// Section returns the section result of the given kind, or nil
func (o *GenerationOutcome) Section(kind types.SectionKind) *SectionResult {
	for i := range o.Sections {
		if o.Sections[i].Kind == kind {
			return &o.Sections[i]
		}
	}
	return nil
}
