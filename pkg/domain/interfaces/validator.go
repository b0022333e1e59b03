package interfaces

import (
	"github.com/trialworks/protodraft/pkg/domain/model"
)

// StructuralValidator applies regulatory structure rules to a
// generated protocol. It reports findings, it does not fail.
type StructuralValidator interface {
	Validate(profile *model.TrialProfile, protocol *model.Protocol) model.ValidationOutcome
}
