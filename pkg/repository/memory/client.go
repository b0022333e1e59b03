package memory

import (
	"github.com/trialworks/protodraft/pkg/domain/interfaces"
	"github.com/trialworks/protodraft/pkg/domain/types"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = types.ErrNotFound

// Memory is an in-memory Repository implementation used for local
// development and tests.
type Memory struct {
	outcome *outcomeRepository
	example *exampleRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		outcome: newOutcomeRepository(),
		example: newExampleRepository(),
	}
}

func (m *Memory) Outcome() interfaces.OutcomeRepository {
	return m.outcome
}

func (m *Memory) Example() interfaces.ExampleRepository {
	return m.example
}

func (m *Memory) Close() error {
	return nil
}
