package model

import "github.com/trialworks/protodraft/pkg/domain/types"

// SectionResult is the outcome of generating one protocol section.
// The fallback ladder guarantees a result for every requested kind, so
// a SectionResult never carries an error.
type SectionResult struct {
	Kind       types.SectionKind `json:"kind" firestore:"kind"`
	Content    string            `json:"content" firestore:"content"`
	Source     types.SourceTag   `json:"source" firestore:"source"`
	Confidence float64           `json:"confidence" firestore:"confidence"`
}
