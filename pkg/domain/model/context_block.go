package model

// ContextBlock is the assembled retrieval context handed to every
// section prompt. ExampleCount is the number of examples actually
// folded into Text, after the assembler's cap.
type ContextBlock struct {
	Text              string   `json:"text"`
	ExampleCount      int      `json:"example_count"`
	AverageSimilarity *float64 `json:"average_similarity,omitempty"`
}

// Empty reports whether no examples contributed to the context
func (c *ContextBlock) Empty() bool {
	return c == nil || c.ExampleCount == 0
}
