package types

import "fmt"

// SourceTag records which tier of the fallback ladder produced a
// section's content.
type SourceTag string

const (
	// SourceGenerated marks content produced by the text generator
	SourceGenerated SourceTag = "generated"

	// SourceCopiedInput marks content copied verbatim from the caller's
	// own profile fields.
	SourceCopiedInput SourceTag = "copied-input"

	// SourceFallbackTemplate marks content rendered from the built-in
	// deterministic templates.
	SourceFallbackTemplate SourceTag = "fallback-template"
)

// AllSourceTags returns all valid source tags
func AllSourceTags() []SourceTag {
	return []SourceTag{
		SourceGenerated,
		SourceCopiedInput,
		SourceFallbackTemplate,
	}
}

// IsValid checks if the source tag is valid
func (s SourceTag) IsValid() bool {
	switch s {
	case SourceGenerated, SourceCopiedInput, SourceFallbackTemplate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source tag
func (s SourceTag) String() string {
	return string(s)
}

// ParseSourceTag parses a string into a SourceTag
func ParseSourceTag(s string) (SourceTag, error) {
	tag := SourceTag(s)
	if !tag.IsValid() {
		return "", fmt.Errorf("invalid source tag: %s", s)
	}
	return tag, nil
}
