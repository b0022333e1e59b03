package config

import "time"

// GenerationConfig controls the behavior of the generation pipeline
type GenerationConfig struct {
	// UseRetrieval disables similarity retrieval when false; sections
	// are then generated without example context.
	UseRetrieval bool `toml:"use_retrieval"`

	// UseGeneration disables the external text generator when false,
	// forcing every section through the fallback ladder.
	UseGeneration bool `toml:"use_generation"`

	// TopK is the number of similar examples requested from retrieval
	TopK int `toml:"top_k"`

	// ContextLimit caps how many retrieved examples are folded into
	// the prompt context.
	ContextLimit int `toml:"context_limit"`

	// Concurrency caps the number of sections generated in parallel
	Concurrency int `toml:"concurrency"`

	// Timeout bounds a single text-generation call
	Timeout time.Duration `toml:"-"`
}

// DefaultGenerationConfig returns the default pipeline settings
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		UseRetrieval:  true,
		UseGeneration: true,
		TopK:          3,
		ContextLimit:  3,
		Concurrency:   4,
		Timeout:       60 * time.Second,
	}
}
