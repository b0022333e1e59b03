package config

import (
	"time"

	"github.com/urfave/cli/v3"

	domainConfig "github.com/trialworks/protodraft/pkg/domain/model/config"
)

// Generation holds CLI flags for the generation pipeline
type Generation struct {
	noRetrieval  bool
	noGeneration bool
	topK         int
	contextLimit int
	concurrency  int
	timeout      time.Duration
}

// Flags returns CLI flags for generation pipeline configuration
func (g *Generation) Flags() []cli.Flag {
	defaults := domainConfig.DefaultGenerationConfig()
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-retrieval",
			Usage:       "Disable similarity retrieval",
			Sources:     cli.EnvVars("PROTODRAFT_NO_RETRIEVAL"),
			Destination: &g.noRetrieval,
		},
		&cli.BoolFlag{
			Name:        "no-generation",
			Usage:       "Disable LLM section generation (templates only)",
			Sources:     cli.EnvVars("PROTODRAFT_NO_GENERATION"),
			Destination: &g.noGeneration,
		},
		&cli.IntFlag{
			Name:        "top-k",
			Usage:       "Number of similar examples to retrieve",
			Value:       defaults.TopK,
			Sources:     cli.EnvVars("PROTODRAFT_TOP_K"),
			Destination: &g.topK,
		},
		&cli.IntFlag{
			Name:        "context-limit",
			Usage:       "Maximum retrieved examples folded into the prompt context",
			Value:       defaults.ContextLimit,
			Sources:     cli.EnvVars("PROTODRAFT_CONTEXT_LIMIT"),
			Destination: &g.contextLimit,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of sections generated in parallel",
			Value:       defaults.Concurrency,
			Sources:     cli.EnvVars("PROTODRAFT_CONCURRENCY"),
			Destination: &g.concurrency,
		},
		&cli.DurationFlag{
			Name:        "llm-timeout",
			Usage:       "Timeout for a single text-generation call",
			Value:       defaults.Timeout,
			Sources:     cli.EnvVars("PROTODRAFT_LLM_TIMEOUT"),
			Destination: &g.timeout,
		},
	}
}

// Configure converts the flags into a pipeline configuration
func (g *Generation) Configure() domainConfig.GenerationConfig {
	cfg := domainConfig.DefaultGenerationConfig()
	cfg.UseRetrieval = !g.noRetrieval
	cfg.UseGeneration = !g.noGeneration
	if g.topK > 0 {
		cfg.TopK = g.topK
	}
	if g.contextLimit > 0 {
		cfg.ContextLimit = g.contextLimit
	}
	if g.concurrency > 0 {
		cfg.Concurrency = g.concurrency
	}
	if g.timeout > 0 {
		cfg.Timeout = g.timeout
	}
	return cfg
}
