package usecase

import (
	"github.com/trialworks/protodraft/pkg/domain/interfaces"
	"github.com/trialworks/protodraft/pkg/domain/model/config"
	"github.com/trialworks/protodraft/pkg/service/export"
	"github.com/trialworks/protodraft/pkg/service/rules"
)

type UseCases struct {
	repo      interfaces.Repository
	generator interfaces.TextGenerator
	retriever interfaces.Retriever
	indexer   interfaces.Indexer
	validator interfaces.StructuralValidator
	exporter  *export.Exporter
	genCfg    config.GenerationConfig
	scoreCfg  config.ScoreConfig
}

type Option func(*UseCases)

// WithGenerator sets the external text generator. Without one, every
// section goes through the fallback ladder.
func WithGenerator(g interfaces.TextGenerator) Option {
	return func(uc *UseCases) {
		uc.generator = g
	}
}

// WithRetriever sets the similarity retriever
func WithRetriever(r interfaces.Retriever) Option {
	return func(uc *UseCases) {
		uc.retriever = r
	}
}

// WithIndexer sets the example corpus indexer
func WithIndexer(i interfaces.Indexer) Option {
	return func(uc *UseCases) {
		uc.indexer = i
	}
}

// WithValidator replaces the structural validator
func WithValidator(v interfaces.StructuralValidator) Option {
	return func(uc *UseCases) {
		uc.validator = v
	}
}

// WithGenerationConfig overrides the pipeline settings
func WithGenerationConfig(cfg config.GenerationConfig) Option {
	return func(uc *UseCases) {
		uc.genCfg = cfg
	}
}

// WithScoreConfig overrides the confidence scoring constants
func WithScoreConfig(cfg config.ScoreConfig) Option {
	return func(uc *UseCases) {
		uc.scoreCfg = cfg
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		exporter: export.New(),
		genCfg:   config.DefaultGenerationConfig(),
		scoreCfg: config.DefaultScoreConfig(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.validator == nil {
		uc.validator = rules.Default()
	}

	return uc
}
