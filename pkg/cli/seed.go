package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/trialworks/protodraft/pkg/cli/config"
	"github.com/trialworks/protodraft/pkg/service/llm"
	"github.com/trialworks/protodraft/pkg/service/retrieval"
	"github.com/trialworks/protodraft/pkg/service/seed"
	"github.com/trialworks/protodraft/pkg/utils/logging"
	"github.com/trialworks/protodraft/pkg/utils/safe"
)

func cmdSeed() *cli.Command {
	var repoCfg config.Repository
	var geminiCfg config.Gemini

	var flags []cli.Flag
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Populate the example corpus with curated sample protocols",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient == nil {
				return goerr.New("gemini-project is required for seeding, embeddings cannot be computed without it")
			}

			client, err := llm.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize LLM service")
			}

			indexer := retrieval.New(client, repo.Example())
			count, err := seed.New(indexer).Seed(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to seed example corpus")
			}

			logging.Default().Info("Seeding completed", "count", count)
			return nil
		},
	}
}
