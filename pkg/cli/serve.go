package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/trialworks/protodraft/pkg/cli/config"
	httpctrl "github.com/trialworks/protodraft/pkg/controller/http"
	"github.com/trialworks/protodraft/pkg/domain/interfaces"
	"github.com/trialworks/protodraft/pkg/service/llm"
	"github.com/trialworks/protodraft/pkg/service/retrieval"
	"github.com/trialworks/protodraft/pkg/service/rules"
	"github.com/trialworks/protodraft/pkg/usecase"
	"github.com/trialworks/protodraft/pkg/utils/logging"
	"github.com/trialworks/protodraft/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var genCfg config.Generation
	var rulesCfg config.Rules

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("PROTODRAFT_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, genCfg.Flags()...)
	flags = append(flags, rulesCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc, err := buildUseCases(ctx, repo, &geminiCfg, &genCfg, &rulesCfg)
			if err != nil {
				return err
			}

			handler := httpctrl.New(uc)
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

// buildUseCases wires the generation pipeline from configuration.
// Without a Gemini project, generation runs on copied input and
// templates only, and the service still serves every endpoint.
func buildUseCases(ctx context.Context, repo interfaces.Repository, geminiCfg *config.Gemini, genCfg *config.Generation, rulesCfg *config.Rules) (*usecase.UseCases, error) {
	pipelineCfg := genCfg.Configure()

	ruleCfg, err := rulesCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load validation rules")
	}

	opts := []usecase.Option{
		usecase.WithGenerationConfig(pipelineCfg),
		usecase.WithValidator(rules.New(ruleCfg)),
	}

	llmClient, err := geminiCfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Gemini client")
	}

	if llmClient != nil {
		client, err := llm.New(llmClient, llm.WithTimeout(pipelineCfg.Timeout))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize LLM service")
		}

		retrievalSvc := retrieval.New(client, repo.Example())
		opts = append(opts,
			usecase.WithGenerator(client),
			usecase.WithRetriever(retrievalSvc),
			usecase.WithIndexer(retrievalSvc),
		)
		logging.Default().Info("Gemini client enabled for generation and retrieval")
	} else {
		logging.Default().Info("Gemini not configured, serving template-based generation only")
	}

	return usecase.New(repo, opts...), nil
}
