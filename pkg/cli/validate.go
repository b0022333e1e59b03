package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/trialworks/protodraft/pkg/cli/config"
	"github.com/trialworks/protodraft/pkg/domain/model"
	"github.com/trialworks/protodraft/pkg/domain/types"
	"github.com/trialworks/protodraft/pkg/repository/memory"
	"github.com/trialworks/protodraft/pkg/service/rules"
	"github.com/trialworks/protodraft/pkg/usecase"
	"github.com/trialworks/protodraft/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var profilePath string
	var rulesCfg config.Rules

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "Path to a trial profile JSON file",
			Required:    true,
			Sources:     cli.EnvVars("PROTODRAFT_PROFILE"),
			Destination: &profilePath,
		},
	}
	flags = append(flags, rulesCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a trial profile against the structural rules",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// #nosec G304 - path is provided by CLI argument
			data, err := os.ReadFile(profilePath)
			if err != nil {
				return goerr.Wrap(err, "failed to read profile file", goerr.V("path", profilePath))
			}

			var profile model.TrialProfile
			if err := json.Unmarshal(data, &profile); err != nil {
				return goerr.Wrap(err, "failed to parse profile JSON", goerr.V("path", profilePath))
			}

			ruleCfg, err := rulesCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load validation rules")
			}

			uc := usecase.New(memory.New(), usecase.WithValidator(rules.New(ruleCfg)))
			outcome, err := uc.ValidateProfile(ctx, &profile)
			if err != nil {
				return goerr.Wrap(err, "profile validation failed")
			}

			for _, msg := range outcome.Messages {
				switch msg.Severity {
				case "error":
					logger.Error("validation finding", "rule", msg.Rule, "message", msg.Message)
				default:
					logger.Warn("validation finding", "rule", msg.Rule, "message", msg.Message)
				}
			}

			logger.Info("Validation completed", "status", outcome.Status, "findings", len(outcome.Messages))
			if outcome.Status == types.ValidationFailed {
				return fmt.Errorf("validation failed with %d finding(s)", len(outcome.Messages))
			}
			return nil
		},
	}
}
